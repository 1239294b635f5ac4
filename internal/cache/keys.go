package cache

import "fmt"

func JobKey(jobID string) string {
	return fmt.Sprintf("job:%s", jobID)
}
