package models

import (
	"encoding/json"
	"time"
)

// JobStatusCompleted is the only job status the mock backend produces.
// No failure or in-progress path is modeled; a job either exists completed
// or the request that would have created it failed outright.
const JobStatusCompleted = "completed"

// Job type values for the endpoints that persist a job record.
const (
	JobTypeLogo          = "logo"
	JobTypeVideo         = "video"
	JobTypeBrandKit      = "brand_kit"
	JobTypeSocialContent = "social_content"
)

// GenerationJob is the persisted record of one synthetic generation request.
// RequestData holds a structured copy of the client's request payload.
type GenerationJob struct {
	JobID       string          `db:"job_id"       json:"job_id"`
	Type        string          `db:"type"         json:"type"`
	RequestData json.RawMessage `db:"request_data" json:"request_data"`
	Status      string          `db:"status"       json:"status"`
	AssetURL    string          `db:"asset_url"    json:"asset_url"`
	CreatedAt   time.Time       `db:"created_at"   json:"created_at"`
}
