package store

import (
	"context"
	"errors"

	"github.com/lotayaai/lotaya-io/pkg/models"
)

var ErrNotFound = errors.New("resource not found")

// Store is the data access interface. All database operations go through here.
type Store interface {
	Ping(ctx context.Context) error

	CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error
	ListStatusChecks(ctx context.Context, limit int) ([]*models.StatusCheck, error)

	CreateGenerationJob(ctx context.Context, job *models.GenerationJob) error
	GetGenerationJob(ctx context.Context, jobID string) (*models.GenerationJob, error)
}
