package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lotayaai/lotaya-io/pkg/models"
)

// PostgresStore implements the Store interface using pgx/v5.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// --- Status Checks ---

func (s *PostgresStore) CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp)
	if err != nil {
		return fmt.Errorf("create status check: %w", err)
	}
	return nil
}

// ListStatusChecks returns status checks in insertion order, capped at limit.
func (s *PostgresStore) ListStatusChecks(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	var checks []*models.StatusCheck
	for rows.Next() {
		var c models.StatusCheck
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		checks = append(checks, &c)
	}
	return checks, rows.Err()
}

// --- Generation Jobs ---

func (s *PostgresStore) CreateGenerationJob(ctx context.Context, job *models.GenerationJob) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO generation_jobs (job_id, type, request_data, status, asset_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		job.JobID, job.Type, job.RequestData, job.Status, job.AssetURL, job.CreatedAt)
	if err != nil {
		return fmt.Errorf("create generation job: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetGenerationJob(ctx context.Context, jobID string) (*models.GenerationJob, error) {
	var j models.GenerationJob
	err := s.pool.QueryRow(ctx,
		`SELECT job_id, type, request_data, status, asset_url, created_at
		 FROM generation_jobs WHERE job_id = $1`, jobID,
	).Scan(&j.JobID, &j.Type, &j.RequestData, &j.Status, &j.AssetURL, &j.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get generation job: %w", err)
	}
	return &j, nil
}
