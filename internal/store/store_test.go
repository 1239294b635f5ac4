package store_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lotayaai/lotaya-io/internal/store"
	"github.com/lotayaai/lotaya-io/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// migrationsDir returns the absolute path to the migrations directory.
func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "migrations")
}

// setupTestDB spins up a Postgres container, runs migrations, and returns a pool + cleanup.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("lotaya_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Run migrations
	err = store.RunMigrations(connStr, migrationsDir())
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	return pool
}

// --- Status Check Tests ---

func TestStatusCheck_CreateAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	check := &models.StatusCheck{
		ID:         uuid.New(),
		ClientName: "monitor-1",
		Timestamp:  now,
	}
	err := s.CreateStatusCheck(ctx, check)
	require.NoError(t, err)

	checks, err := s.ListStatusChecks(ctx, 100)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, check.ID, checks[0].ID)
	assert.Equal(t, "monitor-1", checks[0].ClientName)
	assert.Equal(t, now, checks[0].Timestamp.UTC().Truncate(time.Microsecond))
}

func TestStatusCheck_ListOrderedByTimestamp(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	// Insert out of chronological order
	for i, offset := range []time.Duration{2 * time.Minute, 0, time.Minute} {
		err := s.CreateStatusCheck(ctx, &models.StatusCheck{
			ID:         uuid.New(),
			ClientName: []string{"third", "first", "second"}[i],
			Timestamp:  base.Add(offset),
		})
		require.NoError(t, err)
	}

	checks, err := s.ListStatusChecks(ctx, 100)
	require.NoError(t, err)
	require.Len(t, checks, 3)
	assert.Equal(t, "first", checks[0].ClientName)
	assert.Equal(t, "second", checks[1].ClientName)
	assert.Equal(t, "third", checks[2].ClientName)
}

func TestStatusCheck_ListHonorsLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	for i := 0; i < 5; i++ {
		err := s.CreateStatusCheck(ctx, &models.StatusCheck{
			ID:         uuid.New(),
			ClientName: "client",
			Timestamp:  base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	checks, err := s.ListStatusChecks(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, checks, 3)
}

func TestStatusCheck_ListEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)

	checks, err := s.ListStatusChecks(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, checks)
}

// --- Generation Job Tests ---

func TestGenerationJob_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	job := &models.GenerationJob{
		JobID:       "logo_0badc0de",
		Type:        models.JobTypeLogo,
		RequestData: json.RawMessage(`{"brandName":"Acme","keywords":["bold"]}`),
		Status:      models.JobStatusCompleted,
		AssetURL:    "https://storage.googleapis.com/lotaya-assets/logos/logo_0badc0de.png",
		CreatedAt:   now,
	}
	err := s.CreateGenerationJob(ctx, job)
	require.NoError(t, err)

	got, err := s.GetGenerationJob(ctx, "logo_0badc0de")
	require.NoError(t, err)
	assert.Equal(t, job.JobID, got.JobID)
	assert.Equal(t, models.JobTypeLogo, got.Type)
	assert.Equal(t, models.JobStatusCompleted, got.Status)
	assert.Equal(t, job.AssetURL, got.AssetURL)
	assert.JSONEq(t, string(job.RequestData), string(got.RequestData))
	assert.Equal(t, now, got.CreatedAt.UTC().Truncate(time.Microsecond))
}

func TestGenerationJob_GetNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)

	_, err := s.GetGenerationJob(context.Background(), "logo_deadbeef")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGenerationJob_AllPersistedTypes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	types := map[string]string{
		"logo_aaaa0001":     models.JobTypeLogo,
		"video_aaaa0002":    models.JobTypeVideo,
		"brandkit_aaaa0003": models.JobTypeBrandKit,
		"social_aaaa0004":   models.JobTypeSocialContent,
	}
	for jobID, jobType := range types {
		err := s.CreateGenerationJob(ctx, &models.GenerationJob{
			JobID:       jobID,
			Type:        jobType,
			RequestData: json.RawMessage(`{}`),
			Status:      models.JobStatusCompleted,
			AssetURL:    "https://example.com/" + jobID,
			CreatedAt:   now,
		})
		require.NoError(t, err)
	}

	for jobID, jobType := range types {
		got, err := s.GetGenerationJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, jobType, got.Type)
	}
}

func TestGenerationJob_DuplicateID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	job := &models.GenerationJob{
		JobID:       "logo_aaaa0005",
		Type:        models.JobTypeLogo,
		RequestData: json.RawMessage(`{}`),
		Status:      models.JobStatusCompleted,
		AssetURL:    "https://example.com/a.png",
		CreatedAt:   now,
	}
	require.NoError(t, s.CreateGenerationJob(ctx, job))

	err := s.CreateGenerationJob(ctx, job)
	assert.Error(t, err)
}

// --- Ping Test ---

func TestPing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)

	err := s.Ping(context.Background())
	assert.NoError(t, err)
}
