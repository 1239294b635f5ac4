// Package generator fabricates the responses of the mock generation
// pipeline: synthetic job ids and asset URLs, per-endpoint metadata, the
// chat rule engine, and the domain/slogan text generators. Nothing is ever
// rendered or stored as a file; the simulated delay is the only cost.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lotayaai/lotaya-io/internal/cache"
	"github.com/lotayaai/lotaya-io/internal/store"
	"github.com/lotayaai/lotaya-io/pkg/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	statusListLimit = 1000
	jobCacheTTL     = 24 * time.Hour
)

// Result is the uniform envelope every asset-producing operation returns.
type Result struct {
	JobID    string
	Status   string
	Message  string
	AssetURL string
	Metadata map[string]any
}

// Options configures a Service. Zero values fall back to production
// defaults, except DelayUnit: a zero unit disables the simulated delays,
// which is what tests want.
type Options struct {
	AssetBaseURL string
	DelayUnit    time.Duration
	Rand         Rand
	Now          func() time.Time
}

// Service implements every generation operation. It is safe for concurrent
// use; the only shared collaborators are the store and the cache.
type Service struct {
	store     store.Store
	cache     cache.Cache
	assetBase string
	delayUnit time.Duration
	rand      Rand
	now       func() time.Time
}

// NewService creates a Service with the given collaborators.
func NewService(s store.Store, c cache.Cache, opts Options) *Service {
	if opts.AssetBaseURL == "" {
		opts.AssetBaseURL = "https://storage.googleapis.com/lotaya-assets"
	}
	if opts.Rand == nil {
		opts.Rand = NewRand()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		store:     s,
		cache:     c,
		assetBase: opts.AssetBaseURL,
		delayUnit: opts.DelayUnit,
		rand:      opts.Rand,
		now:       opts.Now,
	}
}

// wait suspends for units × delayUnit, modeling the latency of a real
// pipeline. It never blocks other requests and aborts as soon as the
// request context is cancelled.
func (s *Service) wait(ctx context.Context, units int) error {
	d := time.Duration(units) * s.delayUnit
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Service) jobID(prefix string) string {
	return prefix + "_" + s.rand.Hex(8)
}

func (s *Service) assetURL(bucket, jobID, ext string) string {
	return fmt.Sprintf("%s/%s/%s.%s", s.assetBase, bucket, jobID, ext)
}

// recordJob persists one GenerationJob and best-effort caches it. A store
// failure fails the whole request; a cache failure is only logged.
func (s *Service) recordJob(ctx context.Context, jobType, jobID, assetURL string, req any) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request data: %w", err)
	}

	job := &models.GenerationJob{
		JobID:       jobID,
		Type:        jobType,
		RequestData: data,
		Status:      models.JobStatusCompleted,
		AssetURL:    assetURL,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.CreateGenerationJob(ctx, job); err != nil {
		return fmt.Errorf("record job: %w", err)
	}

	if err := s.cache.SetJob(ctx, job, jobCacheTTL); err != nil {
		slog.Warn("cache job", "job_id", jobID, "error", err)
	}
	return nil
}

// GenerateLogo fabricates a logo job. Persisted.
func (s *Service) GenerateLogo(ctx context.Context, req LogoRequest) (*Result, error) {
	if req.Style == "" {
		req.Style = "modern"
	}
	if err := s.wait(ctx, 2); err != nil {
		return nil, err
	}

	jobID := s.jobID("logo")
	assetURL := s.assetURL("logos", jobID, "png")

	colors := req.ColorPalette
	if len(colors) == 0 {
		colors = []string{"#1A73E8", "#FBBC05"}
	}

	if err := s.recordJob(ctx, models.JobTypeLogo, jobID, assetURL, req); err != nil {
		return nil, err
	}

	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  fmt.Sprintf("Professional logo generated for %s", req.BrandName),
		AssetURL: assetURL,
		Metadata: map[string]any{
			"style":    req.Style,
			"colors":   colors,
			"industry": req.Industry,
		},
	}, nil
}

// GenerateVideo fabricates a video job. Persisted.
func (s *Service) GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error) {
	if req.DurationSeconds == 0 {
		req.DurationSeconds = 15
	}
	if req.Style == "" {
		req.Style = "cinematic"
	}
	if req.Resolution == "" {
		req.Resolution = "1080p"
	}
	if err := s.wait(ctx, 3); err != nil {
		return nil, err
	}

	jobID := s.jobID("video")
	assetURL := s.assetURL("videos", jobID, "mp4")

	if err := s.recordJob(ctx, models.JobTypeVideo, jobID, assetURL, req); err != nil {
		return nil, err
	}

	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  fmt.Sprintf("AI video generated successfully (%ds)", req.DurationSeconds),
		AssetURL: assetURL,
		Metadata: map[string]any{
			"duration":   req.DurationSeconds,
			"style":      req.Style,
			"resolution": req.Resolution,
		},
	}, nil
}

// GenerateBrandKit fabricates a brand-kit job. Persisted.
func (s *Service) GenerateBrandKit(ctx context.Context, req BrandKitRequest) (*Result, error) {
	if err := s.wait(ctx, 4); err != nil {
		return nil, err
	}

	jobID := s.jobID("brandkit")
	assetURL := s.assetURL("brandkits", jobID, "zip")

	if err := s.recordJob(ctx, models.JobTypeBrandKit, jobID, assetURL, req); err != nil {
		return nil, err
	}

	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  fmt.Sprintf("Complete brand kit generated for %s", req.BrandName),
		AssetURL: assetURL,
		Metadata: map[string]any{
			"includes":    []string{"logo", "color_palette", "typography", "brand_guidelines"},
			"industry":    req.Industry,
			"personality": req.BrandPersonality,
		},
	}, nil
}

// GenerateSocialContent fabricates a social-media content job. Persisted.
func (s *Service) GenerateSocialContent(ctx context.Context, req SocialContentRequest) (*Result, error) {
	if req.Tone == "" {
		req.Tone = "professional"
	}
	if err := s.wait(ctx, 2); err != nil {
		return nil, err
	}

	jobID := s.jobID("social")
	assetURL := s.assetURL("social", jobID, "png")

	if err := s.recordJob(ctx, models.JobTypeSocialContent, jobID, assetURL, req); err != nil {
		return nil, err
	}

	platform := cases.Title(language.English).String(req.Platform)
	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  fmt.Sprintf("%s %s generated successfully", platform, req.ContentType),
		AssetURL: assetURL,
		Metadata: map[string]any{
			"platform":     req.Platform,
			"content_type": req.ContentType,
			"tone":         req.Tone,
		},
	}, nil
}

// GenerateWebsite fabricates a website concept. Not persisted.
func (s *Service) GenerateWebsite(ctx context.Context, req WebsiteRequest) (*Result, error) {
	if len(req.Pages) == 0 {
		req.Pages = []string{"home", "about", "services", "contact"}
	}
	if req.ColorScheme == "" {
		req.ColorScheme = "modern"
	}
	if err := s.wait(ctx, 3); err != nil {
		return nil, err
	}

	jobID := s.jobID("website")
	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  fmt.Sprintf("Website concept generated for %s", req.BusinessName),
		AssetURL: s.assetURL("websites", jobID, "html"),
		Metadata: map[string]any{
			"pages":         req.Pages,
			"business_type": req.BusinessType,
			"color_scheme":  req.ColorScheme,
		},
	}, nil
}

// GenerateVoice fabricates a text-to-speech job. Not persisted.
func (s *Service) GenerateVoice(ctx context.Context, req VoiceRequest) (*Result, error) {
	if req.Voice == "" {
		req.Voice = "female"
	}
	if req.Language == "" {
		req.Language = "en-US"
	}
	if req.Speed == 0 {
		req.Speed = 1.0
	}
	if err := s.wait(ctx, 2); err != nil {
		return nil, err
	}

	jobID := s.jobID("voice")
	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  "High-quality voice audio generated",
		AssetURL: s.assetURL("audio", jobID, "mp3"),
		Metadata: map[string]any{
			"voice":    req.Voice,
			"language": req.Language,
			// Rough estimate: a tenth of a second per character.
			"duration": float64(len(req.Text)) * 0.1,
		},
	}, nil
}

// EditPhoto fabricates a photo-edit job. Not persisted.
func (s *Service) EditPhoto(ctx context.Context, req PhotoEditRequest) (*Result, error) {
	if req.Intensity == 0 {
		req.Intensity = 0.8
	}
	if err := s.wait(ctx, 2); err != nil {
		return nil, err
	}

	jobID := s.jobID("photo")
	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  fmt.Sprintf("Photo %s completed successfully", req.EditType),
		AssetURL: s.assetURL("photos", jobID, "jpg"),
		Metadata: map[string]any{
			"edit_type":    req.EditType,
			"intensity":    req.Intensity,
			"original_url": req.ImageURL,
		},
	}, nil
}

// RemoveBackground fabricates a background-removal job. Not persisted.
func (s *Service) RemoveBackground(ctx context.Context, req BackgroundRemovalRequest) (*Result, error) {
	if err := s.wait(ctx, 1); err != nil {
		return nil, err
	}

	jobID := s.jobID("bg_remove")
	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  "Background removed successfully",
		AssetURL: s.assetURL("backgrounds", jobID, "png"),
		Metadata: map[string]any{
			"original_url": req.ImageURL,
			"format":       "PNG with transparency",
		},
	}, nil
}

// GenerateBusinessCard fabricates a business-card job. Not persisted.
func (s *Service) GenerateBusinessCard(ctx context.Context, req BusinessCardRequest) (*Result, error) {
	if req.Style == "" {
		req.Style = "modern"
	}
	if err := s.wait(ctx, 2); err != nil {
		return nil, err
	}

	jobID := s.jobID("card")
	return &Result{
		JobID:    jobID,
		Status:   models.JobStatusCompleted,
		Message:  fmt.Sprintf("Professional business card designed for %s", req.Name),
		AssetURL: s.assetURL("cards", jobID, "pdf"),
		Metadata: map[string]any{
			"style":    req.Style,
			"includes": []string{"front_design", "back_design", "print_ready_pdf"},
			"contact_info": map[string]any{
				"name":    req.Name,
				"title":   req.Title,
				"company": req.Company,
			},
		},
	}, nil
}

// GetJob looks up a persisted generation job, consulting the cache first
// and populating it on a store hit.
func (s *Service) GetJob(ctx context.Context, jobID string) (*models.GenerationJob, error) {
	if job, ok, err := s.cache.GetJob(ctx, jobID); err == nil && ok {
		return job, nil
	} else if err != nil {
		slog.Warn("read job cache", "job_id", jobID, "error", err)
	}

	job, err := s.store.GetGenerationJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJob(ctx, job, jobCacheTTL); err != nil {
		slog.Warn("cache job", "job_id", jobID, "error", err)
	}
	return job, nil
}

// CreateStatusCheck appends one status-check record and returns it.
func (s *Service) CreateStatusCheck(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  s.now().UTC(),
	}
	if err := s.store.CreateStatusCheck(ctx, check); err != nil {
		return nil, fmt.Errorf("create status check: %w", err)
	}
	return check, nil
}

// ListStatusChecks returns all recorded status checks in insertion order,
// capped at 1000.
func (s *Service) ListStatusChecks(ctx context.Context) ([]*models.StatusCheck, error) {
	return s.store.ListStatusChecks(ctx, statusListLimit)
}
