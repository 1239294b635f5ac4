package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lotayaai/lotaya-io/internal/api/response"
	"github.com/lotayaai/lotaya-io/internal/store"
	"github.com/lotayaai/lotaya-io/pkg/models"
)

type JobFinder interface {
	GetJob(ctx context.Context, jobID string) (*models.GenerationJob, error)
}

// NewGetJobHandler returns the handler for GET /api/jobs/{jobID}. Only the
// four persisting endpoint types ever produce a resolvable job.
func NewGetJobHandler(svc JobFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID := chi.URLParam(r, "jobID")

		job, err := svc.GetJob(r.Context(), jobID)
		if errors.Is(err, store.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "NOT_FOUND",
				fmt.Sprintf("No job found with id %s", jobID), nil)
			return
		}
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				fmt.Sprintf("Job lookup failed: %s", err), nil)
			return
		}

		response.JSON(w, job)
	}
}
