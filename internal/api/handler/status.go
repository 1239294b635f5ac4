package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lotayaai/lotaya-io/internal/api/response"
	"github.com/lotayaai/lotaya-io/pkg/models"
)

// StatusLog is the append-only status-check record the handlers depend on.
type StatusLog interface {
	CreateStatusCheck(ctx context.Context, clientName string) (*models.StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]*models.StatusCheck, error)
}

type statusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// NewCreateStatusHandler returns the handler for POST /api/status.
func NewCreateStatusHandler(svc StatusLog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[statusCheckRequest](w, r)
		if !ok {
			return
		}

		check, err := svc.CreateStatusCheck(r.Context(), req.ClientName)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				fmt.Sprintf("Status check failed: %s", err), nil)
			return
		}

		response.JSON(w, check)
	}
}

// NewListStatusHandler returns the handler for GET /api/status.
func NewListStatusHandler(svc StatusLog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, err := svc.ListStatusChecks(r.Context())
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				fmt.Sprintf("Listing status checks failed: %s", err), nil)
			return
		}
		if checks == nil {
			checks = []*models.StatusCheck{}
		}

		response.JSON(w, checks)
	}
}
