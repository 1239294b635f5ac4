package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lotayaai/lotaya-io/internal/api/response"
	"github.com/lotayaai/lotaya-io/internal/generator"
)

type SloganGenerator interface {
	GenerateSlogans(ctx context.Context, req generator.SloganRequest) ([]string, error)
}

type sloganResponse struct {
	Slogans []string `json:"slogans"`
}

// NewGenerateSloganHandler returns the handler for POST /api/generate-slogan.
func NewGenerateSloganHandler(svc SloganGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[generator.SloganRequest](w, r)
		if !ok {
			return
		}

		slogans, err := svc.GenerateSlogans(r.Context(), req)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				fmt.Sprintf("Slogan generation failed: %s", err), nil)
			return
		}

		response.JSON(w, sloganResponse{Slogans: slogans})
	}
}
