package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lotayaai/lotaya-io/internal/api/response"
	"github.com/lotayaai/lotaya-io/internal/generator"
)

type DomainSuggester interface {
	SuggestDomains(ctx context.Context, req generator.DomainRequest) ([]generator.DomainSuggestion, error)
}

type domainResponse struct {
	Suggestions []generator.DomainSuggestion `json:"suggestions"`
}

// NewGenerateDomainHandler returns the handler for POST /api/generate-domain.
func NewGenerateDomainHandler(svc DomainSuggester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[generator.DomainRequest](w, r)
		if !ok {
			return
		}

		suggestions, err := svc.SuggestDomains(r.Context(), req)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				fmt.Sprintf("Domain generation failed: %s", err), nil)
			return
		}

		response.JSON(w, domainResponse{Suggestions: suggestions})
	}
}
