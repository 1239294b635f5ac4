package handler

import (
	"net/http"

	"github.com/lotayaai/lotaya-io/internal/api/response"
)

// NewRootHandler returns the API banner handler for GET /api/.
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, map[string]string{
			"message": "Lotaya AI API - All-in-One Generative AI Platform",
		})
	}
}
