package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lotayaai/lotaya-io/internal/api/response"
	"github.com/lotayaai/lotaya-io/internal/generator"
)

type ChatAssistant interface {
	Chat(ctx context.Context, req generator.ChatRequest) (*generator.ChatResult, error)
}

// NewChatAssistantHandler returns the handler for POST /api/chat-assistant.
func NewChatAssistantHandler(svc ChatAssistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[generator.ChatRequest](w, r)
		if !ok {
			return
		}

		res, err := svc.Chat(r.Context(), req)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				fmt.Sprintf("Chat assistant failed: %s", err), nil)
			return
		}

		response.JSON(w, res)
	}
}
