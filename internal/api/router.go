package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	mw "github.com/lotayaai/lotaya-io/internal/api/middleware"
	"github.com/lotayaai/lotaya-io/internal/api/response"
)

// Dependencies holds all handler dependencies for the router.
type Dependencies struct {
	RootHandler   http.HandlerFunc
	HealthHandler http.HandlerFunc

	CreateStatusHandler http.HandlerFunc
	ListStatusHandler   http.HandlerFunc

	GenerateLogoHandler          http.HandlerFunc
	GenerateVideoHandler         http.HandlerFunc
	GenerateBrandKitHandler      http.HandlerFunc
	GenerateSocialContentHandler http.HandlerFunc
	ChatAssistantHandler         http.HandlerFunc
	GenerateWebsiteHandler       http.HandlerFunc
	GenerateVoiceHandler         http.HandlerFunc
	EditPhotoHandler             http.HandlerFunc
	RemoveBackgroundHandler      http.HandlerFunc
	GenerateDomainHandler        http.HandlerFunc
	GenerateSloganHandler        http.HandlerFunc
	GenerateBusinessCardHandler  http.HandlerFunc

	GetJobHandler http.HandlerFunc
}

// NewRouter builds the Chi router with the middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Logger)
	r.Use(mw.Recovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", orNotImplemented(deps.RootHandler))
		r.Get("/health", orNotImplemented(deps.HealthHandler))

		r.Post("/status", orNotImplemented(deps.CreateStatusHandler))
		r.Get("/status", orNotImplemented(deps.ListStatusHandler))

		r.Post("/generate-logo", orNotImplemented(deps.GenerateLogoHandler))
		r.Post("/generate-video", orNotImplemented(deps.GenerateVideoHandler))
		r.Post("/generate-brand-kit", orNotImplemented(deps.GenerateBrandKitHandler))
		r.Post("/generate-social-content", orNotImplemented(deps.GenerateSocialContentHandler))
		r.Post("/chat-assistant", orNotImplemented(deps.ChatAssistantHandler))
		r.Post("/generate-website", orNotImplemented(deps.GenerateWebsiteHandler))
		r.Post("/generate-voice", orNotImplemented(deps.GenerateVoiceHandler))
		r.Post("/edit-photo", orNotImplemented(deps.EditPhotoHandler))
		r.Post("/remove-background", orNotImplemented(deps.RemoveBackgroundHandler))
		r.Post("/generate-domain", orNotImplemented(deps.GenerateDomainHandler))
		r.Post("/generate-slogan", orNotImplemented(deps.GenerateSloganHandler))
		r.Post("/generate-business-card", orNotImplemented(deps.GenerateBusinessCardHandler))

		r.Get("/jobs/{jobID}", orNotImplemented(deps.GetJobHandler))
	})

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented", nil)
	}
}
