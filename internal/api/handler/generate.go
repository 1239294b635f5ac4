package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lotayaai/lotaya-io/internal/api/response"
	"github.com/lotayaai/lotaya-io/internal/generator"
)

// generationResponse is the public envelope every asset endpoint returns.
type generationResponse struct {
	JobID    string         `json:"jobId"`
	Status   string         `json:"status"`
	Message  string         `json:"message"`
	AssetURL string         `json:"assetUrl,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// newGenerationHandler wraps one synthesizer operation in the shared
// decode → validate → generate → respond flow. label prefixes the message
// of the generic server error.
func newGenerationHandler[R any](label string, generate func(context.Context, R) (*generator.Result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decode[R](w, r)
		if !ok {
			return
		}

		res, err := generate(r.Context(), req)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				fmt.Sprintf("%s: %s", label, err), nil)
			return
		}

		response.JSON(w, generationResponse{
			JobID:    res.JobID,
			Status:   res.Status,
			Message:  res.Message,
			AssetURL: res.AssetURL,
			Metadata: res.Metadata,
		})
	}
}

type LogoGenerator interface {
	GenerateLogo(ctx context.Context, req generator.LogoRequest) (*generator.Result, error)
}

// NewGenerateLogoHandler returns the handler for POST /api/generate-logo.
func NewGenerateLogoHandler(svc LogoGenerator) http.HandlerFunc {
	return newGenerationHandler("Logo generation failed", svc.GenerateLogo)
}

type VideoGenerator interface {
	GenerateVideo(ctx context.Context, req generator.VideoRequest) (*generator.Result, error)
}

func NewGenerateVideoHandler(svc VideoGenerator) http.HandlerFunc {
	return newGenerationHandler("Video generation failed", svc.GenerateVideo)
}

type BrandKitGenerator interface {
	GenerateBrandKit(ctx context.Context, req generator.BrandKitRequest) (*generator.Result, error)
}

func NewGenerateBrandKitHandler(svc BrandKitGenerator) http.HandlerFunc {
	return newGenerationHandler("Brand kit generation failed", svc.GenerateBrandKit)
}

type SocialContentGenerator interface {
	GenerateSocialContent(ctx context.Context, req generator.SocialContentRequest) (*generator.Result, error)
}

func NewGenerateSocialContentHandler(svc SocialContentGenerator) http.HandlerFunc {
	return newGenerationHandler("Social content generation failed", svc.GenerateSocialContent)
}

type WebsiteGenerator interface {
	GenerateWebsite(ctx context.Context, req generator.WebsiteRequest) (*generator.Result, error)
}

func NewGenerateWebsiteHandler(svc WebsiteGenerator) http.HandlerFunc {
	return newGenerationHandler("Website generation failed", svc.GenerateWebsite)
}

type VoiceGenerator interface {
	GenerateVoice(ctx context.Context, req generator.VoiceRequest) (*generator.Result, error)
}

func NewGenerateVoiceHandler(svc VoiceGenerator) http.HandlerFunc {
	return newGenerationHandler("Voice generation failed", svc.GenerateVoice)
}

type PhotoEditor interface {
	EditPhoto(ctx context.Context, req generator.PhotoEditRequest) (*generator.Result, error)
}

func NewEditPhotoHandler(svc PhotoEditor) http.HandlerFunc {
	return newGenerationHandler("Photo editing failed", svc.EditPhoto)
}

type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, req generator.BackgroundRemovalRequest) (*generator.Result, error)
}

func NewRemoveBackgroundHandler(svc BackgroundRemover) http.HandlerFunc {
	return newGenerationHandler("Background removal failed", svc.RemoveBackground)
}

type BusinessCardGenerator interface {
	GenerateBusinessCard(ctx context.Context, req generator.BusinessCardRequest) (*generator.Result, error)
}

func NewGenerateBusinessCardHandler(svc BusinessCardGenerator) http.HandlerFunc {
	return newGenerationHandler("Business card generation failed", svc.GenerateBusinessCard)
}
