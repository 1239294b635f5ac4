package generator

// Request types for every endpoint. JSON tags match the public API field
// names; validate tags declare the required-field schema enforced at the
// HTTP boundary. Optional fields get their documented defaults inside the
// Service methods, not here.

type LogoRequest struct {
	BrandName    string   `json:"brandName" validate:"required"`
	Keywords     []string `json:"keywords" validate:"required,min=1"`
	Industry     string   `json:"industry,omitempty"`
	ColorPalette []string `json:"colorPalette,omitempty"`
	Style        string   `json:"style,omitempty"`
}

type VideoRequest struct {
	Prompt          string `json:"prompt" validate:"required"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	Style           string `json:"style,omitempty"`
	Resolution      string `json:"resolution,omitempty"`
}

type BrandKitRequest struct {
	BrandName        string   `json:"brandName" validate:"required"`
	Industry         string   `json:"industry" validate:"required"`
	BrandPersonality []string `json:"brandPersonality,omitempty"`
	TargetAudience   string   `json:"targetAudience,omitempty"`
}

type SocialContentRequest struct {
	Platform    string `json:"platform" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Topic       string `json:"topic" validate:"required"`
	Tone        string `json:"tone,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context,omitempty"`
}

type WebsiteRequest struct {
	BusinessName string   `json:"businessName" validate:"required"`
	BusinessType string   `json:"businessType" validate:"required"`
	Pages        []string `json:"pages,omitempty"`
	ColorScheme  string   `json:"colorScheme,omitempty"`
}

type VoiceRequest struct {
	Text     string  `json:"text" validate:"required"`
	Voice    string  `json:"voice,omitempty"`
	Language string  `json:"language,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
}

type PhotoEditRequest struct {
	ImageURL  string  `json:"imageUrl" validate:"required"`
	EditType  string  `json:"editType" validate:"required"`
	Intensity float64 `json:"intensity,omitempty"`
}

type BackgroundRemovalRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}

type DomainRequest struct {
	Keywords   []string `json:"keywords" validate:"required,min=1"`
	Extensions []string `json:"extensions,omitempty"`
}

type SloganRequest struct {
	BrandName string `json:"brandName" validate:"required"`
	Industry  string `json:"industry" validate:"required"`
	// Tone is accepted for API compatibility but does not affect the
	// generated slogans.
	Tone string `json:"tone,omitempty"`
}

type BusinessCardRequest struct {
	Name    string `json:"name" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Company string `json:"company" validate:"required"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Style   string `json:"style,omitempty"`
}
