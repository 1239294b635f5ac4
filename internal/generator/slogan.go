package generator

import (
	"context"
	"fmt"
	"strings"
)

// Slogan templates per industry. Templates containing %s interpolate the
// brand name; the rest are returned verbatim.
var sloganTemplates = map[string][]string{
	"technology": {
		"Innovate with %s",
		"The Future is %s",
		"Powered by %s",
		"Transform Tomorrow with %s",
		"Where Innovation Meets Excellence",
	},
	"creative": {
		"Unleash Creativity with %s",
		"Design Beyond Limits",
		"Create. Inspire. %s.",
		"Your Creative Partner",
		"Imagination Unleashed",
	},
	"business": {
		"Excellence Delivered by %s",
		"Your Success, Our Mission",
		"Building Better Business",
		"Solutions That Work",
		"Success Starts Here",
	},
}

var genericSlogans = []string{
	"Experience %s",
	"Quality You Can Trust",
	"Making a Difference",
	"Your Partner in Success",
	"Excellence Every Time",
}

// GenerateSlogans renders the five templates for the request's industry,
// falling back to the generic set for unknown industries. Tone is ignored.
func (s *Service) GenerateSlogans(ctx context.Context, req SloganRequest) ([]string, error) {
	if err := s.wait(ctx, 1); err != nil {
		return nil, err
	}

	templates, ok := sloganTemplates[strings.ToLower(req.Industry)]
	if !ok {
		templates = genericSlogans
	}

	slogans := make([]string, 0, len(templates))
	for _, tpl := range templates {
		if strings.Contains(tpl, "%s") {
			slogans = append(slogans, fmt.Sprintf(tpl, req.BrandName))
		} else {
			slogans = append(slogans, tpl)
		}
	}
	return slogans, nil
}
