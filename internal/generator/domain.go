package generator

import (
	"context"
	"fmt"
	"strings"
)

const maxDomainSuggestions = 10

var defaultExtensions = []string{".com", ".io", ".ai"}

// DomainSuggestion is one candidate domain. Availability and price are
// random per call; callers must not expect stable values.
type DomainSuggestion struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Price     string `json:"price"`
}

// SuggestDomains builds six base-name candidates from the keywords, crosses
// them with the requested extensions (candidate-major order) and returns
// the first ten.
func (s *Service) SuggestDomains(ctx context.Context, req DomainRequest) ([]DomainSuggestion, error) {
	if err := s.wait(ctx, 1); err != nil {
		return nil, err
	}

	extensions := req.Extensions
	if len(extensions) == 0 {
		extensions = defaultExtensions
	}

	first := req.Keywords[0]
	firstTwo := req.Keywords
	if len(firstTwo) > 2 {
		firstTwo = firstTwo[:2]
	}

	candidates := []string{
		strings.Join(req.Keywords, ""),
		strings.Join(firstTwo, ""),
		first + "hub",
		first + "pro",
		"get" + first,
		first + "ly",
	}

	var suggestions []DomainSuggestion
	for _, candidate := range candidates {
		for _, ext := range extensions {
			suggestions = append(suggestions, DomainSuggestion{
				Domain:    strings.ToLower(candidate) + ext,
				Available: s.rand.Bool(),
				Price:     fmt.Sprintf("$%d.99/year", s.rand.IntBetween(10, 50)),
			})
		}
	}

	if len(suggestions) > maxDomainSuggestions {
		suggestions = suggestions[:maxDomainSuggestions]
	}
	return suggestions, nil
}
