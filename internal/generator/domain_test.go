package generator

import (
	"context"
	"regexp"
	"strings"
	"testing"
)

var priceRe = regexp.MustCompile(`^\$\d{2}\.99/year$`)

func TestSuggestDomains_DefaultExtensions(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	suggestions, err := svc.SuggestDomains(context.Background(), DomainRequest{
		Keywords: []string{"Swift", "Cloud"},
	})
	if err != nil {
		t.Fatalf("SuggestDomains: %v", err)
	}

	if len(suggestions) != 10 {
		t.Fatalf("expected 10 suggestions, got %d", len(suggestions))
	}

	// Candidate-major order: all extensions of a base before the next base.
	want := []string{
		"swiftcloud.com", "swiftcloud.io", "swiftcloud.ai",
		"swiftcloud.com", "swiftcloud.io", "swiftcloud.ai",
		"swifthub.com", "swifthub.io", "swifthub.ai",
		"swiftpro.com",
	}
	for i, s := range suggestions {
		if s.Domain != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], s.Domain)
		}
		if !priceRe.MatchString(s.Price) {
			t.Errorf("price %q does not match expected pattern", s.Price)
		}
	}
}

func TestSuggestDomains_Lowercased(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	suggestions, err := svc.SuggestDomains(context.Background(), DomainRequest{
		Keywords: []string{"ACME"},
	})
	if err != nil {
		t.Fatalf("SuggestDomains: %v", err)
	}
	for _, s := range suggestions {
		if s.Domain != strings.ToLower(s.Domain) {
			t.Errorf("domain %q is not lowercase", s.Domain)
		}
	}
}

func TestSuggestDomains_CustomExtensions(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	suggestions, err := svc.SuggestDomains(context.Background(), DomainRequest{
		Keywords:   []string{"acme"},
		Extensions: []string{".dev"},
	})
	if err != nil {
		t.Fatalf("SuggestDomains: %v", err)
	}

	// Six candidates with one extension each.
	if len(suggestions) != 6 {
		t.Fatalf("expected 6 suggestions, got %d", len(suggestions))
	}
	for _, s := range suggestions {
		if !strings.HasSuffix(s.Domain, ".dev") {
			t.Errorf("domain %q missing requested extension", s.Domain)
		}
	}
	if suggestions[2].Domain != "acmehub.dev" {
		t.Errorf("unexpected candidate order: %v", suggestions)
	}
}

func TestSuggestDomains_ManyKeywordsTruncatedToTwo(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	suggestions, err := svc.SuggestDomains(context.Background(), DomainRequest{
		Keywords:   []string{"red", "blue", "green"},
		Extensions: []string{".com"},
	})
	if err != nil {
		t.Fatalf("SuggestDomains: %v", err)
	}

	if suggestions[0].Domain != "redbluegreen.com" {
		t.Errorf("first candidate joins all keywords, got %q", suggestions[0].Domain)
	}
	if suggestions[1].Domain != "redblue.com" {
		t.Errorf("second candidate joins first two keywords, got %q", suggestions[1].Domain)
	}
	if suggestions[4].Domain != "getred.com" {
		t.Errorf("expected get-prefixed candidate, got %q", suggestions[4].Domain)
	}
	if suggestions[5].Domain != "redly.com" {
		t.Errorf("expected ly-suffixed candidate, got %q", suggestions[5].Domain)
	}
}
