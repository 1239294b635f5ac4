package generator

import (
	"context"
	"strings"
	"testing"
)

func TestChat_LogoTrigger(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	res, err := svc.Chat(context.Background(), ChatRequest{Message: "I need a LOGO for my shop"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if !strings.Contains(res.Response, "stunning logo") {
		t.Errorf("expected the logo reply, got %q", res.Response)
	}
	if len(res.Suggestions) != 3 || res.Suggestions[0] != "Tell me about your brand personality" {
		t.Errorf("unexpected suggestions: %v", res.Suggestions)
	}
}

func TestChat_BrandTrigger(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	res, err := svc.Chat(context.Background(), ChatRequest{Message: "help me with my brand identity"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if !strings.Contains(res.Response, "brand identity") {
		t.Errorf("expected the brand reply, got %q", res.Response)
	}
}

func TestChat_VideoTrigger(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	res, err := svc.Chat(context.Background(), ChatRequest{Message: "can you make a video?"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if !strings.Contains(res.Response, "Video content") {
		t.Errorf("expected the video reply, got %q", res.Response)
	}
}

func TestChat_LogoWinsOverVideo(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	// Both triggers present; the earlier rule wins.
	res, err := svc.Chat(context.Background(), ChatRequest{Message: "a video about my logo"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if !strings.Contains(res.Response, "stunning logo") {
		t.Errorf("expected the logo reply to take precedence, got %q", res.Response)
	}
}

func TestChat_Fallback(t *testing.T) {
	svc := newTestService(&stubStore{}, newStubCache())

	res, err := svc.Chat(context.Background(), ChatRequest{Message: "what can you do?"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if !strings.Contains(res.Response, "creative design needs") {
		t.Errorf("expected the fallback reply, got %q", res.Response)
	}
	if len(res.Suggestions) != 4 || res.Suggestions[0] != "Generate a logo" {
		t.Errorf("unexpected fallback suggestions: %v", res.Suggestions)
	}
}
