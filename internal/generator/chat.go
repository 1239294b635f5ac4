package generator

import (
	"context"
	"strings"
)

// ChatResult is the reply of the creative-guidance assistant.
type ChatResult struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

// chatRule maps a keyword trigger to a canned reply. Rules are ordered;
// the first trigger contained in the message wins.
type chatRule struct {
	trigger     string
	response    string
	suggestions []string
}

var chatRules = []chatRule{
	{
		trigger:  "logo",
		response: "I'd love to help you create a stunning logo! What's your brand name and what industry are you in? Also, do you have any color preferences or style ideas?",
		suggestions: []string{
			"Tell me about your brand personality",
			"What's your target audience?",
			"Do you have competitor logos you like?",
		},
	},
	{
		trigger:  "brand",
		response: "Building a strong brand identity is exciting! Let's start with your brand's core values and mission. What makes your business unique?",
		suggestions: []string{
			"Define your brand personality",
			"Identify your target market",
			"Choose your brand colors",
		},
	},
	{
		trigger:  "video",
		response: "Video content is incredibly powerful for engagement! What type of video are you looking to create? Is it for marketing, education, or entertainment?",
		suggestions: []string{
			"Describe your video concept",
			"What's your target duration?",
			"What style appeals to you?",
		},
	},
}

var chatFallback = chatRule{
	response: "I'm here to help with all your creative design needs! Whether it's logos, videos, social media content, or complete brand kits, I can guide you through the process. What would you like to create today?",
	suggestions: []string{
		"Generate a logo",
		"Create video content",
		"Design social media posts",
		"Build a brand kit",
	},
}

// Chat runs the stateless rule engine over one message. Conversation
// context is accepted but no memory is kept across calls.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if err := s.wait(ctx, 1); err != nil {
		return nil, err
	}

	msg := strings.ToLower(req.Message)
	rule := chatFallback
	for _, r := range chatRules {
		if strings.Contains(msg, r.trigger) {
			rule = r
			break
		}
	}

	return &ChatResult{
		Response:    rule.response,
		Suggestions: rule.suggestions,
	}, nil
}
