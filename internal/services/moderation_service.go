package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"resume/internal/models/db_models"
	"resume/pkg/config"
)

// ModerationService screens new feedback and picks its initial status.
type ModerationService interface {
	Screen(ctx context.Context, content string) (db_models.FeedbackStatus, error)
}

// NewModerationService returns the screener named by cfg.Provider. The
// "none" provider publishes everything.
func NewModerationService(ctx context.Context, cfg config.ModerationConfig) (ModerationService, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "none":
		return publishAll{}, nil
	case "openai":
		return NewOpenAIModerator(openai.NewClient(cfg.OpenAIAPIKey), cfg.OpenAIModel), nil
	case "gemini":
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return &geminiModerator{client: client, model: cfg.GeminiModel}, nil
	default:
		return nil, fmt.Errorf("unsupported moderation provider %q", cfg.Provider)
	}
}

type publishAll struct{}

func (publishAll) Screen(context.Context, string) (db_models.FeedbackStatus, error) {
	return db_models.StatusPublished, nil
}

// OpenAIModerations is the part of the OpenAI client the screener uses.
type OpenAIModerations interface {
	Moderations(ctx context.Context, request openai.ModerationRequest) (openai.ModerationResponse, error)
}

type openAIModerator struct {
	client OpenAIModerations
	model  string
}

func NewOpenAIModerator(client OpenAIModerations, model string) ModerationService {
	return &openAIModerator{client: client, model: model}
}

func (m *openAIModerator) Screen(ctx context.Context, content string) (db_models.FeedbackStatus, error) {
	resp, err := m.client.Moderations(ctx, openai.ModerationRequest{
		Input: content,
		Model: m.model,
	})
	if err != nil {
		return "", fmt.Errorf("openai moderation: %w", err)
	}
	for _, r := range resp.Results {
		if r.Flagged {
			return db_models.StatusPending, nil
		}
	}
	return db_models.StatusPublished, nil
}

type geminiModerator struct {
	client *genai.Client
	model  string
}

type geminiVerdict struct {
	Flagged bool   `json:"flagged"`
	Reason  string `json:"reason"`
}

const geminiModerationPrompt = `You review comments left on a personal resume website.
Flag the comment if it contains spam, advertising, harassment, hate, sexual content or personal data of third parties.
Return JSON only: {"flagged": true|false, "reason": "short reason"}.

Comment:
%s`

func (m *geminiModerator) Screen(ctx context.Context, content string) (db_models.FeedbackStatus, error) {
	model := m.client.GenerativeModel(m.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(geminiModerationPrompt, content)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return parseGeminiVerdict(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}

func parseGeminiVerdict(raw string) (db_models.FeedbackStatus, error) {
	var v geminiVerdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err != nil {
		return "", fmt.Errorf("gemini: bad verdict %q: %w", raw, err)
	}
	if v.Flagged {
		return db_models.StatusPending, nil
	}
	return db_models.StatusPublished, nil
}

func (m *geminiModerator) Close() error {
	return m.client.Close()
}
