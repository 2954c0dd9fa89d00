package diagnosis

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"symptom-bot/internal/config"
	"symptom-bot/internal/domain"
)

type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

type CompletionRequest struct {
	Model    string
	Messages []domain.Message
}

// Completion carries the response body exactly as the API returned it.
// The remaining fields are only read for logging.
type Completion struct {
	ID               string
	Model            string
	PromptTokens     int
	CompletionTokens int
	Raw              []byte
}

type Service struct {
	client Client
	cfg    config.Config
}

func NewService(client Client, cfg config.Config) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
	}
}

func (s *Service) Ask(ctx context.Context, symptoms string) (Completion, error) {
	log.Debug().
		Str("model", s.cfg.Model).
		Int("input_bytes", len(symptoms)).
		Msg("requesting completion")

	resp, err := s.client.Complete(ctx, CompletionRequest{
		Model:    s.cfg.Model,
		Messages: s.Messages(symptoms),
	})
	if err != nil {
		return Completion{}, fmt.Errorf("chat completion: %w", err)
	}

	log.Info().
		Str("id", resp.ID).
		Str("model", resp.Model).
		Int("prompt_tokens", resp.PromptTokens).
		Int("completion_tokens", resp.CompletionTokens).
		Msg("completion received")

	return resp, nil
}

// Messages returns the system prompt followed by the symptoms, unmodified.
func (s *Service) Messages(symptoms string) []domain.Message {
	return []domain.Message{
		{Role: domain.RoleSystem, Content: domain.SystemPrompt},
		{Role: domain.RoleUser, Content: symptoms},
	}
}
