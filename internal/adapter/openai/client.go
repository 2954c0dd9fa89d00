package openai

import (
	"context"
	"encoding/json"
	"net/http"

	openaiapi "github.com/sashabaranov/go-openai"

	"symptom-bot/internal/domain"
	"symptom-bot/internal/usecase/diagnosis"
)

type Client struct {
	api *openaiapi.Client
}

// NewClient builds a chat-completion client. An empty baseURL keeps the
// library default.
func NewClient(token, baseURL string) *Client {
	cfg := openaiapi.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &capturingDoer{next: httpDoer(cfg.HTTPClient)}

	return &Client{
		api: openaiapi.NewClientWithConfig(cfg),
	}
}

func (c *Client) Complete(ctx context.Context, req diagnosis.CompletionRequest) (diagnosis.Completion, error) {
	apiReq := openaiapi.ChatCompletionRequest{
		Model:    req.Model,
		Stream:   false,
		Messages: toAPIMessages(req.Messages),
	}

	ctx, body := withBodyCapture(ctx)
	resp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return diagnosis.Completion{}, err
	}

	raw := body.bytes()
	if len(raw) == 0 {
		raw, err = json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return diagnosis.Completion{}, err
		}
	}

	return diagnosis.Completion{
		ID:               resp.ID,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		Raw:              raw,
	}, nil
}

func toAPIMessages(msgs []domain.Message) []openaiapi.ChatCompletionMessage {
	res := make([]openaiapi.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, openaiapi.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return res
}

func httpDoer(d openaiapi.HTTPDoer) openaiapi.HTTPDoer {
	if d == nil {
		return http.DefaultClient
	}
	return d
}
