package diagnosis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptom-bot/internal/config"
	"symptom-bot/internal/domain"
)

type stubClient struct {
	calls []CompletionRequest
	resp  Completion
	err   error
}

func (c *stubClient) Complete(_ context.Context, req CompletionRequest) (Completion, error) {
	c.calls = append(c.calls, req)
	return c.resp, c.err
}

func TestAsk_SendsSystemThenUserVerbatim(t *testing.T) {
	client := &stubClient{resp: Completion{ID: "chatcmpl-1", Raw: []byte(`{"id":"chatcmpl-1"}`)}}
	svc := NewService(client, config.Config{Model: "gpt-3.5-turbo"})

	inputs := []string{
		"headache and fever",
		"  leading and trailing spaces  ",
		"quotes \" and \\ backslashes",
		"unicode: головная боль, 頭痛",
		"",
	}
	for _, in := range inputs {
		_, err := svc.Ask(context.Background(), in)
		require.NoError(t, err)
	}

	require.Len(t, client.calls, len(inputs))
	for i, req := range client.calls {
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, domain.Message{Role: domain.RoleSystem, Content: domain.SystemPrompt}, req.Messages[0])
		assert.Equal(t, domain.RoleUser, req.Messages[1].Role)
		assert.Equal(t, inputs[i], req.Messages[1].Content)
	}
}

func TestAsk_SystemPromptIsConstant(t *testing.T) {
	svc := NewService(&stubClient{}, config.Config{})

	first := svc.Messages("cough")
	second := svc.Messages("rash")

	assert.Equal(t, first[0], second[0])
	assert.Contains(t, first[0].Content, "Symptom and Diagnosis Guidance bot")
}

func TestAsk_ReturnsCompletionUnchanged(t *testing.T) {
	want := Completion{
		ID:               "chatcmpl-2",
		Model:            "gpt-3.5-turbo-0125",
		PromptTokens:     70,
		CompletionTokens: 120,
		Raw:              []byte("{\n  \"id\": \"chatcmpl-2\"\n}\n"),
	}
	svc := NewService(&stubClient{resp: want}, config.Config{Model: "gpt-3.5-turbo"})

	got, err := svc.Ask(context.Background(), "sore throat")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAsk_WrapsClientError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(&stubClient{err: boom}, config.Config{Model: "gpt-3.5-turbo"})

	_, err := svc.Ask(context.Background(), "dizziness")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
