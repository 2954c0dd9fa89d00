package openai

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	openaiapi "github.com/sashabaranov/go-openai"
)

type captureKey struct{}

type bodyCapture struct {
	mu   sync.Mutex
	data []byte
}

func (b *bodyCapture) set(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = data
}

func (b *bodyCapture) bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

func withBodyCapture(ctx context.Context) (context.Context, *bodyCapture) {
	capture := &bodyCapture{}
	return context.WithValue(ctx, captureKey{}, capture), capture
}

// capturingDoer keeps a copy of the response body for requests whose context
// carries a bodyCapture, then hands the library an identical body to decode.
type capturingDoer struct {
	next openaiapi.HTTPDoer
}

func (d *capturingDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.next.Do(req)
	if err != nil || resp == nil || resp.Body == nil {
		return resp, err
	}

	capture, ok := req.Context().Value(captureKey{}).(*bodyCapture)
	if !ok {
		return resp, nil
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	capture.set(data)
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp, nil
}
