package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"symptom-bot/internal/usecase/diagnosis"
)

const Prompt = "Enter your symptoms here: "

var ErrNoInput = errors.New("no symptoms entered")

type Asker interface {
	Ask(ctx context.Context, symptoms string) (diagnosis.Completion, error)
}

type Session struct {
	in  *bufio.Reader
	out io.Writer
	svc Asker
}

func NewSession(in io.Reader, out io.Writer, svc Asker) *Session {
	return &Session{
		in:  bufio.NewReader(in),
		out: out,
		svc: svc,
	}
}

// Run prompts once, forwards the line it reads and prints the raw response.
func (s *Session) Run(ctx context.Context) error {
	if _, err := io.WriteString(s.out, Prompt); err != nil {
		return err
	}

	symptoms, err := s.waitForLine(ctx)
	if err != nil {
		return err
	}

	resp, err := s.svc.Ask(ctx, symptoms)
	if err != nil {
		return err
	}

	return s.print(resp.Raw)
}

type lineResult struct {
	line string
	err  error
}

// waitForLine returns as soon as ctx is done. The reader goroutine stays
// blocked on stdin until the process exits.
func (s *Session) waitForLine(ctx context.Context) (string, error) {
	lines := make(chan lineResult, 1)
	go func() {
		line, err := s.readLine()
		lines <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-lines:
		return res.line, res.err
	}
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrNoInput
			}
			return line, nil
		}
		return "", fmt.Errorf("read symptoms: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (s *Session) print(raw []byte) error {
	if _, err := s.out.Write(raw); err != nil {
		return err
	}
	if len(raw) == 0 || raw[len(raw)-1] != '\n' {
		if _, err := io.WriteString(s.out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
