package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"symptom-bot/internal/adapter/console"
	"symptom-bot/internal/adapter/openai"
	"symptom-bot/internal/config"
	"symptom-bot/internal/observability"
	"symptom-bot/internal/usecase/diagnosis"
)

// newRootCmd builds the single command. It reads one symptom description
// from stdin and prints the chat-completion response object to stdout.
func newRootCmd(envFile string) *cobra.Command {
	return &cobra.Command{
		Use:           "symptombot",
		Short:         "Ask a symptom guidance assistant about your symptoms",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), envFile, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func run(ctx context.Context, envFile string, stdin io.Reader, stdout, stderr io.Writer) error {
	observability.InitLogger(stderr, config.DefaultLogLevel, config.DefaultLogFormat)

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	observability.InitLogger(stderr, cfg.LogLevel, cfg.LogFormat)

	client := openai.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL)
	svc := diagnosis.NewService(client, cfg)

	return console.NewSession(stdin, stdout, svc).Run(ctx)
}
