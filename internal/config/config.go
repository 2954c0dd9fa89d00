package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("openai api key is required")

const (
	DefaultModel     = "gpt-3.5-turbo"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

type Config struct {
	OpenAIKey     string
	OpenAIBaseURL string
	Model         string
	LogLevel      string
	LogFormat     string
}

// Load reads the dotenv file at path into the process environment without
// overriding variables that are already set, then resolves the config keys.
// A missing file is logged at debug level and is not an error.
func Load(path string) (Config, error) {
	if err := loadDotEnv(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not read env file")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("OPENAI_MODEL", DefaultModel)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("LOG_FORMAT", DefaultLogFormat)

	cfg := Config{
		OpenAIKey:     v.GetString("OPENAI_API_KEY"),
		OpenAIBaseURL: strings.TrimSpace(v.GetString("OPENAI_BASE_URL")),
		Model:         nonEmpty(v.GetString("OPENAI_MODEL"), DefaultModel),
		LogLevel:      strings.ToLower(nonEmpty(v.GetString("LOG_LEVEL"), DefaultLogLevel)),
		LogFormat:     strings.ToLower(nonEmpty(v.GetString("LOG_FORMAT"), DefaultLogFormat)),
	}

	if cfg.OpenAIKey == "" {
		return cfg, ErrMissingAPIKey
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("env file not found, using process environment")
		return nil
	}
	return err
}

func nonEmpty(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
