package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	DefaultModel     = "gpt-4o"
	DefaultMaxTokens = 1024
)

// Completer sends a prompt to a language model and returns the generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIConfig selects the OpenAI-compatible endpoint used by OpenAICompleter.
type OpenAIConfig struct {
	APIKey    string
	BaseURL   string // empty uses the library default
	Model     string
	MaxTokens int
}

// OpenAICompleter is a Completer backed by langchaingo's OpenAI client.
type OpenAICompleter struct {
	llm       llms.Model
	maxTokens int
	logger    logrus.FieldLogger
}

func NewOpenAICompleter(cfg OpenAIConfig, logger logrus.FieldLogger) (*OpenAICompleter, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &OpenAICompleter{
		llm:       llm,
		maxTokens: maxTokens,
		logger:    logger.WithField("model", model),
	}, nil
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.WithField("prompt_chars", len(prompt)).Debug("sending prompt to llm")

	completion, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithMaxTokens(c.maxTokens))
	if err != nil {
		return "", err
	}

	c.logger.WithField("completion_chars", len(completion)).Debug("received completion")
	return completion, nil
}
