// Package ai implements the optional changelog summarizer, backed by an
// openai-compatible chat completions endpoint. It sends exactly one
// request per run: no retries, no streaming.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/vclog/vclog/commit"
	"github.com/vclog/vclog/config"
)

// Error wraps any configuration, transport or response failure from the
// summarizer endpoint. It is the one recoverable error in the program:
// callers fall back to plain rendering.
type Error struct {
	Err error
}

func (e Error) Error() string { return fmt.Sprintf("ai: %v", e.Err) }
func (e Error) Unwrap() error { return e.Err }

var (
	errNotConfigured = errors.New("endpoint not configured (run vclog --config)")
	errEmptyResponse = errors.New("endpoint returned no choices")
)

const requestTimeout = 60 * time.Second

// Client is a thin wrapper over a chat completions API.
type Client struct {
	cfg    config.Config
	client openai.Client
}

func New(cfg config.Config) (*Client, error) {
	if !cfg.AIConfigured() {
		return nil, Error{Err: errNotConfigured}
	}
	return &Client{
		cfg: cfg,
		client: openai.NewClient(
			option.WithAPIKey(strings.TrimSpace(cfg.Key)),
			option.WithBaseURL(BaseURL(cfg.URL)),
			option.WithRequestTimeout(requestTimeout),
			// a failed request falls back to plain rendering, never retries
			option.WithMaxRetries(0),
		),
	}, nil
}

// BaseURL converts the configured endpoint to the client's base URL. The
// config file keeps the full chat completions path for compatibility with
// existing config files; the client library appends the path itself.
func BaseURL(u string) string {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	return strings.TrimSuffix(u, "/chat/completions")
}

// Summarize sends one chat completion request over the commit subjects in
// the range and returns the rewritten changelog text.
func (c *Client) Summarize(ctx context.Context, pair *commit.VersionPair, subjects []string) (string, error) {
	model := c.cfg.Model
	if model == "" {
		model = config.DefaultModel
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(c.cfg.Lang, pair, subjects)),
		},
	})
	if err != nil {
		return "", Error{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", Error{Err: errEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}
