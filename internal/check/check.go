// Package check implements the chat-completion connectivity check.
package check

import (
	"context"

	"github.com/metalagman/chatping/internal/chatapi"
	"github.com/metalagman/chatping/internal/config"
	"github.com/rs/zerolog/log"
)

// Completer sends a chat-completion request.
type Completer interface {
	Complete(ctx context.Context, req chatapi.ChatRequest) (chatapi.ChatResponse, error)
}

// Checker runs the connectivity check. It holds no per-run state.
type Checker struct {
	client Completer
	model  string
	prompt string
}

// NewChecker constructs a checker for the configured model and prompt.
func NewChecker(client Completer, cfg config.Config) *Checker {
	prompt := cfg.Check.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}
	return &Checker{
		client: client,
		model:  cfg.API.Model,
		prompt: prompt,
	}
}

// Run sends the single check request and classifies the outcome.
// Every failure is reported through the returned Result.
func (c *Checker) Run(ctx context.Context) Result {
	resp, err := c.client.Complete(ctx, chatapi.NewChatRequest(c.model, c.prompt))
	res := classify(resp, err)
	log.Debug().Stringer("kind", res.Kind).Int("status", res.StatusCode).Msg("check finished")
	return res
}
