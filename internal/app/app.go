// Package app wires the connectivity check together with fx.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/metalagman/chatping/internal/chatapi"
	"github.com/metalagman/chatping/internal/check"
	"github.com/metalagman/chatping/internal/config"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module provides the check components for a supplied config.Config.
var Module = fx.Options(
	fx.Provide(
		newHTTPClient,
		fx.Annotate(newChatClient, fx.As(new(check.Completer))),
		check.NewChecker,
		check.NewReporter,
	),
)

func newHTTPClient() *http.Client {
	return &http.Client{}
}

func newChatClient(cfg config.Config, httpClient *http.Client) (*chatapi.Client, error) {
	client, err := chatapi.NewClient(cfg.ChatAPI(), httpClient)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("endpoint", client.Endpoint()).
		Str("model", client.Model()).
		Msg("checking chat-completion endpoint")
	return client, nil
}

// Run builds the dependency graph, runs the check once and writes the report to out.
// The returned error covers wiring and reporting only; check failures live in the Result.
func Run(ctx context.Context, cfg config.Config, out io.Writer, extra ...fx.Option) (check.Result, error) {
	var res check.Result
	opts := []fx.Option{
		fx.WithLogger(func() fxevent.Logger { return eventLogger{} }),
		fx.Supply(cfg),
		Module,
	}
	opts = append(opts, extra...)
	opts = append(opts, fx.Invoke(func(checker *check.Checker, reporter *check.Reporter) error {
		res = checker.Run(ctx)
		return reporter.Write(out, res)
	}))

	if err := fx.New(opts...).Err(); err != nil {
		return check.Result{}, fmt.Errorf("run check: %w", err)
	}
	return res, nil
}
