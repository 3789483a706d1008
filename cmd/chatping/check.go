package main

import (
	"errors"

	"github.com/metalagman/chatping/internal/app"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("connectivity check failed")

func runCheck(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := app.Run(cmd.Context(), cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if !res.OK() && cfg.Output.FailExit {
		return errCheckFailed
	}
	return nil
}
