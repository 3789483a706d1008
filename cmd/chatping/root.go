package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/metalagman/chatping/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultEnvFile = ".env"

// Execute runs the root command.
func Execute() error {
	cmd, err := newRootCmd()
	if err != nil {
		return err
	}
	return cmd.Execute()
}

func newRootCmd() (*cobra.Command, error) {
	var (
		cfgFile string
		envFile string
		debug   bool
	)
	cmd := &cobra.Command{
		Use:          "chatping",
		Short:        "chatping checks that a chat-completion endpoint answers",
		Long:         "chatping sends one fixed chat-completion request to an OpenAI-compatible endpoint and prints whether it succeeded.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(debug)
			return loadEnvFile(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (yaml or json)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file to load if present")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	if err := viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config")); err != nil {
		return nil, fmt.Errorf("bind config flag: %w", err)
	}
	if err := bindCheckFlags(cmd); err != nil {
		return nil, err
	}

	cmd.AddCommand(configCmd())
	cmd.AddCommand(versionCmd())
	return cmd, nil
}

// loadEnvFile loads dotenv values without overriding the environment.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
