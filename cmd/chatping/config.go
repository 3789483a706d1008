package main

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/metalagman/chatping/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "CHATPING"

// flagKeys maps check flags to config keys.
var flagKeys = map[string]string{
	"endpoint":    "api.endpoint",
	"model":       "api.model",
	"api-key-env": "api.api_key_env",
	"timeout":     "api.timeout",
	"prompt":      "check.prompt",
	"output":      "output.format",
	"render":      "output.render",
	"fail-exit":   "output.fail_exit",
}

func bindCheckFlags(cmd *cobra.Command) error {
	def := config.Default()
	flags := cmd.PersistentFlags()
	flags.String("endpoint", def.API.Endpoint, "chat-completion endpoint URL")
	flags.String("model", def.API.Model, "model identifier")
	flags.String("api-key-env", def.API.APIKeyEnv, "environment variable holding the API key")
	flags.Duration("timeout", def.API.Timeout, "request timeout (0 uses the HTTP client default)")
	flags.String("prompt", def.Check.Prompt, "message sent to the endpoint")
	flags.StringP("output", "o", def.Output.Format, "output format: text, json or yaml")
	flags.Bool("render", def.Output.Render, "render the reply as markdown")
	flags.Bool("fail-exit", def.Output.FailExit, "exit non-zero when the check fails")

	return bindFlagKeys(flags, flagKeys)
}

func bindFlagKeys(flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind %s flag: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := config.Default()
	v.SetDefault("api.endpoint", def.API.Endpoint)
	v.SetDefault("api.model", def.API.Model)
	v.SetDefault("api.api_key", "")
	v.SetDefault("api.api_key_env", def.API.APIKeyEnv)
	v.SetDefault("api.timeout", def.API.Timeout.String())
	v.SetDefault("check.prompt", def.Check.Prompt)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.render", def.Output.Render)
	v.SetDefault("output.fail_exit", def.Output.FailExit)
}

// loadConfig resolves flags, CHATPING_* env vars, the optional config file and defaults.
func loadConfig() (config.Config, error) {
	v := viper.GetViper()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetTypeByDefaultValue(true)

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg config.Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return config.Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect chatping configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration with secrets redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg.Redacted()); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	})
	return cmd
}
