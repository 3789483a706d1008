// Package config provides configuration loading and management for chatping.
package config

import (
	"time"

	"github.com/metalagman/chatping/internal/chatapi"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultPrompt is the fixed message sent by the check.
const DefaultPrompt = "Hello! Please respond with a short test message to confirm the API is working."

// Config is the root configuration.
type Config struct {
	API    APIConfig    `json:"api"    mapstructure:"api"    yaml:"api"`
	Check  CheckConfig  `json:"check"  mapstructure:"check"  yaml:"check"`
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`
}

// APIConfig describes the chat-completion endpoint.
type APIConfig struct {
	Endpoint  string        `json:"endpoint"          mapstructure:"endpoint"    yaml:"endpoint"`
	Model     string        `json:"model"             mapstructure:"model"       yaml:"model"`
	APIKey    string        `json:"api_key,omitempty" mapstructure:"api_key"     yaml:"api_key,omitempty"`
	APIKeyEnv string        `json:"api_key_env"       mapstructure:"api_key_env" yaml:"api_key_env"`
	Timeout   time.Duration `json:"timeout,omitempty" mapstructure:"timeout"     yaml:"timeout,omitempty"`
}

// CheckConfig describes the request the check sends.
type CheckConfig struct {
	Prompt string `json:"prompt" mapstructure:"prompt" yaml:"prompt"`
}

// OutputConfig controls how results are reported.
type OutputConfig struct {
	Format   string `json:"format"    mapstructure:"format"    yaml:"format"`
	Render   bool   `json:"render"    mapstructure:"render"    yaml:"render"`
	FailExit bool   `json:"fail_exit" mapstructure:"fail_exit" yaml:"fail_exit"`
}

// Default returns the built-in configuration.
func Default() Config {
	api := chatapi.DefaultConfig()
	return Config{
		API: APIConfig{
			Endpoint:  api.Endpoint,
			Model:     api.Model,
			APIKeyEnv: api.APIKeyEnv,
		},
		Check:  CheckConfig{Prompt: DefaultPrompt},
		Output: OutputConfig{Format: FormatText},
	}
}

// ChatAPI converts the API section into client configuration.
func (c Config) ChatAPI() chatapi.Config {
	return chatapi.Config{
		Endpoint:  c.API.Endpoint,
		Model:     c.API.Model,
		APIKey:    c.API.APIKey,
		APIKeyEnv: c.API.APIKeyEnv,
		Timeout:   c.API.Timeout,
	}
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.API.APIKey != "" {
		c.API.APIKey = "<redacted>"
	}
	return c
}
