package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_UsesGroqEndpointAndFixedPrompt(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", cfg.API.Endpoint)
	assert.Equal(t, "llama3-8b-8192", cfg.API.Model)
	assert.Equal(t, "GROQ_API_KEY", cfg.API.APIKeyEnv)
	assert.Empty(t, cfg.API.APIKey)
	assert.Equal(t, DefaultPrompt, cfg.Check.Prompt)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.False(t, cfg.Output.FailExit)
}

func TestChatAPI_CopiesAPISection(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.API.APIKey = "secret"
	cfg.API.Timeout = 5 * time.Second

	api := cfg.ChatAPI()
	assert.Equal(t, cfg.API.Endpoint, api.Endpoint)
	assert.Equal(t, cfg.API.Model, api.Model)
	assert.Equal(t, "secret", api.APIKey)
	assert.Equal(t, 5*time.Second, api.Timeout)
}

func TestRedacted_HidesAPIKeyWithoutMutatingOriginal(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.API.APIKey = "secret"

	redacted := cfg.Redacted()
	assert.Equal(t, "<redacted>", redacted.API.APIKey)
	assert.Equal(t, "secret", cfg.API.APIKey)
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.API.Timeout = 30 * time.Second
	cfg.Output.Format = FormatYAML
	cfg.Output.FailExit = true
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Output.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config schema validation failed")
	assert.Contains(t, err.Error(), "output.format")
}

func TestValidate_RejectsNonHTTPEndpointAndEmptyModel(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.API.Endpoint = "ftp://example.com"
	cfg.API.Model = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.endpoint")
	assert.Contains(t, err.Error(), "api.model")
}

func TestValidate_RejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Check.Prompt = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check.prompt")
}

func TestValidate_RejectsNegativeTimeout(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.API.Timeout = -time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.timeout")
}
