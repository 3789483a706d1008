package chatapi

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultEndpoint  = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel     = "llama3-8b-8192"
	defaultAPIKeyEnv = "GROQ_API_KEY"

	// RoleUser is the only role the check ever sends.
	RoleUser = "user"
)

var (
	// ErrNoChoices is returned when a 200 response carries no choices.
	ErrNoChoices = errors.New("response did not contain any choices")
	// ErrNoContent is returned when choices[0] has no message or no message content.
	ErrNoContent = errors.New("first choice did not contain message content")
)

// Config is chat-completion client configuration.
// A zero Timeout leaves the HTTP client without a deadline.
type Config struct {
	Endpoint  string
	Model     string
	APIKey    string
	APIKeyEnv string
	Timeout   time.Duration
}

// DefaultConfig returns the Groq defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:  defaultEndpoint,
		Model:     defaultModel,
		APIKeyEnv: defaultAPIKeyEnv,
	}
}

// Message is a single conversational message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the chat-completion request body.
type ChatRequest struct {
	Messages []Message `json:"messages"`
	Model    string    `json:"model"`
}

// NewChatRequest builds a request holding exactly one user message.
func NewChatRequest(model, prompt string) ChatRequest {
	return ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: prompt}},
		Model:    model,
	}
}

// ChoiceMessage is the message of a generated reply.
// Content is a pointer so a missing key can be told apart from an empty reply.
type ChoiceMessage struct {
	Content *string `json:"content"`
}

// Choice is one generated reply.
type Choice struct {
	Message *ChoiceMessage `json:"message"`
}

// NewChoice returns a choice carrying content.
func NewChoice(content string) Choice {
	return Choice{Message: &ChoiceMessage{Content: &content}}
}

// ChatResponse is the subset of the chat-completion response the check reads.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

// Content returns choices[0].message.content.
func (r ChatResponse) Content() (string, error) {
	if len(r.Choices) == 0 {
		return "", ErrNoChoices
	}
	msg := r.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return "", ErrNoContent
	}
	return *msg.Content, nil
}

// StatusError is returned for any non-200 response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}
