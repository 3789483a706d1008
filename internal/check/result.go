package check

import (
	"errors"

	"github.com/metalagman/chatping/internal/chatapi"
)

// Kind classifies the outcome of a check.
type Kind int

const (
	// KindSuccess means status 200 with a readable reply.
	KindSuccess Kind = iota
	// KindHTTPFailure means the endpoint answered with a non-200 status.
	KindHTTPFailure
	// KindError covers transport failures and unreadable 200 responses.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindHTTPFailure:
		return "http_failure"
	default:
		return "error"
	}
}

// Result is the outcome of one check.
type Result struct {
	Kind       Kind
	Content    string
	StatusCode int
	Body       string
	Err        error
}

// OK reports whether the check succeeded.
func (r Result) OK() bool {
	return r.Kind == KindSuccess
}

func classify(resp chatapi.ChatResponse, err error) Result {
	if err != nil {
		var statusErr *chatapi.StatusError
		if errors.As(err, &statusErr) {
			return Result{
				Kind:       KindHTTPFailure,
				StatusCode: statusErr.StatusCode,
				Body:       statusErr.Body,
			}
		}
		return Result{Kind: KindError, Err: err}
	}
	content, err := resp.Content()
	if err != nil {
		return Result{Kind: KindError, Err: err}
	}
	return Result{Kind: KindSuccess, StatusCode: 200, Content: content}
}
