// Package completion sends a prompt to a hosted language model.
package completion

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Sentinel errors.
var (
	ErrCredentialMissing = errors.New("no API credential configured")
	ErrEmptyCompletion   = errors.New("completion returned no text")
)

// Reason classifies why a completion failed.
type Reason string

// Failure reasons.
const (
	ReasonCredentialMissing Reason = "credential_missing"
	ReasonTimeout           Reason = "timeout"
	ReasonRemote            Reason = "remote"
	ReasonNetwork           Reason = "network"
	ReasonEmpty             Reason = "empty"
)

// Error is returned by every Client failure.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	return "completion " + string(e.Reason) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ReasonOf extracts the failure reason from err.
func ReasonOf(err error) Reason {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Reason
	}
	switch {
	case errors.Is(err, ErrCredentialMissing):
		return ReasonCredentialMissing
	case errors.Is(err, ErrEmptyCompletion):
		return ReasonEmpty
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	default:
		return ReasonNetwork
	}
}

// Request is a single-turn completion request.
type Request struct {
	SystemPrompt    string
	UserMessage     string
	MaxOutputTokens int
	Temperature     float64
}

// Client produces model text for a request. Implementations return the
// trimmed text, or an *Error.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Options configures New.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// New returns an OpenAI client, or an Unconfigured client when no API key is set.
func New(opts Options) Client {
	if opts.APIKey == "" {
		return Unconfigured{}
	}
	client, err := NewOpenAI(opts)
	if err != nil {
		return Unconfigured{}
	}
	return client
}

// Configured reports whether c can reach a model.
func Configured(c Client) bool {
	_, unconfigured := c.(Unconfigured)
	return !unconfigured
}

// Unconfigured fails every request with ErrCredentialMissing.
type Unconfigured struct{}

// Complete implements Client.
func (Unconfigured) Complete(context.Context, Request) (string, error) {
	return "", &Error{Reason: ReasonCredentialMissing, Err: ErrCredentialMissing}
}
