package completion

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewWithoutKeyIsUnconfigured(t *testing.T) {
	client := New(Options{})
	if Configured(client) {
		t.Fatal("expected unconfigured client")
	}

	_, err := client.Complete(context.Background(), Request{UserMessage: "hello"})
	if !errors.Is(err, ErrCredentialMissing) {
		t.Errorf("error = %v, want ErrCredentialMissing", err)
	}
	if ReasonOf(err) != ReasonCredentialMissing {
		t.Errorf("ReasonOf = %q", ReasonOf(err))
	}
}

func TestNewWithKeyIsConfigured(t *testing.T) {
	client := New(Options{APIKey: "sk-test"})
	if !Configured(client) {
		t.Fatal("expected configured client")
	}
	if _, ok := client.(*OpenAI); !ok {
		t.Errorf("client = %T, want *OpenAI", client)
	}
}

func TestReasonOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Reason
	}{
		{"typed", &Error{Reason: ReasonRemote, Err: errors.New("x")}, ReasonRemote},
		{"wrapped typed", fmt.Errorf("call: %w", &Error{Reason: ReasonTimeout, Err: context.DeadlineExceeded}), ReasonTimeout},
		{"credential sentinel", ErrCredentialMissing, ReasonCredentialMissing},
		{"empty sentinel", ErrEmptyCompletion, ReasonEmpty},
		{"deadline", context.DeadlineExceeded, ReasonTimeout},
		{"other", errors.New("connection reset"), ReasonNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReasonOf(tt.err); got != tt.want {
				t.Errorf("ReasonOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Reason: ReasonRemote, Err: errors.New("boom")}
	if err.Error() != "completion remote: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}
