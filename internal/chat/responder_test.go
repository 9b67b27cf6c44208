package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"careerguide/internal/completion"
	"careerguide/internal/fallback"
)

// fakeClient records calls and returns a canned result.
type fakeClient struct {
	text  string
	err   error
	calls []completion.Request
}

func (f *fakeClient) Complete(_ context.Context, req completion.Request) (string, error) {
	f.calls = append(f.calls, req)
	return f.text, f.err
}

// countingResolver wraps a table and counts lookups.
type countingResolver struct {
	table    *fallback.Table
	messages []string
}

func (c *countingResolver) Match(message string) fallback.Entry {
	c.messages = append(c.messages, message)
	return c.table.Match(message)
}

func newResolver(t *testing.T) *countingResolver {
	t.Helper()
	table, err := fallback.BuiltIn(fallback.LocaleBase)
	if err != nil {
		t.Fatal(err)
	}
	return &countingResolver{table: table}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReplyEmptyInput(t *testing.T) {
	inputs := []string{"", "   ", "\t\n", " \r\n "}

	for _, input := range inputs {
		t.Run("", func(t *testing.T) {
			client := &fakeClient{text: "should not be used"}
			resolver := newResolver(t)
			r := NewResponder(client, resolver, quietLogger())

			reply := r.Reply(context.Background(), input)

			if reply.Text != EmptyInputPrompt || reply.Source != SourcePrompt {
				t.Errorf("Reply(%q) = %+v, want prompt", input, reply)
			}
			if len(client.calls) != 0 {
				t.Errorf("completion called %d times, want 0", len(client.calls))
			}
			if len(resolver.messages) != 0 {
				t.Errorf("resolver called %d times, want 0", len(resolver.messages))
			}
		})
	}
}

func TestReplyCompletionSuccess(t *testing.T) {
	client := &fakeClient{text: "  Consider organic farming cooperatives.\n"}
	resolver := newResolver(t)
	r := NewResponder(client, resolver, quietLogger())

	reply := r.Reply(context.Background(), "  What CAREER options exist? ")

	if reply.Text != "Consider organic farming cooperatives." {
		t.Errorf("Text = %q, want trimmed completion", reply.Text)
	}
	if reply.Source != SourceCompletion {
		t.Errorf("Source = %q, want completion", reply.Source)
	}
	if len(resolver.messages) != 0 {
		t.Error("resolver should not be consulted on success")
	}

	if len(client.calls) != 1 {
		t.Fatalf("completion called %d times, want 1", len(client.calls))
	}
	req := client.calls[0]
	if req.UserMessage != "what career options exist?" {
		t.Errorf("UserMessage = %q, want normalized message", req.UserMessage)
	}
	if req.SystemPrompt != SystemPrompt || req.MaxOutputTokens != 150 || req.Temperature != 0.7 {
		t.Errorf("unexpected request parameters: %+v", req)
	}
}

func TestReplyFallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"credential missing", &completion.Error{Reason: completion.ReasonCredentialMissing, Err: completion.ErrCredentialMissing}},
		{"timeout", &completion.Error{Reason: completion.ReasonTimeout, Err: context.DeadlineExceeded}},
		{"remote", &completion.Error{Reason: completion.ReasonRemote, Err: errors.New("500")}},
		{"untyped", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.err}
			resolver := newResolver(t)
			r := NewResponder(client, resolver, quietLogger())

			reply := r.Reply(context.Background(), "Agriculture jobs please")

			want := resolver.table.Resolve("agriculture jobs please")
			if reply.Text != want {
				t.Errorf("Text = %q, want %q", reply.Text, want)
			}
			if reply.Source != SourceFallback || reply.Keyword != "agriculture" {
				t.Errorf("reply = %+v, want fallback via agriculture", reply)
			}
			if len(resolver.messages) != 1 || resolver.messages[0] != "agriculture jobs please" {
				t.Errorf("resolver messages = %v, want the normalized message once", resolver.messages)
			}
			if len(client.calls) != 1 {
				t.Errorf("completion called %d times, want exactly 1 (no retries)", len(client.calls))
			}
		})
	}
}

func TestReplyEmptyCompletionFallsBack(t *testing.T) {
	client := &fakeClient{text: "   "}
	r := NewResponder(client, newResolver(t), quietLogger())

	reply := r.Reply(context.Background(), "xyzzy plugh")

	if reply.Source != SourceFallback || reply.Keyword != fallback.DefaultKeyword {
		t.Errorf("reply = %+v, want default fallback", reply)
	}
}

func TestReplyWithUnconfiguredClient(t *testing.T) {
	resolver := newResolver(t)
	r := NewResponder(completion.Unconfigured{}, resolver, nil)
	if r.CompletionConfigured() {
		t.Error("CompletionConfigured() = true, want false")
	}

	reply := r.Reply(context.Background(), "Hello")

	if reply.Text != resolver.table.Resolve("hello") {
		t.Errorf("Text = %q, want hello fallback", reply.Text)
	}
}

func TestReplyHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &ctxClient{}
	r := NewResponder(client, newResolver(t), quietLogger())
	reply := r.Reply(ctx, "training")

	if reply.Source != SourceFallback || reply.Keyword != "training" {
		t.Errorf("reply = %+v, want training fallback", reply)
	}
}

// ctxClient fails with the context error, like a real client would.
type ctxClient struct{}

func (ctxClient) Complete(ctx context.Context, _ completion.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &completion.Error{Reason: completion.ReasonNetwork, Err: err}
	}
	return "ok", nil
}
