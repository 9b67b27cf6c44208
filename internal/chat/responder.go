// Package chat turns a user message into a single reply: a live completion
// when the model answers, a canned fallback otherwise.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"careerguide/internal/completion"
	"careerguide/internal/fallback"
	"careerguide/internal/metrics"
	"careerguide/internal/validation"
)

// Fixed request parameters sent to the completion service.
const (
	SystemPrompt    = "You are a career guidance expert specializing in rural employment opportunities."
	MaxOutputTokens = 150
	Temperature     = 0.7
)

// EmptyInputPrompt is returned for blank messages.
const EmptyInputPrompt = "Please type a message so I can help you with career guidance."

// Source identifies which path produced a reply.
type Source string

const (
	SourceCompletion Source = "completion"
	SourceFallback   Source = "fallback"
	SourcePrompt     Source = "prompt"
)

// Reply is the outcome of one chat turn.
type Reply struct {
	Text    string
	Source  Source
	Keyword string // matched fallback keyword, set only for SourceFallback
}

// Resolver picks a canned reply for a normalized message.
type Resolver interface {
	Match(message string) fallback.Entry
}

// Responder orchestrates completion and fallback. It holds no per-request
// state and is safe for concurrent use.
type Responder struct {
	client   completion.Client
	resolver Resolver
	logger   *slog.Logger
}

// NewResponder creates a responder. A nil logger uses slog.Default().
func NewResponder(client completion.Client, resolver Resolver, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{client: client, resolver: resolver, logger: logger}
}

// CompletionConfigured reports whether replies can come from the model.
func (r *Responder) CompletionConfigured() bool {
	return completion.Configured(r.client)
}

// Reply answers message. It never fails: every path yields text.
func (r *Responder) Reply(ctx context.Context, message string) Reply {
	normalized := validation.NormalizeMessage(message)
	if normalized == "" {
		return r.record(Reply{Text: EmptyInputPrompt, Source: SourcePrompt})
	}

	text, err := r.client.Complete(ctx, completion.Request{
		SystemPrompt:    SystemPrompt,
		UserMessage:     normalized,
		MaxOutputTokens: MaxOutputTokens,
		Temperature:     Temperature,
	})
	text = strings.TrimSpace(text)
	if err == nil && text != "" {
		return r.record(Reply{Text: text, Source: SourceCompletion})
	}
	if err == nil {
		err = &completion.Error{Reason: completion.ReasonEmpty, Err: completion.ErrEmptyCompletion}
	}

	reason := completion.ReasonOf(err)
	metrics.RecordCompletionFailure(string(reason))
	if errors.Is(err, completion.ErrCredentialMissing) {
		r.logger.DebugContext(ctx, "completion unavailable, using fallback", "reason", reason)
	} else {
		r.logger.WarnContext(ctx, "completion failed, using fallback", "reason", reason, "error", err)
	}

	entry := r.resolver.Match(normalized)
	return r.record(Reply{Text: entry.Response, Source: SourceFallback, Keyword: entry.Keyword})
}

func (r *Responder) record(reply Reply) Reply {
	metrics.RecordReply(string(reply.Source))
	if reply.Source == SourceFallback {
		metrics.RecordFallbackKeyword(reply.Keyword)
	}
	return reply
}
