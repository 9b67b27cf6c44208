// Package fallback resolves canned replies from an ordered keyword table when
// the completion service cannot answer.
package fallback

import (
	"fmt"
	"strings"

	"careerguide/internal/validation"
)

// DefaultKeyword names the entry returned when no keyword matches.
const DefaultKeyword = "default"

// Entry is one keyword → response pair.
type Entry struct {
	Keyword  string
	Response string
}

// Table is an immutable, ordered keyword response table.
// It is safe for concurrent use.
type Table struct {
	entries []Entry // keyword entries in precedence order, default excluded
	def     Entry
}

// NewTable validates entries and builds a table. Keywords are normalized to
// lower case. The default entry must be present and last; duplicates are rejected.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrMissingDefault
	}

	seen := make(map[string]struct{}, len(entries))
	normalized := make([]Entry, 0, len(entries))
	for i, e := range entries {
		keyword := validation.NormalizeKeyword(e.Keyword)
		if !validation.ValidateKeyword(keyword) {
			return nil, fmt.Errorf("%w: entry %d %q", ErrInvalidKeyword, i, e.Keyword)
		}
		if _, dup := seen[keyword]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKeyword, keyword)
		}
		if strings.TrimSpace(e.Response) == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyResponse, keyword)
		}
		if keyword == DefaultKeyword && i != len(entries)-1 {
			return nil, ErrDefaultNotLast
		}
		seen[keyword] = struct{}{}
		normalized = append(normalized, Entry{Keyword: keyword, Response: e.Response})
	}

	last := normalized[len(normalized)-1]
	if last.Keyword != DefaultKeyword {
		return nil, ErrMissingDefault
	}

	return &Table{
		entries: normalized[:len(normalized)-1],
		def:     last,
	}, nil
}

// Match returns the first entry whose keyword is a substring of message,
// or the default entry when nothing matches.
func (t *Table) Match(message string) Entry {
	message = strings.ToLower(message)
	for _, e := range t.entries {
		if strings.Contains(message, e.Keyword) {
			return e
		}
	}
	return t.def
}

// Resolve returns the fallback response for message.
func (t *Table) Resolve(message string) string {
	return t.Match(message).Response
}

// Default returns the default response.
func (t *Table) Default() string {
	return t.def.Response
}

// Len returns the number of entries including the default.
func (t *Table) Len() int {
	return len(t.entries) + 1
}
