package fallback

import (
	"fmt"
	"strings"

	"careerguide/internal/config"
	"careerguide/internal/validation"
)

// Merge applies overlay on top of base. Overlay entries whose keyword exists in
// base replace that response in place, keeping base precedence. New keywords
// are inserted after the base keywords and before the default entry.
func Merge(base, overlay []Entry) []Entry {
	out := make([]Entry, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, e := range out {
		index[validation.NormalizeKeyword(e.Keyword)] = i
	}

	var extra []Entry
	for _, e := range overlay {
		if i, ok := index[validation.NormalizeKeyword(e.Keyword)]; ok {
			out[i].Response = e.Response
			continue
		}
		extra = append(extra, e)
	}
	if len(extra) == 0 {
		return out
	}

	at := len(out)
	if at > 0 && validation.NormalizeKeyword(out[at-1].Keyword) == DefaultKeyword {
		at--
	}
	merged := make([]Entry, 0, len(out)+len(extra))
	merged = append(merged, out[:at]...)
	merged = append(merged, extra...)
	return append(merged, out[at:]...)
}

// BuiltIn builds the built-in table for a locale.
func BuiltIn(locale string) (*Table, error) {
	locale = strings.ToLower(locale)
	if locale == "" || locale == LocaleBase {
		return NewTable(baseResponses)
	}
	overlay, ok := overlays[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return NewTable(Merge(baseResponses, overlay))
}

// FromConfig builds the table for a locale, using the responses file when one
// was loaded and the built-in tables otherwise. A file with no base section
// overlays the built-in base table.
func FromConfig(locale string, rc *config.ResponsesConfig) (*Table, error) {
	if rc == nil {
		return BuiltIn(locale)
	}

	base := baseResponses
	if len(rc.Base) > 0 {
		base = toEntries(rc.Base)
	}

	locale = strings.ToLower(locale)
	if locale == "" || locale == LocaleBase {
		return NewTable(base)
	}

	if overlay, ok := rc.Overlay(locale); ok {
		return NewTable(Merge(base, toEntries(overlay)))
	}
	if overlay, ok := overlays[locale]; ok {
		return NewTable(Merge(base, overlay))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

func toEntries(in []config.ResponseEntry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = Entry{Keyword: e.Keyword, Response: e.Response}
	}
	return out
}
