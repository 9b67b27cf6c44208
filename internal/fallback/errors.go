package fallback

import "errors"

// Table construction errors.
var (
	ErrMissingDefault   = errors.New("fallback table has no default entry")
	ErrDefaultNotLast   = errors.New("default entry must be the last entry")
	ErrDuplicateKeyword = errors.New("duplicate fallback keyword")
	ErrInvalidKeyword   = errors.New("invalid fallback keyword")
	ErrEmptyResponse    = errors.New("fallback response is empty")
	ErrUnknownLocale    = errors.New("unknown fallback locale")
)
