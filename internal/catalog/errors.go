package catalog

import "errors"

// Sentinel errors for caller contract violations. Both are raised before any
// filtering work and are never produced by data conditions: an empty result,
// a missing brand or an out-of-range page are normal outcomes, not errors.
var (
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrUnknownSortKey  = errors.New("unknown sort key")
)
