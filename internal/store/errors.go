package store

import "errors"

// Domain-level store error sentinels.
var (
	ErrContactNotFound = errors.New("contact not found")
)
