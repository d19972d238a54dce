package contracts

import "errors"

// Common errors for domain contracts
var (
	// ErrNotFound occurs when a repository lookup matches no row
	ErrNotFound = errors.New("record not found")

	// ErrSiteScopeMismatch occurs when a record is requested through a site it does not belong to
	ErrSiteScopeMismatch = errors.New("record belongs to a different site")
)
