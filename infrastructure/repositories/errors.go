package repositories

import (
	"fmt"

	"cmsadmin/domain/contracts"
)

// ErrSiteMismatch occurs when a channel is queried through a site it does not belong to
type ErrSiteMismatch struct {
	Expected int64
	Actual   int64
}

func (e ErrSiteMismatch) Error() string {
	return fmt.Sprintf("site ID mismatch: query scoped to site %d, but channel belongs to site %d", e.Expected, e.Actual)
}

// Unwrap lets callers match the mismatch with errors.Is(err, contracts.ErrSiteScopeMismatch).
func (e ErrSiteMismatch) Unwrap() error {
	return contracts.ErrSiteScopeMismatch
}
