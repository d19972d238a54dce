package application

import "errors"

// Errors returned by the content list operation. Each maps to a distinct HTTP outcome.
var (
	// ErrUnauthorized occurs when the caller is anonymous or lacks every qualifying permission
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSiteNotFound occurs when the requested site does not exist
	ErrSiteNotFound = errors.New("site not found")

	// ErrChannelNotResolved occurs when the requested channel does not exist
	ErrChannelNotResolved = errors.New("cannot determine the channel for this content")
)
