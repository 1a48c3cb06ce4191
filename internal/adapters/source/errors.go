package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrAuthorNotFound = errors.New("author not found")
)
