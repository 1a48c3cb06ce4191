package service

import "errors"

// Sentinel kinds for orchestrator errors.
var (
	ErrAuthorLoad      = errors.New("author load failed")
	ErrRouteValidation = errors.New("route has no resolvable year")
)
