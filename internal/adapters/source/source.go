// Package source defines the port through which author payloads reach the
// engine, plus an in-memory implementation. How bytes arrive (file, network)
// is the host's concern; only the normalized payload shape matters here.
package source

import (
	"context"

	"github.com/mkarimian/geochron/internal/domain/model"
)

// Source supplies author payloads by id.
type Source interface {
	// FetchAuthor returns the payload for one author. It runs off the
	// animation loop; implementations honor ctx for cancellation.
	FetchAuthor(ctx context.Context, id string) (model.Author, error)
}
