package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/mkarimian/geochron/internal/domain/model"
)

// Static is an in-memory Source seeded with author payloads. Used by hosts
// that assemble payloads themselves and throughout the tests.
type Static struct {
	mu      sync.RWMutex
	authors map[string]model.Author
}

// NewStatic creates a Static source holding the given payloads.
func NewStatic(authors ...model.Author) *Static {
	s := &Static{authors: make(map[string]model.Author, len(authors))}
	for _, a := range authors {
		s.authors[a.ID] = a
	}
	return s
}

// Put adds or replaces one author payload.
func (s *Static) Put(author model.Author) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authors[author.ID] = author
}

// FetchAuthor implements Source.
func (s *Static) FetchAuthor(_ context.Context, id string) (model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	author, ok := s.authors[id]
	if !ok {
		return model.Author{}, fmt.Errorf("%w: %s", ErrAuthorNotFound, id)
	}
	return author, nil
}
