// Package store persists words in a document collection. Every backend
// enforces at most one word per (owner, date) at write time and reports a
// missing word as found == false rather than as an error.
package store

import (
	"context"

	models "io.winapps.thiday/internal/models/word"
)

type Store interface {
	// Insert persists w and returns the identifier the backend generated for it.
	// Any ID already set on w is ignored.
	Insert(ctx context.Context, w models.Word) (string, error)

	// FindByOwnerAndDate returns the word posted by ownerID on date. When older
	// data holds more than one match, the earliest inserted one is returned.
	FindByOwnerAndDate(ctx context.Context, ownerID, date string) (models.Word, bool, error)

	// DeleteAll removes every word of every owner. An empty collection is not an error.
	DeleteAll(ctx context.Context) error

	Ping(ctx context.Context) error
}
