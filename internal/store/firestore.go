package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	models "io.winapps.thiday/internal/models/word"
)

type firestoreWord struct {
	Text       string    `firestore:"text"`
	OwnerID    string    `firestore:"ownerId"`
	CreatedAt  string    `firestore:"createdAt"`
	InsertedAt time.Time `firestore:"insertedAt,serverTimestamp"`
}

// Firestore stores words as documents with auto-generated ids. Uniqueness of
// (ownerId, createdAt) is checked inside the insert transaction.
type Firestore struct {
	client     *firestore.Client
	collection string
}

func NewFirestore(client *firestore.Client, collection string) *Firestore {
	return &Firestore{client: client, collection: collection}
}

func (s *Firestore) words() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

func (s *Firestore) byOwnerAndDate(ownerID, date string) firestore.Query {
	return s.words().
		Where("ownerId", "==", ownerID).
		Where("createdAt", "==", date).
		Limit(1)
}

func (s *Firestore) Insert(ctx context.Context, w models.Word) (string, error) {
	ref := s.words().NewDoc()
	doc := firestoreWord{Text: w.Text, OwnerID: w.OwnerID, CreatedAt: w.CreatedAt}

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Documents(s.byOwnerAndDate(w.OwnerID, w.CreatedAt)).GetAll()
		if err != nil {
			return fmt.Errorf("check existing word: %w", err)
		}
		if len(existing) > 0 {
			return ErrDuplicate
		}
		return tx.Create(ref, doc)
	})
	if err != nil {
		return "", storageErr("insert word", err)
	}

	return ref.ID, nil
}

// FindByOwnerAndDate returns the first match in the query's default
// (document id) order; ordering by insertedAt would need a composite index.
func (s *Firestore) FindByOwnerAndDate(ctx context.Context, ownerID, date string) (models.Word, bool, error) {
	it := s.byOwnerAndDate(ownerID, date).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return models.Word{}, false, nil
	}
	if err != nil {
		return models.Word{}, false, storageErr("find word", err)
	}

	var doc firestoreWord
	if err := snap.DataTo(&doc); err != nil {
		return models.Word{}, false, storageErr("find word", fmt.Errorf("decode document %s: %w", snap.Ref.ID, err))
	}

	return models.Word{
		ID:        snap.Ref.ID,
		Text:      doc.Text,
		OwnerID:   doc.OwnerID,
		CreatedAt: doc.CreatedAt,
	}, true, nil
}

func (s *Firestore) DeleteAll(ctx context.Context) error {
	bw := s.client.BulkWriter(ctx)

	it := s.words().Select().Documents(ctx)
	defer it.Stop()

	var jobs []*firestore.BulkWriterJob
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			bw.End()
			return storageErr("delete all words", err)
		}

		job, err := bw.Delete(snap.Ref)
		if err != nil {
			bw.End()
			return storageErr("delete all words", err)
		}
		jobs = append(jobs, job)
	}

	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return storageErr("delete all words", err)
		}
	}

	return nil
}

func (s *Firestore) Ping(ctx context.Context) error {
	it := s.words().Limit(1).Documents(ctx)
	defer it.Stop()

	if _, err := it.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return storageErr("ping firestore", err)
	}
	return nil
}
