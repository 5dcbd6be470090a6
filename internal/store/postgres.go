package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	models "io.winapps.thiday/internal/models/word"
)

const uniqueViolation = "23505"

// pgxConn is the subset of *pgxpool.Pool the store uses.
type pgxConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// pgWord is the JSONB document body; the id lives in its own column.
type pgWord struct {
	Text      string `json:"text"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt"`
}

// Postgres keeps each word as a JSONB document in the words table.
type Postgres struct {
	db pgxConn
}

func NewPostgres(db pgxConn) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Insert(ctx context.Context, w models.Word) (string, error) {
	doc, err := json.Marshal(pgWord{Text: w.Text, OwnerID: w.OwnerID, CreatedAt: w.CreatedAt})
	if err != nil {
		return "", storageErr("insert word", fmt.Errorf("marshal document: %w", err))
	}

	id := uuid.NewString()

	query := `
		INSERT INTO words (id, doc)
		VALUES ($1, $2)
	`
	if _, err := s.db.Exec(ctx, query, id, doc); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", storageErr("insert word", ErrDuplicate)
		}
		return "", storageErr("insert word", err)
	}

	return id, nil
}

func (s *Postgres) FindByOwnerAndDate(ctx context.Context, ownerID, date string) (models.Word, bool, error) {
	query := `
		SELECT id::text, doc
		FROM words
		WHERE doc->>'ownerId' = $1 AND doc->>'createdAt' = $2
		ORDER BY inserted_at
		LIMIT 1
	`

	var (
		id  string
		raw []byte
	)
	if err := s.db.QueryRow(ctx, query, ownerID, date).Scan(&id, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Word{}, false, nil
		}
		return models.Word{}, false, storageErr("find word", err)
	}

	var doc pgWord
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Word{}, false, storageErr("find word", fmt.Errorf("decode document %s: %w", id, err))
	}

	return models.Word{
		ID:        id,
		Text:      doc.Text,
		OwnerID:   doc.OwnerID,
		CreatedAt: doc.CreatedAt,
	}, true, nil
}

func (s *Postgres) DeleteAll(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM words`)
	return storageErr("delete all words", err)
}

func (s *Postgres) Ping(ctx context.Context) error {
	return storageErr("ping postgres", s.db.Ping(ctx))
}
