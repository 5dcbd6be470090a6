package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	models "io.winapps.thiday/internal/models/word"
)

// DateLayout is the calendar-date form words are stored and looked up by.
const DateLayout = "2006-01-02"

var ErrInvalidInput = errors.New("invalid input")

type wordStore interface {
	Insert(ctx context.Context, w models.Word) (string, error)
	FindByOwnerAndDate(ctx context.Context, ownerID, date string) (models.Word, bool, error)
	DeleteAll(ctx context.Context) error
}

type WordService struct {
	store  wordStore
	now    func() time.Time
	logger *zap.SugaredLogger
}

type Option func(*WordService)

// WithClock replaces time.Now as the source of the creation date.
func WithClock(now func() time.Time) Option {
	return func(s *WordService) { s.now = now }
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *WordService) { s.logger = logger }
}

func NewWordService(store wordStore, opts ...Option) *WordService {
	s := &WordService{
		store:  store,
		now:    time.Now,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores text, trimmed, as ownerID's word for today's UTC date. A nil
// text is stored as "".
func (s *WordService) Create(ctx context.Context, ownerID string, text *string) (string, error) {
	var trimmed string
	if text != nil {
		trimmed = strings.TrimSpace(*text)
	}

	w := models.Word{
		Text:      trimmed,
		OwnerID:   ownerID,
		CreatedAt: s.now().UTC().Format(DateLayout),
	}

	id, err := s.store.Insert(ctx, w)
	if err != nil {
		return "", fmt.Errorf("create word: %w", err)
	}

	s.logger.Infow("word created", "id", id, "owner_id", ownerID, "created_at", w.CreatedAt)
	return id, nil
}

// GetByDate looks up ownerID's word for date. found is false when there is
// none; a malformed date fails with ErrInvalidInput before the store is queried.
func (s *WordService) GetByDate(ctx context.Context, ownerID, date string) (models.Word, bool, error) {
	if err := ValidateDate(date); err != nil {
		return models.Word{}, false, err
	}

	w, found, err := s.store.FindByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		return models.Word{}, false, fmt.Errorf("get word by date: %w", err)
	}

	return w, found, nil
}

// DeleteAllGlobal irreversibly removes the words of every owner.
func (s *WordService) DeleteAllGlobal(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all words: %w", err)
	}

	s.logger.Warnw("all words deleted")
	return nil
}

func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q is not a YYYY-MM-DD calendar date", ErrInvalidInput, date)
	}
	return nil
}
