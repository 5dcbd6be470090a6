package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	models "io.winapps.thiday/internal/models/word"
)

// Memory keeps words in process memory, in insertion order.
type Memory struct {
	mu    sync.RWMutex
	words []models.Word
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Insert(_ context.Context, w models.Word) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.find(w.OwnerID, w.CreatedAt); ok {
		return "", storageErr("insert word", ErrDuplicate)
	}

	w.ID = uuid.NewString()
	m.words = append(m.words, w)

	return w.ID, nil
}

func (m *Memory) FindByOwnerAndDate(_ context.Context, ownerID, date string) (models.Word, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.find(ownerID, date)
	return w, ok, nil
}

func (m *Memory) DeleteAll(context.Context) error {
	m.mu.Lock()
	m.words = nil
	m.mu.Unlock()

	return nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}

func (m *Memory) find(ownerID, date string) (models.Word, bool) {
	for _, w := range m.words {
		if w.OwnerID == ownerID && w.CreatedAt == date {
			return w, true
		}
	}
	return models.Word{}, false
}
