package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	models "io.winapps.thiday/internal/models/word"
	"io.winapps.thiday/internal/store"
)

// fakeStore records calls on top of the in-memory store.
type fakeStore struct {
	*store.Memory
	inserted []models.Word
	finds    int
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{Memory: store.NewMemory()}
}

func (f *fakeStore) Insert(ctx context.Context, w models.Word) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.inserted = append(f.inserted, w)
	return f.Memory.Insert(ctx, w)
}

func (f *fakeStore) FindByOwnerAndDate(ctx context.Context, ownerID, date string) (models.Word, bool, error) {
	f.finds++
	if f.err != nil {
		return models.Word{}, false, f.err
	}
	return f.Memory.FindByOwnerAndDate(ctx, ownerID, date)
}

func (f *fakeStore) DeleteAll(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	return f.Memory.DeleteAll(ctx)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr(s string) *string { return &s }

func TestCreate_TrimsText(t *testing.T) {
	fs := newFakeStore()
	svc := NewWordService(fs, WithClock(fixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))))

	tests := []struct {
		name  string
		owner string
		text  *string
		want  string
	}{
		{"surrounding spaces", "u1", ptr("  hi  "), "hi"},
		{"tabs and newlines", "u2", ptr("\t hello world \n"), "hello world"},
		{"nil text", "u3", nil, ""},
		{"only spaces", "u4", ptr("   "), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := svc.Create(context.Background(), tc.owner, tc.text)
			require.NoError(t, err)
			require.NotEmpty(t, id)

			got, found, err := svc.GetByDate(context.Background(), tc.owner, "2024-05-01")
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, tc.want, got.Text)
			assert.Equal(t, id, got.ID)
			assert.Equal(t, tc.owner, got.OwnerID)
		})
	}
}

func TestCreate_UsesUTCDate(t *testing.T) {
	// 05:00 on Jan 1 at UTC+14 is still Dec 31 in UTC.
	kiritimati := time.FixedZone("UTC+14", 14*60*60)
	fs := newFakeStore()
	svc := NewWordService(fs, WithClock(fixedClock(time.Date(2024, 1, 1, 5, 0, 0, 0, kiritimati))))

	_, err := svc.Create(context.Background(), "u1", ptr("hello"))
	require.NoError(t, err)

	require.Len(t, fs.inserted, 1)
	assert.Equal(t, "2023-12-31", fs.inserted[0].CreatedAt)
}

func TestCreate_DefaultClockIsToday(t *testing.T) {
	fs := newFakeStore()
	svc := NewWordService(fs)

	before := time.Now().UTC().Format(DateLayout)
	_, err := svc.Create(context.Background(), "u1", ptr("hello"))
	require.NoError(t, err)
	after := time.Now().UTC().Format(DateLayout)

	require.Len(t, fs.inserted, 1)
	assert.Contains(t, []string{before, after}, fs.inserted[0].CreatedAt)
}

func TestCreate_StoreErrorsPropagate(t *testing.T) {
	fs := newFakeStore()
	svc := NewWordService(fs)

	fs.err = &store.StorageError{Op: "insert word", Err: store.ErrDuplicate}
	_, err := svc.Create(context.Background(), "u1", ptr("x"))
	require.ErrorIs(t, err, store.ErrDuplicate)

	boom := errors.New("connection refused")
	fs.err = &store.StorageError{Op: "insert word", Err: boom}
	_, err = svc.Create(context.Background(), "u1", ptr("x"))
	require.ErrorIs(t, err, boom)

	var se *store.StorageError
	assert.ErrorAs(t, err, &se)
}

func TestGetByDate_Absent(t *testing.T) {
	svc := NewWordService(newFakeStore())

	_, found, err := svc.GetByDate(context.Background(), "u1", "2000-01-01")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetByDate_InvalidDateNeverReachesStore(t *testing.T) {
	fs := newFakeStore()
	svc := NewWordService(fs)

	for _, date := range []string{"not-a-date", "", "2024-13-01", "2024-02-30", "2024-5-1", "01-05-2024", "2024-05-01T00:00:00Z", " 2024-05-01"} {
		_, found, err := svc.GetByDate(context.Background(), "u1", date)
		require.ErrorIs(t, err, ErrInvalidInput, "date %q", date)
		assert.False(t, found)
	}
	assert.Zero(t, fs.finds)
}

func TestGetByDate_StoreError(t *testing.T) {
	fs := newFakeStore()
	fs.err = &store.StorageError{Op: "find word", Err: errors.New("timeout")}
	svc := NewWordService(fs)

	_, _, err := svc.GetByDate(context.Background(), "u1", "2024-05-01")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)

	var se *store.StorageError
	assert.ErrorAs(t, err, &se)
}

func TestDeleteAllGlobal(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fs := newFakeStore()
	svc := NewWordService(fs,
		WithClock(fixedClock(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))),
		WithLogger(zap.New(core).Sugar()),
	)
	ctx := context.Background()

	for _, owner := range []string{"u1", "u2"} {
		_, err := svc.Create(ctx, owner, ptr("x"))
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteAllGlobal(ctx))

	for _, owner := range []string{"u1", "u2", "u3"} {
		for _, date := range []string{"2024-05-01", "2000-01-01"} {
			_, found, err := svc.GetByDate(ctx, owner, date)
			require.NoError(t, err)
			assert.False(t, found)
		}
	}

	assert.Equal(t, 1, logs.FilterMessage("all words deleted").Len())
}

func TestDeleteAllGlobal_StoreError(t *testing.T) {
	fs := newFakeStore()
	fs.err = &store.StorageError{Op: "delete all words", Err: errors.New("down")}
	svc := NewWordService(fs)

	err := svc.DeleteAllGlobal(context.Background())
	var se *store.StorageError
	require.ErrorAs(t, err, &se)
}
