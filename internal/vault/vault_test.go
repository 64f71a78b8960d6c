package vault

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pbaille/mindvault/internal/domain"
	"github.com/pbaille/mindvault/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "mindvault.db"))
	require.NoError(t, err)
	return New(s, zaptest.NewLogger(t))
}

func TestAddAutoTagsAndClassifies(t *testing.T) {
	v := newTestService(t)
	ctx := context.Background()

	note, err := v.Add(ctx, "  I am so tired and exhausted  ", "")
	require.NoError(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, "I am so tired and exhausted", note.Content)
	assert.Equal(t, "burnout", note.Tags)
	assert.Equal(t, domain.Negative, note.Sentiment)
	assert.False(t, note.Timestamp.IsZero())

	recent, err := v.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, note, recent[0])
}

func TestAddStudyScenario(t *testing.T) {
	v := newTestService(t)

	note, err := v.Add(context.Background(), "I need to study and improve my skills today", "")
	require.NoError(t, err)
	assert.Equal(t, "focus,growth", note.Tags)
	assert.NotEqual(t, domain.Negative, note.Sentiment)
}

func TestAddUncategorized(t *testing.T) {
	v := newTestService(t)

	note, err := v.Add(context.Background(), "bought bread", "")
	require.NoError(t, err)
	assert.Equal(t, domain.Uncategorized, note.Tags)
}

func TestAddWithExplicitTags(t *testing.T) {
	v := newTestService(t)

	note, err := v.Add(context.Background(), "study plan", " Ideas, ideas ,work,, ")
	require.NoError(t, err)
	assert.Equal(t, "ideas,work", note.Tags)
}

func TestAddRejectsBlankContent(t *testing.T) {
	fs := &fakeStore{}
	v := New(fs, nil)

	_, err := v.Add(context.Background(), " \n\t", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, fs.inserts, "store must not be reached")
}

func TestAddPropagatesStorageError(t *testing.T) {
	cause := &domain.StorageError{Op: "insert note", Err: errors.New("disk I/O error")}
	v := New(&fakeStore{insertErr: cause}, nil)

	_, err := v.Add(context.Background(), "hello", "")
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Same(t, cause, err)
}

func TestAddDoesNotDependOnReads(t *testing.T) {
	fs := &fakeStore{readErr: &domain.StorageError{Op: "list recent", Err: errors.New("boom")}}
	v := New(fs, nil)

	note, err := v.Add(context.Background(), "deep work block", "")
	require.NoError(t, err)
	assert.Equal(t, 1, fs.inserts)
	assert.Equal(t, int64(1), note.ID)
	assert.Equal(t, "focus", note.Tags)
	assert.False(t, note.Timestamp.IsZero())
}

func TestAddNewestAmongLegacyNotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindvault.db")
	s, err := store.New(path, store.WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO notes (content, sentiment, timestamp) VALUES ('legacy', 'neutral', '2024-05-01T08:00:00.000001')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	v := New(s, nil)
	note, err := v.Add(context.Background(), "fresh note", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), note.Timestamp)

	recent, err := v.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, note, recent[0])
}

func TestSearches(t *testing.T) {
	v := newTestService(t)
	ctx := context.Background()

	_, err := v.Add(ctx, "learn Go", "")
	require.NoError(t, err)
	_, err = v.Add(ctx, "walk the dog", "")
	require.NoError(t, err)

	notes, err := v.Search(ctx, "GO")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "learn Go", notes[0].Content)

	notes, err = v.SearchTag(ctx, " Grow ")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "growth", notes[0].Tags)

	all, err := v.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	stats, err := v.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
}

func TestSearchRejectsBlank(t *testing.T) {
	v := New(&fakeStore{}, nil)
	_, err := v.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = v.SearchTag(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, "", NormalizeTags(""))
	assert.Equal(t, "", NormalizeTags(" , ,"))
	assert.Equal(t, "a,b", NormalizeTags("A, b, a"))
}

type fakeStore struct {
	inserts   int
	insertErr error
	readErr   error
}

func (f *fakeStore) Create(ctx context.Context, content, tags string, sentiment domain.Sentiment) (domain.Note, error) {
	f.inserts++
	if f.insertErr != nil {
		return domain.Note{}, f.insertErr
	}
	return domain.Note{
		ID:        int64(f.inserts),
		Content:   content,
		Tags:      tags,
		Sentiment: sentiment,
		Timestamp: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeStore) ListRecent(ctx context.Context, limit int) ([]domain.Note, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return []domain.Note{}, nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]domain.Note, error) {
	return []domain.Note{}, nil
}

func (f *fakeStore) SearchContent(ctx context.Context, keyword string) ([]domain.Note, error) {
	return []domain.Note{}, nil
}

func (f *fakeStore) SearchTag(ctx context.Context, tag string) ([]domain.Note, error) {
	return []domain.Note{}, nil
}

func (f *fakeStore) Stats(ctx context.Context) (*domain.Stats, error) {
	return &domain.Stats{}, nil
}
