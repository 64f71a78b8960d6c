// Package store persists notes in a single SQLite table.
//
// Every operation opens its own handle on the database file, runs one
// statement and closes the handle again. Nothing is cached between calls and
// there is no locking: one process at a time is expected to use a file.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pbaille/mindvault/internal/domain"
)

//go:embed schema.sql
var schema string

// DefaultLimit applies when ListRecent is called with limit 0
const DefaultLimit = 10

const noteColumns = "id, content, tags, sentiment, timestamp"

// newestFirst normalizes stored timestamps before comparing, since older
// vaults hold ISO "T"-separated values that do not sort against ours as text
const newestFirst = "ORDER BY datetime(timestamp) DESC, id DESC"

// Store handles database operations
type Store struct {
	path string
	now  func() time.Time
	log  *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for debug tracing of queries
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the clock used to stamp new notes
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store backed by the file at dbPath, creating the parent
// directory and the schema if needed
func New(dbPath string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, domain.Invalid("database path", "must not be empty")
	}

	s := &Store{path: dbPath, now: time.Now, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, &domain.StorageError{Op: "create db dir", Err: err}
	}
	if err := s.EnsureSchema(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.path
}

// withDB opens the database for the duration of fn
func (s *Store) withDB(ctx context.Context, op string, fn func(*sql.DB) error) error {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return &domain.StorageError{Op: op, Err: fmt.Errorf("open database: %w", err)}
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := fn(db); err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}
	return nil
}

// EnsureSchema creates the notes table if it does not exist. An existing
// table is left untouched.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.withDB(ctx, "ensure schema", func(db *sql.DB) error {
		if _, err := db.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
		return nil
	})
}

// Insert stores a new note and returns its id
func (s *Store) Insert(ctx context.Context, content, tags string, sentiment domain.Sentiment) (int64, error) {
	n, err := s.Create(ctx, content, tags, sentiment)
	if err != nil {
		return 0, err
	}
	return n.ID, nil
}

// Create stores a new note and returns it as written, id and timestamp
// included
func (s *Store) Create(ctx context.Context, content, tags string, sentiment domain.Sentiment) (domain.Note, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Note{}, domain.Invalid("content", "must not be empty")
	}
	if !sentiment.Valid() {
		return domain.Note{}, domain.Invalid("sentiment", fmt.Sprintf("unknown label %q", sentiment))
	}

	ts := s.now().UTC().Truncate(time.Second)

	var id int64
	err := s.withDB(ctx, "insert note", func(db *sql.DB) error {
		res, err := db.ExecContext(ctx,
			"INSERT INTO notes (content, tags, sentiment, timestamp) VALUES (?, ?, ?, ?)",
			content, tags, string(sentiment), ts.Format(domain.TimestampLayout),
		)
		if err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return domain.Note{}, err
	}

	s.log.Debug("note inserted", zap.Int64("id", id), zap.String("tags", tags), zap.String("sentiment", string(sentiment)))
	return domain.Note{ID: id, Content: content, Tags: tags, Sentiment: sentiment, Timestamp: ts}, nil
}

// ListRecent returns up to limit notes, newest first. A limit of 0 means
// DefaultLimit.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]domain.Note, error) {
	if limit < 0 {
		return nil, domain.Invalid("limit", "must be positive")
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	return s.queryNotes(ctx, "list recent",
		"SELECT "+noteColumns+" FROM notes "+newestFirst+" LIMIT ?",
		limit,
	)
}

// ListAll returns every note, newest first
func (s *Store) ListAll(ctx context.Context) ([]domain.Note, error) {
	return s.queryNotes(ctx, "list all",
		"SELECT "+noteColumns+" FROM notes "+newestFirst,
	)
}

// SearchContent returns notes whose content contains keyword. Matching uses
// SQLite LIKE: ASCII letters compare case-insensitively, everything else
// exactly.
func (s *Store) SearchContent(ctx context.Context, keyword string) ([]domain.Note, error) {
	return s.queryNotes(ctx, "search content",
		"SELECT "+noteColumns+` FROM notes WHERE content LIKE ? ESCAPE '\' `+newestFirst,
		likePattern(keyword),
	)
}

// SearchTag matches tag as a substring of the serialized tags, so "grow"
// finds notes tagged "growth".
func (s *Store) SearchTag(ctx context.Context, tag string) ([]domain.Note, error) {
	return s.queryNotes(ctx, "search tag",
		"SELECT "+noteColumns+` FROM notes WHERE tags LIKE ? ESCAPE '\' `+newestFirst,
		likePattern(tag),
	)
}

// Stats counts notes per sentiment
func (s *Store) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{BySentiment: map[domain.Sentiment]int{
		domain.Positive: 0,
		domain.Neutral:  0,
		domain.Negative: 0,
	}}

	err := s.withDB(ctx, "stats", func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, "SELECT COALESCE(sentiment, ''), COUNT(*) FROM notes GROUP BY sentiment")
		if err != nil {
			return fmt.Errorf("count notes: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var label string
			var n int
			if err := rows.Scan(&label, &n); err != nil {
				return fmt.Errorf("scan count: %w", err)
			}
			stats.Total += n
			if sent := domain.Sentiment(label); sent.Valid() {
				stats.BySentiment[sent] += n
			}
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) queryNotes(ctx context.Context, op, query string, args ...any) ([]domain.Note, error) {
	notes := []domain.Note{}
	err := s.withDB(ctx, op, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query notes: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			n, err := scanNote(rows)
			if err != nil {
				return err
			}
			notes = append(notes, n)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("notes queried", zap.String("op", op), zap.Int("count", len(notes)))
	return notes, nil
}

func scanNote(rows *sql.Rows) (domain.Note, error) {
	var n domain.Note
	var content, tags, sentiment, ts sql.NullString
	if err := rows.Scan(&n.ID, &content, &tags, &sentiment, &ts); err != nil {
		return n, fmt.Errorf("scan note: %w", err)
	}
	n.Content = content.String
	n.Tags = tags.String
	n.Sentiment = domain.Sentiment(sentiment.String)
	n.Timestamp = parseTimestamp(ts.String)
	return n, nil
}

// timestampLayouts lists accepted stored formats, current one first. The
// ISO forms cover vaults written by earlier versions of the tool.
var timestampLayouts = []string{
	domain.TimestampLayout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

func parseTimestamp(v string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a literal substring LIKE match
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
