// Package vault is the single entry point used by the CLI and the TUI.
//
// Each method handles one user action synchronously: validate the input,
// classify it, then hit the store.
package vault

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pbaille/mindvault/internal/classifier"
	"github.com/pbaille/mindvault/internal/domain"
)

// NoteStore is the storage surface the vault needs
type NoteStore interface {
	Create(ctx context.Context, content, tags string, sentiment domain.Sentiment) (domain.Note, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Note, error)
	ListAll(ctx context.Context) ([]domain.Note, error)
	SearchContent(ctx context.Context, keyword string) ([]domain.Note, error)
	SearchTag(ctx context.Context, tag string) ([]domain.Note, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// Service ties the classifier to the store
type Service struct {
	store NoteStore
	log   *zap.Logger
}

// New creates a Service. A nil logger disables logging.
func New(s NoteStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: s, log: log.Named("vault")}
}

// Add classifies and stores content. When tags is empty the note is tagged
// automatically; otherwise the given comma-separated tags are used.
func (v *Service) Add(ctx context.Context, content, tags string) (domain.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Note{}, domain.Invalid("content", "must not be empty")
	}

	result := classifier.Classify(content)
	joined := NormalizeTags(tags)
	if joined == "" {
		joined = classifier.JoinTags(result.Tags)
	}

	note, err := v.store.Create(ctx, content, joined, result.Sentiment)
	if err != nil {
		v.log.Error("add note failed", zap.Error(err))
		return domain.Note{}, err
	}

	v.log.Info("note added",
		zap.Int64("id", note.ID),
		zap.String("tags", joined),
		zap.String("sentiment", result.Sentiment.String()),
		zap.Float64("polarity", result.Polarity),
	)
	return note, nil
}

// Recent returns up to limit notes, newest first
func (v *Service) Recent(ctx context.Context, limit int) ([]domain.Note, error) {
	return v.store.ListRecent(ctx, limit)
}

// All returns every note, newest first
func (v *Service) All(ctx context.Context) ([]domain.Note, error) {
	return v.store.ListAll(ctx)
}

// Search finds notes whose content contains keyword
func (v *Service) Search(ctx context.Context, keyword string) ([]domain.Note, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.Invalid("keyword", "must not be empty")
	}
	notes, err := v.store.SearchContent(ctx, keyword)
	if err != nil {
		return nil, err
	}
	v.log.Debug("content search", zap.String("keyword", keyword), zap.Int("hits", len(notes)))
	return notes, nil
}

// SearchTag finds notes whose tags contain tag as a substring
func (v *Service) SearchTag(ctx context.Context, tag string) ([]domain.Note, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil, domain.Invalid("tag", "must not be empty")
	}
	notes, err := v.store.SearchTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	v.log.Debug("tag search", zap.String("tag", tag), zap.Int("hits", len(notes)))
	return notes, nil
}

// Stats summarizes the vault
func (v *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	return v.store.Stats(ctx)
}

// NormalizeTags lowercases, trims and de-duplicates a comma-separated tag
// list, keeping first-seen order
func NormalizeTags(raw string) string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return classifier.JoinTags(out)
}
