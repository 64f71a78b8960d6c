package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSentimentValid(t *testing.T) {
	assert.True(t, Positive.Valid())
	assert.True(t, Neutral.Valid())
	assert.True(t, Negative.Valid())
	assert.False(t, Sentiment("").Valid())
	assert.False(t, Sentiment("angry").Valid())
}

func TestTagList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{"empty", "", nil},
		{"single", "focus", []string{"focus"}},
		{"compact", "focus,growth", []string{"focus", "growth"}},
		{"spaced", "focus, growth , ", []string{"focus", "growth"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Note{Tags: tt.tags}.TagList())
		})
	}
}

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "unknown", Note{}.DisplayTime())

	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, ts.Local().Format("2006-01-02 15:04"), Note{Timestamp: ts}.DisplayTime())
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
		want    string
	}{
		{"short", "deep work", 20, "deep work"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefghij", 8, "abcde..."},
		{"newlines", "line one\nline two", 40, "line one line two"},
		{"runes", "été à la mer", 6, "été..."},
		{"tiny", "abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Note{Content: tt.content}.Preview(tt.max))
		})
	}
}

func TestErrorsMatchSentinels(t *testing.T) {
	verr := fmt.Errorf("add: %w", Invalid("content", "must not be empty"))
	assert.ErrorIs(t, verr, ErrValidation)
	assert.NotErrorIs(t, verr, ErrStorage)
	assert.EqualError(t, verr, "add: invalid content: must not be empty")

	cause := errors.New("disk full")
	serr := fmt.Errorf("wrapped: %w", &StorageError{Op: "insert", Err: cause})
	assert.ErrorIs(t, serr, ErrStorage)
	assert.ErrorIs(t, serr, cause)

	var se *StorageError
	if assert.ErrorAs(t, serr, &se) {
		assert.Equal(t, "insert", se.Op)
	}
}
