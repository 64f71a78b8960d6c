package domain

import (
	"strings"
	"time"
)

// Sentiment is the mood label attached to a note when it is created
type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

// Valid reports whether s is one of the known labels
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Neutral, Negative:
		return true
	}
	return false
}

func (s Sentiment) String() string {
	return string(s)
}

// Uncategorized is the tag given to notes that match no tagging rule
const Uncategorized = "uncategorized"

// TimestampLayout is the on-disk format of Note.Timestamp. It sorts lexically.
const TimestampLayout = "2006-01-02 15:04:05"

// Note is a captured piece of text
type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags"`
	Sentiment Sentiment `json:"sentiment"`
	Timestamp time.Time `json:"timestamp"`
}

// TagList splits the serialized tags into trimmed labels
func (n Note) TagList() []string {
	var tags []string
	for _, t := range strings.Split(n.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// DisplayTime renders the creation time in local time for listings.
// Notes with no recorded time show as "unknown".
func (n Note) DisplayTime() string {
	if n.Timestamp.IsZero() {
		return "unknown"
	}
	return n.Timestamp.Local().Format("2006-01-02 15:04")
}

// Preview flattens the content to one line and cuts it to max runes,
// ending with "..." when shortened
func (n Note) Preview(max int) string {
	s := strings.ReplaceAll(n.Content, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Stats summarizes the vault
type Stats struct {
	Total       int               `json:"total"`
	BySentiment map[Sentiment]int `json:"by_sentiment"`
}
