// Package classifier derives a sentiment label and topic tags from note text.
//
// Everything here is a pure function of its input: no I/O, no errors.
package classifier

import (
	"strings"

	"github.com/pbaille/mindvault/internal/domain"
)

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Result holds the classification output
type Result struct {
	Sentiment domain.Sentiment `json:"sentiment"`
	Polarity  float64          `json:"polarity"`
	Tags      []string         `json:"tags"`
}

// Classify scores and tags content in one pass
func Classify(content string) Result {
	p := Polarity(content)
	return Result{
		Sentiment: label(p),
		Polarity:  p,
		Tags:      AutoTag(content),
	}
}

// ClassifySentiment maps the polarity of text onto a sentiment label
func ClassifySentiment(text string) domain.Sentiment {
	return label(Polarity(text))
}

func label(p float64) domain.Sentiment {
	switch {
	case p > positiveThreshold:
		return domain.Positive
	case p < negativeThreshold:
		return domain.Negative
	default:
		return domain.Neutral
	}
}

// JoinTags serializes tags the way the store keeps them: "focus,growth"
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
