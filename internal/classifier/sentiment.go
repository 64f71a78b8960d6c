package classifier

import (
	"strings"

	"github.com/jonreiter/govader"
)

// analyzer loads the VADER lexicon once; scoring is read-only afterwards
var analyzer = govader.NewSentimentIntensityAnalyzer()

// Polarity returns the VADER compound score of text, in [-1, 1]. Negation,
// boosters, capitals and punctuation emphasis are handled by the lexicon
// rules. Blank text has polarity 0.
func Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return clamp(analyzer.PolarityScores(text).Compound)
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
