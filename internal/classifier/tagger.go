package classifier

import (
	"strings"

	"github.com/pbaille/mindvault/internal/domain"
)

// Rule maps a tag to the substrings that trigger it
type Rule struct {
	Tag      string
	Triggers []string
}

// DefaultRules returns the built-in tagging rules in declaration order
func DefaultRules() []Rule {
	return []Rule{
		{Tag: "focus", Triggers: []string{"focus", "study", "work"}},
		{Tag: "growth", Triggers: []string{"learn", "improve", "skill"}},
		{Tag: "burnout", Triggers: []string{"tired", "exhausted", "burnout"}},
	}
}

// Tagger assigns tags by case-insensitive substring match
type Tagger struct {
	rules []Rule
}

// NewTagger creates a Tagger over the given rules. Triggers are lowercased.
func NewTagger(rules []Rule) *Tagger {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		triggers := make([]string, len(r.Triggers))
		for j, trig := range r.Triggers {
			triggers[j] = strings.ToLower(trig)
		}
		normalized[i] = Rule{Tag: r.Tag, Triggers: triggers}
	}
	return &Tagger{rules: normalized}
}

// Tag returns the matching tags in rule order, or [uncategorized]
func (t *Tagger) Tag(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	for _, r := range t.rules {
		for _, trig := range r.Triggers {
			if strings.Contains(lower, trig) {
				tags = append(tags, r.Tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		return []string{domain.Uncategorized}
	}
	return tags
}

var defaultTagger = NewTagger(DefaultRules())

// AutoTag tags text with the default rules
func AutoTag(text string) []string {
	return defaultTagger.Tag(text)
}
