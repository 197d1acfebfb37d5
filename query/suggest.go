package query

import (
	"strings"

	"github.com/poiesic/placesearch/core"
)

// defaultSuggestions backs the quick-suggestion filter. A deliberately
// small, static list: suggestions are a typing accelerator, not a
// search, and never touch the network.
var defaultSuggestions = []string{
	"airport",
	"atm",
	"coffee",
	"gas station",
	"grocery store",
	"hospital",
	"hotels",
	"parking",
	"pharmacy",
	"restaurants",
}

// Suggestions filters the fixed suggestion list against the partial
// input: prefix matches rank before substring matches, each group in
// list order. Empty input returns the whole list.
func (c *Coordinator) Suggestions(partial string) []string {
	q := core.NormalizeQuery(partial)
	if q == "" {
		return append([]string(nil), c.suggestions...)
	}

	var prefixed, contained []string
	for _, s := range c.suggestions {
		folded := strings.ToLower(s)
		switch {
		case strings.HasPrefix(folded, q):
			prefixed = append(prefixed, s)
		case strings.Contains(folded, q):
			contained = append(contained, s)
		}
	}
	return append(prefixed, contained...)
}
