package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Scorer rates how well query fuzzily matches name. Higher is better; ok is
// false when query is not a subsequence of name.
type Scorer interface {
	Score(query, name string) (score int, ok bool)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(query, name string) (int, bool)

func (f ScorerFunc) Score(query, name string) (int, bool) { return f(query, name) }

const (
	ScorerSkim     = "skim"
	ScorerDistance = "distance"
	ScorerSahilm   = "sahilm"
)

var scorers = map[string]Scorer{
	ScorerSkim:     Skim{},
	ScorerDistance: Distance{},
	ScorerSahilm:   Sahilm{},
}

// ScorerByName returns a registered scorer. An empty name selects skim.
func ScorerByName(name string) (Scorer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = ScorerSkim
	}
	s, ok := scorers[key]
	if !ok {
		return nil, fmt.Errorf("unknown scorer %q (available: %s)", name, strings.Join(ScorerNames(), ", "))
	}
	return s, nil
}

// ScorerNames lists the registered scorer names.
func ScorerNames() []string {
	names := make([]string, 0, len(scorers))
	for name := range scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Distance scores by negated Levenshtein distance between the folded,
// normalised query and name, so shorter names rank higher.
type Distance struct{}

func (Distance) Score(query, name string) (int, bool) {
	d := fuzzy.RankMatchNormalizedFold(query, name)
	if d < 0 {
		return 0, false
	}
	return -d, true
}

// Sahilm uses the sahilm/fuzzy scoring, which rewards matches after
// separators and camel-case humps and penalises unmatched characters.
type Sahilm struct{}

func (Sahilm) Score(query, name string) (int, bool) {
	matches := sahilm.Find(query, []string{name})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}
