// Package rank filters and orders a catalog against a query.
package rank

import (
	"sort"

	"github.com/atomicstack/popup-launcher/internal/catalog"
)

// View is a ranked, filtered sequence of candidates. It is derived from a
// catalog and a query and never stored.
type View []catalog.Candidate

// Match pairs a candidate with its score and catalog position.
type Match struct {
	Candidate catalog.Candidate
	Score     int
	Index     int
}

// Rank returns the candidates matching query, best first. An empty query
// yields the catalog unchanged.
func Rank(cat *catalog.Catalog, query string, scorer Scorer) View {
	matches := Matches(cat, query, scorer)
	view := make(View, len(matches))
	for i, m := range matches {
		view[i] = m.Candidate
	}
	return view
}

// Matches is Rank with scores attached. Equal scores keep catalog order.
func Matches(cat *catalog.Catalog, query string, scorer Scorer) []Match {
	n := cat.Len()
	if query == "" || scorer == nil {
		out := make([]Match, n)
		for i := 0; i < n; i++ {
			out[i] = Match{Candidate: cat.At(i), Index: i}
		}
		return out
	}
	out := make([]Match, 0, n)
	for i := 0; i < n; i++ {
		candidate := cat.At(i)
		score, ok := scorer.Score(query, candidate.Name)
		if !ok {
			continue
		}
		out = append(out, Match{Candidate: candidate, Score: score, Index: i})
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].Index < out[b].Index
	})
	return out
}
