package rank

import (
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	skimMatch       = 16
	skimBoundary    = 8
	skimCamel       = 7
	skimConsecutive = 4
	skimGapStart    = 3
	skimGapExtend   = 1
)

// Skim scores a subsequence alignment by where the matched characters fall:
// word starts and runs score high, gaps between matches cost. Characters
// after the last match are free, so names sharing a prefix tie.
type Skim struct{}

func (Skim) Score(query, name string) (int, bool) {
	if !fuzzy.MatchFold(query, name) {
		return 0, false
	}
	q := foldRunes(query)
	n := []rune(name)
	folded := foldRunes(name)
	if len(q) == 0 {
		return 0, true
	}
	best, found := 0, false
	for start := range folded {
		if folded[start] != q[0] {
			continue
		}
		score, ok := alignFrom(q, n, folded, start)
		if !ok {
			// a later start cannot fit the remaining query either
			break
		}
		if !found || score > best {
			best, found = score, true
		}
	}
	return best, found
}

// alignFrom greedily places q into folded starting at start.
func alignFrom(q, name, folded []rune, start int) (int, bool) {
	score := 0
	prev := -1
	qi := 0
	for i := start; i < len(folded) && qi < len(q); i++ {
		if folded[i] != q[qi] {
			continue
		}
		score += skimMatch + positionBonus(name, i)
		if prev >= 0 {
			if gap := i - prev - 1; gap == 0 {
				score += skimConsecutive
			} else {
				score -= skimGapStart + skimGapExtend*(gap-1)
			}
		}
		prev = i
		qi++
	}
	return score, qi == len(q)
}

func positionBonus(name []rune, i int) int {
	if i == 0 {
		return skimBoundary
	}
	prev, cur := name[i-1], name[i]
	if isSeparator(prev) {
		return skimBoundary
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return skimCamel
	}
	return 0
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '-', '_', '.', '/', ':', '(', ')':
		return true
	}
	return unicode.IsSpace(r)
}

func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}
