package recomb

import (
	"math"

	"github.com/mudesheng/repeatpath/gaf"
)

// Pair is two paths through the same repeat that are reverse complements.
type Pair struct {
	RepeatID string
	PathA    gaf.Path
	CovA     int
	PathB    gaf.Path
	CovB     int
}

// Score is 2*min(a, 1-a) with a the share of CovA in the pair: 1 when both
// strands carry the same coverage, toward 0 as one dominates. ok is false
// when the pair has no coverage.
func (p Pair) Score() (score float64, ok bool) {
	total := p.CovA + p.CovB
	if total == 0 {
		return 0, false
	}
	rel := float64(p.CovA) / float64(total)
	return 2 * math.Min(rel, 1-rel), true
}

// MatchPairs pairs up reverse complement paths of one group. Each path is
// compared with the paths after it and the first unused partner wins, so
// the result depends on the group order and is not a maximum matching.
func MatchPairs(g gaf.PathGroup) (pairs []Pair) {
	used := make(map[string]bool)
	for i, a := range g.Paths {
		if used[a.Path.String()] {
			continue
		}
		for _, b := range g.Paths[i+1:] {
			if used[b.Path.String()] || !a.Path.IsReverseComplement(b.Path) {
				continue
			}
			pairs = append(pairs, Pair{
				RepeatID: g.RepeatID,
				PathA:    a.Path,
				CovA:     a.Cov,
				PathB:    b.Path,
				CovB:     b.Cov,
			})
			used[a.Path.String()] = true
			used[b.Path.String()] = true
			break
		}
	}
	return pairs
}

// MatchAll runs MatchPairs over every group, keeping group order.
func MatchAll(groups []gaf.PathGroup) (pairs []Pair) {
	for _, g := range groups {
		pairs = append(pairs, MatchPairs(g)...)
	}
	return pairs
}
