package recomb

import (
	"math"
	"sort"

	"github.com/mudesheng/repeatpath/gaf"
)

type EntropyRecord struct {
	RepeatID  string
	PathCount int
	Entropy   float64
}

type EntropySummary struct {
	Records []EntropyRecord
	Mean    float64
	Total   float64
}

// PathEntropy is the Shannon entropy (bits) of the coverage distribution
// over the distinct paths of g. ok is false when g has no coverage.
func PathEntropy(g gaf.PathGroup) (h float64, ok bool) {
	total := g.TotalCov()
	if total == 0 {
		return 0, false
	}
	for _, pc := range g.Paths {
		p := float64(pc.Cov) / float64(total)
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h, true
}

func ComputeEntropy(groups []gaf.PathGroup) (es EntropySummary) {
	for _, g := range groups {
		if len(g.Paths) == 0 {
			continue
		}
		h, ok := PathEntropy(g)
		if !ok {
			continue
		}
		es.Records = append(es.Records, EntropyRecord{RepeatID: g.RepeatID, PathCount: len(g.Paths), Entropy: h})
		es.Total += h
	}
	if len(es.Records) > 0 {
		es.Mean = es.Total / float64(len(es.Records))
	}
	return es
}

// RecombinationPotential is the mean pair score, pairs without coverage
// left out.
func RecombinationPotential(pairs []Pair) float64 {
	var sum float64
	var n int
	for _, p := range pairs {
		if s, ok := p.Score(); ok {
			sum += s
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

type repeatScores struct {
	scores    []float64
	pathCount int
}

// RCI is the Recombination Complexity Index
//
//	RCI = 1/R * sum_r S_r * log2(P_r)
//
// over the R repeats with at least one scored pair, where S_r is the mean
// pair score of repeat r and P_r its number of paired paths (2 per pair).
func RCI(pairs []Pair) float64 {
	groups := make(map[string]*repeatScores)
	for _, p := range pairs {
		s, ok := p.Score()
		if !ok {
			continue
		}
		rs, found := groups[p.RepeatID]
		if !found {
			rs = &repeatScores{}
			groups[p.RepeatID] = rs
		}
		rs.scores = append(rs.scores, s)
		rs.pathCount += 2
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var total float64
	var n int
	for _, id := range ids {
		rs := groups[id]
		if len(rs.scores) == 0 || rs.pathCount <= 1 {
			continue
		}
		total += mean(rs.scores) * math.Log2(float64(rs.pathCount))
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

func mean(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum / float64(len(a))
}
