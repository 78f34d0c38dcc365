package repeat

import (
	"github.com/mudesheng/repeatpath/gfa"
)

type Options struct {
	SizeLimit      int // largest segment accepted as a repeat
	NeighborMin    int // smallest neighbor size allowed around a repeat
	InOutThreshold int // a repeat needs at least 2*InOutThreshold adjacency entries
}

type Candidate struct {
	ID   string
	Size int
}

// Detect returns the segments of g that pass the size, degree and neighbor
// size filters, in segment input order.
func Detect(g *gfa.Graph, opt Options) (cands []Candidate) {
	for _, s := range g.Segments() {
		if isRepeat(g, s, opt) {
			cands = append(cands, Candidate{ID: s.ID, Size: s.Len})
		}
	}
	return cands
}

func isRepeat(g *gfa.Graph, s gfa.Segment, opt Options) bool {
	if s.Len > opt.SizeLimit {
		return false
	}
	if g.Degree(s.ID) < 2*opt.InOutThreshold {
		return false
	}
	for _, o := range [2]gfa.Orientation{gfa.Forward, gfa.Backward} {
		for _, nb := range g.NeighborsOf(s.ID, o) {
			size, ok := g.SizeOf(nb.ID)
			if !ok || size < opt.NeighborMin {
				return false
			}
		}
	}
	return true
}

func IDSet(cands []Candidate) map[string]bool {
	set := make(map[string]bool, len(cands))
	for _, c := range cands {
		set[c.ID] = true
	}
	return set
}

func IDs(cands []Candidate) []string {
	ids := make([]string, len(cands))
	for i, c := range cands {
		ids[i] = c.ID
	}
	return ids
}
