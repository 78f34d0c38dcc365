package recomb

import (
	"github.com/mudesheng/repeatpath/gaf"
)

// Result is everything reported for one set of repeat path groups.
type Result struct {
	Groups    []gaf.PathGroup
	Pairs     []Pair
	Potential float64
	RCI       float64
	Entropy   EntropySummary
}

func Analyze(groups []gaf.PathGroup) Result {
	pairs := MatchAll(groups)
	return Result{
		Groups:    groups,
		Pairs:     pairs,
		Potential: RecombinationPotential(pairs),
		RCI:       RCI(pairs),
		Entropy:   ComputeEntropy(groups),
	}
}
