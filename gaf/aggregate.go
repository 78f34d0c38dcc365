package gaf

import (
	"errors"
	"fmt"
	"sort"
)

// ErrBadCoverage is returned for a coverage below one.
var ErrBadCoverage = errors.New("coverage must be at least 1")

type PathCount struct {
	Path Path
	Cov  int
}

// PathGroup holds the distinct paths through one repeat, by descending
// coverage and first-seen order on ties.
type PathGroup struct {
	RepeatID string
	Paths    []PathCount
}

// TotalCov is the summed coverage of the group.
func (g PathGroup) TotalCov() (total int) {
	for _, pc := range g.Paths {
		total += pc.Cov
	}
	return total
}

type pathKey struct {
	repeat string
	path   string
}

// Aggregator counts the coverage of every distinct 3-step path whose focal
// segment is a repeat. Paths are equal when their canonical strings are.
type Aggregator struct {
	repeats map[string]bool
	index   map[pathKey]int
	entries []pathEntry
}

type pathEntry struct {
	repeat string
	PathCount
}

func NewAggregator(repeats map[string]bool) *Aggregator {
	return &Aggregator{
		repeats: repeats,
		index:   make(map[pathKey]int),
	}
}

// Add parses raw and accumulates cov for it. It reports whether the path
// runs through a repeat.
func (a *Aggregator) Add(raw string, cov int) (bool, error) {
	p, err := ParsePath(raw)
	if err != nil {
		return false, err
	}
	return a.AddPath(p, cov)
}

func (a *Aggregator) AddPath(p Path, cov int) (bool, error) {
	if cov < 1 {
		return false, fmt.Errorf("%w: %d for %s", ErrBadCoverage, cov, p)
	}
	repeat := p.Focal().SegID
	if !a.repeats[repeat] {
		return false, nil
	}
	k := pathKey{repeat: repeat, path: p.String()}
	if i, ok := a.index[k]; ok {
		a.entries[i].Cov += cov
		return true, nil
	}
	a.index[k] = len(a.entries)
	a.entries = append(a.entries, pathEntry{repeat: repeat, PathCount: PathCount{Path: p, Cov: cov}})
	return true, nil
}

// Len is the number of distinct paths seen.
func (a *Aggregator) Len() int {
	return len(a.entries)
}

// Groups returns one PathGroup per repeat, sorted by repeat id.
func (a *Aggregator) Groups() []PathGroup {
	byRepeat := make(map[string][]PathCount)
	var ids []string
	for _, e := range a.entries {
		if _, ok := byRepeat[e.repeat]; !ok {
			ids = append(ids, e.repeat)
		}
		byRepeat[e.repeat] = append(byRepeat[e.repeat], e.PathCount)
	}
	sort.Strings(ids)

	groups := make([]PathGroup, 0, len(ids))
	for _, id := range ids {
		paths := byRepeat[id]
		sort.SliceStable(paths, func(i, j int) bool {
			return paths[i].Cov > paths[j].Cov
		})
		groups = append(groups, PathGroup{RepeatID: id, Paths: paths})
	}
	return groups
}
