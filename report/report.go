// Package report prints analysis results as tab separated tables.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mudesheng/repeatpath/gaf"
	"github.com/mudesheng/repeatpath/recomb"
	"github.com/mudesheng/repeatpath/repeat"
)

// tw keeps the first write error so callers check once at Flush.
type tw struct {
	w   *bufio.Writer
	err error
}

func newTW(w io.Writer) *tw {
	return &tw{w: bufio.NewWriter(w)}
}

func (t *tw) printf(format string, a ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, a...)
}

func (t *tw) flush() error {
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}

// WriteRepeats prints the repeat candidate table, no header when empty.
func WriteRepeats(w io.Writer, cands []repeat.Candidate) error {
	t := newTW(w)
	writeRepeats(t, cands)
	return t.flush()
}

func writeRepeats(t *tw, cands []repeat.Candidate) {
	if len(cands) == 0 {
		return
	}
	t.printf("ID\tSize\n")
	for _, c := range cands {
		t.printf("%s\t%d\n", c.ID, c.Size)
	}
}

// writePaths reports whether a table was written.
func writePaths(t *tw, groups []gaf.PathGroup) bool {
	var n int
	for _, g := range groups {
		n += len(g.Paths)
	}
	if n == 0 {
		return false
	}
	t.printf("repeat_id\tcoverage\tpath\n")
	for _, g := range groups {
		for _, pc := range g.Paths {
			t.printf("%s\t%d\t%s\n", g.RepeatID, pc.Cov, pc.Path)
		}
	}
	return true
}

func writePairs(t *tw, pairs []recomb.Pair) bool {
	if len(pairs) == 0 {
		return false
	}
	t.printf("path_1\tcov_1\tpath_2\tcov_2\trecomb_score\n")
	for _, p := range pairs {
		s, ok := p.Score()
		if !ok {
			continue
		}
		t.printf("%s\t%d\t%s\t%d\t%.3f\n", p.PathA, p.CovA, p.PathB, p.CovB, s)
	}
	return true
}

func writeEntropy(t *tw, es recomb.EntropySummary) {
	t.printf("\nRepeat node\tPath count\tEntropy\n")
	for _, r := range es.Records {
		t.printf("%s\t%d\t%.3f\n", r.RepeatID, r.PathCount, r.Entropy)
	}
	t.printf("\nMean entropy: %.3f\n", es.Mean)
	t.printf("Total entropy: %.3f\n", es.Total)
}

// WriteResult prints the path table, the reverse complement pair table,
// the recombination summary and the entropy table, in that order. A blank
// line follows each table that was written.
func WriteResult(w io.Writer, res recomb.Result) error {
	t := newTW(w)
	if writePaths(t, res.Groups) {
		t.printf("\n")
	}
	if writePairs(t, res.Pairs) {
		t.printf("\n")
	}
	t.printf("Recombination potential: %.3f\n", res.Potential)
	t.printf("RCI: %.3f\n", res.RCI)
	writeEntropy(t, res.Entropy)
	return t.flush()
}
