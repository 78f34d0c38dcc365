package repeat

import (
	"fmt"
	"io"
	"log"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/mudesheng/repeatpath/gfa"
)

const fastaWidth = 60

// WriteFasta writes the sequence of every candidate to w. Segments stored
// without a sequence are skipped. It returns the number of records written.
func WriteFasta(w io.Writer, g *gfa.Graph, cands []Candidate) (n int, err error) {
	fw := fasta.NewWriter(w, fastaWidth)
	for _, c := range cands {
		s, ok := g.Segment(c.ID)
		if !ok || len(s.Seq) == 0 {
			log.Printf("WARN: [WriteFasta] repeat %s has no sequence in the graph, skipped\n", c.ID)
			continue
		}
		ls := linear.NewSeq(c.ID, alphabet.BytesToLetters(s.Seq), alphabet.DNAredundant)
		ls.Desc = fmt.Sprintf("LN:i:%d", c.Size)
		if _, err = fw.Write(ls); err != nil {
			return n, fmt.Errorf("write repeat %s: %w", c.ID, err)
		}
		n++
	}
	return n, nil
}
