package gfa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/mudesheng/repeatpath/utils"
)

// ErrMalformedRecord marks a segment or link line that cannot be decoded.
var ErrMalformedRecord = errors.New("malformed GFA record")

const maxLineWarn = 10

type ReadStats struct {
	Lines      int
	Segments   int
	Links      int
	Skipped    int // malformed S/L lines
	Duplicates int // S lines redefining an earlier segment id
}

// LoadGFA reads a possibly compressed GFA file.
func LoadGFA(fn string, numCPU int) (*Graph, ReadStats, error) {
	fp, err := utils.OpenReader(fn, numCPU, false)
	if err != nil {
		return nil, ReadStats{}, err
	}
	defer fp.Close()
	g, st, err := ReadGFA(fp)
	if err != nil {
		return nil, st, fmt.Errorf("read GFA %s: %w", fn, err)
	}
	return g, st, nil
}

// ReadGFA builds a Graph from the S and L records of r. Other record types
// are ignored, malformed S/L lines are skipped with a warning.
func ReadGFA(r io.Reader) (*Graph, ReadStats, error) {
	var st ReadStats
	g := NewGraph(nil, nil)
	warn := utils.Warner{Max: maxLineWarn}
	buffp := bufio.NewReader(r)
	for {
		line, err := buffp.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, st, err
		}
		if len(line) > 0 {
			st.Lines++
			if perr := addRecord(g, &st, line); perr != nil {
				st.Skipped++
				warn.Warnf("[ReadGFA] line %d: %v", st.Lines, perr)
			}
		}
		if err == io.EOF {
			break
		}
	}
	if n := warn.Suppressed(); n > 0 {
		log.Printf("WARN: [ReadGFA] %d malformed lines, %d not shown\n", warn.Count(), n)
	}
	if st.Duplicates > 0 {
		log.Printf("WARN: [ReadGFA] %d duplicate segment ids, last definition kept\n", st.Duplicates)
	}
	return g, st, nil
}

func addRecord(g *Graph, st *ReadStats, line string) error {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil
	}
	fields := strings.Split(line, "\t")
	switch fields[0] {
	case "S":
		s, err := ParseSegment(fields)
		if err != nil {
			return err
		}
		if g.AddSegment(s) {
			st.Duplicates++
		} else {
			st.Segments++
		}
	case "L":
		l, err := ParseLink(fields)
		if err != nil {
			return err
		}
		g.AddLink(l)
		st.Links++
	}
	return nil
}

// ParseSegment decodes the tab split fields of an S line. A '*' sequence
// takes its length from the LN:i tag, or 0 without one.
func ParseSegment(fields []string) (Segment, error) {
	var s Segment
	if len(fields) < 3 || fields[1] == "" || fields[2] == "" {
		return s, fmt.Errorf("%w: segment needs name and sequence", ErrMalformedRecord)
	}
	s.ID = fields[1]
	if fields[2] != "*" {
		s.Seq = []byte(fields[2])
		s.Len = len(s.Seq)
		return s, nil
	}
	for _, tag := range fields[3:] {
		if !strings.HasPrefix(tag, "LN:") {
			continue
		}
		if !strings.HasPrefix(tag, "LN:i:") {
			return s, fmt.Errorf("%w: bad LN tag %q", ErrMalformedRecord, tag)
		}
		v, err := strconv.Atoi(tag[5:])
		if err != nil || v < 0 {
			return s, fmt.Errorf("%w: bad LN tag %q", ErrMalformedRecord, tag)
		}
		s.Len = v
	}
	return s, nil
}

func ParseLink(fields []string) (Link, error) {
	var l Link
	if len(fields) < 5 || fields[1] == "" || fields[3] == "" {
		return l, fmt.Errorf("%w: link needs from, orient, to, orient", ErrMalformedRecord)
	}
	var err error
	l.From, l.To = fields[1], fields[3]
	if l.FromOrient, err = ParseOrientation(fields[2]); err != nil {
		return l, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if l.ToOrient, err = ParseOrientation(fields[4]); err != nil {
		return l, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return l, nil
}
