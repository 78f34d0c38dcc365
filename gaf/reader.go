package gaf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/mudesheng/repeatpath/utils"
)

// ErrMalformedRecord marks a GAF line with fewer than the 12 mandatory columns.
var ErrMalformedRecord = errors.New("malformed GAF record")

const (
	gafMinFields = 12
	gafPathField = 5
	maxLineWarn  = 10
)

type ScanStats struct {
	Records   int // non-empty lines
	Malformed int // too few columns
	BadPaths  int // oriented paths that do not split into steps
	StableID  int // paths given as a stable id, not oriented steps
	OtherLen  int // oriented paths with other than 3 steps
	Kept      int // 3-step records through a repeat
}

// Skipped is the number of records dropped because they could not be decoded.
func (st ScanStats) Skipped() int {
	return st.Malformed + st.BadPaths
}

// LoadGAF scans a possibly compressed GAF file into agg.
func LoadGAF(fn string, numCPU int, progress bool, agg *Aggregator) (ScanStats, error) {
	fp, err := utils.OpenReader(fn, numCPU, progress)
	if err != nil {
		return ScanStats{}, err
	}
	defer fp.Close()
	st, err := Scan(fp, agg)
	if err != nil {
		return st, fmt.Errorf("read GAF %s: %w", fn, err)
	}
	return st, nil
}

// Scan reads GAF records from r. Every 3-step record through a repeat adds
// a coverage of one to its path in agg. Undecodable records are skipped
// and counted.
func Scan(r io.Reader, agg *Aggregator) (ScanStats, error) {
	var st ScanStats
	var lineNum int
	warn := utils.Warner{Max: maxLineWarn}
	buffp := bufio.NewReader(r)
	for {
		line, err := buffp.ReadString('\n')
		if err != nil && err != io.EOF {
			return st, err
		}
		lineNum++
		if perr := scanLine(&st, agg, strings.TrimRight(line, "\r\n")); perr != nil {
			warn.Warnf("[Scan] line %d: %v", lineNum, perr)
		}
		if err == io.EOF {
			break
		}
	}
	if n := warn.Suppressed(); n > 0 {
		log.Printf("WARN: [Scan] %d malformed records, %d not shown\n", warn.Count(), n)
	}
	return st, nil
}

func scanLine(st *ScanStats, agg *Aggregator, line string) error {
	if line == "" {
		return nil
	}
	st.Records++
	fields := strings.Split(line, "\t")
	if len(fields) < gafMinFields {
		st.Malformed++
		return fmt.Errorf("%w: %d columns, want at least %d", ErrMalformedRecord, len(fields), gafMinFields)
	}
	raw := fields[gafPathField]
	if raw == "" || (raw[0] != '>' && raw[0] != '<') {
		st.StableID++
		return nil
	}
	steps, err := SplitSteps(raw)
	if err != nil {
		st.BadPaths++
		return err
	}
	p, err := PathFromSteps(steps)
	if err != nil {
		st.OtherLen++
		return nil
	}
	kept, err := agg.AddPath(p, 1)
	if err != nil {
		return err
	}
	if kept {
		st.Kept++
	}
	return nil
}
