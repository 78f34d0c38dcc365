package gaf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mudesheng/repeatpath/gfa"
)

// ErrMalformedPath is returned when a path is not three oriented steps.
var ErrMalformedPath = errors.New("malformed path")

// Step is one oriented segment of an alignment path.
type Step struct {
	SegID  string
	Orient gfa.Orientation
}

// Flip is the same segment read on the other strand.
func (s Step) Flip() Step {
	return Step{SegID: s.SegID, Orient: s.Orient.Flip()}
}

func (s Step) String() string {
	return string(s.Orient.Marker()) + s.SegID
}

// Path is a read traversal entry -> focal -> exit.
type Path [3]Step

func (p Path) Entry() Step { return p[0] }
func (p Path) Focal() Step { return p[1] }
func (p Path) Exit() Step  { return p[2] }

// String returns the canonical form, e.g. "<u28<u25>u27".
func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteByte(s.Orient.Marker())
		sb.WriteString(s.SegID)
	}
	return sb.String()
}

// IsReverseComplement reports whether q is p read on the other strand:
// entry and exit swap with flipped orientations and the focal segment is
// the same one, flipped.
func (p Path) IsReverseComplement(q Path) bool {
	return p.Entry() == q.Exit().Flip() &&
		p.Exit() == q.Entry().Flip() &&
		p.Focal() == q.Focal().Flip()
}

// ParsePath decodes a 3 step oriented path such as ">u28<u25>u26".
func ParsePath(raw string) (Path, error) {
	steps, err := SplitSteps(raw)
	if err != nil {
		return Path{}, err
	}
	p, err := PathFromSteps(steps)
	if err != nil {
		return p, fmt.Errorf("%q: %w", raw, err)
	}
	return p, nil
}

// PathFromSteps builds a Path from exactly three steps.
func PathFromSteps(steps []Step) (Path, error) {
	var p Path
	if len(steps) != len(p) {
		return p, fmt.Errorf("%w: %d steps, want 3", ErrMalformedPath, len(steps))
	}
	copy(p[:], steps)
	return p, nil
}

// SplitSteps splits an oriented path of any length into its steps. Every
// step must start with '>' or '<' followed by a non-empty segment id.
func SplitSteps(raw string) ([]Step, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty path", ErrMalformedPath)
	}
	var steps []Step
	for i := 0; i < len(raw); {
		var st Step
		switch raw[i] {
		case '>':
			st.Orient = gfa.Forward
		case '<':
			st.Orient = gfa.Backward
		default:
			return nil, fmt.Errorf("%w: %q has no orientation at offset %d", ErrMalformedPath, raw, i)
		}
		j := i + 1
		for j < len(raw) && raw[j] != '>' && raw[j] != '<' {
			j++
		}
		if j == i+1 {
			return nil, fmt.Errorf("%w: %q has an empty segment id at offset %d", ErrMalformedPath, raw, i)
		}
		st.SegID = raw[i+1 : j]
		steps = append(steps, st)
		i = j
	}
	return steps, nil
}
