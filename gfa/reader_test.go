package gfa

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGFA = "H\tVN:Z:1.0\n" +
	"S\tu25\tACGTACGT\n" +
	"S\tu26\t*\tLN:i:6000\n" +
	"S\tu27\t*\n" +
	"L\tu26\t-\tu25\t+\t0M\n" +
	"L\tu25\t+\tu27\t+\t0M\n" +
	"P\tp1\tu25+,u27+\t*\n" +
	"L\tu25\tx\tu27\t+\t0M\n" +
	"S\tbad\n" +
	"S\tu28\t*\tLN:i:abc\n" +
	"L\tu27\t+\tu26\t-" // no trailing newline

func TestReadGFA(t *testing.T) {
	g, st, err := ReadGFA(strings.NewReader(sampleGFA))
	require.NoError(t, err)

	assert.Equal(t, 11, st.Lines)
	assert.Equal(t, 3, st.Segments)
	assert.Equal(t, 3, st.Links)
	assert.Equal(t, 3, st.Skipped)

	l, ok := g.SizeOf("u25")
	assert.True(t, ok)
	assert.Equal(t, 8, l)
	l, _ = g.SizeOf("u26")
	assert.Equal(t, 6000, l)
	l, ok = g.SizeOf("u27")
	assert.True(t, ok)
	assert.Equal(t, 0, l)
	_, ok = g.SizeOf("u28")
	assert.False(t, ok)

	s, _ := g.Segment("u25")
	assert.Equal(t, "ACGTACGT", string(s.Seq))
	s, _ = g.Segment("u26")
	assert.Nil(t, s.Seq)

	assert.Equal(t, 2, g.Degree("u25"))
	assert.Equal(t, 2, g.Degree("u26"))
	assert.Equal(t, []Neighbor{{ID: "u26", Orient: Backward}}, g.NeighborsOf("u27", Forward)[1:])
}

func TestReadGFA_DuplicateSegment(t *testing.T) {
	g, st, err := ReadGFA(strings.NewReader("S\tu1\t*\tLN:i:10\nS\tu2\tACGT\nS\tu1\t*\tLN:i:30\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, st.Segments)
	assert.Equal(t, 1, st.Duplicates)
	assert.Equal(t, 0, st.Skipped)
	require.Len(t, g.Segments(), 2)
	assert.Equal(t, "u1", g.Segments()[0].ID)
	assert.Equal(t, 30, g.Segments()[0].Len)
}

func TestParseLinkMalformed(t *testing.T) {
	_, err := ParseLink([]string{"L", "a", "+", "b"})
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	_, err = ParseLink([]string{"L", "a", "+", "b", "?"})
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	_, err = ParseSegment([]string{"S", "", "ACGT"})
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestLoadGFA(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "g.gfa")
	require.NoError(t, os.WriteFile(fn, []byte(sampleGFA), 0o644))

	g, st, err := LoadGFA(fn, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Segments)
	assert.Len(t, g.Segments(), 3)

	_, _, err = LoadGFA(filepath.Join(t.TempDir(), "missing.gfa"), 1)
	assert.Error(t, err)
}
