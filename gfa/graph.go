package gfa

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash"
)

// Orientation of a segment end in the bidirected graph.
type Orientation uint8

const (
	Forward Orientation = iota
	Backward
)

// Flip return the opposite strand
func (o Orientation) Flip() Orientation {
	if o == Forward {
		return Backward
	}
	return Forward
}

// Marker is the GAF path marker, '>' for Forward and '<' for Backward.
func (o Orientation) Marker() byte {
	if o == Forward {
		return '>'
	}
	return '<'
}

func (o Orientation) String() string {
	if o == Forward {
		return "+"
	}
	return "-"
}

// ParseOrientation accepts the GFA link orientation fields "+" and "-".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Backward, nil
	}
	return Forward, fmt.Errorf("unknown orientation %q", s)
}

type Segment struct {
	ID  string
	Len int
	Seq []byte // nil when the GFA sequence field is '*'
}

type Link struct {
	From       string
	FromOrient Orientation
	To         string
	ToOrient   Orientation
}

type Neighbor struct {
	ID     string
	Orient Orientation
}

// adjacency is indexed by Orientation
type adjacency [2][]Neighbor

// Graph is the in-memory index of a GFA graph. Every link is stored twice,
// once under each endpoint, so both ends see their neighbors. Parallel
// links are kept.
type Graph struct {
	segs  []Segment
	idx   map[string]int
	edges map[string]*adjacency
	links []Link
}

func NewGraph(segs []Segment, links []Link) *Graph {
	g := &Graph{
		idx:   make(map[string]int, len(segs)),
		edges: make(map[string]*adjacency, len(segs)),
	}
	for _, s := range segs {
		g.AddSegment(s)
	}
	for _, l := range links {
		g.AddLink(l)
	}
	return g
}

// AddSegment appends s. A repeated id replaces the earlier definition in
// place, keeping its position in the segment order, and reports true.
func (g *Graph) AddSegment(s Segment) (replaced bool) {
	if i, ok := g.idx[s.ID]; ok {
		g.segs[i] = s
		return true
	}
	g.segs = append(g.segs, s)
	g.idx[s.ID] = len(g.segs) - 1
	return false
}

func (g *Graph) AddLink(l Link) {
	g.links = append(g.links, l)
	g.adj(l.From)[l.FromOrient] = append(g.adj(l.From)[l.FromOrient], Neighbor{ID: l.To, Orient: l.ToOrient})
	g.adj(l.To)[l.ToOrient] = append(g.adj(l.To)[l.ToOrient], Neighbor{ID: l.From, Orient: l.FromOrient})
}

func (g *Graph) adj(id string) *adjacency {
	a, ok := g.edges[id]
	if !ok {
		a = new(adjacency)
		g.edges[id] = a
	}
	return a
}

// Segments returns the segments in the order they were added.
func (g *Graph) Segments() []Segment {
	return g.segs
}

func (g *Graph) Links() []Link {
	return g.links
}

func (g *Graph) Segment(id string) (Segment, bool) {
	i, ok := g.idx[id]
	if !ok {
		return Segment{}, false
	}
	return g.segs[i], true
}

func (g *Graph) SizeOf(id string) (int, bool) {
	s, ok := g.Segment(id)
	return s.Len, ok
}

func (g *Graph) NeighborsOf(id string, o Orientation) []Neighbor {
	a, ok := g.edges[id]
	if !ok {
		return nil
	}
	return a[o]
}

// Degree is the number of adjacency entries over both segment ends.
func (g *Graph) Degree(id string) int {
	a, ok := g.edges[id]
	if !ok {
		return 0
	}
	return len(a[Forward]) + len(a[Backward])
}

// Fingerprint hashes segment ids, lengths and links in input order.
func (g *Graph) Fingerprint() uint64 {
	h := xxhash.New()
	for _, s := range g.segs {
		h.Write([]byte(s.ID))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(s.Len)))
		h.Write([]byte{'\n'})
	}
	for _, l := range g.links {
		h.Write([]byte(l.From))
		h.Write([]byte{l.FromOrient.Marker()})
		h.Write([]byte(l.To))
		h.Write([]byte{l.ToOrient.Marker(), '\n'})
	}
	return h.Sum64()
}
