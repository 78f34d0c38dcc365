package gfa

import (
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// GraphvizRepeats writes a DOT graph of the repeat segments in ids and the
// links touching them. Repeats are drawn red, their neighbors green.
func GraphvizRepeats(g *Graph, ids []string, w io.Writer) error {
	repeats := make(map[string]bool, len(ids))
	for _, id := range ids {
		repeats[id] = true
	}

	gv := gographviz.NewGraph()
	if err := gv.SetName("G"); err != nil {
		return err
	}
	if err := gv.SetDir(true); err != nil {
		return err
	}
	if err := gv.SetStrict(false); err != nil {
		return err
	}

	added := make(map[string]bool)
	addNode := func(id string) error {
		if added[id] {
			return nil
		}
		added[id] = true
		color := "Green"
		if repeats[id] {
			color = "Red"
		}
		label := "ID:" + id
		if l, ok := g.SizeOf(id); ok {
			label += " len:" + strconv.Itoa(l)
		}
		return gv.AddNode("G", strconv.Quote(id), map[string]string{
			"color": color,
			"shape": "box",
			"label": strconv.Quote(label),
		})
	}

	for _, id := range ids {
		if err := addNode(id); err != nil {
			return err
		}
	}
	for _, l := range g.Links() {
		if !repeats[l.From] && !repeats[l.To] {
			continue
		}
		if err := addNode(l.From); err != nil {
			return err
		}
		if err := addNode(l.To); err != nil {
			return err
		}
		err := gv.AddEdge(strconv.Quote(l.From), strconv.Quote(l.To), true, map[string]string{
			"color": "Blue",
			"label": strconv.Quote(l.FromOrient.String() + l.ToOrient.String()),
		})
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, gv.String())
	return err
}
