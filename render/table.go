package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/distvec/cost"
	"github.com/katalvlaran/distvec/relax"
	"github.com/katalvlaran/distvec/world"
)

// WriteNodeTable writes node's distance table as HTML: a header row of all
// node names, the node's own vector, and one row per neighbor showing the
// advertised vector the node relaxes against. When next is non-nil it is
// the node's freshly relaxed vector; cells whose cost moved render as
// "old&#8594;new".
func WriteNodeTable[W cost.Weight](wr io.Writer, w *world.World[W], node int, next []cost.DVValue[W]) error {
	names := w.Names()

	if _, err := fmt.Fprintf(wr, "<table>\n\t<tr>\n\t\t<th>%s</th>\n", names[node]); err != nil {
		return fmt.Errorf("render: node table: %w", err)
	}
	for _, name := range names {
		fmt.Fprintf(wr, "\t\t<th>%s</th>\n", name)
	}
	fmt.Fprintf(wr, "\t</tr>\n\t<tr>\n\t\t<th>%s</th>\n", names[node])

	own := w.Vector(node)
	for d, old := range own {
		switch {
		case next != nil && !next[d].EqualCost(old):
			fmt.Fprintf(wr, "\t\t<td>%s%s%s</td>\n",
				HTMLEntry(old, names), htmlStyle.arrow, HTMLEntry(next[d], names))
		case next != nil:
			fmt.Fprintf(wr, "\t\t<td>%s</td>\n", HTMLEntry(next[d], names))
		default:
			fmt.Fprintf(wr, "\t\t<td>%s</td>\n", HTMLEntry(old, names))
		}
	}
	fmt.Fprintf(wr, "\t</tr>\n")

	for _, l := range w.Links(node) {
		fmt.Fprintf(wr, "\t<tr>\n\t\t<th>%s</th>\n", names[l.To])
		for _, v := range w.Advertised(l.To) {
			fmt.Fprintf(wr, "\t\t<td>%s</td>\n", HTMLEntry(v, names))
		}
		fmt.Fprintf(wr, "\t</tr>\n")
	}

	if _, err := fmt.Fprintf(wr, "</table>\n"); err != nil {
		return fmt.Errorf("render: node table: %w", err)
	}
	return nil
}

// WriteState writes the whole world at its current generation: a heading
// and one table per node. Used for the post-mutation snapshot.
func WriteState[W cost.Weight](wr io.Writer, w *world.World[W]) error {
	if _, err := fmt.Fprintf(wr, "<h2>t=%d</h2>\n", w.Generation()); err != nil {
		return fmt.Errorf("render: state: %w", err)
	}
	for i := 0; i < w.Size(); i++ {
		if err := WriteNodeTable(wr, w, i, nil); err != nil {
			return err
		}
	}
	return nil
}

// WriteRound writes one relaxation round: the round heading, each node's
// table (relaxed nodes show old&#8594;new transitions against the pre-round
// world prev), and a details block with one min-formula per recomputed
// entry of each relaxed node.
func WriteRound[W cost.Weight](wr io.Writer, prev *world.World[W], res *relax.Result[W]) error {
	if _, err := fmt.Fprintf(wr, "<h2>t=%d</h2>\n", res.Round); err != nil {
		return fmt.Errorf("render: round: %w", err)
	}
	names := prev.Names()

	for i := 0; i < prev.Size(); i++ {
		if !prev.Pending(i) {
			if err := WriteNodeTable(wr, prev, i, nil); err != nil {
				return err
			}
			continue
		}

		// A no-change round has no committed world; the "new" vector is
		// then simply the old one.
		next := prev.Vector(i)
		if res.Next != nil {
			next = res.Next.Vector(i)
		}
		if err := WriteNodeTable(wr, prev, i, next); err != nil {
			return err
		}

		fmt.Fprintf(wr, "<div class=\"details\">\n")
		for _, tr := range res.Traces {
			if tr.Source != i {
				continue
			}
			fmt.Fprintf(wr, "\t<div>%s</div>\n", HTMLFormula(tr, names))
		}
		if _, err := fmt.Fprintf(wr, "</div>\n"); err != nil {
			return fmt.Errorf("render: round: %w", err)
		}
	}
	return nil
}
