package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/distvec/cost"
	"github.com/katalvlaran/distvec/trace"
)

// style bundles the markup-specific atoms the shared rendering code needs.
type style struct {
	inf   string
	arrow string
	sub   func(base, sub string) string
}

var htmlStyle = style{
	inf:   "&infin;",
	arrow: "&#8594;",
	sub:   func(base, sub string) string { return base + "<sub>" + sub + "</sub>" },
}

var textStyle = style{
	inf:   "inf",
	arrow: "->",
	sub:   func(base, sub string) string { return base + "_" + sub },
}

// HTMLEntry renders one vector entry with HTML entities: "&infin;", "0",
// a bare weight for a direct edge, or "9(B)" for a route via neighbor B.
func HTMLEntry[W cost.Weight](v cost.DVValue[W], names []string) string {
	return entry(htmlStyle, v, names)
}

// TextEntry is HTMLEntry's plain-text twin.
func TextEntry[W cost.Weight](v cost.DVValue[W], names []string) string {
	return entry(textStyle, v, names)
}

func entry[W cost.Weight](st style, v cost.DVValue[W], names []string) string {
	switch {
	case v.IsUnreachable():
		return st.inf
	case v.IsSelf():
		return "0"
	default:
		w, _ := v.Cost().Finite()
		if via, ok := v.ViaNeighbor(); ok {
			return fmt.Sprintf("%v(%s)", w, names[via])
		}
		return fmt.Sprintf("%v", w)
	}
}

// HTMLFormula renders a relaxation's full justification as the classic
// three-section min formula, with subscripts in HTML.
func HTMLFormula[W cost.Weight](r trace.Relaxation[W], names []string) string {
	return formula(htmlStyle, r, names)
}

// TextFormula is HTMLFormula's plain-text twin.
func TextFormula[W cost.Weight](r trace.Relaxation[W], names []string) string {
	return formula(textStyle, r, names)
}

// formula writes d_src(dst)=min(<symbols>)=min(<numbers>)=<winner>.
func formula[W cost.Weight](st style, r trace.Relaxation[W], names []string) string {
	var b strings.Builder
	b.WriteString(st.sub("d", names[r.Source]))
	b.WriteByte('(')
	b.WriteString(names[r.Dest])
	b.WriteString(")=min(")

	for i, c := range r.Candidates {
		if i > 0 {
			b.WriteString(", ")
		}
		for j, term := range c.Terms {
			if j > 0 {
				b.WriteByte('+')
			}
			b.WriteString(symbol(st, term, names))
		}
	}

	b.WriteString(")=min(")
	for i, c := range r.Candidates {
		if i > 0 {
			b.WriteString(", ")
		}
		for j, term := range c.Terms {
			if j > 0 {
				b.WriteByte('+')
			}
			b.WriteString(costString(st, term.Cost))
		}
	}

	b.WriteString(")=")
	if best, ok := r.Best(); ok {
		b.WriteString(costString(st, best.Sum))
	} else {
		b.WriteString(st.inf)
	}
	return b.String()
}

// symbol renders one term symbolically: C(a,b) for a direct edge cost,
// d_m(b) for a neighbor's advertised distance.
func symbol[W cost.Weight](st style, t trace.Term[W], names []string) string {
	if t.Kind == trace.TermDirect {
		return fmt.Sprintf("C(%s,%s)", names[t.From], names[t.To])
	}
	return fmt.Sprintf("%s(%s)", st.sub("d", names[t.From]), names[t.To])
}

func costString[W cost.Weight](st style, c cost.Cost[W]) string {
	if c.IsInfinite() {
		return st.inf
	}
	return c.String()
}
