package tables

import (
	"golang.org/x/net/html"

	"github.com/tsawler/htmltable/dom"
)

// RowGroups holds a table's rows partitioned into head, body, and foot.
type RowGroups struct {
	Head []*html.Node
	Body []*html.Node
	Foot []*html.Node
}

// Sections partitions the rows of a table element. Head and foot rows are
// the tr descendants of thead and tfoot sections; body rows are the tr
// descendants of tbody sections concatenated with tr elements that are
// direct children of the table itself. A well-formed table populates only
// one of the two body sources.
func Sections(table *html.Node) RowGroups {
	return RowGroups{
		Head: sectionRows(table, "thead"),
		Body: append(sectionRows(table, "tbody"), dom.DirectChildren(table, "tr")...),
		Foot: sectionRows(table, "tfoot"),
	}
}

// PromoteImplicitHeader moves leading all-th body rows into the head when
// the table has no head rows. Many tables in the wild have no <thead>;
// their top row of th cells is the de facto header. Promotion stops at
// the first body row containing a non-header cell.
func (g *RowGroups) PromoteImplicitHeader() {
	if len(g.Head) > 0 {
		return
	}
	for len(g.Body) > 0 && RowIsAllHeader(g.Body[0]) {
		g.Head = append(g.Head, g.Body[0])
		g.Body = g.Body[1:]
	}
}

// cells extracts the cell lists for a group of rows, one list per row.
func (g RowGroups) cells(rows []*html.Node) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, tr := range rows {
		out[i] = Cells(tr)
	}
	return out
}

// HeadCells returns the cells of each head row.
func (g RowGroups) HeadCells() [][]Cell { return g.cells(g.Head) }

// BodyCells returns the cells of each body row.
func (g RowGroups) BodyCells() [][]Cell { return g.cells(g.Body) }

// FootCells returns the cells of each foot row.
func (g RowGroups) FootCells() [][]Cell { return g.cells(g.Foot) }

func sectionRows(table *html.Node, section string) []*html.Node {
	var rows []*html.Node
	for _, s := range dom.FindAll(table, section) {
		rows = append(rows, dom.FindAll(s, "tr")...)
	}
	return rows
}
