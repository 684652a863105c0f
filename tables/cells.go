package tables

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/htmltable/dom"
)

// Cell is a read-only view of a single td or th element.
type Cell struct {
	Text         string // whitespace-normalized text content
	RowSpan      int    // number of rows the cell occupies, at least 1
	ColSpan      int    // number of columns the cell occupies, at least 1
	Header       bool   // true for th elements
	NumberFormat string // mso-number-format declaration from the style attribute, if any
}

// Cells returns the direct td and th children of a row element, in source
// order. Cells belonging to tables nested inside this row are not
// included.
func Cells(tr *html.Node) []Cell {
	nodes := dom.DirectChildren(tr, "td", "th")
	cells := make([]Cell, len(nodes))
	for i, td := range nodes {
		cells[i] = Cell{
			Text:         dom.NormalizeSpace(dom.Text(td)),
			RowSpan:      spanValue(td, "rowspan"),
			ColSpan:      spanValue(td, "colspan"),
			Header:       td.Data == "th",
			NumberFormat: msoNumberFormat(td),
		}
	}
	return cells
}

// RowIsAllHeader reports whether every cell of the row is a th element.
// A row with no cells at all counts as all-header, so empty rows at the
// top of a body are promoted along with a surrounding implicit header.
func RowIsAllHeader(tr *html.Node) bool {
	for _, c := range Cells(tr) {
		if !c.Header {
			return false
		}
	}
	return true
}

// spanValue parses a rowspan or colspan attribute. Absent, unparseable,
// and non-positive values all count as 1.
func spanValue(n *html.Node, key string) int {
	val, ok := dom.Attr(n, key)
	if !ok {
		return 1
	}
	v, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// msoNumberFormat extracts the mso-number-format declaration from a
// cell's style attribute. HTML exported from Office carries the original
// spreadsheet number format there, e.g. style='mso-number-format:"0\.00"'.
func msoNumberFormat(n *html.Node) string {
	style, ok := dom.Attr(n, "style")
	if !ok {
		return ""
	}
	for _, decl := range strings.Split(style, ";") {
		key, val, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "mso-number-format") {
			return strings.Trim(strings.TrimSpace(val), `"'`)
		}
	}
	return ""
}
