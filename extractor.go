package htmltable

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"

	"github.com/tsawler/htmltable/dom"
	"github.com/tsawler/htmltable/format"
	"github.com/tsawler/htmltable/model"
	"github.com/tsawler/htmltable/tables"
	"github.com/tsawler/htmltable/xls"
)

// Extractor provides a fluent interface for extracting tables from HTML.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one of filename or source is set)
	filename string
	source   io.Reader

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		source:   e.source,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Table selects a table by its zero-based position in document order.
// Multiple calls are cumulative; each selected table appears in the
// result of ExtractAll.
//
// Example:
//
//	tbl, _, err := htmltable.Open("report.html").Table(2).Extract()
func (e *Extractor) Table(index int) *Extractor {
	return e.Tables(ByPosition(index))
}

// Tables selects one or more tables by identifier. Multiple calls are
// cumulative and request order is preserved in the result of ExtractAll.
//
// Example:
//
//	coll, _, err := htmltable.Open("report.html").
//	    Tables(htmltable.ByPosition(0), htmltable.ByPosition(3)).
//	    ExtractAll()
func (e *Extractor) Tables(ids ...TableID) *Extractor {
	newExt := e.clone()
	newExt.options.ids = append(newExt.options.ids, ids...)
	return newExt
}

// NoHeader configures the extractor to treat the table's first row as
// data rather than column names. Combine with ColumnNames to supply
// names; without it, columns are named column_1, column_2, and so on.
//
// Example:
//
//	tbl, _, err := htmltable.Open("raw.html").NoHeader().Extract()
func (e *Extractor) NoHeader() *Extractor {
	newExt := e.clone()
	newExt.options.header = false
	return newExt
}

// ColumnNames supplies explicit column names, used when the header row
// is disabled via NoHeader. When the header row is enabled it takes
// precedence over names supplied here.
//
// Example:
//
//	tbl, _, err := htmltable.Open("raw.html").
//	    NoHeader().
//	    ColumnNames("city", "population").
//	    Extract()
func (e *Extractor) ColumnNames(names ...string) *Extractor {
	newExt := e.clone()
	newExt.options.columnNames = append([]string(nil), names...)
	return newExt
}

// ColumnTypes supplies explicit column type descriptors to attach to the
// extracted table. The count must match the table's column count.
//
// Example:
//
//	tbl, _, err := htmltable.Open("report.html").
//	    ColumnTypes(model.Text(), model.Number()).
//	    Extract()
func (e *Extractor) ColumnTypes(types ...model.Type) *Extractor {
	newExt := e.clone()
	newExt.options.columnTypes = append([]model.Type(nil), types...)
	return newExt
}

// Limit caps the number of body rows read from each table. The limit is
// applied to raw rows before span expansion; rows that would only exist
// to carry a rowspan continuation past the limit are discarded with a
// warning. A negative n means no limit.
//
// Example:
//
//	tbl, warnings, err := htmltable.Open("big.html").Limit(100).Extract()
func (e *Extractor) Limit(n int) *Extractor {
	newExt := e.clone()
	newExt.options.rowLimit = n
	newExt.options.hasLimit = n >= 0
	return newExt
}

// Encoding sets the character encoding of the input, as an IANA label
// such as "windows-1252" or "shift_jis". The default is utf-8.
//
// Example:
//
//	tbl, _, err := htmltable.Open("legacy.html").Encoding("windows-1252").Extract()
func (e *Extractor) Encoding(label string) *Extractor {
	newExt := e.clone()
	newExt.options.encoding = label
	return newExt
}

// DetectEncoding configures the extractor to determine the input
// encoding from a byte order mark, a meta charset declaration, or
// content sniffing, instead of assuming utf-8.
//
// Example:
//
//	tbl, _, err := htmltable.Open("scraped.html").DetectEncoding().Extract()
func (e *Extractor) DetectEncoding() *Extractor {
	newExt := e.clone()
	newExt.options.encoding = ""
	return newExt
}

// DisplayedOnly configures the extractor to skip tables hidden with an
// inline style of display:none. Positions passed to Table and
// ByPosition then count visible tables only.
//
// Example:
//
//	tbl, _, err := htmltable.Open("page.html").DisplayedOnly().Extract()
func (e *Extractor) DisplayedOnly() *Extractor {
	newExt := e.clone()
	newExt.options.displayedOnly = true
	return newExt
}

// InferTypes configures the extractor to derive column types from
// mso-number-format cell styles, which Excel emits when saving a sheet
// as HTML. Cells without a recognized format are typed as text.
// Explicit ColumnTypes take precedence.
//
// Example:
//
//	tbl, _, err := htmltable.Open("export.html").InferTypes().Extract()
func (e *Extractor) InferTypes() *Extractor {
	newExt := e.clone()
	newExt.options.inferTypes = true
	return newExt
}

// FormatOverrides supplies additional mso-number-format mappings used by
// InferTypes, checked before the built-in table. Keys are the literal
// style values, for example `0\.00`.
//
// Example:
//
//	tbl, _, err := htmltable.Open("export.html").
//	    InferTypes().
//	    FormatOverrides(map[string]model.Type{`0\.000`: model.Number()}).
//	    Extract()
func (e *Extractor) FormatOverrides(overrides map[string]model.Type) *Extractor {
	newExt := e.clone()
	if newExt.options.formatOverride == nil {
		newExt.options.formatOverride = make(map[string]model.Type, len(overrides))
	}
	for k, v := range overrides {
		newExt.options.formatOverride[k] = v
	}
	return newExt
}

// AllowRagged configures the extractor to accept tables whose expanded
// rows have uneven widths: short rows are padded with empty strings and
// long rows truncated. Without it, uneven widths are an error.
//
// Example:
//
//	tbl, _, err := htmltable.Open("messy.html").AllowRagged().Extract()
func (e *Extractor) AllowRagged() *Extractor {
	newExt := e.clone()
	newExt.options.allowRagged = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Extract parses the input and extracts a single table. If no table was
// selected via Table or Tables, the first table in the document is used;
// if several were selected, the first selection is used.
//
// Returns the extracted table, any warnings encountered during
// processing, and an error if extraction failed.
//
// Example:
//
//	tbl, warnings, err := htmltable.Open("report.html").Extract()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", htmltable.FormatWarnings(warnings))
//	}
func (e *Extractor) Extract() (*model.Table, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	nodes, err := e.parse()
	if err != nil {
		return nil, nil, err
	}

	id := ByPosition(0)
	if len(e.options.ids) > 0 {
		id = e.options.ids[0]
	}

	return e.assemble(nodes, id)
}

// ExtractAll parses the input and extracts every selected table,
// returning them as an ordered Collection keyed by identifier. If no
// table was selected, the collection holds the document's first table.
//
// Example:
//
//	coll, warnings, err := htmltable.Open("report.html").
//	    Tables(htmltable.ByPosition(0), htmltable.ByPosition(2)).
//	    ExtractAll()
//	for _, id := range coll.IDs() {
//	    tbl, _ := coll.Get(id)
//	    fmt.Printf("%s: %d rows\n", id, tbl.RowCount())
//	}
func (e *Extractor) ExtractAll() (*Collection, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	nodes, err := e.parse()
	if err != nil {
		return nil, nil, err
	}

	ids := e.options.ids
	if len(ids) == 0 {
		ids = []TableID{ByPosition(0)}
	}

	coll := newCollection()
	var warnings []Warning
	for _, id := range ids {
		tbl, warns, err := e.assemble(nodes, id)
		if err != nil {
			return nil, warnings, err
		}
		warnings = append(warnings, warns...)
		coll.add(id, tbl)
	}

	return coll, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// parse reads the input, rejects obviously foreign formats, decodes the
// configured encoding, and returns the document's table nodes.
func (e *Extractor) parse() ([]*html.Node, error) {
	var src io.Reader
	if e.source != nil {
		src = e.source
	} else {
		if e.filename == "" {
			return nil, fmt.Errorf("no input specified")
		}
		f, err := os.Open(e.filename)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		defer f.Close()
		src = f
	}

	br := bufio.NewReader(src)
	magic, err := br.Peek(512)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	switch f := format.DetectFromMagic(magic); f {
	case format.PDF, format.Archive:
		return nil, fmt.Errorf("input appears to be a %s, not HTML", f)
	}

	decoded, err := dom.NewReader(br, e.options.encoding)
	if err != nil {
		return nil, err
	}

	doc, err := dom.Parse(decoded)
	if err != nil {
		return nil, err
	}

	nodes := dom.Tables(doc)
	if e.options.displayedOnly {
		nodes = dom.VisibleTables(nodes)
	}
	return nodes, nil
}

// resolve maps a table identifier to a parsed table node.
func resolve(nodes []*html.Node, id TableID) (*html.Node, error) {
	switch id.kind {
	case idPosition:
		if id.pos < 0 || id.pos >= len(nodes) {
			return nil, fmt.Errorf("table position %d out of range (document has %d tables)", id.pos, len(nodes))
		}
		return nodes[id.pos], nil
	case idName:
		return nil, fmt.Errorf("%s: %w", id, ErrNameLookupUnsupported)
	default:
		return nil, fmt.Errorf("unrecognized table identifier: %s", id)
	}
}

// assemble extracts one table: classify rows into sections, apply the
// row limit, promote an implicit header, expand spans, and build the
// output table.
func (e *Extractor) assemble(nodes []*html.Node, id TableID) (*model.Table, []Warning, error) {
	node, err := resolve(nodes, id)
	if err != nil {
		return nil, nil, err
	}

	groups := tables.Sections(node)
	if e.options.hasLimit && len(groups.Body) > e.options.rowLimit {
		groups.Body = groups.Body[:e.options.rowLimit]
	}
	groups.PromoteImplicitHeader()

	head := tables.ExpandSpans(groups.HeadCells())
	body := tables.ExpandSpans(groups.BodyCells())
	// Footer rows are classified and expanded for span bookkeeping but do
	// not contribute to the output table.
	_ = tables.ExpandSpans(groups.FootCells())

	var warnings []Warning

	// Rows synthesized by rowspans reaching past the limit are discarded.
	if e.options.hasLimit && len(body) > e.options.rowLimit {
		n := len(body) - e.options.rowLimit
		body = body[:e.options.rowLimit]
		warnings = append(warnings, Warning{
			Table:   id,
			Message: fmt.Sprintf("discarded %d rowspan continuation row(s) beyond the row limit of %d", n, e.options.rowLimit),
		})
	}

	names := e.options.columnNames
	if e.options.header && len(head) > 0 {
		names = head[0]
	}
	if len(names) == 0 {
		if len(body) == 0 {
			return nil, warnings, fmt.Errorf("%s has no rows and no column names", id)
		}
		// Empty names become positional (column_1, column_2, ...) during
		// construction.
		names = make([]string, len(body[0]))
	}

	if e.options.allowRagged {
		if n := raggedRowCount(body, len(names)); n > 0 {
			warnings = append(warnings, Warning{
				Table:   id,
				Message: fmt.Sprintf("padded or truncated %d row(s) of uneven width to %d columns", n, len(names)),
			})
		}
	}

	types := e.options.columnTypes
	if len(types) == 0 && e.options.inferTypes {
		types = inferColumnTypes(groups, tableWidth(names, body), e.options.formatOverride)
	}

	tbl, err := model.NewTable(body, names, model.Config{
		ColumnTypes: types,
		AllowRagged: e.options.allowRagged,
	})
	if err != nil {
		return nil, warnings, fmt.Errorf("building %s: %w", id, err)
	}

	return tbl, warnings, nil
}

// raggedRowCount counts dense rows whose width differs from the column
// count.
func raggedRowCount(body [][]string, width int) int {
	n := 0
	for _, row := range body {
		if len(row) != width {
			n++
		}
	}
	return n
}

// tableWidth returns the output column count implied by the column
// names, falling back to the first dense body row.
func tableWidth(names []string, body [][]string) int {
	if len(names) > 0 {
		return len(names)
	}
	if len(body) > 0 {
		return len(body[0])
	}
	return 0
}

// inferColumnTypes derives column types from the mso-number-format
// styles on the first body row's cells, repeating each type across the
// cell's colspan. Missing trailing columns default to text.
func inferColumnTypes(groups tables.RowGroups, width int, override map[string]model.Type) []model.Type {
	if width == 0 || len(groups.Body) == 0 {
		return nil
	}

	var types []model.Type
	for _, c := range tables.Cells(groups.Body[0]) {
		t := xls.TypeForFormat(c.NumberFormat, override)
		for i := 0; i < c.ColSpan; i++ {
			types = append(types, t)
		}
	}

	for len(types) < width {
		types = append(types, model.Text())
	}
	return types[:width]
}
