package tables

// pendingSpan records a cell from an earlier row that still occupies a
// column in the rows below it.
type pendingSpan struct {
	col  int    // column index where the cell was placed
	text string // text duplicated into each occupied position
	rows int    // rows left to fill, counting the next one
}

// ExpandSpans converts a sequence of rows into dense text rows. A cell
// with a colspan occupies that many consecutive positions in its own row;
// a cell with a rowspan repeats its text at the same column in the rows
// below. Rowspans that extend past the last input row produce synthesized
// trailing rows built from the carried-over cells alone.
//
// Each input row yields exactly one dense row. Widths are not forced to
// agree: when span declarations conflict with actual row widths the
// output rows vary in width and the caller decides how to handle them.
func ExpandSpans(rows [][]Cell) [][]string {
	dense := make([][]string, 0, len(rows))
	var pending []pendingSpan

	for _, cells := range rows {
		var row []string
		row, pending = expandRow(cells, pending)
		dense = append(dense, row)
	}

	// Drain rowspans that outlive the input rows.
	for len(pending) > 0 {
		var row []string
		row, pending = expandRow(nil, pending)
		dense = append(dense, row)
	}

	return dense
}

// expandRow builds one dense row from the row's own cells and the spans
// carried over from earlier rows, and returns the spans that survive into
// the row below. The incoming queue is ordered by column index; the
// outgoing queue preserves that order. Cells are placed left to right,
// flushing carried-over entries whose column falls at or before the next
// free position, so spans from earlier rows interleave at the correct
// column.
func expandRow(cells []Cell, pending []pendingSpan) ([]string, []pendingSpan) {
	texts := make([]string, 0, len(cells)+len(pending))
	var next []pendingSpan

	index := 0
	for _, cell := range cells {
		for len(pending) > 0 && pending[0].col <= index {
			prev := pending[0]
			pending = pending[1:]
			texts = append(texts, prev.text)
			if prev.rows > 1 {
				next = append(next, pendingSpan{col: prev.col, text: prev.text, rows: prev.rows - 1})
			}
			index++
		}

		colspan, rowspan := cell.ColSpan, cell.RowSpan
		if colspan < 1 {
			colspan = 1
		}
		if rowspan < 1 {
			rowspan = 1
		}

		for i := 0; i < colspan; i++ {
			texts = append(texts, cell.Text)
			if rowspan > 1 {
				next = append(next, pendingSpan{col: index, text: cell.Text, rows: rowspan - 1})
			}
			index++
		}
	}

	// Entries still queued belong past the row's last cell; flush them at
	// the end in order.
	for _, prev := range pending {
		texts = append(texts, prev.text)
		if prev.rows > 1 {
			next = append(next, pendingSpan{col: prev.col, text: prev.text, rows: prev.rows - 1})
		}
	}

	return texts, next
}
