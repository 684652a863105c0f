// Package tables reconstructs rectangular row/column grids from HTML
// <table> markup.
//
// A table element is first partitioned into head, body, and foot row
// groups ([Sections]), with leading all-<th> body rows promoted to the
// head when no <thead> exists ([RowGroups.PromoteImplicitHeader]). Each
// row yields its cells ([Cells]) annotated with rowspan and colspan, and
// [ExpandSpans] turns a row group into dense text rows in which every
// spanned cell's text occupies each grid position it logically covers.
//
// # Span expansion
//
// Expansion walks rows top to bottom, carrying a queue of cells from
// earlier rows whose rowspan still claims columns below. Within a row,
// carried-over cells are interleaved at their recorded column positions
// between the row's own cells; whatever remains queued after the row's
// cells is flushed at the row's end. Rowspans that run past the last row
// produce synthesized trailing rows until the queue drains.
//
// Rectangularity is not enforced: when span declarations disagree with
// actual row widths the output rows simply vary in width, and the caller
// decides whether to reject or pad them.
package tables
