// Package htmltable provides a fluent API for extracting tables from
// HTML documents. Tables with colspan and rowspan attributes are
// expanded into dense rectangular grids, so every output row has one
// string per column.
//
// Basic usage:
//
//	tbl, warnings, err := htmltable.Open("report.html").Extract()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", htmltable.FormatWarnings(warnings))
//	}
//
// With options:
//
//	tbl, _, err := htmltable.Open("report.html").
//	    Table(2).
//	    NoHeader().
//	    ColumnNames("city", "population").
//	    Limit(100).
//	    Extract()
//
// For advanced use cases, the lower-level dom and tables packages are
// also available.
package htmltable

import "io"

// Open prepares an HTML file for extraction and returns an Extractor
// for fluent configuration. The file is not read until a terminal
// operation such as Extract is called.
//
// Example:
//
//	tbl, warnings, err := htmltable.Open("report.html").Extract()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor that reads HTML from r. The reader is
// consumed by the first terminal operation; the caller retains
// responsibility for closing it if it needs closing.
//
// Example:
//
//	resp, err := http.Get(url)
//	if err != nil {
//	    // handle error
//	}
//	defer resp.Body.Close()
//	tbl, warnings, err := htmltable.FromReader(resp.Body).Extract()
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		source:  r,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	col := htmltable.Must(tbl.Column("city"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTable is a helper that wraps a call to Extract() or ExtractAll()
// and panics if the error is non-nil. It discards warnings and returns
// just the value. It is intended for use in scripts or tests where
// error handling would be cumbersome.
//
// Example:
//
//	tbl := htmltable.MustTable(htmltable.Open("report.html").Extract())
func MustTable[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
