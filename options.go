package htmltable

import "github.com/tsawler/htmltable/model"

// extractOptions holds configuration for table extraction.
type extractOptions struct {
	// Table selection; empty means the first table by position.
	ids []TableID

	// Header handling
	header      bool
	columnNames []string

	// Column typing
	columnTypes    []model.Type
	inferTypes     bool
	formatOverride map[string]model.Type

	// Row limiting (applied to raw body rows before span expansion)
	rowLimit int
	hasLimit bool

	// Input handling
	encoding      string
	displayedOnly bool

	// Output handling
	allowRagged bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		ids:      nil, // nil means first table
		header:   true,
		encoding: "utf-8",
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := extractOptions{
		header:        o.header,
		inferTypes:    o.inferTypes,
		rowLimit:      o.rowLimit,
		hasLimit:      o.hasLimit,
		encoding:      o.encoding,
		displayedOnly: o.displayedOnly,
		allowRagged:   o.allowRagged,
	}

	if o.ids != nil {
		newOpts.ids = make([]TableID, len(o.ids))
		copy(newOpts.ids, o.ids)
	}
	if o.columnNames != nil {
		newOpts.columnNames = make([]string, len(o.columnNames))
		copy(newOpts.columnNames, o.columnNames)
	}
	if o.columnTypes != nil {
		newOpts.columnTypes = make([]model.Type, len(o.columnTypes))
		copy(newOpts.columnTypes, o.columnTypes)
	}
	if o.formatOverride != nil {
		newOpts.formatOverride = make(map[string]model.Type, len(o.formatOverride))
		for k, v := range o.formatOverride {
			newOpts.formatOverride[k] = v
		}
	}

	return newOpts
}
