package htmltable

import (
	"errors"
	"fmt"
)

// ErrNameLookupUnsupported is returned when a table is requested by name.
// HTML tables carry no standard name attribute, so name-based lookup is
// not implemented; select tables by position instead.
var ErrNameLookupUnsupported = errors.New("name-based table lookup is not supported")

type idKind int

const (
	idUnset idKind = iota
	idPosition
	idName
)

// TableID identifies a table within a document. Construct one with
// ByPosition or ByName; the zero value identifies nothing and is
// rejected by the terminal operations.
//
// TableID is comparable, so it can be used as a map key.
type TableID struct {
	kind idKind
	pos  int
	name string
}

// ByPosition identifies a table by its zero-based position among the
// document's tables in document order.
func ByPosition(index int) TableID {
	return TableID{kind: idPosition, pos: index}
}

// ByName identifies a table by name. Extraction for a ByName identifier
// always fails with ErrNameLookupUnsupported; the constructor exists so
// callers porting from name-keyed APIs get a typed, explicit error
// rather than a silently wrong table.
func ByName(name string) TableID {
	return TableID{kind: idName, name: name}
}

// String returns a human-readable description of the identifier,
// suitable for error and warning messages.
func (id TableID) String() string {
	switch id.kind {
	case idPosition:
		return fmt.Sprintf("table at position %d", id.pos)
	case idName:
		return fmt.Sprintf("table named %q", id.name)
	default:
		return "unset table identifier"
	}
}
