package htmltable

import "github.com/tsawler/htmltable/model"

// Collection is an ordered mapping from table identifiers to extracted
// tables, preserving the order tables were requested in. It is returned
// by ExtractAll.
type Collection struct {
	ids    []TableID
	tables map[TableID]*model.Table
}

func newCollection() *Collection {
	return &Collection{tables: make(map[TableID]*model.Table)}
}

// add records a table under its identifier. A repeated identifier keeps
// its original position and replaces the stored table.
func (c *Collection) add(id TableID, t *model.Table) {
	if _, ok := c.tables[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.tables[id] = t
}

// Len returns the number of tables in the collection.
func (c *Collection) Len() int {
	return len(c.ids)
}

// At returns the table at position i in request order. It panics if i is
// out of range, mirroring slice indexing.
func (c *Collection) At(i int) *model.Table {
	return c.tables[c.ids[i]]
}

// Get returns the table stored under id, and whether it was present.
func (c *Collection) Get(id TableID) (*model.Table, bool) {
	t, ok := c.tables[id]
	return t, ok
}

// IDs returns the identifiers in request order.
func (c *Collection) IDs() []TableID {
	return append([]TableID(nil), c.ids...)
}

// Tables returns the tables in request order.
func (c *Collection) Tables() []*model.Table {
	out := make([]*model.Table, len(c.ids))
	for i, id := range c.ids {
		out[i] = c.tables[id]
	}
	return out
}
