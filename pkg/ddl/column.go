// Package ddl composes SQLite CREATE TABLE and ALTER TABLE statements from
// typed descriptions of columns, types, and constraints. Values are immutable
// once built and safe to share across goroutines; the package never validates
// identifiers beyond string-literal escaping of DEFAULT values.
package ddl

import "strings"

// Column is either a named column definition or a pre-rendered table-level
// constraint clause. Columns are immutable after construction and may be
// referenced from several places at once, e.g. listed in a table and again
// inside a UNIQUE constraint.
type Column struct {
	name       string
	typ        ColumnType
	attributes []Attribute // nil when the column has no attributes
	constraint string
	isRaw      bool
}

// NewColumn returns a column definition with the given name, type, and
// attributes. Attribute order is preserved verbatim in the rendered output.
// The name is not validated or quoted; callers own identifier safety.
func NewColumn(name string, typ ColumnType, attributes ...Attribute) *Column {
	c := &Column{name: name, typ: typ}
	if len(attributes) > 0 {
		c.attributes = attributes
	}
	return c
}

// Name returns the column name. Calling Name on a constraint column is a
// caller bug and panics.
func (c *Column) Name() string {
	if c.isRaw {
		panic("ddl: Name called on a constraint column")
	}
	return c.name
}

// fragment renders the column to its statement fragment: a column definition
// for a named column, or the stored constraint text verbatim.
func (c *Column) fragment() string {
	if c.isRaw {
		return c.constraint
	}
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte(' ')
	b.WriteString(c.typ.String())
	for _, a := range c.attributes {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return b.String()
}

// CreateAddSQL renders an ALTER TABLE statement that adds this column to the
// given table. Calling it on a constraint column panics.
func (c *Column) CreateAddSQL(table TableName) string {
	if c.isRaw {
		panic("ddl: CreateAddSQL called on a constraint column")
	}
	return "ALTER TABLE " + string(table) + " ADD " + c.fragment()
}
