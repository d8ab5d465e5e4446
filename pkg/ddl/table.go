package ddl

import "strings"

// Table is anything that can describe itself as a named, ordered set of
// columns. Caller-defined record types implement it to gain CreateSQL
// without duplicating the rendering logic.
type Table interface {
	// Name returns the table identifier.
	Name() string

	// Columns returns the column definitions and constraints in declaration
	// order.
	Columns() []*Column
}

// TableName wraps a table identifier so foreign keys can reference a target
// table without depending on its concrete type.
type TableName string

// TableNameOf projects the identity of an existing table.
func TableNameOf(t Table) TableName {
	return TableName(t.Name())
}

// CreateSQL renders the CREATE TABLE statement for a table. Column fragments
// appear in declaration order, never reordered or deduplicated. The result is
// the same on every call.
func CreateSQL(t Table) string {
	columns := t.Columns()
	fragments := make([]string, len(columns))
	for i, c := range columns {
		fragments[i] = c.fragment()
	}
	return "CREATE TABLE " + t.Name() + " (" + strings.Join(fragments, ", ") + ")"
}

// TableDef is a concrete Table: a name and its columns.
type TableDef struct {
	name    string
	columns []*Column
}

// NewTable returns a table definition over the given columns.
func NewTable(name string, columns ...*Column) *TableDef {
	return &TableDef{name: name, columns: columns}
}

// Name implements Table.
func (t *TableDef) Name() string { return t.name }

// Columns implements Table.
func (t *TableDef) Columns() []*Column { return t.columns }

// CreateSQL renders the CREATE TABLE statement for this definition.
func (t *TableDef) CreateSQL() string { return CreateSQL(t) }
