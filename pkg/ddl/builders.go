package ddl

import "strings"

// joinNames renders the comma-separated name list for a constraint clause.
// Input order is caller-significant and preserved; duplicates are kept.
func joinNames(columns []*Column) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name()
	}
	return strings.Join(names, ", ")
}

// NewPrimaryKey returns a table-level PRIMARY KEY constraint over the given
// column definitions.
func NewPrimaryKey(columns ...*Column) *Column {
	return &Column{
		constraint: PrimaryKey.String() + " (" + joinNames(columns) + ")",
		isRaw:      true,
	}
}

// NewUnique returns a table-level UNIQUE constraint over the given column
// definitions.
func NewUnique(columns ...*Column) *Column {
	return &Column{
		constraint: Unique.String() + " (" + joinNames(columns) + ")",
		isRaw:      true,
	}
}

// NewForeignKey returns a FOREIGN KEY constraint linking column to
// otherColumn of otherTable. action is the linking keyword, normally
// References. extra clauses, such as OnDelete followed by Cascade or
// Deferrable, are appended space-joined after the referenced column list.
func NewForeignKey(column *Column, action Action, otherTable TableName, otherColumn *Column, extra ...Action) *Column {
	var b strings.Builder
	b.WriteString("FOREIGN KEY (")
	b.WriteString(column.Name())
	b.WriteString(") ")
	b.WriteString(action.String())
	b.WriteByte(' ')
	b.WriteString(string(otherTable))
	b.WriteString(" (")
	b.WriteString(otherColumn.Name())
	b.WriteByte(')')
	for _, a := range extra {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return &Column{constraint: b.String(), isRaw: true}
}
