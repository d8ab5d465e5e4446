package ddl

import "testing"

func TestTableDef_CreateSQL(t *testing.T) {
	hoge := NewColumn("hoge", Text)
	table := NewTable("my-table",
		NewColumn("id", Integer, PrimaryKey, NotNull),
		NewColumn("val", Text, Default("def")),
		hoge,
		NewUnique(hoge),
	)

	got := table.CreateSQL()
	want := "CREATE TABLE my-table (id INTEGER PRIMARY KEY NOT NULL, val TEXT DEFAULT 'def', hoge TEXT, UNIQUE (hoge))"
	if got != want {
		t.Errorf("CreateSQL() = %q, want %q", got, want)
	}
}

func TestCreateSQL_Idempotent(t *testing.T) {
	table := NewTable("events",
		NewColumn("id", Integer, PrimaryKey),
		NewColumn("payload", Blob, NotNull),
	)

	first := CreateSQL(table)
	second := CreateSQL(table)
	if first != second {
		t.Errorf("CreateSQL not idempotent: first %q, second %q", first, second)
	}
}

// userTable exercises the Table interface with a caller-defined record type.
type userTable struct {
	id   *Column
	name *Column
}

func (u *userTable) Name() string { return "users" }

func (u *userTable) Columns() []*Column {
	return []*Column{u.id, u.name, NewPrimaryKey(u.id)}
}

func TestCreateSQL_CustomTableType(t *testing.T) {
	table := &userTable{
		id:   NewColumn("id", Integer, NotNull),
		name: NewColumn("name", Text),
	}

	got := CreateSQL(table)
	want := "CREATE TABLE users (id INTEGER NOT NULL, name TEXT, PRIMARY KEY (id))"
	if got != want {
		t.Errorf("CreateSQL() = %q, want %q", got, want)
	}
}

func TestTableNameOf(t *testing.T) {
	table := NewTable("accounts", NewColumn("id", Integer))
	if got, want := TableNameOf(table), TableName("accounts"); got != want {
		t.Errorf("TableNameOf() = %q, want %q", got, want)
	}
}

func TestNewForeignKey_TableNameFromTable(t *testing.T) {
	parentID := NewColumn("id", Integer, PrimaryKey)
	parent := NewTable("parents", parentID)

	childParent := NewColumn("parent_id", Integer, NotNull)
	child := NewTable("children",
		NewColumn("id", Integer, PrimaryKey),
		childParent,
		NewForeignKey(childParent, References, TableNameOf(parent), parentID, OnDelete, Cascade),
	)

	got := child.CreateSQL()
	want := "CREATE TABLE children (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL, " +
		"FOREIGN KEY (parent_id) REFERENCES parents (id) ON DELETE CASCADE)"
	if got != want {
		t.Errorf("CreateSQL() = %q, want %q", got, want)
	}
}
