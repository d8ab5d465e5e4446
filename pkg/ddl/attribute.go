package ddl

import "strings"

// attributeKind discriminates the closed set of column attributes.
type attributeKind int

const (
	attrPrimaryKey attributeKind = iota
	attrAsc
	attrDesc
	attrUnique
	attrNotNull
	attrAutoincrement
	attrDefault
)

// Attribute is a column-level attribute such as PRIMARY KEY or NOT NULL.
// All attributes except Default are stateless tags; Default carries the
// literal value it renders.
type Attribute struct {
	kind    attributeKind
	literal string
}

// The stateless column attributes.
var (
	PrimaryKey    = Attribute{kind: attrPrimaryKey}
	Asc           = Attribute{kind: attrAsc}
	Desc          = Attribute{kind: attrDesc}
	Unique        = Attribute{kind: attrUnique}
	NotNull       = Attribute{kind: attrNotNull}
	Autoincrement = Attribute{kind: attrAutoincrement}
)

// Default returns a DEFAULT attribute for the given literal value.
// The value is escaped as a SQL string literal when rendered.
func Default(literal string) Attribute {
	return Attribute{kind: attrDefault, literal: literal}
}

// String returns the SQL form of the attribute.
func (a Attribute) String() string {
	switch a.kind {
	case attrPrimaryKey:
		return "PRIMARY KEY"
	case attrAsc:
		return "ASC"
	case attrDesc:
		return "DESC"
	case attrUnique:
		return "UNIQUE"
	case attrNotNull:
		return "NOT NULL"
	case attrAutoincrement:
		return "AUTOINCREMENT"
	case attrDefault:
		return "DEFAULT " + escapeLiteral(a.literal)
	default:
		panic("ddl: unknown attribute")
	}
}

// escapeLiteral quotes a value as a SQL string literal: every internal
// single quote is doubled and the whole value is wrapped in single quotes.
func escapeLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
