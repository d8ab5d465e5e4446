package ddl

// ColumnType identifies a SQLite column type keyword.
type ColumnType int

// The full set of SQLite type-affinity keywords.
const (
	Integer ColumnType = iota
	Int
	TinyInt
	SmallInt
	MediumInt
	BigInt
	UnsignedBigInt
	Int2
	Int8
	Text
	Clob
	Blob
	Real
	Double
	DoublePrecision
	Float
	Numeric
	Boolean
	Date
	DateTime
)

// String returns the canonical SQL keyword for the type.
func (t ColumnType) String() string {
	switch t {
	case Integer:
		return "INTEGER"
	case Int:
		return "INT"
	case TinyInt:
		return "TINYINT"
	case SmallInt:
		return "SMALLINT"
	case MediumInt:
		return "MEDIUMINT"
	case BigInt:
		return "BIGINT"
	case UnsignedBigInt:
		return "UNSIGNED BIG INT"
	case Int2:
		return "INT2"
	case Int8:
		return "INT8"
	case Text:
		return "TEXT"
	case Clob:
		return "CLOB"
	case Blob:
		return "BLOB"
	case Real:
		return "REAL"
	case Double:
		return "DOUBLE"
	case DoublePrecision:
		return "DOUBLE PRECISION"
	case Float:
		return "FLOAT"
	case Numeric:
		return "NUMERIC"
	case Boolean:
		return "BOOLEAN"
	case Date:
		return "DATE"
	case DateTime:
		return "DATETIME"
	default:
		panic("ddl: unknown column type")
	}
}
