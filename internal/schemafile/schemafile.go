// Package schemafile loads declarative table descriptions from YAML or JSON
// documents and resolves them into ddl values.
package schemafile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tabledef/tabledef/pkg/ddl"
)

var (
	// ErrUnknownType is returned when a column type keyword is not part of
	// the closed type vocabulary.
	ErrUnknownType = errors.New("unknown column type")

	// ErrUnknownAttribute is returned when an attribute keyword is not part
	// of the closed attribute vocabulary.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownAction is returned when a referential-action keyword is not
	// part of the closed action vocabulary.
	ErrUnknownAction = errors.New("unknown referential action")

	// ErrUnknownColumn is returned when a constraint names a column that its
	// table does not declare.
	ErrUnknownColumn = errors.New("unknown column")
)

// Document is a parsed schema file.
type Document struct {
	// Tables lists the table descriptions in declaration order
	Tables []TableSpec `json:"tables" yaml:"tables"`
}

// TableSpec describes one table.
type TableSpec struct {
	// Name is the table identifier, used verbatim
	Name string `json:"name" yaml:"name"`

	// Columns lists the column definitions in declaration order
	Columns []ColumnSpec `json:"columns" yaml:"columns"`

	// Constraints lists table-level constraints appended after the columns
	Constraints []ConstraintSpec `json:"constraints" yaml:"constraints"`
}

// ColumnSpec describes one column definition.
type ColumnSpec struct {
	// Name is the column identifier
	Name string `json:"name" yaml:"name"`

	// Type is a keyword from the type vocabulary, matched case-insensitively
	Type string `json:"type" yaml:"type"`

	// Attributes are keywords from the attribute vocabulary, in order
	Attributes []string `json:"attributes" yaml:"attributes"`

	// Default is the DEFAULT literal; nil means no default
	Default *string `json:"default" yaml:"default"`
}

// ConstraintSpec describes one table-level constraint. Exactly one of the
// fields should be set.
type ConstraintSpec struct {
	// PrimaryKey names the columns of a PRIMARY KEY constraint
	PrimaryKey []string `json:"primary_key" yaml:"primary_key"`

	// Unique names the columns of a UNIQUE constraint
	Unique []string `json:"unique" yaml:"unique"`

	// ForeignKey describes a FOREIGN KEY constraint
	ForeignKey *ForeignKeySpec `json:"foreign_key" yaml:"foreign_key"`
}

// ForeignKeySpec describes a FOREIGN KEY constraint.
type ForeignKeySpec struct {
	// Column is the local column name
	Column string `json:"column" yaml:"column"`

	// Table is the referenced table name
	Table string `json:"table" yaml:"table"`

	// RefColumn is the referenced column name
	RefColumn string `json:"ref_column" yaml:"ref_column"`

	// OnDelete is an optional action keyword (cascade, restrict, set null,
	// set default, no action)
	OnDelete string `json:"on_delete" yaml:"on_delete"`

	// OnUpdate is an optional action keyword, same vocabulary as OnDelete
	OnUpdate string `json:"on_update" yaml:"on_update"`

	// Deferrable appends DEFERRABLE INITIALLY DEFERRED when true
	Deferrable bool `json:"deferrable" yaml:"deferrable"`
}

// Load reads and parses a schema file. The format is chosen by extension:
// .yaml/.yml or .json.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: failed to read schema file: %w", err)
	}

	doc := &Document{}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("schemafile: failed to parse YAML schema: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("schemafile: failed to parse JSON schema: %w", err)
		}
	default:
		return nil, fmt.Errorf("schemafile: unsupported schema file format: %s", ext)
	}

	return doc, nil
}

// Build resolves the document into table definitions, in declaration order.
// Vocabulary keywords are resolved case-insensitively; unknown keywords and
// dangling constraint column references are reported as errors because a
// schema file is external input, unlike the ddl package's trusted callers.
func (d *Document) Build() ([]*ddl.TableDef, error) {
	// Column lookup across the whole document so foreign keys can share the
	// referenced table's column values.
	byTable := make(map[string]map[string]*ddl.Column, len(d.Tables))

	tables := make([]*ddl.TableDef, 0, len(d.Tables))
	for _, spec := range d.Tables {
		columns := make([]*ddl.Column, 0, len(spec.Columns)+len(spec.Constraints))
		byName := make(map[string]*ddl.Column, len(spec.Columns))

		for _, cs := range spec.Columns {
			col, err := cs.build()
			if err != nil {
				return nil, fmt.Errorf("schemafile: table %s: %w", spec.Name, err)
			}
			columns = append(columns, col)
			byName[cs.Name] = col
		}
		byTable[spec.Name] = byName

		for _, con := range spec.Constraints {
			col, err := con.build(spec.Name, byTable)
			if err != nil {
				return nil, fmt.Errorf("schemafile: table %s: %w", spec.Name, err)
			}
			columns = append(columns, col)
		}

		tables = append(tables, ddl.NewTable(spec.Name, columns...))
	}

	return tables, nil
}

func (cs ColumnSpec) build() (*ddl.Column, error) {
	typ, err := parseColumnType(cs.Type)
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", cs.Name, err)
	}

	attrs := make([]ddl.Attribute, 0, len(cs.Attributes)+1)
	for _, keyword := range cs.Attributes {
		attr, err := parseAttribute(keyword)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", cs.Name, err)
		}
		attrs = append(attrs, attr)
	}
	if cs.Default != nil {
		attrs = append(attrs, ddl.Default(*cs.Default))
	}

	return ddl.NewColumn(cs.Name, typ, attrs...), nil
}

func (con ConstraintSpec) build(table string, byTable map[string]map[string]*ddl.Column) (*ddl.Column, error) {
	local := byTable[table]

	switch {
	case len(con.PrimaryKey) > 0:
		cols, err := resolveColumns(local, con.PrimaryKey)
		if err != nil {
			return nil, err
		}
		return ddl.NewPrimaryKey(cols...), nil

	case len(con.Unique) > 0:
		cols, err := resolveColumns(local, con.Unique)
		if err != nil {
			return nil, err
		}
		return ddl.NewUnique(cols...), nil

	case con.ForeignKey != nil:
		fk := con.ForeignKey
		col, ok := local[fk.Column]
		if !ok {
			return nil, fmt.Errorf("foreign key: %w: %s", ErrUnknownColumn, fk.Column)
		}
		ref, err := resolveReference(fk, byTable)
		if err != nil {
			return nil, err
		}
		extra, err := fk.extraActions()
		if err != nil {
			return nil, err
		}
		return ddl.NewForeignKey(col, ddl.References, ddl.TableName(fk.Table), ref, extra...), nil

	default:
		return nil, fmt.Errorf("constraint on table %s is empty", table)
	}
}

// resolveReference finds the referenced column. When the referenced table is
// declared in the same document its column must exist there; otherwise the
// table is assumed to pre-exist in the target database and a reference-only
// column value is synthesized for its name.
func resolveReference(fk *ForeignKeySpec, byTable map[string]map[string]*ddl.Column) (*ddl.Column, error) {
	if other, ok := byTable[fk.Table]; ok {
		ref, ok := other[fk.RefColumn]
		if !ok {
			return nil, fmt.Errorf("foreign key: %w: %s.%s", ErrUnknownColumn, fk.Table, fk.RefColumn)
		}
		return ref, nil
	}
	return ddl.NewColumn(fk.RefColumn, ddl.Integer), nil
}

func (fk *ForeignKeySpec) extraActions() ([]ddl.Action, error) {
	var extra []ddl.Action
	if fk.OnDelete != "" {
		action, err := parseAction(fk.OnDelete)
		if err != nil {
			return nil, fmt.Errorf("on_delete: %w", err)
		}
		extra = append(extra, ddl.OnDelete, action)
	}
	if fk.OnUpdate != "" {
		action, err := parseAction(fk.OnUpdate)
		if err != nil {
			return nil, fmt.Errorf("on_update: %w", err)
		}
		extra = append(extra, ddl.OnUpdate, action)
	}
	if fk.Deferrable {
		extra = append(extra, ddl.Deferrable)
	}
	return extra, nil
}

func resolveColumns(byName map[string]*ddl.Column, names []string) ([]*ddl.Column, error) {
	cols := make([]*ddl.Column, len(names))
	for i, name := range names {
		col, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("constraint: %w: %s", ErrUnknownColumn, name)
		}
		cols[i] = col
	}
	return cols, nil
}

func parseColumnType(keyword string) (ddl.ColumnType, error) {
	switch normalize(keyword) {
	case "INTEGER":
		return ddl.Integer, nil
	case "INT":
		return ddl.Int, nil
	case "TINYINT":
		return ddl.TinyInt, nil
	case "SMALLINT":
		return ddl.SmallInt, nil
	case "MEDIUMINT":
		return ddl.MediumInt, nil
	case "BIGINT":
		return ddl.BigInt, nil
	case "UNSIGNED BIG INT":
		return ddl.UnsignedBigInt, nil
	case "INT2":
		return ddl.Int2, nil
	case "INT8":
		return ddl.Int8, nil
	case "TEXT":
		return ddl.Text, nil
	case "CLOB":
		return ddl.Clob, nil
	case "BLOB":
		return ddl.Blob, nil
	case "REAL":
		return ddl.Real, nil
	case "DOUBLE":
		return ddl.Double, nil
	case "DOUBLE PRECISION":
		return ddl.DoublePrecision, nil
	case "FLOAT":
		return ddl.Float, nil
	case "NUMERIC":
		return ddl.Numeric, nil
	case "BOOLEAN":
		return ddl.Boolean, nil
	case "DATE":
		return ddl.Date, nil
	case "DATETIME":
		return ddl.DateTime, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, keyword)
	}
}

func parseAttribute(keyword string) (ddl.Attribute, error) {
	switch normalize(keyword) {
	case "PRIMARY KEY":
		return ddl.PrimaryKey, nil
	case "ASC":
		return ddl.Asc, nil
	case "DESC":
		return ddl.Desc, nil
	case "UNIQUE":
		return ddl.Unique, nil
	case "NOT NULL":
		return ddl.NotNull, nil
	case "AUTOINCREMENT":
		return ddl.Autoincrement, nil
	default:
		return ddl.Attribute{}, fmt.Errorf("%w: %q", ErrUnknownAttribute, keyword)
	}
}

func parseAction(keyword string) (ddl.Action, error) {
	switch normalize(keyword) {
	case "CASCADE":
		return ddl.Cascade, nil
	case "RESTRICT":
		return ddl.Restrict, nil
	case "SET NULL":
		return ddl.SetNull, nil
	case "SET DEFAULT":
		return ddl.SetDefault, nil
	case "NO ACTION":
		return ddl.NoAction, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, keyword)
	}
}

// normalize folds case and separator variants so "not_null", "NOT NULL", and
// "not null" all match the same vocabulary entry.
func normalize(keyword string) string {
	keyword = strings.TrimSpace(keyword)
	keyword = strings.ReplaceAll(keyword, "_", " ")
	keyword = strings.Join(strings.Fields(keyword), " ")
	return strings.ToUpper(keyword)
}
