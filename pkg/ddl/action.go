package ddl

// Action is a referential-action keyword used in foreign-key clauses.
type Action int

const (
	References Action = iota
	OnDelete
	OnUpdate
	Cascade
	Restrict
	SetNull
	SetDefault
	NoAction
	Deferrable
)

// String returns the SQL keyword for the action.
func (a Action) String() string {
	switch a {
	case References:
		return "REFERENCES"
	case OnDelete:
		return "ON DELETE"
	case OnUpdate:
		return "ON UPDATE"
	case Cascade:
		return "CASCADE"
	case Restrict:
		return "RESTRICT"
	case SetNull:
		return "SET NULL"
	case SetDefault:
		return "SET DEFAULT"
	case NoAction:
		return "NO ACTION"
	case Deferrable:
		return "DEFERRABLE INITIALLY DEFERRED"
	default:
		panic("ddl: unknown action")
	}
}
