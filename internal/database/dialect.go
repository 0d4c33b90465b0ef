package database

// Dialect captures the SQL differences between the SQLite and Postgres indexes
type Dialect interface {
	DriverName() string

	// Placeholder spells the 1-indexed parameter at position
	Placeholder(position int) string

	// SupportsLastInsertID is false when inserted ids come back through RETURNING
	SupportsLastInsertID() bool
	ReturningClause(column string) string

	// InitStatements run once on every new connection pool
	InitStatements() []string

	IsDuplicateKeyError(err error) bool

	// AutoIncrementKey is the column definition of a generated integer key
	AutoIncrementKey() string
}

// DialectType identifies the database dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect creates a new Dialect for the given type.
func NewDialect(dialectType DialectType) Dialect {
	switch dialectType {
	case DialectPostgres:
		return &PostgresDialect{}
	default:
		return &SQLiteDialect{}
	}
}
