package db

import (
	"strings"
)

// Dialect identifies the SQL flavor of a store.
type Dialect int

const (
	UnknownDialect Dialect = iota
	Postgres
	SQLite
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Rebind converts `$n` placeholders to the form understood by the
// dialect. PostgreSQL queries are returned unchanged, SQLite gets `?n`.
// Dollar signs inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d != SQLite || !strings.Contains(query, "$") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	var inLiteral bool
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inLiteral = !inLiteral
		case c == '$' && !inLiteral &&
			i+1 < len(query) && isDigit(query[i+1]):
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// SupportsCascade is true when DROP statements accept CASCADE.
func (d Dialect) SupportsCascade() bool {
	return d == Postgres
}

// SupportsSequences is true when SERIAL columns are backed by
// standalone sequences.
func (d Dialect) SupportsSequences() bool {
	return d == Postgres
}

// reserved contains column names that are keywords in at least one of the
// supported dialects.
var reserved = map[string]struct{}{
	"range": {},
	"order": {},
	"group": {},
}

// QuoteIdent double-quotes an identifier if it is a reserved word.
func QuoteIdent(name string) string {
	if _, ok := reserved[strings.ToLower(name)]; ok {
		return `"` + name + `"`
	}
	return name
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// OnConflictDoNothing returns the clause that turns an INSERT into a
// conflict-tolerant one. Only collisions on key are tolerated, any other
// unique or primary key violation still fails the statement. Both
// dialects accept the same syntax (SQLite since 3.24).
func (d Dialect) OnConflictDoNothing(key []string) string {
	if len(key) == 0 {
		return "ON CONFLICT DO NOTHING"
	}
	return "ON CONFLICT (" + strings.Join(key, ", ") + ") DO NOTHING"
}
