package db

import (
	"strconv"
	"strings"
)

// Dialect selects the SQL driver and placeholder style.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Valid reports whether d is a supported dialect.
func (d Dialect) Valid() bool {
	return d == SQLite || d == Postgres
}

// DriverName is the database/sql driver registered for d.
func (d Dialect) DriverName() string {
	return string(d)
}

// Rebind rewrites "?" placeholders into the dialect's form. Queries are
// written with "?" and must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
