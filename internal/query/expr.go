package query

import (
	"fmt"
	"strings"
)

// Expr is a node in the predicate tree. Nodes lower themselves into
// parameterized SQL through a shared builder, so the row and count
// statements always agree on WHERE text and bind order.
type Expr interface {
	lower(b *builder)
}

type builder struct {
	sql  strings.Builder
	args []interface{}
}

func (b *builder) bind(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// And joins its children with AND. An empty And lowers to TRUE so a plan
// always has a well-formed WHERE clause.
type And []Expr

func (e And) lower(b *builder) {
	if len(e) == 0 {
		b.sql.WriteString("TRUE")
		return
	}
	b.sql.WriteString("(")
	for i, sub := range e {
		if i > 0 {
			b.sql.WriteString(" AND ")
		}
		sub.lower(b)
	}
	b.sql.WriteString(")")
}

type Or []Expr

func (e Or) lower(b *builder) {
	if len(e) == 0 {
		b.sql.WriteString("FALSE")
		return
	}
	b.sql.WriteString("(")
	for i, sub := range e {
		if i > 0 {
			b.sql.WriteString(" OR ")
		}
		sub.lower(b)
	}
	b.sql.WriteString(")")
}

type Not struct {
	Expr Expr
}

func (e Not) lower(b *builder) {
	b.sql.WriteString("NOT ")
	e.Expr.lower(b)
}

// Cmp compares a column against a bound value.
type Cmp struct {
	Col string
	Op  string
	Val interface{}
}

func (e Cmp) lower(b *builder) {
	fmt.Fprintf(&b.sql, "%s %s %s", e.Col, e.Op, b.bind(e.Val))
}

// ColEq compares two columns; used for correlation inside subqueries.
type ColEq struct {
	Left  string
	Right string
}

func (e ColEq) lower(b *builder) {
	fmt.Fprintf(&b.sql, "%s = %s", e.Left, e.Right)
}

// Truthy treats a nullable boolean column as false when NULL.
type Truthy struct {
	Col string
}

func (e Truthy) lower(b *builder) {
	fmt.Fprintf(&b.sql, "COALESCE(%s, FALSE)", e.Col)
}

// Match is a text search across one or more columns, OR-ed together and
// sharing a single bind. Exact matches use equality; everything else is a
// case-insensitive ILIKE pattern.
type Match struct {
	Cols    []string
	Exact   bool
	Pattern string
}

func (e Match) lower(b *builder) {
	op := "ILIKE"
	if e.Exact {
		op = "="
	}
	ph := b.bind(e.Pattern)
	b.sql.WriteString("(")
	for i, col := range e.Cols {
		if i > 0 {
			b.sql.WriteString(" OR ")
		}
		fmt.Fprintf(&b.sql, "%s %s %s", col, op, ph)
	}
	b.sql.WriteString(")")
}

// Exists is an existence predicate over a correlated subquery. From may
// carry a join clause.
type Exists struct {
	From  string
	Where Expr
}

func (e Exists) lower(b *builder) {
	fmt.Fprintf(&b.sql, "EXISTS (SELECT 1 FROM %s WHERE ", e.From)
	e.Where.lower(b)
	b.sql.WriteString(")")
}

type NotExists struct {
	From  string
	Where Expr
}

func (e NotExists) lower(b *builder) {
	fmt.Fprintf(&b.sql, "NOT EXISTS (SELECT 1 FROM %s WHERE ", e.From)
	e.Where.lower(b)
	b.sql.WriteString(")")
}

// CountCmp compares the row count of a correlated subquery against N.
type CountCmp struct {
	From  string
	Where Expr
	Op    string
	N     int
}

func (e CountCmp) lower(b *builder) {
	fmt.Fprintf(&b.sql, "(SELECT COUNT(*) FROM %s WHERE ", e.From)
	e.Where.lower(b)
	fmt.Fprintf(&b.sql, ") %s %s", e.Op, b.bind(e.N))
}
