package query

import "fmt"

type Mode int

const (
	// ModeSimple plans are expressible as a flat predicate set over the base
	// join and execute through the composable builder path.
	ModeSimple Mode = iota
	// ModeComplex plans need subqueries or the salary join and execute as
	// raw parameterized SQL.
	ModeComplex
)

// Plan is an executable query plan: one predicate tree lowered into both a
// row statement and a count statement. Order column and direction are mapped
// through fixed tables at compile time, never taken from user input.
type Plan struct {
	Mode        Mode
	Where       Expr
	OrderColumn string
	OrderDesc   bool

	withSalaryJoin bool
}

// RowColumns is the select list shared by both executor back ends.
const RowColumns = `cu.id, cu.client_id, cu.user_id, cu.role_id, cu.joining_date, cu.is_active,
	cu.staff_code, cu.vendor_id, cu.app_permissions, cu.web_permissions, cu.created_at, cu.updated_at,
	r.id, r.role_name, r.use_overtime, r.ot_hourly_rate, r.allow_leave, r.allow_insurance`

// FromClause is the base join: staff rows with profile (for search fields)
// and the zero-or-one role. The salary join is only added when a predicate
// references it, so unfiltered rows are never duplicated or dropped.
func (p *Plan) FromClause() string {
	from := `FROM client_users cu
	JOIN person_profiles pp ON pp.user_id = cu.user_id
	LEFT JOIN client_roles r ON r.id = cu.role_id`
	if p.withSalaryJoin {
		from += `
	LEFT JOIN user_salaries us ON us.user_id = cu.user_id`
	}
	return from
}

// RowSQL lowers the plan into the page statement. LIMIT/OFFSET are appended
// here and only here; the count statement never sees them.
func (p *Plan) RowSQL(limit, offset int) (string, []interface{}) {
	b := &builder{}
	p.Where.lower(b)

	dir := "ASC"
	if p.OrderDesc {
		dir = "DESC"
	}
	sql := fmt.Sprintf("SELECT %s\n%s\nWHERE %s\nORDER BY %s %s, cu.id %s\nLIMIT $%d OFFSET $%d",
		RowColumns, p.FromClause(), b.sql.String(), p.OrderColumn, dir, dir, len(b.args)+1, len(b.args)+2)
	return sql, append(b.args, limit, offset)
}

// CountSQL lowers the identical WHERE clause into the total-count statement.
// DISTINCT on the primary key guards against multiplication if a join ever
// fans out.
func (p *Plan) CountSQL() (string, []interface{}) {
	b := &builder{}
	p.Where.lower(b)
	sql := fmt.Sprintf("SELECT COUNT(DISTINCT cu.id)\n%s\nWHERE %s", p.FromClause(), b.sql.String())
	return sql, b.args
}

// FieldPredicate is the structured form of one simple-mode predicate,
// consumable by the composable executor without any raw SQL.
type FieldPredicate struct {
	Column  string
	Columns []string
	Op      string
	Value   interface{}
}

// Predicates flattens a simple-mode plan into its field predicates. Calling
// it on a complex plan is a programming error.
func (p *Plan) Predicates() []FieldPredicate {
	if p.Mode != ModeSimple {
		panic("query: predicates requested for a raw-SQL plan")
	}

	root, ok := p.Where.(And)
	if !ok {
		panic("query: simple plan is not a flat conjunction")
	}

	preds := make([]FieldPredicate, 0, len(root))
	for _, e := range root {
		switch node := e.(type) {
		case Cmp:
			preds = append(preds, FieldPredicate{Column: node.Col, Op: node.Op, Value: node.Val})
		case Match:
			op := "ILIKE"
			if node.Exact {
				op = "="
			}
			preds = append(preds, FieldPredicate{Columns: node.Cols, Op: op, Value: node.Pattern})
		default:
			panic(fmt.Sprintf("query: non-composable node %T in simple plan", e))
		}
	}
	return preds
}
