package query

import (
	"fmt"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
)

// searchColumns maps the public search aliases onto columns of the base join.
var searchColumns = map[string]string{
	"name":      "pp.user_name",
	"email":     "pp.email",
	"phone":     "pp.phone",
	"code":      "cu.staff_code",
	"skills":    "pp.skills",
	"education": "pp.education",
}

// allSearchColumns is the multi-field OR target when no alias is chosen.
// Order is fixed so generated SQL is deterministic.
var allSearchColumns = []string{
	"pp.user_name", "pp.email", "pp.phone", "cu.staff_code", "pp.skills", "pp.education",
}

// orderColumns maps the ordering allow-list onto columns. Unknown fields are
// rejected by the validator and can never reach this table.
var orderColumns = map[string]string{
	"joining_date": "cu.joining_date",
	"name":         "pp.user_name",
	"status":       "cu.is_active",
	"code":         "cu.staff_code",
	"created_at":   "cu.created_at",
}

var salaryColumns = map[staff.SalaryField]string{
	staff.SalaryFieldBasic:    "us.basic_salary",
	staff.SalaryFieldTakeHome: "us.take_home",
	staff.SalaryFieldCTC:      "us.ctc",
}

// Compile turns a validated filter set into an executable plan. The filter
// values themselves were already defaulted by the validator, so Compile only
// fails on internal invariant violations, and then by panicking.
//
// Clause order in the conjunction: tenancy, status, search, overtime/face,
// salary range, device, project count, project id. Tenancy is always present.
func Compile(clientID int64, opts staff.ListOptions) *Plan {
	complexMode := opts.OT != staff.TriAny ||
		opts.Face != staff.TriAny ||
		opts.SalaryField != nil ||
		opts.Device != staff.DeviceAll ||
		opts.Projects != staff.ProjectsAll ||
		opts.ProjectID != nil

	where := And{Cmp{Col: "cu.client_id", Op: "=", Val: clientID}}

	if opts.Status != nil {
		where = append(where, Cmp{Col: "cu.is_active", Op: "=", Val: *opts.Status == staff.StatusActive})
	}

	if opts.Search != "" {
		where = append(where, searchExpr(opts))
	}

	if complexMode {
		where = append(where, otFaceExprs(opts)...)
		where = append(where, salaryExprs(opts)...)
		if e := deviceExpr(opts.Device); e != nil {
			where = append(where, e)
		}
		if e := projectCountExpr(opts.Projects); e != nil {
			where = append(where, e)
		}
		if opts.ProjectID != nil {
			where = append(where, Exists{
				From: "project_members pm",
				Where: And{
					ColEq{Left: "pm.user_id", Right: "cu.user_id"},
					Cmp{Col: "pm.project_id", Op: "=", Val: *opts.ProjectID},
				},
			})
		}
	}

	orderCol, ok := orderColumns[opts.OrderBy]
	if !ok {
		panic(fmt.Sprintf("query: unmapped order field %q", opts.OrderBy))
	}

	mode := ModeSimple
	if complexMode {
		mode = ModeComplex
	}

	return &Plan{
		Mode:           mode,
		Where:          where,
		OrderColumn:    orderCol,
		OrderDesc:      opts.OrderDirection != "ASC",
		withSalaryJoin: opts.OT != staff.TriAny || opts.SalaryField != nil,
	}
}

func searchExpr(opts staff.ListOptions) Expr {
	cols := allSearchColumns
	if opts.SearchField != nil {
		col, ok := searchColumns[*opts.SearchField]
		if !ok {
			panic(fmt.Sprintf("query: unmapped search field %q", *opts.SearchField))
		}
		cols = []string{col}
	}

	switch opts.SearchType {
	case staff.SearchExact:
		return Match{Cols: cols, Exact: true, Pattern: opts.Search}
	case staff.SearchStartsWith:
		return Match{Cols: cols, Pattern: opts.Search + "%"}
	case staff.SearchEndsWith:
		return Match{Cols: cols, Pattern: "%" + opts.Search}
	default:
		return Match{Cols: cols, Pattern: "%" + opts.Search + "%"}
	}
}

// otFaceExprs composes the two tri-state dimensions. Overtime is truthy when
// either the role policy or the salary opt-in says so; face registration is
// the existence of at least one photo row.
func otFaceExprs(opts staff.ListOptions) []Expr {
	var exprs []Expr

	otTrue := Or{Truthy{Col: "r.use_overtime"}, Truthy{Col: "us.use_overtime"}}
	switch opts.OT {
	case staff.TriYes:
		exprs = append(exprs, otTrue)
	case staff.TriNo:
		exprs = append(exprs, Not{Expr: otTrue})
	}

	faceFrom := "user_photos p"
	faceWhere := And{ColEq{Left: "p.user_id", Right: "cu.user_id"}}
	switch opts.Face {
	case staff.TriYes:
		exprs = append(exprs, Exists{From: faceFrom, Where: faceWhere})
	case staff.TriNo:
		exprs = append(exprs, NotExists{From: faceFrom, Where: faceWhere})
	}

	return exprs
}

func salaryExprs(opts staff.ListOptions) []Expr {
	if opts.SalaryField == nil {
		return nil
	}
	col, ok := salaryColumns[*opts.SalaryField]
	if !ok {
		panic(fmt.Sprintf("query: unmapped salary field %q", *opts.SalaryField))
	}

	var exprs []Expr
	if opts.MinSalary != nil {
		exprs = append(exprs, Cmp{Col: col, Op: ">=", Val: *opts.MinSalary})
	}
	if opts.MaxSalary != nil {
		exprs = append(exprs, Cmp{Col: col, Op: "<=", Val: *opts.MaxSalary})
	}
	if opts.Currency != nil {
		exprs = append(exprs, Cmp{Col: "us.currency", Op: "=", Val: *opts.Currency})
	}
	return exprs
}

// deviceExpr picks the existence strategy per device filter: android/ios
// require a token of that type, none requires the absence of any token, all
// imposes no clause.
func deviceExpr(filter staff.DeviceFilter) Expr {
	from := "user_device_tokens dt"
	correlate := ColEq{Left: "dt.user_id", Right: "cu.user_id"}

	switch filter {
	case staff.DeviceAll:
		return nil
	case staff.DeviceAndroid, staff.DeviceIOS:
		return Exists{From: from, Where: And{
			correlate,
			Cmp{Col: "LOWER(dt.device_type)", Op: "=", Val: string(filter)},
		}}
	case staff.DeviceNone:
		return NotExists{From: from, Where: And{correlate}}
	default:
		panic(fmt.Sprintf("query: unmapped device filter %q", filter))
	}
}

func projectCountExpr(filter staff.ProjectsFilter) Expr {
	from := "project_members pm JOIN projects pr ON pr.id = pm.project_id"
	where := And{
		ColEq{Left: "pm.user_id", Right: "cu.user_id"},
		ColEq{Left: "pr.client_id", Right: "cu.client_id"},
	}

	switch filter {
	case staff.ProjectsAll:
		return nil
	case staff.ProjectsMulti:
		return CountCmp{From: from, Where: where, Op: ">", N: 1}
	case staff.ProjectsSingle:
		return CountCmp{From: from, Where: where, Op: "=", N: 1}
	case staff.ProjectsNone:
		return CountCmp{From: from, Where: where, Op: "=", N: 0}
	default:
		panic(fmt.Sprintf("query: unmapped projects filter %q", filter))
	}
}
