package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/database"
	"github.com/staffhub-io/staffdir-backend-go/internal/query"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

// List implements staff.StaffRepository. It compiles the validated options
// into a plan and executes it through the matching back end. The count is
// always derived from the same WHERE clause as the page, and LIMIT/OFFSET
// are applied to the row query only.
func (r *staffRepositoryImpl) List(ctx context.Context, clientID int64, opts staff.ListOptions) ([]staff.StaffRow, int64, error) {
	plan := query.Compile(clientID, opts)

	if plan.Mode == query.ModeSimple {
		return r.listComposed(ctx, plan, opts)
	}
	return r.listRaw(ctx, plan, opts)
}

// listComposed executes a simple-mode plan as flat conditions assembled from
// the structured predicate set.
func (r *staffRepositoryImpl) listComposed(ctx context.Context, plan *query.Plan, opts staff.ListOptions) ([]staff.StaffRow, int64, error) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)
	argIdx := 1

	for _, pred := range plan.Predicates() {
		if len(pred.Columns) > 0 {
			parts := make([]string, 0, len(pred.Columns))
			for _, col := range pred.Columns {
				parts = append(parts, fmt.Sprintf("%s %s $%d", col, pred.Op, argIdx))
			}
			conditions = append(conditions, "("+strings.Join(parts, " OR ")+")")
		} else {
			conditions = append(conditions, fmt.Sprintf("%s %s $%d", pred.Column, pred.Op, argIdx))
		}
		args = append(args, pred.Value)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(DISTINCT cu.id)\n%s\nWHERE %s", plan.FromClause(), whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	dir := "ASC"
	if plan.OrderDesc {
		dir = "DESC"
	}
	offset := (opts.Page - 1) * opts.Limit
	rowQuery := fmt.Sprintf("SELECT %s\n%s\nWHERE %s\nORDER BY %s %s, cu.id %s\nLIMIT $%d OFFSET $%d",
		query.RowColumns, plan.FromClause(), whereClause, plan.OrderColumn, dir, dir, argIdx, argIdx+1)
	args = append(args, opts.Limit, offset)

	rows, err := r.db.Query(ctx, rowQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	staffRows, err := collectStaffRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return staffRows, total, nil
}

// listRaw executes a complex-mode plan through the raw-SQL back end.
func (r *staffRepositoryImpl) listRaw(ctx context.Context, plan *query.Plan, opts staff.ListOptions) ([]staff.StaffRow, int64, error) {
	countQuery, countArgs := plan.CountSQL()
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	offset := (opts.Page - 1) * opts.Limit
	rowQuery, rowArgs := plan.RowSQL(opts.Limit, offset)

	rows, err := r.db.Query(ctx, rowQuery, rowArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	staffRows, err := collectStaffRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return staffRows, total, nil
}

func collectStaffRows(rows pgx.Rows) ([]staff.StaffRow, error) {
	var staffRows []staff.StaffRow
	for rows.Next() {
		var row staff.StaffRow
		var (
			roleID         *int64
			roleName       *string
			roleUseOT      *bool
			otHourlyRate   *decimal.Decimal
			allowLeave     *bool
			allowInsurance *bool
		)

		err := rows.Scan(
			&row.ID, &row.ClientID, &row.UserID, &row.RoleID, &row.JoiningDate, &row.IsActive,
			&row.StaffCode, &row.VendorID, &row.AppPermissions, &row.WebPermissions, &row.CreatedAt, &row.UpdatedAt,
			&roleID, &roleName, &roleUseOT, &otHourlyRate, &allowLeave, &allowInsurance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}

		// A dangling role_id leaves the joined columns NULL; the role is
		// then simply absent.
		if roleID != nil {
			role := staff.RoleDefinition{
				ID:           *roleID,
				ClientID:     row.ClientID,
				OTHourlyRate: otHourlyRate,
			}
			if roleName != nil {
				role.RoleName = *roleName
			}
			if roleUseOT != nil {
				role.UseOvertime = *roleUseOT
			}
			if allowLeave != nil {
				role.AllowLeave = *allowLeave
			}
			if allowInsurance != nil {
				role.AllowInsurance = *allowInsurance
			}
			row.Role = &role
		}

		staffRows = append(staffRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return staffRows, nil
}
