package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/hr-backend-go/internal/domain/leave"
	"github.com/talentflow/hr-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
	l.days, l.reason, l.status, l.applied_date, l.decided_at,
	l.created_at, l.updated_at, e.name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Days, &req.Reason, &req.Status, &req.AppliedDate, &req.DecidedAt,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	return req, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (
				employee_id, leave_type, start_date, end_date,
				days, reason, status, applied_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + leaveRequestColumns + `
		FROM inserted l
		JOIN employees e ON e.id = l.employee_id
	`

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate,
		req.Days, req.Reason, req.Status, req.AppliedDate,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Update(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE leave_requests SET
				status = $2, decided_at = $3, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + leaveRequestColumns + `
		FROM updated l
		JOIN employees e ON e.id = l.employee_id
	`

	updated, err := scanLeaveRequest(q.QueryRow(ctx, query, req.ID, req.Status, req.DecidedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return updated, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ($1::uuid IS NULL OR l.employee_id = $1)
		  AND ($2::text IS NULL OR l.status = $2)
		ORDER BY l.applied_date DESC, l.id
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return requests, nil
}

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

const leaveBalanceColumns = `
	id, employee_id, leave_type, allocated, used, created_at, updated_at
`

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.LeaveType, &b.Allocated, &b.Used,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// Upsert implements leave.LeaveBalanceRepository. Re-allocation keeps the
// used counter.
func (r *leaveBalanceRepository) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, leave_type, allocated, used)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (employee_id, leave_type) DO UPDATE SET
			allocated = EXCLUDED.allocated,
			updated_at = NOW()
		RETURNING ` + leaveBalanceColumns

	saved, err := scanLeaveBalance(q.QueryRow(ctx, query,
		balance.EmployeeID, balance.LeaveType, balance.Allocated,
	))
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to upsert leave balance: %w", err)
	}

	return saved, nil
}

// GetByEmployeeAndType implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) GetByEmployeeAndType(ctx context.Context, employeeID string, leaveType leave.LeaveType) (leave.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type = $2
	`

	balance, err := scanLeaveBalance(q.QueryRow(ctx, query, employeeID, leaveType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return balance, nil
}

// ListByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE employee_id = $1
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances: %w", err)
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		balance, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, balance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave balances: %w", err)
	}

	return balances, nil
}

// Update implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) Update(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances SET
			allocated = $3, used = $4, updated_at = NOW()
		WHERE employee_id = $1 AND leave_type = $2
		RETURNING ` + leaveBalanceColumns

	updated, err := scanLeaveBalance(q.QueryRow(ctx, query,
		balance.EmployeeID, balance.LeaveType, balance.Allocated, balance.Used,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to update leave balance: %w", err)
	}

	return updated, nil
}
