package leave

import "context"

// LeaveRequestRepository is the record store for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	Update(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
}

// LeaveBalanceRepository tracks per-employee, per-type entitlements. A
// missing row means the employee has no allocation for that type.
type LeaveBalanceRepository interface {
	// Upsert creates the balance for (employee_id, leave_type) or replaces
	// its allocation.
	Upsert(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)

	GetByEmployeeAndType(ctx context.Context, employeeID string, leaveType LeaveType) (LeaveBalance, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error)

	// Update persists a changed Used counter.
	Update(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
}
