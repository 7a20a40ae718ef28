package leave

import "context"

// LeaveService runs the leave request state machine. Requests are submitted
// as Pending and decided exactly once; approval debits the matching balance
// atomically with the status change.
type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)
	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	AllocateBalance(ctx context.Context, req AllocateBalanceRequest) (LeaveBalanceResponse, error)
	Balances(ctx context.Context, employeeID string) ([]LeaveBalanceResponse, error)
}
