package leave

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/domain/leave"
	"github.com/talentflow/hr-backend-go/internal/domain/notification"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
	"github.com/talentflow/hr-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (leave.LeaveService, string) {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewFixed(time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC))
	svc := NewLeaveService(store.LeaveRequests(), store.LeaveBalances(), store.Employees(), store, clk, notification.NoopSink{})

	emp, err := store.Employees().Create(context.Background(), employee.Employee{
		Name:        "Asha Verma",
		Designation: "Engineer",
		Department:  "Engineering",
		Email:       "asha@example.com",
		BasicSalary: decimal.NewFromInt(70000),
		Status:      employee.StatusActive,
		JoinDate:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return svc, emp.ID
}

func allocate(t *testing.T, svc leave.LeaveService, empID, leaveType string, days int) {
	t.Helper()
	_, err := svc.AllocateBalance(context.Background(), leave.AllocateBalanceRequest{
		EmployeeID: empID,
		LeaveType:  leaveType,
		Allocated:  days,
	})
	require.NoError(t, err)
}

func submit(t *testing.T, svc leave.LeaveService, empID, leaveType, start, end string) leave.LeaveRequestResponse {
	t.Helper()
	req, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: empID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     "family event",
	})
	require.NoError(t, err)
	return req
}

func TestSubmit_CountsDaysInclusive(t *testing.T) {
	svc, empID := newTestService(t)

	req := submit(t, svc, empID, string(leave.LeaveTypeAnnual), "2024-12-15", "2024-12-20")

	assert.Equal(t, 6, req.Days)
	assert.Equal(t, string(leave.LeaveStatusPending), req.Status)
	assert.Equal(t, "2024-12-01", req.AppliedDate)
	assert.Nil(t, req.DecidedAt)
}

func TestSubmit_SingleDay(t *testing.T) {
	svc, empID := newTestService(t)

	req := submit(t, svc, empID, string(leave.LeaveTypeSick), "2024-12-15", "2024-12-15")
	assert.Equal(t, 1, req.Days)
}

func TestSubmit_EndBeforeStartRejected(t *testing.T) {
	svc, empID := newTestService(t)

	_, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: empID,
		LeaveType:  string(leave.LeaveTypeAnnual),
		StartDate:  "2024-12-20",
		EndDate:    "2024-12-15",
		Reason:     "family event",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestSubmit_UnknownLeaveTypeRejected(t *testing.T) {
	svc, empID := newTestService(t)

	_, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: empID,
		LeaveType:  "Sabbatical",
		StartDate:  "2024-12-15",
		EndDate:    "2024-12-16",
		Reason:     "family event",
	})
	assert.Error(t, err)
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "missing",
		LeaveType:  string(leave.LeaveTypeAnnual),
		StartDate:  "2024-12-15",
		EndDate:    "2024-12-16",
		Reason:     "family event",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDecide_ApproveDebitsBalance(t *testing.T) {
	svc, empID := newTestService(t)
	ctx := context.Background()

	allocate(t, svc, empID, string(leave.LeaveTypeAnnual), 20)
	req := submit(t, svc, empID, string(leave.LeaveTypeAnnual), "2024-12-15", "2024-12-20")

	decided, err := svc.Decide(ctx, leave.DecideLeaveRequest{RequestID: req.ID, Approve: true})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusApproved), decided.Status)
	assert.NotNil(t, decided.DecidedAt)

	balances, err := svc.Balances(ctx, empID)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, 6, balances[0].Used)
	assert.Equal(t, 14, balances[0].Available)
}

func TestDecide_RejectLeavesBalanceUntouched(t *testing.T) {
	svc, empID := newTestService(t)
	ctx := context.Background()

	allocate(t, svc, empID, string(leave.LeaveTypeAnnual), 20)
	req := submit(t, svc, empID, string(leave.LeaveTypeAnnual), "2024-12-15", "2024-12-20")

	decided, err := svc.Decide(ctx, leave.DecideLeaveRequest{RequestID: req.ID, Approve: false})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusRejected), decided.Status)

	balances, err := svc.Balances(ctx, empID)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, 0, balances[0].Used)
	assert.Equal(t, 20, balances[0].Available)
}

func TestDecide_TwiceRejected(t *testing.T) {
	svc, empID := newTestService(t)
	ctx := context.Background()

	allocate(t, svc, empID, string(leave.LeaveTypeAnnual), 20)
	req := submit(t, svc, empID, string(leave.LeaveTypeAnnual), "2024-12-15", "2024-12-16")

	_, err := svc.Decide(ctx, leave.DecideLeaveRequest{RequestID: req.ID, Approve: true})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, leave.DecideLeaveRequest{RequestID: req.ID, Approve: false})
	assert.ErrorIs(t, err, leave.ErrAlreadyDecided)
}

func TestDecide_OverdraftRejected(t *testing.T) {
	svc, empID := newTestService(t)
	ctx := context.Background()

	allocate(t, svc, empID, string(leave.LeaveTypeAnnual), 3)
	req := submit(t, svc, empID, string(leave.LeaveTypeAnnual), "2024-12-15", "2024-12-20")

	_, err := svc.Decide(ctx, leave.DecideLeaveRequest{RequestID: req.ID, Approve: true})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// The request stays pending and can still be rejected.
	got, err := svc.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusPending), got.Status)

	decided, err := svc.Decide(ctx, leave.DecideLeaveRequest{RequestID: req.ID, Approve: false})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusRejected), decided.Status)
}

func TestDecide_NoBalanceAllocated(t *testing.T) {
	svc, empID := newTestService(t)

	req := submit(t, svc, empID, string(leave.LeaveTypeCasual), "2024-12-15", "2024-12-16")

	_, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{RequestID: req.ID, Approve: true})
	assert.ErrorIs(t, err, leave.ErrLeaveBalanceNotFound)
}

func TestAllocateBalance_ReallocationKeepsUsed(t *testing.T) {
	svc, empID := newTestService(t)
	ctx := context.Background()

	allocate(t, svc, empID, string(leave.LeaveTypeAnnual), 20)
	req := submit(t, svc, empID, string(leave.LeaveTypeAnnual), "2024-12-15", "2024-12-16")
	_, err := svc.Decide(ctx, leave.DecideLeaveRequest{RequestID: req.ID, Approve: true})
	require.NoError(t, err)

	updated, err := svc.AllocateBalance(ctx, leave.AllocateBalanceRequest{
		EmployeeID: empID,
		LeaveType:  string(leave.LeaveTypeAnnual),
		Allocated:  25,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Allocated)
	assert.Equal(t, 2, updated.Used)
	assert.Equal(t, 23, updated.Available)
}

func TestList_FilterByStatus(t *testing.T) {
	svc, empID := newTestService(t)
	ctx := context.Background()

	allocate(t, svc, empID, string(leave.LeaveTypeAnnual), 20)
	first := submit(t, svc, empID, string(leave.LeaveTypeAnnual), "2024-12-15", "2024-12-16")
	submit(t, svc, empID, string(leave.LeaveTypeSick), "2024-12-18", "2024-12-18")

	_, err := svc.Decide(ctx, leave.DecideLeaveRequest{RequestID: first.ID, Approve: true})
	require.NoError(t, err)

	pending := leave.LeaveStatusPending
	result, err := svc.List(ctx, leave.LeaveRequestFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, string(leave.LeaveTypeSick), result[0].LeaveType)

	all, err := svc.List(ctx, leave.LeaveRequestFilter{EmployeeID: &empID})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
