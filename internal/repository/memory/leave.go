package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/talentflow/hr-backend-go/internal/domain/leave"
)

type leaveRequestRepo struct {
	s *Store
}

func (r *leaveRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	req.ID = uuid.NewString()
	req.CreatedAt = now
	req.UpdatedAt = now
	req.EmployeeName = r.s.employeeName(req.EmployeeID)

	r.s.leaveRequests[req.ID] = req
	return req, nil
}

func (r *leaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *leaveRequestRepo) Update(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.leaveRequests[req.ID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	req.CreatedAt = stored.CreatedAt
	req.UpdatedAt = r.s.now()
	req.EmployeeName = r.s.employeeName(req.EmployeeID)

	r.s.leaveRequests[req.ID] = req
	return req, nil
}

func (r *leaveRequestRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]leave.LeaveRequest, 0, len(r.s.leaveRequests))
	for _, req := range r.s.leaveRequests {
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		result = append(result, req)
	}

	// Newest applications first.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].AppliedDate.Equal(result[j].AppliedDate) {
			return result[i].AppliedDate.After(result[j].AppliedDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

type leaveBalanceRepo struct {
	s *Store
}

func balanceKey(employeeID string, leaveType leave.LeaveType) string {
	return employeeID + "|" + string(leaveType)
}

func (r *leaveBalanceRepo) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := balanceKey(balance.EmployeeID, balance.LeaveType)
	now := r.s.now()

	if stored, ok := r.s.balances[key]; ok {
		// Re-allocation keeps the used counter.
		stored.Allocated = balance.Allocated
		stored.UpdatedAt = now
		r.s.balances[key] = stored
		return stored, nil
	}

	balance.ID = uuid.NewString()
	balance.Used = 0
	balance.CreatedAt = now
	balance.UpdatedAt = now

	r.s.balances[key] = balance
	return balance, nil
}

func (r *leaveBalanceRepo) GetByEmployeeAndType(ctx context.Context, employeeID string, leaveType leave.LeaveType) (leave.LeaveBalance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	balance, ok := r.s.balances[balanceKey(employeeID, leaveType)]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	return balance, nil
}

func (r *leaveBalanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]leave.LeaveBalance, 0, len(leave.LeaveTypes))
	for _, lt := range leave.LeaveTypes {
		if balance, ok := r.s.balances[balanceKey(employeeID, lt)]; ok {
			result = append(result, balance)
		}
	}
	return result, nil
}

func (r *leaveBalanceRepo) Update(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := balanceKey(balance.EmployeeID, balance.LeaveType)
	stored, ok := r.s.balances[key]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}

	balance.ID = stored.ID
	balance.CreatedAt = stored.CreatedAt
	balance.UpdatedAt = r.s.now()

	r.s.balances[key] = balance
	return balance, nil
}
