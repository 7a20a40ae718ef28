package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/domain/leave"
	"github.com/talentflow/hr-backend-go/internal/domain/notification"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
	"github.com/talentflow/hr-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	requestRepo  leave.LeaveRequestRepository
	balanceRepo  leave.LeaveBalanceRepository
	employeeRepo employee.EmployeeRepository
	transactor   database.Transactor
	clock        clock.Clock
	notifier     notification.Sink
}

func NewLeaveService(
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.EmployeeRepository,
	transactor database.Transactor,
	clk clock.Clock,
	notifier notification.Sink,
) leave.LeaveService {
	return &LeaveServiceImpl{
		requestRepo:  requestRepo,
		balanceRepo:  balanceRepo,
		employeeRepo: employeeRepo,
		transactor:   transactor,
		clock:        clk,
		notifier:     notifier,
	}
}

// daysInclusive counts calendar days from start to end, both ends counted.
// A single-day request (start == end) is 1 day.
func daysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// ========== REQUESTS ==========

func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if end.Before(start) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveType:   leave.LeaveType(req.LeaveType),
		StartDate:   start,
		EndDate:     end,
		Days:        daysInclusive(start, end),
		Reason:      req.Reason,
		Status:      leave.LeaveStatusPending,
		AppliedDate: s.clock.Now(),
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("leave request submitted",
		slog.String("employee_id", req.EmployeeID),
		slog.String("leave_type", req.LeaveType),
		slog.Int("days", created.Days))

	return leave.ToRequestResponse(created), nil
}

// Decide moves a Pending request to Approved or Rejected. Approval debits
// the employee's balance for the request's leave type in the same
// transaction; a request whose approval would overdraw the balance is not
// decided at all.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var decided leave.LeaveRequest
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.requestRepo.GetByID(ctx, req.RequestID)
		if err != nil {
			return err
		}

		if !request.IsPending() {
			return leave.ErrAlreadyDecided
		}

		if req.Approve {
			balance, err := s.balanceRepo.GetByEmployeeAndType(ctx, request.EmployeeID, request.LeaveType)
			if err != nil {
				return err
			}

			if balance.Available() < request.Days {
				return leave.ErrInsufficientBalance
			}

			balance.Used += request.Days
			if _, err := s.balanceRepo.Update(ctx, balance); err != nil {
				return fmt.Errorf("failed to debit leave balance: %w", err)
			}

			request.Status = leave.LeaveStatusApproved
		} else {
			request.Status = leave.LeaveStatusRejected
		}

		now := s.clock.Now()
		request.DecidedAt = &now

		decided, err = s.requestRepo.Update(ctx, request)
		if err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request decided",
		slog.String("request_id", decided.ID),
		slog.String("status", string(decided.Status)))

	kind := notification.KindWarning
	if decided.Status == leave.LeaveStatusApproved {
		kind = notification.KindSuccess
	}
	s.notifier.Notify(ctx, kind,
		fmt.Sprintf("Leave request %s for employee %s", decided.Status, decided.EmployeeID))

	return leave.ToRequestResponse(decided), nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToRequestResponse(request), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return leave.ToRequestResponses(requests), nil
}

// ========== BALANCES ==========

func (s *LeaveServiceImpl) AllocateBalance(ctx context.Context, req leave.AllocateBalanceRequest) (leave.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	balance := leave.LeaveBalance{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		Allocated:  req.Allocated,
	}

	saved, err := s.balanceRepo.Upsert(ctx, balance)
	if err != nil {
		return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to save leave balance: %w", err)
	}

	return leave.ToBalanceResponse(saved), nil
}

func (s *LeaveServiceImpl) Balances(ctx context.Context, employeeID string) ([]leave.LeaveBalanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	balances, err := s.balanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}

	return leave.ToBalanceResponses(balances), nil
}
