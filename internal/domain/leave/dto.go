package leave

import (
	"github.com/talentflow/hr-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !IsValidLeaveType(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is not a recognised leave type",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	RequestID string `json:"-"`
	Approve   bool   `json:"approve"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AllocateBalanceRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Allocated  int    `json:"allocated"`
}

func (r *AllocateBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !IsValidLeaveType(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is not a recognised leave type",
		})
	}

	if r.Allocated < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allocated",
			Message: "allocated must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequestFilter narrows List; nil fields match everything.
type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *LeaveRequestStatus
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AppliedDate  string  `json:"applied_date"`
	DecidedAt    *string `json:"decided_at,omitempty"`
}

type LeaveBalanceResponse struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Allocated  int    `json:"allocated"`
	Used       int    `json:"used"`
	Available  int    `json:"available"`
}

func ToRequestResponse(r LeaveRequest) LeaveRequestResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	var decidedAt *string
	if r.DecidedAt != nil {
		s := r.DecidedAt.Format("2006-01-02")
		decidedAt = &s
	}

	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		LeaveType:    string(r.LeaveType),
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		Days:         r.Days,
		Reason:       r.Reason,
		Status:       string(r.Status),
		AppliedDate:  r.AppliedDate.Format("2006-01-02"),
		DecidedAt:    decidedAt,
	}
}

func ToRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	result := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, ToRequestResponse(r))
	}
	return result
}

func ToBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		EmployeeID: b.EmployeeID,
		LeaveType:  string(b.LeaveType),
		Allocated:  b.Allocated,
		Used:       b.Used,
		Available:  b.Available(),
	}
}

func ToBalanceResponses(balances []LeaveBalance) []LeaveBalanceResponse {
	result := make([]LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		result = append(result, ToBalanceResponse(b))
	}
	return result
}
