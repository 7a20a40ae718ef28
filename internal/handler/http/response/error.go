package response

import (
	"errors"
	"net/http"

	"github.com/talentflow/hr-backend-go/internal/domain/attendance"
	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/domain/leave"
	"github.com/talentflow/hr-backend-go/internal/domain/payroll"
	"github.com/talentflow/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrConfigurationNotFound):
		NotFound(w, "Payroll configuration not found")
	case errors.Is(err, payroll.ErrAlreadyProcessed):
		Conflict(w, "Payroll already processed for this period")
	case errors.Is(err, payroll.ErrConfirmationRequired):
		BadRequest(w, "Reprocessing requires explicit confirmation", nil)
	case errors.Is(err, payroll.ErrNegativeBasicSalary):
		BadRequest(w, "Basic salary must not be negative", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNoOpenClockIn):
		Conflict(w, "No open clock-in record for today")
	case errors.Is(err, attendance.ErrInvalidDuration):
		BadRequest(w, "Clock-out time must be after clock-in time", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrAlreadyDecided):
		Conflict(w, "Leave request already decided")
	case errors.Is(err, leave.ErrInsufficientBalance):
		Conflict(w, "Insufficient leave balance")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
