package attendance

import (
	"fmt"

	"github.com/talentflow/hr-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out,omitempty"`
	TotalMinutes *int    `json:"total_minutes,omitempty"`
	TotalHours   *string `json:"total_hours,omitempty"`
	Status       string  `json:"status"`
}

type DayStateResponse struct {
	Kind   string              `json:"kind"`
	Record *AttendanceResponse `json:"record,omitempty"`
}

func ToResponse(r AttendanceRecord) AttendanceResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	var clockOut *string
	if r.ClockOut != nil {
		s := r.ClockOut.Format("15:04")
		clockOut = &s
	}

	var totalHours *string
	if r.TotalMinutes != nil {
		s := formatMinutes(*r.TotalMinutes)
		totalHours = &s
	}

	return AttendanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		Date:         r.Date.Format("2006-01-02"),
		ClockIn:      r.ClockIn.Format("15:04"),
		ClockOut:     clockOut,
		TotalMinutes: r.TotalMinutes,
		TotalHours:   totalHours,
		Status:       string(r.Status),
	}
}

func ToResponses(records []AttendanceRecord) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}

// formatMinutes renders a duration the way the attendance board shows it,
// e.g. "9h 15m".
func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
