package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
)

// AttendanceRecord - one employee work-day. Created by clock-in, mutated
// exactly once by clock-out; at most one record per (employee_id, date).
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	// Date is the work-day, truncated to midnight UTC. Not a timestamp.
	Date     time.Time
	ClockIn  time.Time
	ClockOut *time.Time
	// TotalMinutes is derived at clock-out; nil while the record is open.
	TotalMinutes *int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
}

// IsOpen reports whether the record is still waiting for a clock-out.
func (r AttendanceRecord) IsOpen() bool {
	return r.ClockOut == nil
}

// DayStateKind enumerates the per-day state machine:
// NoRecord → Open (clock-in) → Closed (clock-out).
type DayStateKind string

const (
	DayNotClockedIn DayStateKind = "not_clocked_in"
	DayOpen         DayStateKind = "open"
	DayClosed       DayStateKind = "closed"
)

// DayState is the result of a daily status query.
type DayState struct {
	Kind   DayStateKind
	Record *AttendanceRecord
}
