package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the record store for attendance ledger entries.
type AttendanceRepository interface {
	// Create inserts a new record and must fail with ErrAlreadyClockedIn when
	// one already exists for the record's (employee_id, date).
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetByEmployeeAndDate returns nil when the employee has no record for
	// the date. Used to prevent double clock-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)

	// GetOpenByEmployeeAndDate returns the record with a null clock-out for
	// the employee-day, or ErrNoOpenClockIn.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (AttendanceRecord, error)

	Update(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceRecord, error)

	ListByDate(ctx context.Context, date time.Time) ([]AttendanceRecord, error)
}
