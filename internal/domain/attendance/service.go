package attendance

import (
	"context"
	"time"
)

// AttendanceService maintains the daily clock ledger. The work day a
// mutating operation applies to is derived from the service clock, so
// callers never pass timestamps; queries may name a past day.
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)
	DailyStatus(ctx context.Context, employeeID string, date time.Time) (DayStateResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	ListByDate(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
}
