package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentflow/hr-backend-go/internal/domain/attendance"
	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/domain/notification"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
)

// Late threshold: clock-ins after 09:30 are marked Late.
const (
	lateThresholdHour   = 9
	lateThresholdMinute = 30
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
	notifier       notification.Sink
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	notifier notification.Sink,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		notifier:       notifier,
	}
}

// workDay truncates a timestamp to its UTC work-day.
func workDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isLate reports whether a clock-in timestamp falls after the 09:30
// threshold within its own day.
func isLate(clockIn time.Time) bool {
	threshold := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(),
		lateThresholdHour, lateThresholdMinute, 0, 0, clockIn.Location())
	return clockIn.After(threshold)
}

// ========== CLOCK OPERATIONS ==========

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	day := workDay(now)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check attendance for today: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	status := attendance.StatusPresent
	if isLate(now) {
		status = attendance.StatusLate
	}

	record := attendance.AttendanceRecord{
		EmployeeID: req.EmployeeID,
		Date:       day,
		ClockIn:    now,
		Status:     status,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("employee clocked in",
		slog.String("employee_id", req.EmployeeID),
		slog.String("status", string(status)))

	kind := notification.KindSuccess
	if status == attendance.StatusLate {
		kind = notification.KindWarning
	}
	s.notifier.Notify(ctx, kind,
		fmt.Sprintf("Employee %s clocked in at %s (%s)",
			req.EmployeeID, now.Format("15:04"), status))

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	day := workDay(now)

	record, err := s.attendanceRepo.GetOpenByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Whole minutes only; seconds are truncated, never rounded up.
	minutes := int(now.Sub(record.ClockIn).Minutes())
	if minutes <= 0 {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidDuration
	}

	record.ClockOut = &now
	record.TotalMinutes = &minutes

	updated, err := s.attendanceRepo.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	slog.Info("employee clocked out",
		slog.String("employee_id", req.EmployeeID),
		slog.Int("total_minutes", minutes))

	s.notifier.Notify(ctx, notification.KindSuccess,
		fmt.Sprintf("Employee %s clocked out after %dh %dm",
			req.EmployeeID, minutes/60, minutes%60))

	return attendance.ToResponse(updated), nil
}

// ========== QUERIES ==========

// DailyStatus classifies one employee-day. A zero date means the current
// work day.
func (s *AttendanceServiceImpl) DailyStatus(ctx context.Context, employeeID string, date time.Time) (attendance.DayStateResponse, error) {
	if date.IsZero() {
		date = s.clock.Now()
	}
	day := workDay(date)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.DayStateResponse{}, fmt.Errorf("failed to load attendance for day: %w", err)
	}

	if record == nil {
		return attendance.DayStateResponse{Kind: string(attendance.DayNotClockedIn)}, nil
	}

	resp := attendance.ToResponse(*record)
	kind := attendance.DayClosed
	if record.IsOpen() {
		kind = attendance.DayOpen
	}

	return attendance.DayStateResponse{Kind: string(kind), Record: &resp}, nil
}

func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee: %w", err)
	}

	return attendance.ToResponses(records), nil
}

func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, workDay(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for date: %w", err)
	}

	return attendance.ToResponses(records), nil
}
