package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/hr-backend-go/internal/domain/attendance"
)

type attendanceRepo struct {
	s *Store
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.UTC().Format("2006-01-02")
}

func (r *attendanceRepo) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := dayKey(record.EmployeeID, record.Date)
	if _, exists := r.s.attendanceByDay[key]; exists {
		return attendance.AttendanceRecord{}, attendance.ErrAlreadyClockedIn
	}

	now := r.s.now()
	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now
	record.EmployeeName = r.s.employeeName(record.EmployeeID)

	r.s.attendance[record.ID] = record
	r.s.attendanceByDay[key] = record.ID
	return record, nil
}

func (r *attendanceRepo) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	record, ok := r.s.attendance[id]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (r *attendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.attendanceByDay[dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	record := r.s.attendance[id]
	return &record, nil
}

func (r *attendanceRepo) GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.AttendanceRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.attendanceByDay[dayKey(employeeID, date)]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrNoOpenClockIn
	}

	record := r.s.attendance[id]
	if !record.IsOpen() {
		return attendance.AttendanceRecord{}, attendance.ErrNoOpenClockIn
	}
	return record, nil
}

// Update refuses to touch a closed record so a clock-out is never rewritten.
func (r *attendanceRepo) Update(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.attendance[record.ID]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}
	if !stored.IsOpen() {
		return attendance.AttendanceRecord{}, attendance.ErrNoOpenClockIn
	}

	record.CreatedAt = stored.CreatedAt
	record.UpdatedAt = r.s.now()
	record.EmployeeName = r.s.employeeName(record.EmployeeID)

	r.s.attendance[record.ID] = record
	return record, nil
}

func (r *attendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]attendance.AttendanceRecord, 0)
	for _, record := range r.s.attendance {
		if record.EmployeeID == employeeID {
			result = append(result, record)
		}
	}
	sortAttendance(result)
	return result, nil
}

func (r *attendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	day := date.UTC().Format("2006-01-02")
	result := make([]attendance.AttendanceRecord, 0)
	for _, record := range r.s.attendance {
		if record.Date.UTC().Format("2006-01-02") == day {
			result = append(result, record)
		}
	}
	sortAttendance(result)
	return result, nil
}

// sortAttendance orders newest day first for ledger listings.
func sortAttendance(records []attendance.AttendanceRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})
}
