package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("employee already clocked in today")
	ErrNoOpenClockIn      = errors.New("no open clock-in record found for today")
	ErrInvalidDuration    = errors.New("clock-out time must be after clock-in time")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
