package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/hr-backend-go/internal/domain/attendance"
	"github.com/talentflow/hr-backend-go/internal/domain/employee"
)

func TestAttendanceUpdate_ClosedRecordNotRewritten(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	emp, err := store.Employees().Create(ctx, employee.Employee{
		Name:        "Asha Verma",
		Designation: "Engineer",
		Department:  "Engineering",
		Email:       "asha@example.com",
		BasicSalary: decimal.NewFromInt(70000),
		Status:      employee.StatusActive,
	})
	require.NoError(t, err)

	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	created, err := store.Attendance().Create(ctx, attendance.AttendanceRecord{
		EmployeeID: emp.ID,
		Date:       day,
		ClockIn:    day.Add(9 * time.Hour),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	clockOut := day.Add(18 * time.Hour)
	minutes := 540
	created.ClockOut = &clockOut
	created.TotalMinutes = &minutes

	closed, err := store.Attendance().Update(ctx, created)
	require.NoError(t, err)
	require.NotNil(t, closed.ClockOut)

	// A second close must not rewrite the stored times.
	laterOut := day.Add(20 * time.Hour)
	laterMinutes := 660
	closed.ClockOut = &laterOut
	closed.TotalMinutes = &laterMinutes

	_, err = store.Attendance().Update(ctx, closed)
	assert.ErrorIs(t, err, attendance.ErrNoOpenClockIn)

	stored, err := store.Attendance().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ClockOut)
	assert.True(t, stored.ClockOut.Equal(clockOut))
	require.NotNil(t, stored.TotalMinutes)
	assert.Equal(t, 540, *stored.TotalMinutes)
}
