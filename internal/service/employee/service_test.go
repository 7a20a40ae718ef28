package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
	"github.com/talentflow/hr-backend-go/internal/pkg/validator"
	"github.com/talentflow/hr-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) employee.EmployeeService {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewFixed(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	return NewEmployeeService(store.Employees(), clk)
}

func onboard(t *testing.T, svc employee.EmployeeService, name, email string) employee.EmployeeResponse {
	t.Helper()
	emp, err := svc.Onboard(context.Background(), employee.CreateEmployeeRequest{
		Name:        name,
		Designation: "Engineer",
		Department:  "Engineering",
		Email:       email,
		BasicSalary: decimal.NewFromInt(70000),
		JoinDate:    "2024-01-15",
	})
	require.NoError(t, err)
	return emp
}

func TestOnboard(t *testing.T) {
	svc := newTestService(t)

	emp := onboard(t, svc, "Asha Verma", "asha@example.com")

	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, string(employee.StatusActive), emp.Status)
	assert.Equal(t, "2024-01-15", emp.JoinDate)
}

func TestOnboard_JoinDateDefaultsToToday(t *testing.T) {
	svc := newTestService(t)

	emp, err := svc.Onboard(context.Background(), employee.CreateEmployeeRequest{
		Name:        "Asha Verma",
		Designation: "Engineer",
		Department:  "Engineering",
		Email:       "asha@example.com",
		BasicSalary: decimal.NewFromInt(70000),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", emp.JoinDate)
}

func TestOnboard_ValidationFailures(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Onboard(context.Background(), employee.CreateEmployeeRequest{
		Name:        "",
		Designation: "Engineer",
		Department:  "Engineering",
		Email:       "not-an-email",
		BasicSalary: decimal.NewFromInt(-1),
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "basic_salary")
}

func TestOnboard_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	onboard(t, svc, "Asha Verma", "asha@example.com")

	_, err := svc.Onboard(context.Background(), employee.CreateEmployeeRequest{
		Name:        "Other Person",
		Designation: "Engineer",
		Department:  "Engineering",
		Email:       "asha@example.com",
		BasicSalary: decimal.NewFromInt(50000),
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	emp := onboard(t, svc, "Asha Verma", "asha@example.com")

	newSalary := decimal.NewFromInt(80000)
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:          emp.ID,
		BasicSalary: &newSalary,
	})
	require.NoError(t, err)

	assert.True(t, updated.BasicSalary.Equal(newSalary))
	assert.Equal(t, "Asha Verma", updated.Name)
	assert.Equal(t, "asha@example.com", updated.Email)
}

func TestDeactivate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	emp := onboard(t, svc, "Asha Verma", "asha@example.com")

	deactivated, err := svc.Deactivate(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(employee.StatusInactive), deactivated.Status)

	// Still retrievable after deactivation.
	got, err := svc.Get(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(employee.StatusInactive), got.Status)

	_, err = svc.Deactivate(ctx, emp.ID)
	assert.ErrorIs(t, err, employee.ErrAlreadyInactive)
}

func TestListActive_ExcludesDeactivated(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := onboard(t, svc, "Asha Verma", "asha@example.com")
	onboard(t, svc, "Rahul Nair", "rahul@example.com")

	_, err := svc.Deactivate(ctx, a.ID)
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Rahul Nair", active[0].Name)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
