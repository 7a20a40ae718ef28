package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/domain/notification"
	"github.com/talentflow/hr-backend-go/internal/domain/payroll"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
	"github.com/talentflow/hr-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (payroll.PayrollService, employee.EmployeeRepository, *clock.Fixed) {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewFixed(time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC))
	svc := NewPayrollService(store.Payroll(), store.Employees(), store, clk, notification.NoopSink{})
	return svc, store.Employees(), clk
}

func createEmployee(t *testing.T, repo employee.EmployeeRepository, name, email string, basic int64, status employee.Status) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{
		Name:        name,
		Designation: "Engineer",
		Department:  "Engineering",
		Email:       email,
		BasicSalary: decimal.NewFromInt(basic),
		Status:      status,
		JoinDate:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return emp
}

func TestGetConfiguration_DefaultsWhenUnset(t *testing.T) {
	svc, _, _ := newTestService(t)

	cfg, err := svc.GetConfiguration(context.Background())
	require.NoError(t, err)

	assert.True(t, cfg.HRARate.Equal(decimal.NewFromFloat(0.40)))
	assert.True(t, cfg.PFRate.Equal(decimal.NewFromFloat(0.12)))
	assert.True(t, cfg.ESIGrossCeiling.Equal(decimal.NewFromInt(21000)))
	assert.True(t, cfg.TDSAnnualThreshold.Equal(decimal.NewFromInt(250000)))
}

func TestUpdateConfiguration_PatchesOnlyProvidedRates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	newHRA := decimal.NewFromFloat(0.50)
	updated, err := svc.UpdateConfiguration(ctx, payroll.UpdateConfigurationRequest{
		HRARate: &newHRA,
	})
	require.NoError(t, err)

	assert.True(t, updated.HRARate.Equal(newHRA))
	// Untouched rates keep their defaults.
	assert.True(t, updated.DARate.Equal(decimal.NewFromFloat(0.10)))
	assert.True(t, updated.TDSRate.Equal(decimal.NewFromFloat(0.10)))

	// And the update sticks.
	cfg, err := svc.GetConfiguration(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.HRARate.Equal(newHRA))
}

func TestUpdateConfiguration_RejectsNegativeRate(t *testing.T) {
	svc, _, _ := newTestService(t)

	negative := decimal.NewFromFloat(-0.10)
	_, err := svc.UpdateConfiguration(context.Background(), payroll.UpdateConfigurationRequest{
		PFRate: &negative,
	})
	assert.Error(t, err)
}

func TestProcessPeriod_CreatesRecordsForActiveRoster(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)
	createEmployee(t, employees, "Rahul Nair", "rahul@example.com", 50000, employee.StatusActive)
	createEmployee(t, employees, "Former Employee", "former@example.com", 40000, employee.StatusInactive)

	resp, err := svc.ProcessPeriod(ctx, payroll.ProcessPeriodRequest{PeriodMonth: 3, PeriodYear: 2024})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CreatedCount)
	assert.Equal(t, 0, resp.SkippedCount)
	require.Len(t, resp.Records, 2)

	for _, rec := range resp.Records {
		assert.Equal(t, 3, rec.PeriodMonth)
		assert.Equal(t, 2024, rec.PeriodYear)
		deductions := rec.PF.Add(rec.ESI).Add(rec.TDS)
		assert.True(t, rec.NetSalary.Equal(rec.GrossSalary.Sub(deductions)),
			"net must equal gross minus deductions")
	}
}

func TestProcessPeriod_SecondRunSkipsEverything(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)

	first, err := svc.ProcessPeriod(ctx, payroll.ProcessPeriodRequest{PeriodMonth: 3, PeriodYear: 2024})
	require.NoError(t, err)
	require.Equal(t, 1, first.CreatedCount)

	second, err := svc.ProcessPeriod(ctx, payroll.ProcessPeriodRequest{PeriodMonth: 3, PeriodYear: 2024})
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedCount)
	assert.Equal(t, 1, second.SkippedCount)

	records, err := svc.ListRecords(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestProcessPeriod_KnownFigures(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	emp := createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)

	resp, err := svc.ProcessPeriod(ctx, payroll.ProcessPeriodRequest{PeriodMonth: 3, PeriodYear: 2024})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)

	rec := resp.Records[0]
	assert.Equal(t, emp.ID, rec.EmployeeID)
	assert.True(t, rec.HRA.Equal(decimal.NewFromInt(28000)))
	assert.True(t, rec.DA.Equal(decimal.NewFromInt(7000)))
	assert.True(t, rec.GrossSalary.Equal(decimal.NewFromInt(105000)))
	assert.True(t, rec.PF.Equal(decimal.NewFromInt(8400)))
	assert.True(t, rec.ESI.IsZero())
	assert.True(t, rec.TDS.Equal(decimal.NewFromInt(10500)))
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(86100)))
}

func TestProcessOne_ConflictsWhenAlreadyProcessed(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	emp := createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)

	_, err := svc.ProcessOne(ctx, payroll.ProcessOneRequest{
		EmployeeID: emp.ID, PeriodMonth: 3, PeriodYear: 2024,
	})
	require.NoError(t, err)

	_, err = svc.ProcessOne(ctx, payroll.ProcessOneRequest{
		EmployeeID: emp.ID, PeriodMonth: 3, PeriodYear: 2024,
	})
	assert.ErrorIs(t, err, payroll.ErrAlreadyProcessed)
}

func TestProcessOne_BasicSalaryOverride(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	emp := createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)

	override := decimal.NewFromInt(10000)
	rec, err := svc.ProcessOne(ctx, payroll.ProcessOneRequest{
		EmployeeID:  emp.ID,
		PeriodMonth: 3,
		PeriodYear:  2024,
		BasicSalary: &override,
	})
	require.NoError(t, err)

	assert.True(t, rec.BasicSalary.Equal(override))
	assert.True(t, rec.GrossSalary.Equal(decimal.NewFromInt(15000)))
	// Gross under the ceiling, so ESI applies: 15000 * 0.0075 = 112.5,
	// rounded to 113.
	assert.True(t, rec.ESI.Equal(decimal.NewFromInt(113)))
}

func TestProcessOne_UnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ProcessOne(context.Background(), payroll.ProcessOneRequest{
		EmployeeID: "missing", PeriodMonth: 3, PeriodYear: 2024,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestReprocess_RequiresConfirmation(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	emp := createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)
	_, err := svc.ProcessOne(ctx, payroll.ProcessOneRequest{
		EmployeeID: emp.ID, PeriodMonth: 3, PeriodYear: 2024,
	})
	require.NoError(t, err)

	_, err = svc.Reprocess(ctx, payroll.ReprocessRequest{
		EmployeeID: emp.ID, PeriodMonth: 3, PeriodYear: 2024, Confirm: false,
	})
	assert.ErrorIs(t, err, payroll.ErrConfirmationRequired)
}

func TestReprocess_ReplacesExistingRecord(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	emp := createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)
	original, err := svc.ProcessOne(ctx, payroll.ProcessOneRequest{
		EmployeeID: emp.ID, PeriodMonth: 3, PeriodYear: 2024,
	})
	require.NoError(t, err)

	// Salary revision after the period was processed.
	raised := decimal.NewFromInt(80000)
	emp.BasicSalary = raised
	_, err = employees.Update(ctx, emp)
	require.NoError(t, err)

	replaced, err := svc.Reprocess(ctx, payroll.ReprocessRequest{
		EmployeeID: emp.ID, PeriodMonth: 3, PeriodYear: 2024, Confirm: true,
	})
	require.NoError(t, err)

	assert.Equal(t, original.ID, replaced.ID, "reprocess keeps the record identity")
	assert.True(t, replaced.BasicSalary.Equal(raised))
	assert.True(t, replaced.GrossSalary.Equal(decimal.NewFromInt(120000)))

	records, err := svc.ListRecords(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReprocess_MissingRecord(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	emp := createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)

	_, err := svc.Reprocess(ctx, payroll.ReprocessRequest{
		EmployeeID: emp.ID, PeriodMonth: 3, PeriodYear: 2024, Confirm: true,
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestGetSummary_AggregatesPeriod(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)
	createEmployee(t, employees, "Rahul Nair", "rahul@example.com", 70000, employee.StatusActive)

	_, err := svc.ProcessPeriod(ctx, payroll.ProcessPeriodRequest{PeriodMonth: 3, PeriodYear: 2024})
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ProcessedCount)
	assert.True(t, summary.TotalNetSalary.Equal(decimal.NewFromInt(172200)))

	empty, err := svc.GetSummary(ctx, 4, 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.ProcessedCount)
	assert.True(t, empty.TotalNetSalary.IsZero())
}

func TestListRecords_FilterByEmployeeAndPeriod(t *testing.T) {
	svc, employees, _ := newTestService(t)
	ctx := context.Background()

	a := createEmployee(t, employees, "Asha Verma", "asha@example.com", 70000, employee.StatusActive)
	createEmployee(t, employees, "Rahul Nair", "rahul@example.com", 50000, employee.StatusActive)

	for _, month := range []int{1, 2} {
		_, err := svc.ProcessPeriod(ctx, payroll.ProcessPeriodRequest{PeriodMonth: month, PeriodYear: 2024})
		require.NoError(t, err)
	}

	byEmployee, err := svc.ListRecords(ctx, payroll.PayrollFilter{EmployeeID: &a.ID})
	require.NoError(t, err)
	assert.Len(t, byEmployee, 2)

	month := 2
	byPeriod, err := svc.ListRecords(ctx, payroll.PayrollFilter{PeriodMonth: &month})
	require.NoError(t, err)
	assert.Len(t, byPeriod, 2)
	for _, rec := range byPeriod {
		assert.Equal(t, 2, rec.PeriodMonth)
	}
}

func TestProcessPeriod_InvalidMonth(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ProcessPeriod(context.Background(), payroll.ProcessPeriodRequest{
		PeriodMonth: 13, PeriodYear: 2024,
	})
	assert.Error(t, err)
}
