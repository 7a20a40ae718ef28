package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/talentflow/hr-backend-go/internal/domain/payroll"
)

type payrollRepo struct {
	s *Store
}

func periodKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s|%d|%d", employeeID, month, year)
}

func (r *payrollRepo) GetConfiguration(ctx context.Context) (payroll.PayrollConfiguration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.configuration == nil {
		return payroll.PayrollConfiguration{}, payroll.ErrConfigurationNotFound
	}
	return *r.s.configuration, nil
}

func (r *payrollRepo) UpsertConfiguration(ctx context.Context, cfg payroll.PayrollConfiguration) (payroll.PayrollConfiguration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	if r.s.configuration == nil {
		cfg.ID = uuid.NewString()
		cfg.CreatedAt = now
	} else {
		cfg.ID = r.s.configuration.ID
		cfg.CreatedAt = r.s.configuration.CreatedAt
	}
	cfg.UpdatedAt = now

	r.s.configuration = &cfg
	return cfg, nil
}

func (r *payrollRepo) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := periodKey(record.EmployeeID, record.PeriodMonth, record.PeriodYear)
	if _, exists := r.s.payrollByPeriod[key]; exists {
		return payroll.PayrollRecord{}, payroll.ErrAlreadyProcessed
	}

	now := r.s.now()
	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now
	record.EmployeeName = r.s.employeeName(record.EmployeeID)

	r.s.payrollRecords[record.ID] = record
	r.s.payrollByPeriod[key] = record.ID
	return record, nil
}

func (r *payrollRepo) ReplaceRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := periodKey(record.EmployeeID, record.PeriodMonth, record.PeriodYear)
	id, exists := r.s.payrollByPeriod[key]
	if !exists {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}

	stored := r.s.payrollRecords[id]
	record.ID = stored.ID
	record.CreatedAt = stored.CreatedAt
	record.UpdatedAt = r.s.now()
	record.EmployeeName = r.s.employeeName(record.EmployeeID)

	r.s.payrollRecords[id] = record
	return record, nil
}

func (r *payrollRepo) GetRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	record, ok := r.s.payrollRecords[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return record, nil
}

func (r *payrollRepo) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.payrollByPeriod[periodKey(employeeID, month, year)]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return r.s.payrollRecords[id], nil
}

func (r *payrollRepo) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]payroll.PayrollRecord, 0, len(r.s.payrollRecords))
	for _, record := range r.s.payrollRecords {
		if filter.EmployeeID != nil && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.PeriodMonth != nil && record.PeriodMonth != *filter.PeriodMonth {
			continue
		}
		if filter.PeriodYear != nil && record.PeriodYear != *filter.PeriodYear {
			continue
		}
		result = append(result, record)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.PeriodYear != b.PeriodYear {
			return a.PeriodYear > b.PeriodYear
		}
		if a.PeriodMonth != b.PeriodMonth {
			return a.PeriodMonth > b.PeriodMonth
		}
		return a.ID < b.ID
	})
	return result, nil
}

func (r *payrollRepo) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	summary := payroll.PayrollSummary{
		PeriodMonth:    month,
		PeriodYear:     year,
		TotalNetSalary: decimal.Zero,
	}
	for _, record := range r.s.payrollRecords {
		if record.PeriodMonth != month || record.PeriodYear != year {
			continue
		}
		summary.ProcessedCount++
		summary.TotalNetSalary = summary.TotalNetSalary.Add(record.NetSalary)
	}
	return summary, nil
}
