package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/talentflow/hr-backend-go/internal/domain/payroll"
	"github.com/talentflow/hr-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// GetConfiguration implements payroll.PayrollRepository. At most one row
// exists; the singleton flag keeps it that way.
func (r *payrollRepository) GetConfiguration(ctx context.Context) (payroll.PayrollConfiguration, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, hra_rate, da_rate, pf_rate, esi_rate,
			   esi_gross_ceiling, tds_annual_threshold, tds_rate,
			   created_at, updated_at
		FROM payroll_configurations
		WHERE singleton = TRUE
	`

	var cfg payroll.PayrollConfiguration
	err := q.QueryRow(ctx, query).Scan(
		&cfg.ID, &cfg.HRARate, &cfg.DARate, &cfg.PFRate, &cfg.ESIRate,
		&cfg.ESIGrossCeiling, &cfg.TDSAnnualThreshold, &cfg.TDSRate,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollConfiguration{}, payroll.ErrConfigurationNotFound
		}
		return payroll.PayrollConfiguration{}, fmt.Errorf("failed to get payroll configuration: %w", err)
	}

	return cfg, nil
}

// UpsertConfiguration implements payroll.PayrollRepository.
func (r *payrollRepository) UpsertConfiguration(ctx context.Context, cfg payroll.PayrollConfiguration) (payroll.PayrollConfiguration, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_configurations (
			singleton, hra_rate, da_rate, pf_rate, esi_rate,
			esi_gross_ceiling, tds_annual_threshold, tds_rate
		) VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (singleton) DO UPDATE SET
			hra_rate = EXCLUDED.hra_rate,
			da_rate = EXCLUDED.da_rate,
			pf_rate = EXCLUDED.pf_rate,
			esi_rate = EXCLUDED.esi_rate,
			esi_gross_ceiling = EXCLUDED.esi_gross_ceiling,
			tds_annual_threshold = EXCLUDED.tds_annual_threshold,
			tds_rate = EXCLUDED.tds_rate,
			updated_at = NOW()
		RETURNING id, hra_rate, da_rate, pf_rate, esi_rate,
			esi_gross_ceiling, tds_annual_threshold, tds_rate,
			created_at, updated_at
	`

	var saved payroll.PayrollConfiguration
	err := q.QueryRow(ctx, query,
		cfg.HRARate, cfg.DARate, cfg.PFRate, cfg.ESIRate,
		cfg.ESIGrossCeiling, cfg.TDSAnnualThreshold, cfg.TDSRate,
	).Scan(
		&saved.ID, &saved.HRARate, &saved.DARate, &saved.PFRate, &saved.ESIRate,
		&saved.ESIGrossCeiling, &saved.TDSAnnualThreshold, &saved.TDSRate,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollConfiguration{}, fmt.Errorf("failed to upsert payroll configuration: %w", err)
	}

	return saved, nil
}

const payrollRecordColumns = `
	p.id, p.employee_id, p.period_month, p.period_year,
	p.basic_salary, p.hra, p.da, p.gross_salary,
	p.pf, p.esi, p.tds, p.net_salary,
	p.processed_at, p.created_at, p.updated_at, e.name
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.BasicSalary, &rec.HRA, &rec.DA, &rec.GrossSalary,
		&rec.PF, &rec.ESI, &rec.TDS, &rec.NetSalary,
		&rec.ProcessedAt, &rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	return rec, err
}

// CreateRecord implements payroll.PayrollRepository. The partial insert plus
// ON CONFLICT DO NOTHING makes this the single idempotency gate: a period
// already processed for the employee comes back as ErrAlreadyProcessed, even
// under concurrent batch runs.
func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO payroll_records (
				employee_id, period_month, period_year,
				basic_salary, hra, da, gross_salary,
				pf, esi, tds, net_salary, processed_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (employee_id, period_month, period_year) DO NOTHING
			RETURNING *
		)
		SELECT ` + payrollRecordColumns + `
		FROM inserted p
		JOIN employees e ON e.id = p.employee_id
	`

	created, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodMonth, record.PeriodYear,
		record.BasicSalary, record.HRA, record.DA, record.GrossSalary,
		record.PF, record.ESI, record.TDS, record.NetSalary, record.ProcessedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrAlreadyProcessed
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

// ReplaceRecord implements payroll.PayrollRepository.
func (r *payrollRepository) ReplaceRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		WITH replaced AS (
			UPDATE payroll_records SET
				basic_salary = $4, hra = $5, da = $6, gross_salary = $7,
				pf = $8, esi = $9, tds = $10, net_salary = $11,
				processed_at = $12, updated_at = NOW()
			WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
			RETURNING *
		)
		SELECT ` + payrollRecordColumns + `
		FROM replaced p
		JOIN employees e ON e.id = p.employee_id
	`

	replaced, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodMonth, record.PeriodYear,
		record.BasicSalary, record.HRA, record.DA, record.GrossSalary,
		record.PF, record.ESI, record.TDS, record.NetSalary, record.ProcessedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to replace payroll record: %w", err)
	}

	return replaced, nil
}

// GetRecordByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

// GetRecordByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

// ListRecords implements payroll.PayrollRepository.
func (r *payrollRepository) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE ($1::uuid IS NULL OR p.employee_id = $1)
		  AND ($2::int IS NULL OR p.period_month = $2)
		  AND ($3::int IS NULL OR p.period_year = $3)
		ORDER BY p.period_year DESC, p.period_month DESC, e.name
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.PeriodMonth, filter.PeriodYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	records := make([]payroll.PayrollRecord, 0)
	for rows.Next() {
		record, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll records: %w", err)
	}

	return records, nil
}

// GetSummary implements payroll.PayrollRepository.
func (r *payrollRepository) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummary, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COALESCE(SUM(net_salary), 0)
		FROM payroll_records
		WHERE period_month = $1 AND period_year = $2
	`

	summary := payroll.PayrollSummary{
		PeriodMonth: month,
		PeriodYear:  year,
	}
	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, month, year).Scan(&summary.ProcessedCount, &total); err != nil {
		return payroll.PayrollSummary{}, fmt.Errorf("failed to summarize payroll period: %w", err)
	}
	summary.TotalNetSalary = total

	return summary, nil
}
