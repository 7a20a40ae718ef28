package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/domain/notification"
	"github.com/talentflow/hr-backend-go/internal/domain/payroll"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
	"github.com/talentflow/hr-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	transactor   database.Transactor
	clock        clock.Clock
	notifier     notification.Sink
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	transactor database.Transactor,
	clk clock.Clock,
	notifier notification.Sink,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		transactor:   transactor,
		clock:        clk,
		notifier:     notifier,
	}
}

// ========== CONFIGURATION ==========

// activeConfiguration loads the stored configuration, falling back to the
// defaults when none has been saved yet.
func (s *PayrollServiceImpl) activeConfiguration(ctx context.Context) (payroll.PayrollConfiguration, error) {
	cfg, err := s.payrollRepo.GetConfiguration(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrConfigurationNotFound) {
			return payroll.DefaultConfiguration(), nil
		}
		return payroll.PayrollConfiguration{}, fmt.Errorf("failed to load payroll configuration: %w", err)
	}
	return cfg, nil
}

func (s *PayrollServiceImpl) GetConfiguration(ctx context.Context) (payroll.ConfigurationResponse, error) {
	cfg, err := s.activeConfiguration(ctx)
	if err != nil {
		return payroll.ConfigurationResponse{}, err
	}

	return toConfigurationResponse(cfg), nil
}

func (s *PayrollServiceImpl) UpdateConfiguration(ctx context.Context, req payroll.UpdateConfigurationRequest) (payroll.ConfigurationResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ConfigurationResponse{}, err
	}

	cfg, err := s.activeConfiguration(ctx)
	if err != nil {
		return payroll.ConfigurationResponse{}, err
	}

	if req.HRARate != nil {
		cfg.HRARate = *req.HRARate
	}
	if req.DARate != nil {
		cfg.DARate = *req.DARate
	}
	if req.PFRate != nil {
		cfg.PFRate = *req.PFRate
	}
	if req.ESIRate != nil {
		cfg.ESIRate = *req.ESIRate
	}
	if req.ESIGrossCeiling != nil {
		cfg.ESIGrossCeiling = *req.ESIGrossCeiling
	}
	if req.TDSAnnualThreshold != nil {
		cfg.TDSAnnualThreshold = *req.TDSAnnualThreshold
	}
	if req.TDSRate != nil {
		cfg.TDSRate = *req.TDSRate
	}

	saved, err := s.payrollRepo.UpsertConfiguration(ctx, cfg)
	if err != nil {
		return payroll.ConfigurationResponse{}, fmt.Errorf("failed to save payroll configuration: %w", err)
	}

	slog.Info("payroll configuration updated",
		slog.String("hra_rate", saved.HRARate.String()),
		slog.String("tds_rate", saved.TDSRate.String()))

	return toConfigurationResponse(saved), nil
}

func toConfigurationResponse(cfg payroll.PayrollConfiguration) payroll.ConfigurationResponse {
	return payroll.ConfigurationResponse{
		HRARate:            cfg.HRARate,
		DARate:             cfg.DARate,
		PFRate:             cfg.PFRate,
		ESIRate:            cfg.ESIRate,
		ESIGrossCeiling:    cfg.ESIGrossCeiling,
		TDSAnnualThreshold: cfg.TDSAnnualThreshold,
		TDSRate:            cfg.TDSRate,
	}
}

// ========== PROCESSING ==========

// ProcessPeriod runs the batch processor for one period over the active
// roster. Employees that already have a record for the period are skipped,
// so running the same period twice creates nothing new.
func (s *PayrollServiceImpl) ProcessPeriod(ctx context.Context, req payroll.ProcessPeriodRequest) (payroll.ProcessPeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ProcessPeriodResponse{}, err
	}

	cfg, err := s.activeConfiguration(ctx)
	if err != nil {
		return payroll.ProcessPeriodResponse{}, err
	}

	roster, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.ProcessPeriodResponse{}, fmt.Errorf("failed to load active roster: %w", err)
	}

	resp := payroll.ProcessPeriodResponse{
		Records: make([]payroll.PayrollRecordResponse, 0, len(roster)),
	}

	for _, emp := range roster {
		record, err := s.processEmployee(ctx, emp, req.PeriodMonth, req.PeriodYear, cfg)
		if err != nil {
			if errors.Is(err, payroll.ErrAlreadyProcessed) {
				resp.SkippedCount++
				continue
			}
			return payroll.ProcessPeriodResponse{}, fmt.Errorf("failed to process employee %s: %w", emp.ID, err)
		}

		resp.Records = append(resp.Records, payroll.ToRecordResponse(record))
		resp.CreatedCount++
	}

	slog.Info("payroll period processed",
		slog.Int("period_month", req.PeriodMonth),
		slog.Int("period_year", req.PeriodYear),
		slog.Int("created", resp.CreatedCount),
		slog.Int("skipped", resp.SkippedCount))

	s.notifier.Notify(ctx, notification.KindSuccess,
		fmt.Sprintf("Payroll processed for %d/%d: %d created, %d skipped",
			req.PeriodMonth, req.PeriodYear, resp.CreatedCount, resp.SkippedCount))

	return resp, nil
}

func (s *PayrollServiceImpl) ProcessOne(ctx context.Context, req payroll.ProcessOneRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	cfg, err := s.activeConfiguration(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}

	record, err := s.processEmployee(ctx, emp, req.PeriodMonth, req.PeriodYear, cfg)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.ToRecordResponse(record), nil
}

// processEmployee computes and persists one record. The uniqueness check
// lives in the repository's CreateRecord, so a concurrent duplicate surfaces
// here as ErrAlreadyProcessed rather than a second record.
func (s *PayrollServiceImpl) processEmployee(ctx context.Context, emp employee.Employee, month, year int, cfg payroll.PayrollConfiguration) (payroll.PayrollRecord, error) {
	breakdown, err := payroll.ComputeBreakdown(emp.BasicSalary, cfg)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	breakdown = breakdown.Rounded()

	record := payroll.PayrollRecord{
		EmployeeID:  emp.ID,
		PeriodMonth: month,
		PeriodYear:  year,
		BasicSalary: breakdown.Basic,
		HRA:         breakdown.HRA,
		DA:          breakdown.DA,
		GrossSalary: breakdown.Gross,
		PF:          breakdown.PF,
		ESI:         breakdown.ESI,
		TDS:         breakdown.TDS,
		NetSalary:   breakdown.Net,
		ProcessedAt: s.clock.Now(),
	}

	return s.payrollRepo.CreateRecord(ctx, record)
}

// Reprocess replaces the figures of an existing record, recomputing from the
// employee's current basic salary and the current configuration. It refuses
// to run without explicit confirmation and refuses to create records.
func (s *PayrollServiceImpl) Reprocess(ctx context.Context, req payroll.ReprocessRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if !req.Confirm {
		return payroll.PayrollRecordResponse{}, payroll.ErrConfirmationRequired
	}

	cfg, err := s.activeConfiguration(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	var replaced payroll.PayrollRecord
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.payrollRepo.GetRecordByEmployeePeriod(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}

		breakdown, err := payroll.ComputeBreakdown(emp.BasicSalary, cfg)
		if err != nil {
			return err
		}
		breakdown = breakdown.Rounded()

		existing.BasicSalary = breakdown.Basic
		existing.HRA = breakdown.HRA
		existing.DA = breakdown.DA
		existing.GrossSalary = breakdown.Gross
		existing.PF = breakdown.PF
		existing.ESI = breakdown.ESI
		existing.TDS = breakdown.TDS
		existing.NetSalary = breakdown.Net
		existing.ProcessedAt = s.clock.Now()

		replaced, err = s.payrollRepo.ReplaceRecord(ctx, existing)
		if err != nil {
			return fmt.Errorf("failed to replace payroll record: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	slog.Info("payroll record reprocessed",
		slog.String("employee_id", req.EmployeeID),
		slog.Int("period_month", req.PeriodMonth),
		slog.Int("period_year", req.PeriodYear))

	s.notifier.Notify(ctx, notification.KindWarning,
		fmt.Sprintf("Payroll for employee %s reprocessed for %d/%d",
			req.EmployeeID, req.PeriodMonth, req.PeriodYear))

	return payroll.ToRecordResponse(replaced), nil
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.ToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	return payroll.ToRecordResponses(records), nil
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	if month < 1 || month > 12 {
		return payroll.SummaryResponse{}, payroll.ErrInvalidPeriod
	}

	summary, err := s.payrollRepo.GetSummary(ctx, month, year)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to summarize payroll period: %w", err)
	}

	return payroll.SummaryResponse{
		PeriodMonth:    month,
		PeriodYear:     year,
		ProcessedCount: summary.ProcessedCount,
		TotalNetSalary: summary.TotalNetSalary,
	}, nil
}
