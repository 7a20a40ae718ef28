package payroll

import "context"

type PayrollService interface {
	// Settings
	GetConfiguration(ctx context.Context) (ConfigurationResponse, error)
	UpdateConfiguration(ctx context.Context, req UpdateConfigurationRequest) (ConfigurationResponse, error)

	// Processing. ProcessPeriod and ProcessOne are idempotent per
	// (employee, period); Reprocess is the only way to overwrite.
	ProcessPeriod(ctx context.Context, req ProcessPeriodRequest) (ProcessPeriodResponse, error)
	ProcessOne(ctx context.Context, req ProcessOneRequest) (PayrollRecordResponse, error)
	Reprocess(ctx context.Context, req ReprocessRequest) (PayrollRecordResponse, error)

	// Records
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecordResponse, error)
	GetSummary(ctx context.Context, month, year int) (SummaryResponse, error)
}
