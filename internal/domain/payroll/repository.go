package payroll

import "context"

// PayrollRepository is the record store for payroll configuration and
// records. CreateRecord is the uniqueness-checked primitive behind the batch
// processor's idempotency: it must fail with ErrAlreadyProcessed when a
// record for the same (employee_id, month, year) already exists, never
// silently overwrite.
type PayrollRepository interface {
	GetConfiguration(ctx context.Context) (PayrollConfiguration, error)

	UpsertConfiguration(ctx context.Context, cfg PayrollConfiguration) (PayrollConfiguration, error)

	CreateRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// ReplaceRecord overwrites the figures of the existing record for the
	// record's (employee_id, month, year), keeping its identity. Used only by
	// the explicit reprocess operation.
	ReplaceRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	GetRecordByID(ctx context.Context, id string) (PayrollRecord, error)

	GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)

	ListRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, error)

	GetSummary(ctx context.Context, month, year int) (PayrollSummary, error)
}
