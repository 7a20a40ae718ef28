package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollConfiguration - process-wide salary computation rates. One active
// instance; mutated only through the settings update operation, never by a
// calculation.
type PayrollConfiguration struct {
	ID                 string
	HRARate            decimal.Decimal
	DARate             decimal.Decimal
	PFRate             decimal.Decimal
	ESIRate            decimal.Decimal
	ESIGrossCeiling    decimal.Decimal
	TDSAnnualThreshold decimal.Decimal
	TDSRate            decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DefaultConfiguration returns the statutory defaults: HRA 40%, DA 10%,
// PF 12%, ESI 0.75% under a 21000 gross ceiling, TDS 10% above the 250000
// annual threshold.
func DefaultConfiguration() PayrollConfiguration {
	return PayrollConfiguration{
		HRARate:            decimal.NewFromFloat(0.40),
		DARate:             decimal.NewFromFloat(0.10),
		PFRate:             decimal.NewFromFloat(0.12),
		ESIRate:            decimal.NewFromFloat(0.0075),
		ESIGrossCeiling:    decimal.NewFromInt(21000),
		TDSAnnualThreshold: decimal.NewFromInt(250000),
		TDSRate:            decimal.NewFromFloat(0.10),
	}
}

// SalaryBreakdown is the output of the compensation rule engine. Values keep
// full precision; rounding happens only when a PayrollRecord is persisted.
type SalaryBreakdown struct {
	Basic      decimal.Decimal
	HRA        decimal.Decimal
	DA         decimal.Decimal
	Gross      decimal.Decimal
	PF         decimal.Decimal
	ESI        decimal.Decimal
	TDS        decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

// PayrollRecord - persisted payroll result for one employee-period.
// Immutable once created: at most one record per (employee_id, month, year).
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	BasicSalary decimal.Decimal
	HRA         decimal.Decimal
	DA          decimal.Decimal
	GrossSalary decimal.Decimal
	PF          decimal.Decimal
	ESI         decimal.Decimal
	TDS         decimal.Decimal
	NetSalary   decimal.Decimal
	ProcessedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

// PayrollSummary - aggregate over one period's records.
type PayrollSummary struct {
	PeriodMonth    int
	PeriodYear     int
	ProcessedCount int
	TotalNetSalary decimal.Decimal
}
