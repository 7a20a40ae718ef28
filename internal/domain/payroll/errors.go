package payroll

import "errors"

var (
	ErrConfigurationNotFound = errors.New("payroll configuration not found")
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrAlreadyProcessed      = errors.New("payroll already processed for this period")
	ErrNegativeBasicSalary   = errors.New("basic salary must not be negative")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
	ErrConfirmationRequired  = errors.New("reprocessing requires explicit confirmation")
)
