package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talentflow/hr-backend-go/internal/pkg/validator"
)

type ConfigurationResponse struct {
	HRARate            decimal.Decimal `json:"hra_rate"`
	DARate             decimal.Decimal `json:"da_rate"`
	PFRate             decimal.Decimal `json:"pf_rate"`
	ESIRate            decimal.Decimal `json:"esi_rate"`
	ESIGrossCeiling    decimal.Decimal `json:"esi_gross_ceiling"`
	TDSAnnualThreshold decimal.Decimal `json:"tds_annual_threshold"`
	TDSRate            decimal.Decimal `json:"tds_rate"`
}

type UpdateConfigurationRequest struct {
	HRARate            *decimal.Decimal `json:"hra_rate,omitempty"`
	DARate             *decimal.Decimal `json:"da_rate,omitempty"`
	PFRate             *decimal.Decimal `json:"pf_rate,omitempty"`
	ESIRate            *decimal.Decimal `json:"esi_rate,omitempty"`
	ESIGrossCeiling    *decimal.Decimal `json:"esi_gross_ceiling,omitempty"`
	TDSAnnualThreshold *decimal.Decimal `json:"tds_annual_threshold,omitempty"`
	TDSRate            *decimal.Decimal `json:"tds_rate,omitempty"`
}

func (r *UpdateConfigurationRequest) Validate() error {
	var errs validator.ValidationErrors

	rates := map[string]*decimal.Decimal{
		"hra_rate":             r.HRARate,
		"da_rate":              r.DARate,
		"pf_rate":              r.PFRate,
		"esi_rate":             r.ESIRate,
		"esi_gross_ceiling":    r.ESIGrossCeiling,
		"tds_annual_threshold": r.TDSAnnualThreshold,
		"tds_rate":             r.TDSRate,
	}
	for field, value := range rates {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProcessPeriodRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *ProcessPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProcessOneRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`

	// BasicSalary overrides the employee's rostered basic salary when set.
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *ProcessOneRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year is out of range",
		})
	}

	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReprocessRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`

	// Confirm must be true: reprocessing replaces an existing immutable
	// record and is never done implicitly.
	Confirm bool `json:"confirm"`
}

func (r *ReprocessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollFilter struct {
	EmployeeID  *string
	PeriodMonth *int
	PeriodYear  *int
}

type PayrollRecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	PeriodMonth  int             `json:"period_month"`
	PeriodYear   int             `json:"period_year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	HRA          decimal.Decimal `json:"hra"`
	DA           decimal.Decimal `json:"da"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	PF           decimal.Decimal `json:"pf"`
	ESI          decimal.Decimal `json:"esi"`
	TDS          decimal.Decimal `json:"tds"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	ProcessedAt  string          `json:"processed_at"`
}

type ProcessPeriodResponse struct {
	Records      []PayrollRecordResponse `json:"records"`
	CreatedCount int                     `json:"created_count"`
	SkippedCount int                     `json:"skipped_count"`
}

type SummaryResponse struct {
	PeriodMonth    int             `json:"period_month"`
	PeriodYear     int             `json:"period_year"`
	ProcessedCount int             `json:"processed_count"`
	TotalNetSalary decimal.Decimal `json:"total_net_salary"`
}

func ToRecordResponse(r PayrollRecord) PayrollRecordResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return PayrollRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		PeriodMonth:  r.PeriodMonth,
		PeriodYear:   r.PeriodYear,
		BasicSalary:  r.BasicSalary,
		HRA:          r.HRA,
		DA:           r.DA,
		GrossSalary:  r.GrossSalary,
		PF:           r.PF,
		ESI:          r.ESI,
		TDS:          r.TDS,
		NetSalary:    r.NetSalary,
		ProcessedAt:  r.ProcessedAt.Format(time.RFC3339),
	}
}

func ToRecordResponses(records []PayrollRecord) []PayrollRecordResponse {
	result := make([]PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToRecordResponse(r))
	}
	return result
}
