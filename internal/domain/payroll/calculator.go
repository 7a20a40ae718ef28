package payroll

import "github.com/shopspring/decimal"

var twelve = decimal.NewFromInt(12)

// ComputeBreakdown derives a full salary breakdown from a monthly basic
// salary and the active configuration. Pure: no side effects, no hidden
// state, every rate comes from cfg.
//
// TDS policy: the annual threshold is normalized to a monthly figure
// (threshold / 12) before comparing against the monthly gross. This is the
// single threshold policy used everywhere; comparing monthly gross against
// the raw annual constant is wrong and is not supported.
func ComputeBreakdown(basic decimal.Decimal, cfg PayrollConfiguration) (SalaryBreakdown, error) {
	if basic.IsNegative() {
		return SalaryBreakdown{}, ErrNegativeBasicSalary
	}

	hra := basic.Mul(cfg.HRARate)
	da := basic.Mul(cfg.DARate)
	gross := basic.Add(hra).Add(da)

	pf := basic.Mul(cfg.PFRate)

	esi := decimal.Zero
	if gross.LessThanOrEqual(cfg.ESIGrossCeiling) {
		esi = gross.Mul(cfg.ESIRate)
	}

	tds := decimal.Zero
	monthlyThreshold := cfg.TDSAnnualThreshold.Div(twelve)
	if gross.GreaterThan(monthlyThreshold) {
		tds = gross.Mul(cfg.TDSRate)
	}

	deductions := pf.Add(esi).Add(tds)

	return SalaryBreakdown{
		Basic:      basic,
		HRA:        hra,
		DA:         da,
		Gross:      gross,
		PF:         pf,
		ESI:        esi,
		TDS:        tds,
		Deductions: deductions,
		Net:        gross.Sub(deductions),
	}, nil
}

// Rounded returns the breakdown with every monetary component rounded to the
// nearest whole unit. Deductions and net are recomputed from the rounded
// components so the persisted record still satisfies
// net = gross - (pf + esi + tds).
func (b SalaryBreakdown) Rounded() SalaryBreakdown {
	r := SalaryBreakdown{
		Basic: b.Basic.Round(0),
		HRA:   b.HRA.Round(0),
		DA:    b.DA.Round(0),
		Gross: b.Gross.Round(0),
		PF:    b.PF.Round(0),
		ESI:   b.ESI.Round(0),
		TDS:   b.TDS.Round(0),
	}
	r.Deductions = r.PF.Add(r.ESI).Add(r.TDS)
	r.Net = r.Gross.Sub(r.Deductions)
	return r
}
