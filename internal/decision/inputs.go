package decision

import "github.com/opsforge/decision-impact/pkg/numeric"

// Inputs holds the coerced parameter set for one evaluation: the common
// plant parameters plus the decision-specific ones. Every field is already
// a finite number; fields the user left empty or invalid are zero.
type Inputs struct {
	// Common parameters
	HorizonWeeks          float64
	RuntimeHoursPerWeek   float64
	BaselineRatePerHour   float64
	LaborRatePerHour      float64
	OverheadPct           float64
	SellPrice             float64 // optional; zero means not provided
	ContributionMarginPct float64

	// Overtime decision
	OvertimeHoursPerWeek   float64
	OvertimePremium        float64
	FatiguePerfDeltaPct    float64 // signed; negative is a productivity loss
	FatigueScrapDeltaPp    float64 // percentage points of baseline output
	FatigueDowntimeDeltaHr float64 // extra downtime hours per week

	// Delay-capex decision
	CapexAmount         float64
	AnnualSavings       float64
	DeploymentLeadWeeks float64
	CostOfCapitalPct    float64 // optional
}

// Parameter names accepted by InputsFromMap. These match the field names
// used by the web UI and the scenario configuration files.
const (
	ParamHorizonWeeks          = "horizonWeeks"
	ParamRuntimeHoursPerWeek   = "runtimeHoursPerWeek"
	ParamBaselineRatePerHour   = "baselineRatePerHour"
	ParamLaborRatePerHour      = "laborRatePerHour"
	ParamOverheadPct           = "overheadPct"
	ParamSellPrice             = "sellPrice"
	ParamContributionMarginPct = "contributionMarginPct"
	ParamOvertimeHoursPerWeek  = "otHoursPerWeek"
	ParamOvertimePremium       = "otPremium"
	ParamFatiguePerfDeltaPct   = "fatiguePerfDeltaPct"
	ParamFatigueScrapDeltaPp   = "fatigueScrapDeltaPp"
	ParamFatigueDowntimeHr     = "fatigueDowntimeDeltaHr"
	ParamCapexAmount           = "capexAmount"
	ParamAnnualSavings         = "annualSavings"
	ParamDeploymentLeadWeeks   = "deploymentLeadWeeks"
	ParamCostOfCapitalPct      = "costOfCapitalPct"
)

// InputsFromMap coerces a raw parameter map (as decoded from JSON or YAML)
// into an Inputs value. Missing, empty, and non-numeric entries coerce to
// zero; unknown keys are ignored.
func InputsFromMap(raw map[string]interface{}) Inputs {
	field := func(name string) float64 {
		return numeric.Coerce(raw[name], 0)
	}
	return Inputs{
		HorizonWeeks:           field(ParamHorizonWeeks),
		RuntimeHoursPerWeek:    field(ParamRuntimeHoursPerWeek),
		BaselineRatePerHour:    field(ParamBaselineRatePerHour),
		LaborRatePerHour:       field(ParamLaborRatePerHour),
		OverheadPct:            field(ParamOverheadPct),
		SellPrice:              field(ParamSellPrice),
		ContributionMarginPct:  field(ParamContributionMarginPct),
		OvertimeHoursPerWeek:   field(ParamOvertimeHoursPerWeek),
		OvertimePremium:        field(ParamOvertimePremium),
		FatiguePerfDeltaPct:    field(ParamFatiguePerfDeltaPct),
		FatigueScrapDeltaPp:    field(ParamFatigueScrapDeltaPp),
		FatigueDowntimeDeltaHr: field(ParamFatigueDowntimeHr),
		CapexAmount:            field(ParamCapexAmount),
		AnnualSavings:          field(ParamAnnualSavings),
		DeploymentLeadWeeks:    field(ParamDeploymentLeadWeeks),
		CostOfCapitalPct:       field(ParamCostOfCapitalPct),
	}
}

// Sanitize replaces any non-finite field with zero so that a formula never
// observes NaN or an infinity regardless of how the Inputs were built.
func (in Inputs) Sanitize() Inputs {
	in.HorizonWeeks = numeric.CoerceFloat(in.HorizonWeeks, 0)
	in.RuntimeHoursPerWeek = numeric.CoerceFloat(in.RuntimeHoursPerWeek, 0)
	in.BaselineRatePerHour = numeric.CoerceFloat(in.BaselineRatePerHour, 0)
	in.LaborRatePerHour = numeric.CoerceFloat(in.LaborRatePerHour, 0)
	in.OverheadPct = numeric.CoerceFloat(in.OverheadPct, 0)
	in.SellPrice = numeric.CoerceFloat(in.SellPrice, 0)
	in.ContributionMarginPct = numeric.CoerceFloat(in.ContributionMarginPct, 0)
	in.OvertimeHoursPerWeek = numeric.CoerceFloat(in.OvertimeHoursPerWeek, 0)
	in.OvertimePremium = numeric.CoerceFloat(in.OvertimePremium, 0)
	in.FatiguePerfDeltaPct = numeric.CoerceFloat(in.FatiguePerfDeltaPct, 0)
	in.FatigueScrapDeltaPp = numeric.CoerceFloat(in.FatigueScrapDeltaPp, 0)
	in.FatigueDowntimeDeltaHr = numeric.CoerceFloat(in.FatigueDowntimeDeltaHr, 0)
	in.CapexAmount = numeric.CoerceFloat(in.CapexAmount, 0)
	in.AnnualSavings = numeric.CoerceFloat(in.AnnualSavings, 0)
	in.DeploymentLeadWeeks = numeric.CoerceFloat(in.DeploymentLeadWeeks, 0)
	in.CostOfCapitalPct = numeric.CoerceFloat(in.CostOfCapitalPct, 0)
	return in
}

// Ready reports whether the required plant parameters are all strictly
// positive. Results are only displayable when Ready is true.
func (in Inputs) Ready() bool {
	return in.HorizonWeeks > 0 &&
		in.RuntimeHoursPerWeek > 0 &&
		in.BaselineRatePerHour > 0 &&
		in.LaborRatePerHour > 0
}
