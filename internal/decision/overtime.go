package decision

import "github.com/opsforge/decision-impact/pkg/constants"

// OvertimeResult is the weekly breakdown of adding overtime: the direct
// labor cost plus the three fatigue side-effects on good output.
type OvertimeResult struct {
	BaselineUnits      float64 `json:"baselineUnits"`
	OvertimeLaborCost  float64 `json:"otLaborCost"`
	PerfDeltaUnits     float64 `json:"perfDeltaUnits"`
	ScrapDeltaUnits    float64 `json:"scrapDeltaUnits"`
	DowntimeDeltaUnits float64 `json:"downtimeDeltaUnits"`
	DeltaGoodUnits     float64 `json:"deltaGoodUnits"`
	ProfitFromUnits    float64 `json:"profitFromUnits"`
	NetImpactPerWeek   float64 `json:"netImpactPerWeek"`
	TotalImpact        float64 `json:"totalImpact"`
}

// ComputeOvertime evaluates the overtime decision over the given inputs.
// All terms are per week except TotalImpact, which spans the horizon. The
// function is total: inputs are pre-coerced, so no combination of values
// can fail.
func ComputeOvertime(in Inputs) OvertimeResult {
	in = in.Sanitize()

	baselineUnits := in.BaselineRatePerHour * in.RuntimeHoursPerWeek
	cmFraction := in.ContributionMarginPct / constants.PercentageMultiplier
	overheadMultiplier := 1 + in.OverheadPct/constants.PercentageMultiplier

	otLaborCost := in.OvertimeHoursPerWeek * in.LaborRatePerHour * in.OvertimePremium * overheadMultiplier

	// Signed; a negative productivity delta is a loss of units.
	perfDeltaUnits := baselineUnits * (in.FatiguePerfDeltaPct / constants.PercentageMultiplier)

	// Scrap and downtime deltas are always treated as unit losses and
	// subtracted regardless of their own sign.
	scrapDeltaUnits := baselineUnits * (in.FatigueScrapDeltaPp / constants.PercentageMultiplier)
	downtimeDeltaUnits := in.FatigueDowntimeDeltaHr * in.BaselineRatePerHour

	deltaGoodUnits := perfDeltaUnits - scrapDeltaUnits - downtimeDeltaUnits

	// Without a selling price the unit-volume effect cannot be monetized,
	// so the calculation runs in cost-only mode rather than guessing.
	profitFromUnits := 0.0
	if in.SellPrice > 0 {
		profitFromUnits = deltaGoodUnits * in.SellPrice * cmFraction
	}

	netImpactPerWeek := profitFromUnits - otLaborCost

	return OvertimeResult{
		BaselineUnits:      baselineUnits,
		OvertimeLaborCost:  otLaborCost,
		PerfDeltaUnits:     perfDeltaUnits,
		ScrapDeltaUnits:    scrapDeltaUnits,
		DowntimeDeltaUnits: downtimeDeltaUnits,
		DeltaGoodUnits:     deltaGoodUnits,
		ProfitFromUnits:    profitFromUnits,
		NetImpactPerWeek:   netImpactPerWeek,
		TotalImpact:        netImpactPerWeek * in.HorizonWeeks,
	}
}

func computeOvertimeResult(in Inputs) *Result {
	r := ComputeOvertime(in)
	return &Result{
		Kind:             Overtime,
		NetImpactPerWeek: r.NetImpactPerWeek,
		TotalImpact:      r.TotalImpact,
		Overtime:         &r,
	}
}
