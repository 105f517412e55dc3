package decision

import (
	"math"
	"testing"
)

const tolerance = 0.005

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func baseOvertimeInputs() Inputs {
	return Inputs{
		HorizonWeeks:           6,
		RuntimeHoursPerWeek:    40,
		BaselineRatePerHour:    50,
		LaborRatePerHour:       35,
		OverheadPct:            0,
		SellPrice:              0,
		ContributionMarginPct:  35,
		OvertimeHoursPerWeek:   10,
		OvertimePremium:        1.5,
		FatiguePerfDeltaPct:    -3,
		FatigueScrapDeltaPp:    0.5,
		FatigueDowntimeDeltaHr: 0.2,
	}
}

func TestComputeOvertimeCostOnlyMode(t *testing.T) {
	result := ComputeOvertime(baseOvertimeInputs())

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"baseline units", result.BaselineUnits, 2000},
		{"overtime labor cost", result.OvertimeLaborCost, 525},
		{"performance delta units", result.PerfDeltaUnits, -60},
		{"scrap delta units", result.ScrapDeltaUnits, 10},
		{"downtime delta units", result.DowntimeDeltaUnits, 10},
		{"delta good units", result.DeltaGoodUnits, -80},
		{"profit from units", result.ProfitFromUnits, 0},
		{"net impact per week", result.NetImpactPerWeek, -525},
		{"total impact", result.TotalImpact, -3150},
	}

	for _, check := range checks {
		if !approxEqual(check.got, check.expected) {
			t.Errorf("%s = %v, expected %v", check.name, check.got, check.expected)
		}
	}
}

func TestComputeOvertimeWithSellPrice(t *testing.T) {
	inputs := baseOvertimeInputs()
	inputs.SellPrice = 10

	result := ComputeOvertime(inputs)

	if !approxEqual(result.ProfitFromUnits, -280) {
		t.Errorf("ProfitFromUnits = %v, expected -280", result.ProfitFromUnits)
	}
	if !approxEqual(result.NetImpactPerWeek, -805) {
		t.Errorf("NetImpactPerWeek = %v, expected -805", result.NetImpactPerWeek)
	}
	if !approxEqual(result.TotalImpact, -4830) {
		t.Errorf("TotalImpact = %v, expected -4830", result.TotalImpact)
	}
}

func TestComputeOvertimeOverheadMultiplier(t *testing.T) {
	inputs := baseOvertimeInputs()
	inputs.OverheadPct = 20

	result := ComputeOvertime(inputs)

	// 10 * 35 * 1.5 * 1.2
	if !approxEqual(result.OvertimeLaborCost, 630) {
		t.Errorf("OvertimeLaborCost = %v, expected 630", result.OvertimeLaborCost)
	}
}

func TestComputeOvertimeNegativeScrapDeltaStillSubtracted(t *testing.T) {
	inputs := baseOvertimeInputs()
	inputs.FatiguePerfDeltaPct = 0
	inputs.FatigueDowntimeDeltaHr = 0
	inputs.FatigueScrapDeltaPp = -0.5

	result := ComputeOvertime(inputs)

	// A negative scrap delta adds units back because the delta is always
	// subtracted: -(-10) = +10 good units.
	if !approxEqual(result.DeltaGoodUnits, 10) {
		t.Errorf("DeltaGoodUnits = %v, expected 10", result.DeltaGoodUnits)
	}
}

func TestComputeOvertimeTotalOverNonFiniteInputs(t *testing.T) {
	inputs := baseOvertimeInputs()
	inputs.OvertimeHoursPerWeek = math.NaN()
	inputs.FatigueDowntimeDeltaHr = math.Inf(1)

	result := ComputeOvertime(inputs)

	// Non-finite fields sanitize to zero before the formula runs.
	if !approxEqual(result.OvertimeLaborCost, 0) {
		t.Errorf("OvertimeLaborCost = %v, expected 0", result.OvertimeLaborCost)
	}
	if !approxEqual(result.DowntimeDeltaUnits, 0) {
		t.Errorf("DowntimeDeltaUnits = %v, expected 0", result.DowntimeDeltaUnits)
	}
	if math.IsNaN(result.NetImpactPerWeek) || math.IsInf(result.NetImpactPerWeek, 0) {
		t.Errorf("NetImpactPerWeek = %v, expected a finite number", result.NetImpactPerWeek)
	}
}

func TestComputeOvertimeZeroInputs(t *testing.T) {
	result := ComputeOvertime(Inputs{})

	if result.NetImpactPerWeek != 0 {
		t.Errorf("NetImpactPerWeek = %v, expected 0", result.NetImpactPerWeek)
	}
	if result.TotalImpact != 0 {
		t.Errorf("TotalImpact = %v, expected 0", result.TotalImpact)
	}
}
