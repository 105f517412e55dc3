package decision

import (
	"strings"
	"testing"
)

func TestKindsEnumeration(t *testing.T) {
	all := Kinds()
	if len(all) != 6 {
		t.Fatalf("expected 6 decision kinds, got %d", len(all))
	}

	implemented := map[Kind]bool{
		Overtime:   true,
		DelayCapex: true,
	}

	for _, d := range all {
		if d.Label == "" {
			t.Errorf("kind %s has no label", d.ID)
		}
		if d.Implemented() != implemented[d.ID] {
			t.Errorf("kind %s Implemented() = %v, expected %v", d.ID, d.Implemented(), implemented[d.ID])
		}
	}
}

func TestLookupUnknownKind(t *testing.T) {
	d, ok := Lookup("temp")
	if ok {
		t.Error("expected Lookup of unknown identifier to report ok=false")
	}
	if d.Implemented() {
		t.Error("unknown identifier must not carry a formula")
	}
}

func TestEvaluateInertKindsYieldNoResult(t *testing.T) {
	// Inert and unknown kinds resolve to no active result independent of
	// the input values.
	inputs := baseOvertimeInputs()

	for _, id := range []Kind{TempLabor, ReduceHeadcount, DeferMaintenance, IncreaseRate, "temp", ""} {
		if result := Evaluate(id, inputs); result != nil {
			t.Errorf("Evaluate(%q) = %+v, expected nil", id, result)
		}
	}
}

func TestEvaluateOvertime(t *testing.T) {
	result := Evaluate(Overtime, baseOvertimeInputs())
	if result == nil {
		t.Fatal("expected a result for the overtime decision")
	}
	if result.Kind != Overtime {
		t.Errorf("Kind = %s, expected %s", result.Kind, Overtime)
	}
	if result.Overtime == nil {
		t.Fatal("expected an overtime breakdown")
	}
	if result.DelayCapex != nil {
		t.Error("unexpected delay-capex breakdown on an overtime result")
	}
	if result.NetImpactPerWeek != result.Overtime.NetImpactPerWeek {
		t.Errorf("headline NetImpactPerWeek = %v, breakdown has %v",
			result.NetImpactPerWeek, result.Overtime.NetImpactPerWeek)
	}
	if result.TotalImpact != result.Overtime.TotalImpact {
		t.Errorf("headline TotalImpact = %v, breakdown has %v",
			result.TotalImpact, result.Overtime.TotalImpact)
	}
}

func TestEvaluateDelayCapex(t *testing.T) {
	inputs := baseCapexInputs()
	inputs.DeploymentLeadWeeks = 2

	result := Evaluate(DelayCapex, inputs)
	if result == nil {
		t.Fatal("expected a result for the delay-capex decision")
	}
	if result.DelayCapex == nil {
		t.Fatal("expected a delay-capex breakdown")
	}
	if !approxEqual(result.TotalImpact, -3076.92) {
		t.Errorf("TotalImpact = %v, expected -3076.92", result.TotalImpact)
	}
}

func TestResultSummary(t *testing.T) {
	tests := []struct {
		name     string
		net      float64
		contains string
	}{
		{"positive net improves", 1234.5, "improve results by $1,234.50 per week"},
		{"zero net improves", 0, "improve results by $0.00 per week"},
		{"negative net costs", -805, "cost $805.00 per week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Result{NetImpactPerWeek: tt.net}
			summary := r.Summary()
			if !strings.Contains(summary, tt.contains) {
				t.Errorf("Summary() = %q, expected it to contain %q", summary, tt.contains)
			}
		})
	}
}
