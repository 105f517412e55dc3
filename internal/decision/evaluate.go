package decision

import (
	"fmt"

	"github.com/opsforge/decision-impact/pkg/format"
)

// Result is the record computed for one decision: the two headline KPIs
// plus the kind-specific breakdown. A Result has no lifecycle of its own;
// it is recomputed from the current inputs on every change and discarded
// otherwise.
type Result struct {
	Kind             Kind    `json:"kind"`
	NetImpactPerWeek float64 `json:"netImpactPerWeek"`
	TotalImpact      float64 `json:"totalImpact"`

	Overtime   *OvertimeResult   `json:"overtime,omitempty"`
	DelayCapex *DelayCapexResult `json:"delayCapex,omitempty"`
}

// Evaluate computes the result record for the given decision kind, or nil
// when the kind carries no formula (including unknown identifiers). The
// returned record reflects exactly the inputs passed in; readiness gating
// is the caller's concern because it governs display, not computation.
func Evaluate(kind Kind, in Inputs) *Result {
	d, ok := Lookup(kind)
	if !ok || d.compute == nil {
		return nil
	}
	return d.compute(in)
}

// Summary renders the one-line manager-facing sentence for the record.
func (r *Result) Summary() string {
	if r.NetImpactPerWeek >= 0 {
		return fmt.Sprintf("Projected to improve results by %s per week.", format.Money(r.NetImpactPerWeek))
	}
	return fmt.Sprintf("Projected to cost %s per week.", format.Money(-r.NetImpactPerWeek))
}
