// Package decision defines the calculation engine for operational decision
// impacts: the parameter set entered by the user, the per-decision formulas,
// and the dispatch across the supported decision kinds.
package decision

// Kind identifies an operational decision under evaluation.
type Kind string

const (
	Overtime         Kind = "overtime"
	TempLabor        Kind = "temp-labor"
	ReduceHeadcount  Kind = "reduce-headcount"
	DeferMaintenance Kind = "defer-preventive-maintenance"
	IncreaseRate     Kind = "increase-rate"
	DelayCapex       Kind = "delay-capex"
)

// Descriptor pairs a decision kind with its display label and, when one
// exists, its impact formula. Kinds without a formula are still valid
// selections; they resolve to no active result.
type Descriptor struct {
	ID      Kind
	Label   string
	compute func(Inputs) *Result
}

// Implemented reports whether the kind carries an impact formula.
func (d Descriptor) Implemented() bool {
	return d.compute != nil
}

// kinds is the full selector enumeration. Adding a formula for one of the
// inert kinds means filling in its compute hook here; the dispatch itself
// does not change.
var kinds = []Descriptor{
	{ID: Overtime, Label: "Add overtime", compute: computeOvertimeResult},
	{ID: TempLabor, Label: "Bring in temp labor"},
	{ID: ReduceHeadcount, Label: "Reduce headcount"},
	{ID: DeferMaintenance, Label: "Defer preventive maintenance"},
	{ID: IncreaseRate, Label: "Increase run rate"},
	{ID: DelayCapex, Label: "Delay a capital purchase", compute: computeDelayCapexResult},
}

// Kinds returns the selector enumeration in display order.
func Kinds() []Descriptor {
	out := make([]Descriptor, len(kinds))
	copy(out, kinds)
	return out
}

// Lookup resolves a decision identifier to its descriptor. Unknown
// identifiers report ok=false and behave like formula-less kinds.
func Lookup(id Kind) (Descriptor, bool) {
	for _, d := range kinds {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{ID: id}, false
}
