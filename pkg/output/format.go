// Package output provides utilities for formatting and displaying decision
// impact results.
package output

import (
	"fmt"
	"strings"

	"github.com/opsforge/decision-impact/internal/decision"
	"github.com/opsforge/decision-impact/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotReadyPrompt is shown instead of results when the required plant
// parameters are not all positive.
const NotReadyPrompt = "Enter a positive horizon, runtime per week, baseline output rate, and labor rate to see results."

// NoFormulaPrompt is shown for decision kinds that are selectable but have
// no impact formula yet.
const NoFormulaPrompt = "No impact formula is available for this decision yet."

// PrettyString renders a human-readable card set for one evaluated decision.
func PrettyString(label string, ready bool, res *decision.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Impact of decision: %s ---\n", label)

	if !ready {
		b.WriteString(NotReadyPrompt + "\n")
		return b.String()
	}
	if res == nil {
		b.WriteString(NoFormulaPrompt + "\n")
		return b.String()
	}

	p := message.NewPrinter(language.English)
	fmt.Fprintf(&b, "Net impact per week  | %s\n", format.Money(res.NetImpactPerWeek))
	fmt.Fprintf(&b, "Total over horizon   | %s\n", format.Money(res.TotalImpact))

	if ot := res.Overtime; ot != nil {
		b.WriteString("\nBreakdown (per week):\n")
		fmt.Fprintf(&b, "  Overtime labor cost   | %s\n", format.Money(ot.OvertimeLaborCost))
		_, _ = p.Fprintf(&b, "  Performance delta     | %.0f units\n", ot.PerfDeltaUnits)
		_, _ = p.Fprintf(&b, "  Scrap delta           | %.0f units\n", -ot.ScrapDeltaUnits)
		_, _ = p.Fprintf(&b, "  Downtime delta        | %.0f units\n", -ot.DowntimeDeltaUnits)
		_, _ = p.Fprintf(&b, "  Net good units        | %.0f units\n", ot.DeltaGoodUnits)
		fmt.Fprintf(&b, "  Profit from units     | %s\n", format.Money(ot.ProfitFromUnits))
	}

	if cx := res.DelayCapex; cx != nil {
		b.WriteString("\nBreakdown:\n")
		_, _ = p.Fprintf(&b, "  Missed benefit weeks  | %.1f\n", cx.MissedBenefitWeeks)
		fmt.Fprintf(&b, "  Lost savings          | %s\n", format.Money(cx.LostSavingsWithinHorizon))
		fmt.Fprintf(&b, "  Carrying cost         | %s (not in headline figures)\n", format.Money(cx.CarryingCostWithinHorizon))
	}

	fmt.Fprintf(&b, "\n%s\n", res.Summary())
	return b.String()
}

// PrettyFormat outputs a human-readable rather than machine-readable card set.
func PrettyFormat(label string, ready bool, res *decision.Result) {
	fmt.Print(PrettyString(label, ready, res))
}

// CsvString renders the evaluated decision as metric,value rows.
func CsvString(label string, ready bool, res *decision.Result) string {
	var b strings.Builder
	b.WriteString(`"metric","value"` + "\n")
	fmt.Fprintf(&b, "\"decision\",%q\n", label)

	if !ready || res == nil {
		fmt.Fprintf(&b, "\"status\",%q\n", statusText(ready))
		return b.String()
	}

	fmt.Fprintf(&b, `"netImpactPerWeek","%.2f"`+"\n", res.NetImpactPerWeek)
	fmt.Fprintf(&b, `"totalImpact","%.2f"`+"\n", res.TotalImpact)

	if ot := res.Overtime; ot != nil {
		fmt.Fprintf(&b, `"otLaborCost","%.2f"`+"\n", ot.OvertimeLaborCost)
		fmt.Fprintf(&b, `"perfDeltaUnits","%.2f"`+"\n", ot.PerfDeltaUnits)
		fmt.Fprintf(&b, `"scrapDeltaUnits","%.2f"`+"\n", ot.ScrapDeltaUnits)
		fmt.Fprintf(&b, `"downtimeDeltaUnits","%.2f"`+"\n", ot.DowntimeDeltaUnits)
		fmt.Fprintf(&b, `"deltaGoodUnits","%.2f"`+"\n", ot.DeltaGoodUnits)
		fmt.Fprintf(&b, `"profitFromUnits","%.2f"`+"\n", ot.ProfitFromUnits)
	}

	if cx := res.DelayCapex; cx != nil {
		fmt.Fprintf(&b, `"missedBenefitWeeks","%.2f"`+"\n", cx.MissedBenefitWeeks)
		fmt.Fprintf(&b, `"lostSavingsWithinHorizon","%.2f"`+"\n", cx.LostSavingsWithinHorizon)
		fmt.Fprintf(&b, `"carryingCostWithinHorizon","%.2f"`+"\n", cx.CarryingCostWithinHorizon)
	}

	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(label string, ready bool, res *decision.Result) {
	fmt.Print(CsvString(label, ready, res))
}

func statusText(ready bool) string {
	if !ready {
		return "not ready"
	}
	return "no formula"
}
