package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScenario = `decision: overtime
parameters:
  horizonWeeks: 6
  runtimeHoursPerWeek: 40
  baselineRatePerHour: 50
  laborRatePerHour: 35
  overheadPct: 0
  sellPrice: 10
  contributionMarginPct: 35
  otHoursPerWeek: 10
  otPremium: 1.5
  fatiguePerfDeltaPct: -3
  fatigueScrapDeltaPp: 0.5
  fatigueDowntimeDeltaHr: 0.2
logging:
  level: debug
  format: console
output:
  format: csv
`

func writeTempScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp scenario: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeTempScenario(t, testScenario)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Decision != "overtime" {
		t.Errorf("Decision = %q, expected overtime", conf.Decision)
	}
	if conf.Parameters.HorizonWeeks != 6 {
		t.Errorf("HorizonWeeks = %v, expected 6", conf.Parameters.HorizonWeeks)
	}
	if conf.Parameters.OvertimeHoursPerWeek != 10 {
		t.Errorf("OvertimeHoursPerWeek = %v, expected 10", conf.Parameters.OvertimeHoursPerWeek)
	}
	if conf.Parameters.OvertimePremium != 1.5 {
		t.Errorf("OvertimePremium = %v, expected 1.5", conf.Parameters.OvertimePremium)
	}
	if conf.Parameters.FatiguePerfDeltaPct != -3 {
		t.Errorf("FatiguePerfDeltaPct = %v, expected -3", conf.Parameters.FatiguePerfDeltaPct)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing scenario file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(testScenario))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader failed: %v", err)
	}
	if conf.Parameters.LaborRatePerHour != 35 {
		t.Errorf("LaborRatePerHour = %v, expected 35", conf.Parameters.LaborRatePerHour)
	}
}

func TestParametersInputs(t *testing.T) {
	p := Parameters{
		HorizonWeeks:         6,
		RuntimeHoursPerWeek:  40,
		BaselineRatePerHour:  50,
		LaborRatePerHour:     35,
		OvertimeHoursPerWeek: 10,
		OvertimePremium:      1.5,
	}

	in := p.Inputs()
	if !in.Ready() {
		t.Error("expected converted inputs to be ready")
	}
	if in.OvertimeHoursPerWeek != 10 {
		t.Errorf("OvertimeHoursPerWeek = %v, expected 10", in.OvertimeHoursPerWeek)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		conf     Configuration
		expected string // substring of a warning; empty means no warnings
	}{
		{
			name: "clean scenario",
			conf: Configuration{
				Decision: "overtime",
				Parameters: Parameters{
					HorizonWeeks:          6,
					OvertimePremium:       1.5,
					ContributionMarginPct: 35,
				},
			},
		},
		{
			name:     "unknown decision",
			conf:     Configuration{Decision: "outsource"},
			expected: "unknown decision",
		},
		{
			name:     "negative horizon",
			conf:     Configuration{Parameters: Parameters{HorizonWeeks: -2}},
			expected: "horizonWeeks is negative",
		},
		{
			name:     "premium below one",
			conf:     Configuration{Parameters: Parameters{OvertimePremium: 0.5}},
			expected: "otPremium is below 1",
		},
		{
			name:     "margin above 100",
			conf:     Configuration{Parameters: Parameters{ContributionMarginPct: 150}},
			expected: "contributionMarginPct is outside 0-100",
		},
		{
			name:     "fatigue without sell price",
			conf:     Configuration{Parameters: Parameters{FatigueScrapDeltaPp: 0.5}},
			expected: "cost-only mode",
		},
		{
			name: "lead time beyond horizon",
			conf: Configuration{Parameters: Parameters{
				HorizonWeeks:        6,
				DeploymentLeadWeeks: 8,
				AnnualSavings:       40000,
			}},
			expected: "deploymentLeadWeeks meets or exceeds horizonWeeks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if tt.expected == "" {
				if len(warnings) != 0 {
					t.Errorf("expected no warnings, got %v", warnings)
				}
				return
			}
			for _, w := range warnings {
				if strings.Contains(w, tt.expected) {
					return
				}
			}
			t.Errorf("expected a warning containing %q, got %v", tt.expected, warnings)
		})
	}
}
