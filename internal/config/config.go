// Package config defines the data structures related to scenario
// configuration and includes functions for loading and validating it.
package config

import (
	"fmt"
	"io"

	"github.com/opsforge/decision-impact/internal/decision"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for a decision-impact run.
type Configuration struct {
	Decision   string        `yaml:"decision"`
	Parameters Parameters    `yaml:"parameters"`
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Parameters holds the named numeric inputs for the calculator. A missing
// field unmarshals to zero, which the engine treats the same as an unset
// field in the web UI.
type Parameters struct {
	HorizonWeeks          float64 `yaml:"horizonWeeks"`
	RuntimeHoursPerWeek   float64 `yaml:"runtimeHoursPerWeek"`
	BaselineRatePerHour   float64 `yaml:"baselineRatePerHour"`
	LaborRatePerHour      float64 `yaml:"laborRatePerHour"`
	OverheadPct           float64 `yaml:"overheadPct"`
	SellPrice             float64 `yaml:"sellPrice"`
	ContributionMarginPct float64 `yaml:"contributionMarginPct"`

	OvertimeHoursPerWeek   float64 `yaml:"otHoursPerWeek" mapstructure:"otHoursPerWeek"`
	OvertimePremium        float64 `yaml:"otPremium" mapstructure:"otPremium"`
	FatiguePerfDeltaPct    float64 `yaml:"fatiguePerfDeltaPct"`
	FatigueScrapDeltaPp    float64 `yaml:"fatigueScrapDeltaPp"`
	FatigueDowntimeDeltaHr float64 `yaml:"fatigueDowntimeDeltaHr"`

	CapexAmount         float64 `yaml:"capexAmount"`
	AnnualSavings       float64 `yaml:"annualSavings"`
	DeploymentLeadWeeks float64 `yaml:"deploymentLeadWeeks"`
	CostOfCapitalPct    float64 `yaml:"costOfCapitalPct"`
}

// Inputs converts the configured parameters into the engine's input set.
func (p Parameters) Inputs() decision.Inputs {
	return decision.Inputs{
		HorizonWeeks:           p.HorizonWeeks,
		RuntimeHoursPerWeek:    p.RuntimeHoursPerWeek,
		BaselineRatePerHour:    p.BaselineRatePerHour,
		LaborRatePerHour:       p.LaborRatePerHour,
		OverheadPct:            p.OverheadPct,
		SellPrice:              p.SellPrice,
		ContributionMarginPct:  p.ContributionMarginPct,
		OvertimeHoursPerWeek:   p.OvertimeHoursPerWeek,
		OvertimePremium:        p.OvertimePremium,
		FatiguePerfDeltaPct:    p.FatiguePerfDeltaPct,
		FatigueScrapDeltaPp:    p.FatigueScrapDeltaPp,
		FatigueDowntimeDeltaHr: p.FatigueDowntimeDeltaHr,
		CapexAmount:            p.CapexAmount,
		AnnualSavings:          p.AnnualSavings,
		DeploymentLeadWeeks:    p.DeploymentLeadWeeks,
		CostOfCapitalPct:       p.CostOfCapitalPct,
	}.Sanitize()
}

// ParametersFromInputs mirrors an engine input set back into the
// configuration shape, used when validating or exporting payloads that
// arrived through the web UI rather than a scenario file.
func ParametersFromInputs(in decision.Inputs) Parameters {
	return Parameters{
		HorizonWeeks:           in.HorizonWeeks,
		RuntimeHoursPerWeek:    in.RuntimeHoursPerWeek,
		BaselineRatePerHour:    in.BaselineRatePerHour,
		LaborRatePerHour:       in.LaborRatePerHour,
		OverheadPct:            in.OverheadPct,
		SellPrice:              in.SellPrice,
		ContributionMarginPct:  in.ContributionMarginPct,
		OvertimeHoursPerWeek:   in.OvertimeHoursPerWeek,
		OvertimePremium:        in.OvertimePremium,
		FatiguePerfDeltaPct:    in.FatiguePerfDeltaPct,
		FatigueScrapDeltaPp:    in.FatigueScrapDeltaPp,
		FatigueDowntimeDeltaHr: in.FatigueDowntimeDeltaHr,
		CapexAmount:            in.CapexAmount,
		AnnualSavings:          in.AnnualSavings,
		DeploymentLeadWeeks:    in.DeploymentLeadWeeks,
		CostOfCapitalPct:       in.CostOfCapitalPct,
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source, e.g. an uploaded scenario.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings. Warnings never block evaluation; the engine is
// total over coerced inputs.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Decision != "" {
		if _, ok := decision.Lookup(decision.Kind(c.Decision)); !ok {
			warnings = append(warnings, fmt.Sprintf("unknown decision %q; no result will be computed", c.Decision))
		}
	}

	p := c.Parameters
	if p.HorizonWeeks < 0 {
		warnings = append(warnings, "horizonWeeks is negative")
	}
	if p.OvertimePremium != 0 && p.OvertimePremium < 1 {
		warnings = append(warnings, "otPremium is below 1; overtime is usually paid at a premium over straight time")
	}
	if p.ContributionMarginPct < 0 || p.ContributionMarginPct > 100 {
		warnings = append(warnings, "contributionMarginPct is outside 0-100")
	}
	if p.SellPrice == 0 && (p.FatiguePerfDeltaPct != 0 || p.FatigueScrapDeltaPp != 0 || p.FatigueDowntimeDeltaHr != 0) {
		warnings = append(warnings, "sellPrice is not set; fatigue unit deltas will not be monetized (cost-only mode)")
	}
	if p.DeploymentLeadWeeks < 0 {
		warnings = append(warnings, "deploymentLeadWeeks is negative")
	}
	if p.DeploymentLeadWeeks >= p.HorizonWeeks && p.HorizonWeeks > 0 && p.AnnualSavings > 0 {
		warnings = append(warnings, "deploymentLeadWeeks meets or exceeds horizonWeeks; no savings would be realized within the horizon")
	}

	return warnings
}
