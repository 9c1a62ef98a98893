package rules

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
)

// Rule describes the threshold bounds for one parameter key. Upper bounds
// carry their own level; a min/max band raises BandLevel when crossed.
// CRITICAL always wins when several bounds are crossed at once.
type Rule struct {
	WarningAbove  *float64 `mapstructure:"warning_above"`
	CriticalAbove *float64 `mapstructure:"critical_above"`
	Min           *float64 `mapstructure:"min"`
	Max           *float64 `mapstructure:"max"`
	BandLevel     string   `mapstructure:"band_level"`
}

type Table struct {
	rules map[string]Rule
}

func float64Ptr(v float64) *float64 {
	return &v
}

// Default returns the compiled-in rule set: temperature upper bounds and a
// voltage band, same shape any parameter can take via the rules file.
func Default() *Table {
	return &Table{rules: map[string]Rule{
		"temperature": {
			WarningAbove:  float64Ptr(60),
			CriticalAbove: float64Ptr(80),
		},
		"voltage": {
			Min:       float64Ptr(200),
			Max:       float64Ptr(260),
			BandLevel: string(models.AlertLevelMajor),
		},
	}}
}

// Load reads a rule table from a yaml file. A missing file is not an error;
// the defaults are used and a warning is logged.
func Load(path string) (*Table, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSolarCore,
		zap.String(common.LoggerFieldSolarCategory, common.LoggerCategorySolarRuleConfig),
	)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		logger.Warn("Rules file not readable, using default thresholds",
			zap.String("path", path), zap.Error(err))
		return Default(), nil
	}

	var parsed map[string]Rule
	if err := v.UnmarshalKey("thresholds", &parsed); err != nil {
		return nil, fmt.Errorf("parse thresholds: %w", err)
	}

	if len(parsed) == 0 {
		logger.Warn("Rules file has no thresholds section, using defaults",
			zap.String("path", path))
		return Default(), nil
	}

	logger.Info("Loaded threshold rules", zap.Int("parameters", len(parsed)))
	return &Table{rules: parsed}, nil
}

func (t *Table) Parameters() []string {
	params := make([]string, 0, len(t.rules))
	for k := range t.rules {
		params = append(params, k)
	}
	return params
}

// Evaluate checks value against the rule for param. It returns the alert
// level and a human-readable message when a bound is crossed.
func (t *Table) Evaluate(param string, value float64) (models.AlertLevel, string, bool) {
	rule, ok := t.rules[param]
	if !ok {
		return "", "", false
	}

	if rule.CriticalAbove != nil && value >= *rule.CriticalAbove {
		msg := fmt.Sprintf("%s critical: %.2f (threshold %.2f)", title(param), value, *rule.CriticalAbove)
		return models.AlertLevelCritical, msg, true
	}

	if rule.WarningAbove != nil && value >= *rule.WarningAbove {
		msg := fmt.Sprintf("%s high: %.2f (threshold %.2f)", title(param), value, *rule.WarningAbove)
		return models.AlertLevelWarning, msg, true
	}

	if rule.Min != nil && rule.Max != nil && (value < *rule.Min || value > *rule.Max) {
		level := models.AlertLevel(strings.ToUpper(rule.BandLevel))
		switch level {
		case models.AlertLevelCritical, models.AlertLevelMajor, models.AlertLevelMinor, models.AlertLevelWarning:
		default:
			level = models.AlertLevelMajor
		}
		msg := fmt.Sprintf("%s out of range: %.2f (band %.2f..%.2f)", title(param), value, *rule.Min, *rule.Max)
		return level, msg, true
	}

	return "", "", false
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
