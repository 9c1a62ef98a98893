package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
	_ "sunpeak.xyz/solar-telemetry-service/pkg/testing"
)

func TestDefaultRules(t *testing.T) {
	table := Default()

	assert.ElementsMatch(t, []string{"temperature", "voltage"}, table.Parameters())

	level, msg, breached := table.Evaluate("temperature", 85)
	assert.True(t, breached)
	assert.Equal(t, models.AlertLevelCritical, level)
	assert.Equal(t, "Temperature critical: 85.00 (threshold 80.00)", msg)

	level, msg, breached = table.Evaluate("temperature", 65)
	assert.True(t, breached)
	assert.Equal(t, models.AlertLevelWarning, level)
	assert.Equal(t, "Temperature high: 65.00 (threshold 60.00)", msg)

	_, _, breached = table.Evaluate("temperature", 59.9)
	assert.False(t, breached)

	level, msg, breached = table.Evaluate("voltage", 190)
	assert.True(t, breached)
	assert.Equal(t, models.AlertLevelMajor, level)
	assert.Equal(t, "Voltage out of range: 190.00 (band 200.00..260.00)", msg)

	_, _, breached = table.Evaluate("voltage", 230)
	assert.False(t, breached)

	// Band bounds are inclusive.
	_, _, breached = table.Evaluate("voltage", 200)
	assert.False(t, breached)
	_, _, breached = table.Evaluate("voltage", 260)
	assert.False(t, breached)

	// Parameters without a rule never breach.
	_, _, breached = table.Evaluate("power", 1e9)
	assert.False(t, breached)
}

func TestEvaluateCriticalWinsOverWarning(t *testing.T) {
	table := Default()

	// 80 crosses both bounds; the critical one is reported.
	level, _, breached := table.Evaluate("temperature", 80)
	assert.True(t, breached)
	assert.Equal(t, models.AlertLevelCritical, level)
}

func TestLoadRulesFile(t *testing.T) {
	common.SetTestLoggerNop()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `thresholds:
  temperature:
    warning_above: 50
    critical_above: 70
  frequency:
    min: 49.5
    max: 50.5
    band_level: critical
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"temperature", "frequency"}, table.Parameters())

	level, _, breached := table.Evaluate("temperature", 75)
	assert.True(t, breached)
	assert.Equal(t, models.AlertLevelCritical, level)

	level, msg, breached := table.Evaluate("frequency", 49.2)
	assert.True(t, breached)
	assert.Equal(t, models.AlertLevelCritical, level)
	assert.Equal(t, "Frequency out of range: 49.20 (band 49.50..50.50)", msg)

	// The file replaces the defaults wholesale.
	_, _, breached = table.Evaluate("voltage", 190)
	assert.False(t, breached)
}

func TestLoadRulesFileMissing(t *testing.T) {
	common.SetTestLoggerNop()

	table, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)

	// Falls back to the defaults.
	assert.ElementsMatch(t, []string{"temperature", "voltage"}, table.Parameters())
}

func TestLoadRulesFileEmptyThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("other: {}\n"), 0o644))

	table, err := Load(path)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"temperature", "voltage"}, table.Parameters())
}

func TestEvaluateBandLevelDefaultsToMajor(t *testing.T) {
	table := &Table{rules: map[string]Rule{
		"voltage": {
			Min:       float64Ptr(200),
			Max:       float64Ptr(260),
			BandLevel: "severe", // not a known level
		},
	}}

	level, _, breached := table.Evaluate("voltage", 300)
	assert.True(t, breached)
	assert.Equal(t, models.AlertLevelMajor, level)
}
