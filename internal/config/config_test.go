package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
scoring:
  rules_path: content/rules
scripting:
  instruction_limit: 5000
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "content/rules", cfg.Scoring.RulesPath)
	assert.Equal(t, 5000, cfg.Scripting.InstructionLimit)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 100_000, cfg.Scripting.InstructionLimit)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("YAHTZEE_LOGGING_LEVEL", "error")
	t.Setenv("YAHTZEE_SCORING_RULES_PATH", "/srv/rules")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "/srv/rules", cfg.Scoring.RulesPath)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: trace\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "info")
	v.Set("logging.format", "console")
	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := Default()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := Default()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := Config{
		Logging:   LoggingConfig{Level: "loud", Format: "xml"},
		Scripting: ScriptingConfig{InstructionLimit: -1},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "scripting.instruction_limit")
}

func TestValidateInstructionLimit_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		limit := rapid.IntRange(-1000, 1000).Draw(rt, "limit")
		cfg := Default()
		cfg.Scripting.InstructionLimit = limit
		if limit < 0 {
			assert.Error(rt, cfg.Validate())
		} else {
			assert.NoError(rt, cfg.Validate())
		}
	})
}
