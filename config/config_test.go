package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, FixedTrades, cfg.Mode)
	assert.Equal(t, SizeAtDayStart, cfg.Sizing)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid fixed trades", func(c *Config) {}, ""},
		{"valid fixed stop", func(c *Config) {
			c.Mode = FixedStop
			c.TradesPerDay = 0
			c.DailyLossBudget = 20
		}, ""},
		{"unknown mode", func(c *Config) { c.Mode = "martingale" }, "mode must be"},
		{"missing trades per day", func(c *Config) { c.TradesPerDay = 0 }, "trades_per_day"},
		{"missing loss budget", func(c *Config) {
			c.Mode = FixedStop
			c.DailyLossBudget = 0
		}, "daily_loss_budget"},
		{"zero risk percent", func(c *Config) { c.RiskPercent = 0 }, "risk_percent"},
		{"risk percent over 100", func(c *Config) { c.RiskPercent = 120 }, "risk_percent"},
		{"zero stop", func(c *Config) { c.StopLossPoints = 0 }, "stop_loss_points"},
		{"zero target", func(c *Config) { c.TargetPoints = 0 }, "target_points"},
		{"zero point value", func(c *Config) { c.PointValue = 0 }, "point_value"},
		{"negative balance", func(c *Config) { c.InitialBalance = -1 }, "initial_balance"},
		{"bad sizing policy", func(c *Config) { c.Sizing = "hourly" }, "sizing_policy"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSaveLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")

	cfg := Default()
	cfg.Mode = FixedStop
	cfg.TradesPerDay = 0
	cfg.DailyLossBudget = 25.5
	cfg.Sizing = SizePerTrade
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.json")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadDefaultsSizingPolicy(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")

	cfg := Default()
	cfg.Sizing = ""
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, SizeAtDayStart, got.Sizing)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
