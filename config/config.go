package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects how a trading day is limited.
type Mode string

const (
	// FixedTrades caps the day at a fixed number of trade slots.
	FixedTrades Mode = "fixed_trades"
	// FixedStop caps the day at a fixed cumulative dollar loss.
	FixedStop Mode = "fixed_stop"
)

// SizingPolicy selects which balance feeds the position sizer.
type SizingPolicy string

const (
	// SizeAtDayStart sizes once from the balance at day open and keeps the
	// contract count stable for the whole day.
	SizeAtDayStart SizingPolicy = "day_start"
	// SizePerTrade resizes from the live balance before every trade.
	SizePerTrade SizingPolicy = "per_trade"
)

// Config holds the planner's risk settings. It is written by `config init`
// and read-only to everything else.
type Config struct {
	Mode            Mode         `json:"mode" yaml:"mode"`
	TradesPerDay    int          `json:"trades_per_day,omitempty" yaml:"trades_per_day,omitempty"`
	DailyLossBudget float64      `json:"daily_loss_budget,omitempty" yaml:"daily_loss_budget,omitempty"`
	RiskPercent     float64      `json:"risk_percent" yaml:"risk_percent"`
	StopLossPoints  float64      `json:"stop_loss_points" yaml:"stop_loss_points"`
	TargetPoints    float64      `json:"target_points" yaml:"target_points"`
	PointValue      float64      `json:"point_value" yaml:"point_value"`
	InitialBalance  float64      `json:"initial_balance" yaml:"initial_balance"`
	Sizing          SizingPolicy `json:"sizing_policy,omitempty" yaml:"sizing_policy,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if cfg.Sizing == "" {
		cfg.Sizing = SizeAtDayStart
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Mode {
	case FixedTrades:
		if c.TradesPerDay <= 0 {
			return fmt.Errorf("trades_per_day must be positive in %s mode", FixedTrades)
		}
	case FixedStop:
		if c.DailyLossBudget <= 0 {
			return fmt.Errorf("daily_loss_budget must be positive in %s mode", FixedStop)
		}
	default:
		return fmt.Errorf("mode must be %q or %q", FixedTrades, FixedStop)
	}
	if c.RiskPercent <= 0 || c.RiskPercent > 100 {
		return fmt.Errorf("risk_percent must be in (0, 100]")
	}
	if c.StopLossPoints <= 0 {
		return fmt.Errorf("stop_loss_points must be positive")
	}
	if c.TargetPoints <= 0 {
		return fmt.Errorf("target_points must be positive")
	}
	if c.PointValue <= 0 {
		return fmt.Errorf("point_value must be positive")
	}
	if c.InitialBalance < 0 {
		return fmt.Errorf("initial_balance must not be negative")
	}
	if c.Sizing != "" && c.Sizing != SizeAtDayStart && c.Sizing != SizePerTrade {
		return fmt.Errorf("sizing_policy must be %q or %q", SizeAtDayStart, SizePerTrade)
	}
	return nil
}

// ResizePerTrade reports whether the sizer should run off the live balance
// before every trade instead of once at day open.
func (c *Config) ResizePerTrade() bool {
	return c.Sizing == SizePerTrade
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Mode:           FixedTrades,
		TradesPerDay:   3,
		RiskPercent:    5,
		StopLossPoints: 10,
		TargetPoints:   15,
		PointValue:     2,
		InitialBalance: 500,
		Sizing:         SizeAtDayStart,
	}
}
