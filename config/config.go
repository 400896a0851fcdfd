package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// StrategyConfig holds every tunable parameter of the signal generator.
// All thresholds are fixed configuration constants: nothing in the module
// computes or learns them. The struct is passed by value so a running
// strategy cannot be reconfigured behind its back.
type StrategyConfig struct {
	// Trend averages
	EMAFastPeriod  int // default 40
	EMASlowPeriod  int // default 80
	SMATrendPeriod int // default 200

	// Breakout lookback (level at i excludes candle i itself)
	BreakoutPeriod int // default 28

	// Volume gates
	VolumeSMAPeriod        int     // default 20
	VolumeMult             float64 // long gate, default 2.7
	VolumeMultShort        float64 // default 2.7
	VolumeMultShortBoosted float64 // post-distribution gate, default 2.2

	// Momentum gates
	MomentumLookback        int     // default 5
	MomentumPct             float64 // long, default 0.02
	MomentumPctShort        float64 // default 0.03
	MomentumPctShortBoosted float64 // default 0.02

	// Volatility
	ATRPeriod         int     // default 14
	ATRAvgPeriod      int     // default 50
	ATRMultMax        float64 // default 2.0
	ATRSpikeLookback  int     // default 20
	ATRSpikeThreshold float64 // default 1.52

	// Wyckoff distribution detection
	WyckoffPeriod int // default 48

	// Static exit bands consumed by the host, never enforced here.
	TakeProfitPct float64 // default 0.13
	StopLossPct   float64 // default 0.05

	// Meta
	Timeframe      string // default "1h"
	StartupCandles int    // longest warm-up requirement, default 250
}

// Default returns the tuned parameter set.
func Default() StrategyConfig {
	return StrategyConfig{
		EMAFastPeriod:  40,
		EMASlowPeriod:  80,
		SMATrendPeriod: 200,

		BreakoutPeriod: 28,

		VolumeSMAPeriod:        20,
		VolumeMult:             2.7,
		VolumeMultShort:        2.7,
		VolumeMultShortBoosted: 2.2,

		MomentumLookback:        5,
		MomentumPct:             0.02,
		MomentumPctShort:        0.03,
		MomentumPctShortBoosted: 0.02,

		ATRPeriod:         14,
		ATRAvgPeriod:      50,
		ATRMultMax:        2.0,
		ATRSpikeLookback:  20,
		ATRSpikeThreshold: 1.52,

		WyckoffPeriod: 48,

		TakeProfitPct: 0.13,
		StopLossPct:   0.05,

		Timeframe:      "1h",
		StartupCandles: 250,
	}
}

// Validate checks that all fields are within sensible bounds. It returns the
// first encountered error, allowing the caller to surface a clear
// configuration problem before any signal is generated.
func (c *StrategyConfig) Validate() error {
	if c.EMAFastPeriod <= 0 {
		return errors.New("EMAFastPeriod must be positive")
	}
	if c.EMASlowPeriod <= 0 {
		return errors.New("EMASlowPeriod must be positive")
	}
	if c.EMAFastPeriod >= c.EMASlowPeriod {
		return fmt.Errorf("EMAFastPeriod (%d) must be below EMASlowPeriod (%d)",
			c.EMAFastPeriod, c.EMASlowPeriod)
	}
	if c.SMATrendPeriod <= 0 {
		return errors.New("SMATrendPeriod must be positive")
	}
	if c.BreakoutPeriod <= 0 {
		return errors.New("BreakoutPeriod must be positive")
	}
	if c.VolumeSMAPeriod <= 0 {
		return errors.New("VolumeSMAPeriod must be positive")
	}
	if c.VolumeMult <= 0 || c.VolumeMultShort <= 0 || c.VolumeMultShortBoosted <= 0 {
		return errors.New("volume multipliers must be positive")
	}
	if c.MomentumLookback <= 0 {
		return errors.New("MomentumLookback must be positive")
	}
	if c.MomentumPct < 0 || c.MomentumPct > 1 {
		return fmt.Errorf("MomentumPct (%f) must be between 0 and 1", c.MomentumPct)
	}
	if c.MomentumPctShort < 0 || c.MomentumPctShort > 1 {
		return fmt.Errorf("MomentumPctShort (%f) must be between 0 and 1", c.MomentumPctShort)
	}
	if c.MomentumPctShortBoosted < 0 || c.MomentumPctShortBoosted > 1 {
		return fmt.Errorf("MomentumPctShortBoosted (%f) must be between 0 and 1", c.MomentumPctShortBoosted)
	}
	if c.ATRPeriod <= 0 {
		return errors.New("ATRPeriod must be positive")
	}
	if c.ATRAvgPeriod <= 0 {
		return errors.New("ATRAvgPeriod must be positive")
	}
	if c.ATRMultMax <= 0 {
		return errors.New("ATRMultMax must be positive")
	}
	if c.ATRSpikeLookback <= 0 {
		return errors.New("ATRSpikeLookback must be positive")
	}
	if c.ATRSpikeThreshold <= 1 {
		return fmt.Errorf("ATRSpikeThreshold (%f) must be above 1", c.ATRSpikeThreshold)
	}
	if c.WyckoffPeriod <= 0 {
		return errors.New("WyckoffPeriod must be positive")
	}
	if c.TakeProfitPct <= 0 || c.TakeProfitPct > 5 {
		return fmt.Errorf("TakeProfitPct (%f) out of realistic range", c.TakeProfitPct)
	}
	if c.StopLossPct <= 0 || c.StopLossPct > 0.5 {
		return fmt.Errorf("StopLossPct (%f) must be >0 and <=0.5", c.StopLossPct)
	}
	if c.Timeframe == "" {
		return errors.New("Timeframe cannot be empty")
	}
	if c.StartupCandles < c.warmupFloor() {
		return fmt.Errorf("StartupCandles (%d) below the longest window requirement (%d)",
			c.StartupCandles, c.warmupFloor())
	}
	return nil
}

// warmupFloor is the minimum warm-up implied by the configured windows:
// the longest single window plus the ATR average that stacks on top of ATR.
func (c *StrategyConfig) warmupFloor() int {
	floor := c.SMATrendPeriod
	if v := c.ATRPeriod + c.ATRAvgPeriod; v > floor {
		floor = v
	}
	if v := c.EMASlowPeriod; v > floor {
		floor = v
	}
	return floor
}

// FromEnv starts from Default and overlays any GOSIG_* environment
// variables, loading a .env file first if one exists. Useful for parameter
// sweeps without recompiling.
func FromEnv() (StrategyConfig, error) {
	// Ignore the error: a missing .env file simply means plain env vars.
	_ = godotenv.Load()

	cfg := Default()
	var err error

	intVars := []struct {
		key string
		dst *int
	}{
		{"GOSIG_EMA_FAST_PERIOD", &cfg.EMAFastPeriod},
		{"GOSIG_EMA_SLOW_PERIOD", &cfg.EMASlowPeriod},
		{"GOSIG_SMA_TREND_PERIOD", &cfg.SMATrendPeriod},
		{"GOSIG_BREAKOUT_PERIOD", &cfg.BreakoutPeriod},
		{"GOSIG_VOLUME_SMA_PERIOD", &cfg.VolumeSMAPeriod},
		{"GOSIG_MOMENTUM_LOOKBACK", &cfg.MomentumLookback},
		{"GOSIG_ATR_PERIOD", &cfg.ATRPeriod},
		{"GOSIG_ATR_AVG_PERIOD", &cfg.ATRAvgPeriod},
		{"GOSIG_ATR_SPIKE_LOOKBACK", &cfg.ATRSpikeLookback},
		{"GOSIG_WYCKOFF_PERIOD", &cfg.WyckoffPeriod},
		{"GOSIG_STARTUP_CANDLES", &cfg.StartupCandles},
	}
	for _, v := range intVars {
		if *v.dst, err = getEnvInt(v.key, *v.dst); err != nil {
			return cfg, err
		}
	}

	floatVars := []struct {
		key string
		dst *float64
	}{
		{"GOSIG_VOLUME_MULT", &cfg.VolumeMult},
		{"GOSIG_VOLUME_MULT_SHORT", &cfg.VolumeMultShort},
		{"GOSIG_VOLUME_MULT_SHORT_BOOSTED", &cfg.VolumeMultShortBoosted},
		{"GOSIG_MOMENTUM_PCT", &cfg.MomentumPct},
		{"GOSIG_MOMENTUM_PCT_SHORT", &cfg.MomentumPctShort},
		{"GOSIG_MOMENTUM_PCT_SHORT_BOOSTED", &cfg.MomentumPctShortBoosted},
		{"GOSIG_ATR_MULT_MAX", &cfg.ATRMultMax},
		{"GOSIG_ATR_SPIKE_THRESHOLD", &cfg.ATRSpikeThreshold},
		{"GOSIG_TAKE_PROFIT_PCT", &cfg.TakeProfitPct},
		{"GOSIG_STOP_LOSS_PCT", &cfg.StopLossPct},
	}
	for _, v := range floatVars {
		if *v.dst, err = getEnvFloat(v.key, *v.dst); err != nil {
			return cfg, err
		}
	}

	if tf := os.Getenv("GOSIG_TIMEFRAME"); tf != "" {
		cfg.Timeframe = tf
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}
