package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Assumptions are the financial-model parameters the engine is calibrated
// with. They load once at startup from an optional assumptions.yml and are
// read-only afterwards; the engine tables themselves are never reloadable.
type Assumptions struct {
	BaseDiscountRate float64 `mapstructure:"baseDiscountRate"`
	BaseYear         int     `mapstructure:"baseYear"`
	HorizonEnd       int     `mapstructure:"horizonEnd"`

	GreenPremiumStart float64 `mapstructure:"greenPremiumStart"`
	GreenPremiumDecay float64 `mapstructure:"greenPremiumDecay"`
	GreenPremiumFloor float64 `mapstructure:"greenPremiumFloor"`

	ResidualMarginRate   float64 `mapstructure:"residualMarginRate"`
	MarketShareShiftRate float64 `mapstructure:"marketShareShiftRate"`
}

// DefaultAssumptions returns the published model calibration.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		BaseDiscountRate:     0.05,
		BaseYear:             2025,
		HorizonEnd:           2050,
		GreenPremiumStart:    0.30,
		GreenPremiumDecay:    0.025,
		GreenPremiumFloor:    0.05,
		ResidualMarginRate:   0.10,
		MarketShareShiftRate: 0.15,
	}
}

// LoadAssumptions reads assumptions.yml when present, falling back to the
// compiled defaults. Invalid calibrations fail startup rather than silently
// degrading the model.
func LoadAssumptions() (Assumptions, error) {
	v := viper.New()

	v.SetConfigName("assumptions")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/haneul")
	v.AddConfigPath(".")

	v.SetEnvPrefix("HANEUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultAssumptions()
	v.SetDefault("engine.baseDiscountRate", defaults.BaseDiscountRate)
	v.SetDefault("engine.baseYear", defaults.BaseYear)
	v.SetDefault("engine.horizonEnd", defaults.HorizonEnd)
	v.SetDefault("engine.greenPremiumStart", defaults.GreenPremiumStart)
	v.SetDefault("engine.greenPremiumDecay", defaults.GreenPremiumDecay)
	v.SetDefault("engine.greenPremiumFloor", defaults.GreenPremiumFloor)
	v.SetDefault("engine.residualMarginRate", defaults.ResidualMarginRate)
	v.SetDefault("engine.marketShareShiftRate", defaults.MarketShareShiftRate)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Assumptions{}, err
		}
	}

	var cfg Assumptions
	if err := v.UnmarshalKey("engine", &cfg); err != nil {
		return Assumptions{}, err
	}
	if err := validateAssumptions(cfg); err != nil {
		return Assumptions{}, err
	}
	return cfg, nil
}

func validateAssumptions(a Assumptions) error {
	if a.BaseDiscountRate <= 0 || a.BaseDiscountRate >= 1 {
		return fmt.Errorf("base discount rate out of range: %v", a.BaseDiscountRate)
	}
	if a.HorizonEnd <= a.BaseYear {
		return fmt.Errorf("projection horizon %d must end after base year %d", a.HorizonEnd, a.BaseYear)
	}
	if a.GreenPremiumFloor < 0 || a.GreenPremiumStart < a.GreenPremiumFloor {
		return fmt.Errorf("green premium start %v below floor %v", a.GreenPremiumStart, a.GreenPremiumFloor)
	}
	return nil
}
