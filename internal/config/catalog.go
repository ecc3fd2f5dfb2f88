package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// CatalogConfig describes the reference data and multiplier tables used to
// derive the demo pricing table on first startup.
type CatalogConfig struct {
	Periods []int           `mapstructure:"periods"`
	Regions []CatalogRegion `mapstructure:"regions"`
}

type CatalogRegion struct {
	Code        string             `mapstructure:"code"`
	Name        string             `mapstructure:"name"`
	Multipliers []PeriodMultiplier `mapstructure:"multipliers"`
}

type PeriodMultiplier struct {
	Months int     `mapstructure:"months"`
	Factor float64 `mapstructure:"factor"`
}

func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		Periods: []int{3, 6, 12},
		Regions: []CatalogRegion{
			{
				Code: "SG",
				Name: "Singapore",
				Multipliers: []PeriodMultiplier{
					{Months: 3, Factor: 1},
					{Months: 6, Factor: 1.8},
					{Months: 12, Factor: 3},
				},
			},
			{
				Code: "MY",
				Name: "Malaysia",
				Multipliers: []PeriodMultiplier{
					{Months: 3, Factor: 3},
					{Months: 6, Factor: 5},
					{Months: 12, Factor: 9},
				},
			},
		},
	}
}

// Factor returns the multiplier for the given rental period.
func (r CatalogRegion) Factor(months int) (float64, bool) {
	for _, m := range r.Multipliers {
		if m.Months == months {
			return m.Factor, true
		}
	}
	return 0, false
}

// LoadCatalog reads catalog.yml from the given paths (or the default search
// paths when none are given). A missing file yields the defaults.
func LoadCatalog(paths ...string) (CatalogConfig, error) {
	v := viper.New()

	v.SetConfigName("catalog")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		v.AddConfigPath("/etc/rentcatalog")
		v.AddConfigPath(".")
	}
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if ext := filepath.Ext(p); ext == ".yml" || ext == ".yaml" {
			v.SetConfigFile(p)
			continue
		}
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("RENTCATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return CatalogConfig{}, err
		}
		return DefaultCatalogConfig(), nil
	}

	var cfg CatalogConfig
	if err := v.UnmarshalKey("catalog", &cfg); err != nil {
		return CatalogConfig{}, err
	}
	if err := validateCatalogConfig(cfg); err != nil {
		return CatalogConfig{}, err
	}
	return cfg, nil
}

func provideCatalog(cfg Config) (CatalogConfig, error) {
	if cfg.CatalogConfigPath == "" {
		return LoadCatalog()
	}
	return LoadCatalog(cfg.CatalogConfigPath)
}

func validateCatalogConfig(cfg CatalogConfig) error {
	if len(cfg.Periods) == 0 {
		return errors.New("catalog.periods cannot be empty")
	}
	if len(cfg.Regions) == 0 {
		return errors.New("catalog.regions cannot be empty")
	}
	for _, period := range cfg.Periods {
		if period <= 0 {
			return fmt.Errorf("catalog.periods: invalid month count %d", period)
		}
	}
	for _, region := range cfg.Regions {
		if len(strings.TrimSpace(region.Code)) != 2 {
			return fmt.Errorf("catalog.regions: code %q must have two letters", region.Code)
		}
		for _, period := range cfg.Periods {
			if _, ok := region.Factor(period); !ok {
				return fmt.Errorf("catalog.regions[%s]: missing multiplier for %d months", region.Code, period)
			}
		}
	}
	return nil
}
