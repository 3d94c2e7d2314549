// Package config resolves campus settings from flags, environment variables,
// an optional .env file and an optional .campus.yaml config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/campus/internal/catalog"
	"github.com/alexanderramin/campus/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyConfig  = "config"
	KeyDB      = "db"
	KeySource  = "source"
	KeyVerbose = "verbose"

	keyThresholds = "thresholds"
	envPrefix     = "CAMPUS"
)

// ThresholdOverride replaces one or both cut points of a page.
type ThresholdOverride struct {
	Safe    *float64 `mapstructure:"safe"`
	Warning *float64 `mapstructure:"warning"`
}

// Apply returns base with the overridden cut points replaced.
func (o ThresholdOverride) Apply(base domain.Thresholds) domain.Thresholds {
	return domain.Thresholds{
		Safe:    domain.Float64FromPtrWithDefault(base.Safe, o.Safe),
		Warning: domain.Float64FromPtrWithDefault(base.Warning, o.Warning),
	}
}

// Config holds the resolved settings.
type Config struct {
	DBPath     string
	Source     domain.SourceKind
	Verbose    bool
	Thresholds map[string]ThresholdOverride

	// File is the config file that was read, empty when none was found.
	File string
}

// DefaultDBPath returns ~/.campus/campus.db, or a relative path when the
// home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".campus", "campus.db")
	}
	return filepath.Join(home, ".campus", "campus.db")
}

// Load resolves the configuration. Precedence, highest first: flags that were
// set explicitly, CAMPUS_* environment variables (including those from a
// .env file in the working directory), the config file, defaults.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(KeyDB, DefaultDBPath())
	v.SetDefault(KeySource, string(domain.SourceSeed))
	v.SetDefault(KeyVerbose, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyConfig, KeyDB, KeySource, KeyVerbose} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:  v.GetString(KeyDB),
		Source:  domain.SourceKind(v.GetString(KeySource)),
		Verbose: v.GetBool(KeyVerbose),
		File:    v.ConfigFileUsed(),
	}
	if cfg.Source != domain.SourceSeed && cfg.Source != domain.SourceSQLite {
		return nil, fmt.Errorf("invalid source %q (want %s or %s)", cfg.Source, domain.SourceSeed, domain.SourceSQLite)
	}
	if err := v.UnmarshalKey(keyThresholds, &cfg.Thresholds); err != nil {
		return nil, fmt.Errorf("reading thresholds: %w", err)
	}
	return cfg, nil
}

// ApplyThresholds writes the configured overrides into cat. Overrides for
// pages the catalog does not know are an error.
func (c *Config) ApplyThresholds(cat *catalog.Catalog) error {
	pages := make([]string, 0, len(c.Thresholds))
	for page := range c.Thresholds {
		pages = append(pages, page)
	}
	sort.Strings(pages)

	for _, page := range pages {
		spec, err := cat.Page(page)
		if err != nil {
			return fmt.Errorf("thresholds: %w (pages: %s)", err, strings.Join(cat.Names(), ", "))
		}
		if err := cat.SetThresholds(page, c.Thresholds[page].Apply(spec.Thresholds)); err != nil {
			return fmt.Errorf("thresholds: %w", err)
		}
	}
	return nil
}

func readConfigFile(v *viper.Viper) error {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(".campus") // .yaml is implicit
	if override := os.Getenv("CAMPUS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".campus"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}

// loadDotEnv loads path into the environment when it exists. Variables that
// are already set win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
