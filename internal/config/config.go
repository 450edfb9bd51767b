package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Source is the default dataset location (path or http(s) URL).
	Source   string `mapstructure:"source" yaml:"source"`
	Output   string `mapstructure:"output" yaml:"output"`
	Renderer string `mapstructure:"renderer" yaml:"renderer"`
	Width    int    `mapstructure:"width" yaml:"width"`
	Height   int    `mapstructure:"height" yaml:"height"`
	Title    string `mapstructure:"title" yaml:"title"`
	XField   string `mapstructure:"x_field" yaml:"x_field"`
	YField   string `mapstructure:"y_field" yaml:"y_field"`
	Labels   bool   `mapstructure:"labels" yaml:"labels"`

	// Filters; a zero threshold is not applied.
	RequireFinancial bool  `mapstructure:"require_financial" yaml:"require_financial"`
	MinTheaters      int   `mapstructure:"min_theaters" yaml:"min_theaters"`
	MaxTheaters      int   `mapstructure:"max_theaters" yaml:"max_theaters"`
	MinGross         int64 `mapstructure:"min_gross" yaml:"min_gross"`
	SortDescending   bool  `mapstructure:"sort_descending" yaml:"sort_descending"`

	// Input
	Sheet          string `mapstructure:"sheet" yaml:"sheet"`
	HTTPTimeoutSec int    `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Keys lists every configuration key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var defaults = map[string]any{
	"source":            "2014box.csv",
	"output":            "chart.svg",
	"renderer":          "gonum",
	"width":             800,
	"height":            480,
	"title":             "Total gross vs. theater count",
	"x_field":           "maxTheatersSqrt",
	"y_field":           "totalGrossDoubleSqrt",
	"labels":            true,
	"require_financial": true,
	"min_theaters":      50,
	"max_theaters":      0,
	"min_gross":         0,
	"sort_descending":   false,
	"sheet":             "",
	"http_timeout_sec":  20,
	"log_level":         "info",
}

func configPath(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".boxoffice", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.boxoffice/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path, err := configPath(cfgFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := newViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".boxoffice"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read; a present but malformed file is an error
	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return unmarshal(v)
}

// Default returns the configuration from env and defaults only.
func Default() (*Global, error) {
	return unmarshal(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("BOXOFFICE")
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	return v
}

func unmarshal(v *viper.Viper) (*Global, error) {
	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Set assigns value to key, parsing it according to the key's type.
func (c *Global) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	// setters leave the field untouched when value does not parse
	setInt := func(dst *int) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		if n < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
		*dst = n
		return nil
	}
	setBool := func(dst *bool) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, err)
		}
		*dst = b
		return nil
	}
	switch key {
	case "source":
		c.Source = value
	case "output":
		c.Output = value
	case "renderer":
		c.Renderer = strings.ToLower(value)
	case "title":
		c.Title = value
	case "x_field":
		c.XField = value
	case "y_field":
		c.YField = value
	case "sheet":
		c.Sheet = value
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	case "width":
		return setInt(&c.Width)
	case "height":
		return setInt(&c.Height)
	case "min_theaters":
		return setInt(&c.MinTheaters)
	case "max_theaters":
		return setInt(&c.MaxTheaters)
	case "http_timeout_sec":
		return setInt(&c.HTTPTimeoutSec)
	case "min_gross":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		if n < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
		c.MinGross = n
	case "labels":
		return setBool(&c.Labels)
	case "require_financial":
		return setBool(&c.RequireFinancial)
	case "sort_descending":
		return setBool(&c.SortDescending)
	default:
		return fmt.Errorf("unknown key: %s (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}
