package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	InputCSV  string `mapstructure:"input_csv" yaml:"input_csv"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Figure rendering
	FigureWidthIn  float64 `mapstructure:"figure_width_in" yaml:"figure_width_in"`
	FigureHeightIn float64 `mapstructure:"figure_height_in" yaml:"figure_height_in"`
	FigureDPI      int     `mapstructure:"figure_dpi" yaml:"figure_dpi"`

	// Workbook export of the descriptive table
	WriteXLSX bool `mapstructure:"write_xlsx" yaml:"write_xlsx"`

	// Tukey family-wise confidence level
	TukeyConfidence float64 `mapstructure:"tukey_confidence" yaml:"tukey_confidence"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.isoshell/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".isoshell")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
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
	v := viper.New()
	v.SetEnvPrefix("ISOSHELL")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output_dir", "isoshell-out")
	v.SetDefault("figure_width_in", 7.0)
	v.SetDefault("figure_height_in", 9.0)
	v.SetDefault("figure_dpi", 300)
	v.SetDefault("write_xlsx", true)
	v.SetDefault("tukey_confidence", 0.95)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".isoshell")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
