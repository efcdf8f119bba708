package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/coralsci/isoshell/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set isoshell configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		if cfg.InputCSV != "" {
			fmt.Printf("input_csv: %s\n", cfg.InputCSV)
		}
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("figure_width_in: %.1f\n", cfg.FigureWidthIn)
		fmt.Printf("figure_height_in: %.1f\n", cfg.FigureHeightIn)
		fmt.Printf("figure_dpi: %d\n", cfg.FigureDPI)
		fmt.Printf("write_xlsx: %v\n", cfg.WriteXLSX)
		fmt.Printf("tukey_confidence: %.3f\n", cfg.TukeyConfidence)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			cfg = &cfgpkg.Global{}
		}
		key, val := args[0], args[1]
		switch key {
		case "input_csv":
			cfg.InputCSV = val
		case "output_dir":
			cfg.OutputDir = val
		case "figure_width_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.FigureWidthIn = f
		case "figure_height_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.FigureHeightIn = f
		case "figure_dpi":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.FigureDPI = n
		case "write_xlsx":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.WriteXLSX = b
		case "tukey_confidence":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			if f <= 0 || f >= 1 {
				return fmt.Errorf("tukey_confidence must be in (0,1)")
			}
			cfg.TukeyConfidence = f
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
