package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/coralsci/isoshell/internal/config"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "isoshell",
	Short: "isoshell: stable-isotope statistics for giant clam shells",
	Long: `isoshell replicates the statistical analysis of δ13C and δ18O measured in
the inner and outer layers of Tridacna shells: a layer/species summary table,
one-way ANOVAs with a Tukey HSD post-hoc test, and the comparative boxplot
figure.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(initRun)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.isoshell/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func initRun() {
	if debug {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults still allow running on an explicit file argument
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// inputPath resolves the dataset path from the argument or the configuration.
func inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg != nil && cfg.InputCSV != "" {
		return cfg.InputCSV, nil
	}
	return "", fmt.Errorf("no dataset given: pass a CSV path or set input_csv in config")
}
