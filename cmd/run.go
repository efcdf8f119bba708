package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/coralsci/isoshell/internal/dataset"
	"github.com/coralsci/isoshell/internal/figure"
	"github.com/coralsci/isoshell/internal/isostat"
	"github.com/coralsci/isoshell/internal/report"
	"github.com/coralsci/isoshell/internal/utils"
)

var runOutDir string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the full analysis: summary table, ANOVAs, Tukey HSD, figure",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := inputPath(args)
		if err != nil {
			return err
		}
		tbl, err := loadDerived(path)
		if err != nil {
			return err
		}

		outDir := runOutDir
		if outDir == "" && cfg != nil {
			outDir = cfg.OutputDir
		}
		if outDir == "" {
			outDir = "isoshell-out"
		}
		if err := utils.EnsureDir(outDir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		rows, err := isostat.Summarize(tbl)
		if err != nil {
			return err
		}
		summaryPath := filepath.Join(outDir, "summary.md")
		if err := utils.SafeWriteFile(summaryPath, []byte(report.SummaryText(filepath.Base(path), rows))); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", summaryPath)

		if cfg == nil || cfg.WriteXLSX {
			xlsxPath := filepath.Join(outDir, "summary.xlsx")
			if err := report.WriteSummaryXLSX(rows, xlsxPath); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote %s\n", xlsxPath)
		}

		// Inferential tests run on outer-layer records of determined species.
		outer := tbl.Layer(dataset.LayerOuter).KnownSpecies()
		an := isostat.NewAnalyzer(logger)
		conf := 0.95
		if cfg != nil && cfg.TukeyConfidence > 0 {
			conf = cfg.TukeyConfidence
		}
		for _, v := range []dataset.Variable{dataset.VarTemperature, dataset.VarD13C} {
			res, err := an.OneWayANOVA(outer, v)
			if err != nil {
				return err
			}
			p := filepath.Join(outDir, fmt.Sprintf("anova_%s.md", v))
			if err := utils.SafeWriteFile(p, []byte(report.ANOVAText(res))); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote %s\n", p)
		}
		tk, err := an.TukeyHSD(outer, dataset.VarTemperature, conf)
		if err != nil {
			return err
		}
		tukeyPath := filepath.Join(outDir, "tukey_temperature.md")
		if err := utils.SafeWriteFile(tukeyPath, []byte(report.TukeyText(tk))); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", tukeyPath)

		figPath := filepath.Join(outDir, "boxplots.png")
		if err := figure.SaveComposite(tbl, figPath, figureOptions()); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", figPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "", "output directory (default from config)")
}

// loadDerived reads the dataset and appends the derived temperature column.
func loadDerived(path string) (*dataset.Table, error) {
	tbl, err := dataset.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset loaded", zap.String("path", path), zap.Int("records", tbl.Len()))
	return dataset.DeriveTemperature(tbl), nil
}

func figureOptions() figure.Options {
	opt := figure.DefaultOptions()
	if cfg != nil {
		if cfg.FigureWidthIn > 0 {
			opt.Width = vg.Length(cfg.FigureWidthIn) * vg.Inch
		}
		if cfg.FigureHeightIn > 0 {
			opt.Height = vg.Length(cfg.FigureHeightIn) * vg.Inch
		}
		if cfg.FigureDPI > 0 {
			opt.DPI = cfg.FigureDPI
		}
	}
	return opt
}
