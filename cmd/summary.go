package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coralsci/isoshell/internal/isostat"
	"github.com/coralsci/isoshell/internal/report"
	"github.com/coralsci/isoshell/internal/utils"
)

var (
	sumOutputPath string
	sumXLSXPath   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Print the layer/species descriptive table (count, mean, sd)",
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
		rows, err := isostat.Summarize(tbl)
		if err != nil {
			return err
		}
		text := report.SummaryText(filepath.Base(path), rows)

		written := false
		if sumOutputPath != "" {
			if err := utils.SafeWriteFile(sumOutputPath, []byte(text)); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote summary to %s\n", sumOutputPath)
			written = true
		}
		if sumXLSXPath != "" {
			if err := report.WriteSummaryXLSX(rows, sumXLSXPath); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote workbook to %s\n", sumXLSXPath)
			written = true
		}
		if !written {
			fmt.Println(text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&sumOutputPath, "output", "o", "", "optional path to write the table (Markdown)")
	summaryCmd.Flags().StringVar(&sumXLSXPath, "xlsx", "", "optional path to write the table as XLSX")
}
