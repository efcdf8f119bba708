package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coralsci/isoshell/internal/figure"
)

var plotOutputPath string

var plotCmd = &cobra.Command{
	Use:   "plot [file]",
	Short: "Render the stacked temperature/δ13C boxplot figure",
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
		out := plotOutputPath
		if out == "" {
			out = "boxplots.png"
		}
		if err := figure.SaveComposite(tbl, out, figureOptions()); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote figure to %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotOutputPath, "output", "o", "", "output PNG path (default boxplots.png)")
}
