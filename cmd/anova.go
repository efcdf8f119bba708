package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coralsci/isoshell/internal/dataset"
	"github.com/coralsci/isoshell/internal/isostat"
	"github.com/coralsci/isoshell/internal/report"
)

var anovaConf float64

var anovaCmd = &cobra.Command{
	Use:   "anova [file]",
	Short: "Run the species ANOVAs and the Tukey HSD post-hoc test",
	Long: `Runs one-way ANOVAs of temperature and δ13C against species, followed by a
Tukey HSD pairwise comparison of temperature. Only outer-layer records of
determined species enter the tests.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := inputPath(args)
		if err != nil {
			return err
		}
		tbl, err := loadDerived(path)
		if err != nil {
			return err
		}
		outer := tbl.Layer(dataset.LayerOuter).KnownSpecies()
		an := isostat.NewAnalyzer(logger)

		for _, v := range []dataset.Variable{dataset.VarTemperature, dataset.VarD13C} {
			res, err := an.OneWayANOVA(outer, v)
			if err != nil {
				return err
			}
			fmt.Println(report.ANOVAText(res))
		}
		tk, err := an.TukeyHSD(outer, dataset.VarTemperature, anovaConf)
		if err != nil {
			return err
		}
		fmt.Println(report.TukeyText(tk))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(anovaCmd)
	anovaCmd.Flags().Float64Var(&anovaConf, "confidence", 0.95, "family-wise confidence level for Tukey intervals")
}
