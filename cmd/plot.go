package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumwatshade/tidetable/cmd/chart"
)

var plotCmd = &cobra.Command{
	Use:   "plot STATION",
	Short: "Draw the tide series of a station as a terminal line chart",
	Args:  cobra.ExactArgs(1),
}

func init() {
	window := windowFlags(plotCmd)
	plotCmd.Flags().Int("width", 0, "chart width in columns (default from chart.width)")
	plotCmd.Flags().Int("height", 0, "chart height in rows (default from chart.height)")
	cobra.CheckErr(viper.BindPFlag("chart.width", plotCmd.Flags().Lookup("width")))
	cobra.CheckErr(viper.BindPFlag("chart.height", plotCmd.Flags().Lookup("height")))

	plotCmd.RunE = func(cmd *cobra.Command, args []string) error {
		w, err := window()
		if err != nil {
			return err
		}
		t, err := loadTable()
		if err != nil {
			return err
		}
		r := chart.NewTerminal(cmd.OutOrStdout(), viper.GetInt("chart.width"), viper.GetInt("chart.height"))
		return t.PlotSeries(args[0], w, r)
	}
	rootCmd.AddCommand(plotCmd)
}
