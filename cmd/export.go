package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export PATH",
	Short: "Write the readings to PATH, replacing any existing file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable()
		if err != nil {
			return err
		}
		if err := exportTable(t, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d readings to %s\n", t.Len(), args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("index", true, "write a leading row-index column")
	cobra.CheckErr(viper.BindPFlag("export.index", exportCmd.Flags().Lookup("index")))
	rootCmd.AddCommand(exportCmd)
}
