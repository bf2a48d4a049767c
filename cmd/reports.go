package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/tidetable/cmd/report"
)

var reportsCmd = &cobra.Command{
	Use:   "reports [ID]",
	Short: "List saved reports, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := reportService()
		if svc == nil {
			return fmt.Errorf("report store unavailable")
		}
		if len(args) == 1 {
			r, err := svc.Get(args[0])
			if err != nil {
				return fmt.Errorf("report %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Detail(r))
			return nil
		}
		reports, err := svc.List()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Summary(reports))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}
