package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/tidetable/cmd/archive"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Copy the readings to and from a SQLite database",
}

var archivePushCmd = &cobra.Command{
	Use:   "push DB",
	Short: "Replace the readings stored in DB with the readings file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable()
		if err != nil {
			return err
		}
		db, err := archive.Open(args[0])
		if err != nil {
			return err
		}
		if err := archive.Push(db, t); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "archived %d readings to %s\n", t.Len(), args[0])
		return nil
	},
}

var archivePullCmd = &cobra.Command{
	Use:   "pull DB PATH",
	Short: "Write the readings stored in DB to PATH",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := archive.Open(args[0])
		if err != nil {
			return err
		}
		t, err := archive.Pull(db)
		if err != nil {
			return err
		}
		if err := exportTable(t, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "restored %d readings to %s\n", t.Len(), args[1])
		return nil
	},
}

func init() {
	archiveCmd.AddCommand(archivePushCmd, archivePullCmd)
	rootCmd.AddCommand(archiveCmd)
}
