package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// logger carries diagnostics; it is silent unless --verbose is set.
var logger = log.New(io.Discard, "tidetable: ", log.LstdFlags)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tidetable",
	Short: "Summarise and plot tide-height readings per station",
	Long: `Reads tide readings (dateTime, stationName, tideValue) from a delimited
file and reports per-station series, max/min/mean tide heights and charts
over an optional time window.

Run without a subcommand to browse stations interactively.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable()
		if err != nil {
			return err
		}
		p := tea.NewProgram(initialModel(t, reportService()), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tidetable.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "tide readings file (default tideReadings.csv)")
	rootCmd.PersistentFlags().String("delimiter", "", "field delimiter of the readings file (default ,)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics to stderr")
	cobra.CheckErr(viper.BindPFlag("data.file", rootCmd.PersistentFlags().Lookup("file")))
	cobra.CheckErr(viper.BindPFlag("csv.delimiter", rootCmd.PersistentFlags().Lookup("delimiter")))
	cobra.CheckErr(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))

	viper.SetDefault("data.file", "tideReadings.csv")
	viper.SetDefault("csv.delimiter", ",")
	viper.SetDefault("export.index", true)
	viper.SetDefault("chart.width", 72)
	viper.SetDefault("chart.height", 16)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tidetable" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tidetable")

		// Provide default reports directory (~/.tidetable/reports)
		viper.SetDefault("reports.dir", filepath.Join(home, ".tidetable", "reports"))
	}

	viper.SetEnvPrefix("tidetable")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if viper.GetBool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
