package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sactool",
	Short: "Inspect, convert and fetch SAC waveform files",
	Long: `sactool works with SAC binary waveform files: it dumps header
fields, converts files between header versions, byte orders and
compression containers, and fetches waveforms from the IRIS timeseries
service.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
