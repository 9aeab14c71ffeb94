package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/sacio/fetch"
	"github.com/arloliu/sacio/fetch/cache"
)

var (
	fetchNet      string
	fetchSta      string
	fetchLoc      string
	fetchCha      string
	fetchStart    string
	fetchEnd      string
	fetchAttempts int
	fetchCacheDir string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <output>",
	Short: "Fetch a waveform from the IRIS timeseries service",
	Long: `Fetch a waveform from the IRIS timeseries service and write it as a
SAC file. Times are UTC in the form 2006-01-02T15:04:05.

Example:
  sactool fetch --net IU --sta ANMO --cha BHZ \
    --start 2010-02-27T06:30:00 --end 2010-02-27T10:30:00 anmo.sac`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.ParseInLocation("2006-01-02T15:04:05", fetchStart, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := time.ParseInLocation("2006-01-02T15:04:05", fetchEnd, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}

		opts := []fetch.Option{fetch.WithMaxAttempts(fetchAttempts)}
		if fetchCacheDir != "" {
			store, err := cache.Open(fetchCacheDir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()
			opts = append(opts, fetch.WithCache(store))
		}

		client, err := fetch.NewClient(opts...)
		if err != nil {
			return err
		}

		f, err := client.FetchFile(cmd.Context(), fetch.Request{
			Network:  fetchNet,
			Station:  fetchSta,
			Location: fetchLoc,
			Channel:  fetchCha,
			Start:    start,
			End:      end,
		})
		if err != nil {
			return err
		}

		if err := f.WriteFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d samples)\n", args[0], len(f.Data))

		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchNet, "net", "", "network code")
	fetchCmd.Flags().StringVar(&fetchSta, "sta", "", "station code")
	fetchCmd.Flags().StringVar(&fetchLoc, "loc", "", "location code (empty for blank)")
	fetchCmd.Flags().StringVar(&fetchCha, "cha", "", "channel code")
	fetchCmd.Flags().StringVar(&fetchStart, "start", "", "window start, UTC")
	fetchCmd.Flags().StringVar(&fetchEnd, "end", "", "window end, UTC")
	fetchCmd.Flags().IntVar(&fetchAttempts, "attempts", 3, "total attempt budget for transient failures")
	fetchCmd.Flags().StringVar(&fetchCacheDir, "cache", "", "directory for the local response cache")

	for _, required := range []string{"net", "sta", "cha", "start", "end"} {
		_ = fetchCmd.MarkFlagRequired(required)
	}

	rootCmd.AddCommand(fetchCmd)
}
