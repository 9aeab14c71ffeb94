package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/sacio/endian"
	"github.com/arloliu/sacio/sac"
	"github.com/arloliu/sacio/schema"
)

var infoAll bool

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Dump the header of a SAC file",
	Long: `Dump the header of a SAC file.

By default only the fields with defined values are printed; --all prints
every header field including the undefined ones.

Example:
  sactool info waveform.sac
  sactool info --all waveform.sac.zst`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := sac.ReadFile(args[0])
		if err != nil {
			return err
		}

		order := "big-endian"
		if endian.IsLittle(f.Engine()) {
			order = "little-endian"
		}
		fmt.Printf("file:    %s\n", args[0])
		fmt.Printf("version: %s, %s\n", f.Version(), order)
		fmt.Printf("samples: %d\n", len(f.Data))
		if date, ok := f.Kzdate(); ok {
			tm, _ := f.Kztime()
			fmt.Printf("kztime:  %s %s\n", date, tm)
		}
		fmt.Println()

		for _, spec := range schema.Fields() {
			if !infoAll && !f.IsSet(spec.Name) {
				continue
			}
			v, err := f.Get(spec.Name)
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %s\n", spec.Name, v)
		}

		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoAll, "all", false, "print undefined fields too")
	rootCmd.AddCommand(infoCmd)
}
