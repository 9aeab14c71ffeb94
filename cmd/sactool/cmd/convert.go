package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/sacio/endian"
	"github.com/arloliu/sacio/format"
	"github.com/arloliu/sacio/sac"
)

var (
	convertVersion int
	convertOrder   string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Rewrite a SAC file with a different version, byte order or container",
	Long: `Rewrite a SAC file with a different header version, byte order or
compression container. The output container is chosen by the output
file's extension (.zst, .s2, .lz4, .gz, or none for a plain file).

Example:
  sactool convert --version 7 old.sac new.sac
  sactool convert --endian big waveform.sac waveform.sac.zst`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := sac.ReadFile(args[0])
		if err != nil {
			return err
		}

		if convertVersion != 0 {
			if err := f.SetVersion(format.Version(convertVersion)); err != nil {
				return err
			}
		}
		switch convertOrder {
		case "":
		case "little":
			f.SetEngine(endian.Little())
		case "big":
			f.SetEngine(endian.Big())
		case "native":
			f.SetEngine(endian.Native())
		default:
			return fmt.Errorf("unknown byte order %q, want little, big or native", convertOrder)
		}

		return f.WriteFile(args[1])
	},
}

func init() {
	convertCmd.Flags().IntVar(&convertVersion, "version", 0, "target header version (6 or 7)")
	convertCmd.Flags().StringVar(&convertOrder, "endian", "", "target byte order (little, big or native)")
	rootCmd.AddCommand(convertCmd)
}
