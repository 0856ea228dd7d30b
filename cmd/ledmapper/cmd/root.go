package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coreman2200/ledmapper/internal/diag"
)

var (
	verbose bool
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ledmapper",
	Short: "ledmapper - pixel-to-LED mapping and wiring tools",
	Long: `ledmapper converts animation frames between the design grid order and
the physical order of a wired LED chain, and maintains the mapping tables
for non-rectangular layouts (circles, rings, arcs, ray bursts, custom).

Examples:
  ledmapper generate -p pattern.yaml             # build + store the mapping table
  ledmapper validate -p pattern.yaml             # check the stored table
  ledmapper convert -p pattern.yaml -i in.rgb -o out.rgb --from design --to hardware
  ledmapper push -p pattern.yaml -i frame.rgb    # send a frame over SPI`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = diag.NewLogger(verbose)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
