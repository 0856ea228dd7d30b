package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coreman2200/ledmapper/internal/led"
	"github.com/coreman2200/ledmapper/metadata"
	"github.com/coreman2200/ledmapper/model"
	"github.com/coreman2200/ledmapper/pipeline"
)

var (
	pushPattern string
	pushIn      string
	pushPort    string
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send a design-order frame to the LED chain",
	Long: `Read a design-order frame dump, convert it to the pattern's hardware
order and write it out over SPI. Without an SPI port the frame renders to
the console instead.`,
	RunE: runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)
	pushCmd.Flags().StringVarP(&pushPattern, "pattern", "p", "", "pattern metadata file (yaml)")
	pushCmd.Flags().StringVarP(&pushIn, "in", "i", "", "design-order frame file")
	pushCmd.Flags().StringVar(&pushPort, "port", "", "SPI port name (empty for first available)")
	pushCmd.MarkFlagRequired("pattern")
	pushCmd.MarkFlagRequired("in")
}

func runPush(cmd *cobra.Command, args []string) error {
	p, err := metadata.Load(pushPattern)
	if err != nil {
		return err
	}
	conv, err := pipeline.New(p.Width, p.Height)
	if err != nil {
		return err
	}
	to, err := hardwareOrder(p)
	if err != nil {
		return err
	}

	in, err := os.Open(pushIn)
	if err != nil {
		return err
	}
	defer in.Close()
	f, err := model.ReadFrame(in, p.Width, p.Height)
	if err != nil {
		return err
	}

	hw, err := conv.Convert(f, pipeline.Design(), to)
	if err != nil {
		return err
	}

	out, err := led.Open(pushPort, hw.Len())
	if err != nil {
		return err
	}
	if !out.Spi {
		log.Warn().Msg("no SPI port found, rendering to console")
	}
	if err := out.Push(hw); err != nil {
		return err
	}
	log.Info().Int("leds", hw.Len()).Msg("frame pushed")
	return nil
}
