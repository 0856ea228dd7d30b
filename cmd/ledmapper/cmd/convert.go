package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreman2200/ledmapper/geometry"
	"github.com/coreman2200/ledmapper/internal/diag"
	"github.com/coreman2200/ledmapper/mapping"
	"github.com/coreman2200/ledmapper/metadata"
	"github.com/coreman2200/ledmapper/model"
	"github.com/coreman2200/ledmapper/pipeline"
)

var (
	convertPattern string
	convertIn      string
	convertOut     string
	convertFrom    string
	convertTo      string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Re-order a raw RGB frame dump between design and hardware order",
	Long: `Read a raw frame (3 bytes per pixel) and rewrite it in another order.
Orders are "design" (row-major grid, top-left origin) and "hardware" (the
order the LED chain consumes: wiring order for rectangular layouts, the
mapping table's order otherwise).

When the pattern's layout parameters cannot produce a mapping table the
pattern is treated as rectangular; the detail is logged.`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertPattern, "pattern", "p", "", "pattern metadata file (yaml)")
	convertCmd.Flags().StringVarP(&convertIn, "in", "i", "", "input frame file")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output frame file")
	convertCmd.Flags().StringVar(&convertFrom, "from", "design", "input order: design|hardware")
	convertCmd.Flags().StringVar(&convertTo, "to", "hardware", "output order: design|hardware")
	convertCmd.MarkFlagRequired("pattern")
	convertCmd.MarkFlagRequired("in")
	convertCmd.MarkFlagRequired("out")
}

// hardwareOrder resolves the pattern's hardware-order spec, falling back to
// the wiring descriptor when the layout cannot produce a mapping table.
func hardwareOrder(p *metadata.Pattern) (pipeline.OrderSpec, error) {
	g := p.Geometry()
	if g.Kind() != geometry.KindRectangular {
		t, err := mapping.Ensure(p.Table(), g, p.Width, p.Height)
		if err == nil {
			return pipeline.Mapped(t), nil
		}
		diag.GeometryRejected(err.Error()).Log(log)
	}
	d, err := p.Descriptor()
	if err != nil {
		return pipeline.OrderSpec{}, err
	}
	return pipeline.Wired(d), nil
}

func orderSpec(p *metadata.Pattern, name string) (pipeline.OrderSpec, error) {
	switch name {
	case "design":
		return pipeline.Design(), nil
	case "hardware":
		return hardwareOrder(p)
	default:
		return pipeline.OrderSpec{}, fmt.Errorf("convert: unknown order %q", name)
	}
}

func frameLen(c *pipeline.Converter, s pipeline.OrderSpec) (int, int) {
	if n := s.LEDCount(); n > 0 {
		return n, 1
	}
	return c.Width, c.Height
}

func runConvert(cmd *cobra.Command, args []string) error {
	p, err := metadata.Load(convertPattern)
	if err != nil {
		return err
	}
	conv, err := pipeline.New(p.Width, p.Height)
	if err != nil {
		return err
	}
	from, err := orderSpec(p, convertFrom)
	if err != nil {
		return err
	}
	to, err := orderSpec(p, convertTo)
	if err != nil {
		return err
	}

	in, err := os.Open(convertIn)
	if err != nil {
		return err
	}
	defer in.Close()
	w, h := frameLen(conv, from)
	f, err := model.ReadFrame(in, w, h)
	if err != nil {
		return err
	}

	out, err := conv.Convert(f, from, to)
	if err != nil {
		return err
	}

	of, err := os.Create(convertOut)
	if err != nil {
		return err
	}
	defer of.Close()
	if err := model.WriteFrame(of, out); err != nil {
		return err
	}
	log.Info().Str("from", from.String()).Str("to", to.String()).
		Int("pixels", out.Len()).Msg("frame converted")
	return nil
}
