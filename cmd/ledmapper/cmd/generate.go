package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coreman2200/ledmapper/geometry"
	"github.com/coreman2200/ledmapper/internal/diag"
	"github.com/coreman2200/ledmapper/mapping"
	"github.com/coreman2200/ledmapper/metadata"
)

var (
	generatePattern string
	generateForce   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store the pattern's mapping table",
	Long: `Build the LED-index to grid-cell mapping table from the pattern's layout
parameters and store it back into the metadata file. Rectangular patterns
need no table; the command leaves them untouched.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generatePattern, "pattern", "p", "", "pattern metadata file (yaml)")
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "regenerate even if the stored table is valid")
	generateCmd.MarkFlagRequired("pattern")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := metadata.Load(generatePattern)
	if err != nil {
		return err
	}
	g := p.Geometry()
	if g.Kind() == geometry.KindRectangular {
		log.Info().Msg("rectangular layout, no mapping table needed")
		return nil
	}

	stored := p.Table()
	if generateForce {
		stored = nil
	}
	t, err := mapping.Ensure(stored, g, p.Width, p.Height)
	if err != nil {
		diag.GeometryRejected(err.Error()).Log(log)
		return fmt.Errorf("generate: %w", err)
	}
	p.SetTable(t)
	if err := metadata.Save(generatePattern, p); err != nil {
		return err
	}
	log.Info().Int("leds", len(t)).Str("layout", string(g.Kind())).Msg("mapping table written")
	return nil
}
