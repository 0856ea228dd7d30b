package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coreman2200/ledmapper/geometry"
	"github.com/coreman2200/ledmapper/internal/diag"
	"github.com/coreman2200/ledmapper/mapping"
	"github.com/coreman2200/ledmapper/metadata"
)

var validatePattern string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a pattern's stored mapping table",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validatePattern, "pattern", "p", "", "pattern metadata file (yaml)")
	validateCmd.MarkFlagRequired("pattern")
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := metadata.Load(validatePattern)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		diag.GeometryRejected(err.Error()).Log(log)
		return err
	}
	g := p.Geometry()
	if g.Kind() == geometry.KindRectangular {
		fmt.Println("rectangular layout: wiring descriptor only, no table to validate")
		return nil
	}

	res := mapping.Validate(p.Table(), g, p.Width, p.Height)
	for _, w := range res.Warnings {
		log.Warn().Msg(w)
	}
	if !res.Valid() {
		diag.TableInvalid(res.Err.Error()).Log(log)
		return res.Err
	}
	fmt.Printf("table ok: %d leds on a %dx%d grid\n", len(p.Table()), p.Width, p.Height)
	return nil
}
