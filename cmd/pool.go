package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

// poolCmd prints the precomputed parameter pool sizes. Useful when
// tuning candidate grids: a pool that shrinks to its fallback means the
// exactness filters rejected everything.
var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Inspect the generated parameter pools",
	Run: func(cmd *cobra.Command, args []string) {
		r := problemgen.NewPoolRegistry()
		rows := []struct {
			name string
			n    int
		}{
			{"rect sections", len(r.Rect())},
			{"bending pairs", len(r.Bending())},
			{"beam triples", len(r.Beam())},
			{"udl pairs", len(r.UDL())},
			{"cantilever udl pairs", len(r.CantileverUDL())},
			{"overhang triples", len(r.Overhang())},
			{"truss loads", len(r.TrussLoads())},
			{"hollow sections", len(r.Hollow())},
			{"L sections", len(r.LShape())},
			{"T sections", len(r.TShape())},
			{"H sections", len(r.HShape())},
			{"combined triples", len(r.Combined())},
			{"eccentric triples", len(r.Eccentric())},
			{"shear rect pairs", len(r.ShearRect())},
			{"shear web pairs", len(r.ShearWeb())},
			{"frame triples", len(r.Frame())},
		}
		for _, row := range rows {
			fmt.Printf("%-22s %5d\n", row.name, row.n)
		}
	},
}
