package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
)

var metricsCompare string

var metricsCmd = &cobra.Command{
	Use:   "metrics [moves...]",
	Short: "Compute move count metrics for a sequence",
	Long: `Canonicalize a move sequence and report its half-turn and
quarter-turn move counts.

Canonicalization merges adjacent same-face moves and drops no-ops, so
"R R U U' F" reports as "R2 F". Use --compare to diff the sequence
against an alternative.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.Flags().StringVarP(&metricsCompare, "compare", "c", "", "Alternative sequence to compare against")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	moves, err := cubesim.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	canonical := cubesim.Canonicalize(moves)
	metrics := cubesim.ComputeMetrics(moves)

	fmt.Printf("Sequence:  %s\n", cubesim.FormatMoves(moves))
	if len(canonical) != len(moves) {
		fmt.Printf("Canonical: %s\n", cubesim.FormatMoves(canonical))
	}
	fmt.Printf("HTM: %d  QTM: %d\n", metrics.HTM, metrics.QTM)

	if metricsCompare != "" {
		alternative, err := cubesim.ParseMoves(metricsCompare)
		if err != nil {
			return fmt.Errorf("invalid comparison sequence: %w", err)
		}
		cmp := cubesim.CompareMetrics(moves, alternative)
		fmt.Printf("\nAlternative: %s\n", cubesim.FormatMoves(alternative))
		fmt.Printf("HTM: %d  QTM: %d\n", cmp.Alternative.HTM, cmp.Alternative.QTM)
		fmt.Printf("Delta: HTM %+d, QTM %+d\n", cmp.DeltaHTM, cmp.DeltaQTM)
	}

	return nil
}
