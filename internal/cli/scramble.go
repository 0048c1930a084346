package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

var (
	scrambleRandom      int
	scrambleSeed        uint64
	scrambleSkipInvalid bool
	scramblePlain       bool
	scrambleDescribe    bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble [moves...]",
	Short: "Apply moves to a solved cube and print it",
	Long: `Apply a move sequence to a solved cube and print the resulting net.

Moves use standard notation: a face letter (U, R, F, D, L, B) optionally
followed by ' (counter-clockwise) or 2 (half turn).

Examples:
  cubesim scramble R U R' U'
  cubesim scramble "F2 D' L B"
  cubesim scramble --random 25 --seed 7`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleRandom, "random", 0, "Generate a random scramble of this many moves")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (default: time based)")
	scrambleCmd.Flags().BoolVar(&scrambleSkipInvalid, "skip-invalid", false, "Skip unrecognized moves instead of failing")
	scrambleCmd.Flags().BoolVar(&scramblePlain, "plain", false, "Print the net without colors")
	scrambleCmd.Flags().BoolVar(&scrambleDescribe, "describe", false, "Spell out each move")
}

func runScramble(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var tokens []string
	switch {
	case scrambleRandom > 0 && len(args) > 0:
		return fmt.Errorf("give moves or --random, not both")
	case scrambleRandom > 0:
		moves := scramble.Generate(scrambleRandom, newRand(scrambleSeed))
		tokens = splitTokens([]string{cube.FormatMoves(moves)})
	case len(args) > 0:
		tokens = splitTokens(args)
	default:
		return fmt.Errorf("no moves given")
	}

	c := newCube()
	applied, err := applyTokens(c, tokens, scrambleSkipInvalid)
	if err != nil {
		return fmt.Errorf("scramble failed: %w", err)
	}

	fmt.Fprintf(out, "Moves (%d): %s\n", len(applied), cube.FormatMoves(applied))
	fmt.Fprintf(out, "Quarter turns: %d\n", notation.QuarterTurnCount(applied))
	if scrambleDescribe {
		for i, m := range applied {
			fmt.Fprintf(out, "  %2d. %-3s %s\n", i+1, m.Notation(), notation.Describe(m))
		}
	}
	drawCube(out, "", c, scramblePlain)
	fmt.Fprintf(out, "State:  %s\n", c.String())
	fmt.Fprintf(out, "Solved: %v\n", c.IsSolved())

	return nil
}
