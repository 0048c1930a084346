package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

var checkPlain bool

var checkCmd = &cobra.Command{
	Use:   "check <facelets>",
	Short: "Print a cube given as 54 color letters",
	Long: `Parse a cube state written as 54 color letters (W, Y, G, B, R, O) in
U R F D L B face order, print its net and whether it is solved.

The state line printed by 'cubesim scramble' is in this format.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkPlain, "plain", false, "Print the net without colors")
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := cube.ParseFacelets(args[0])
	if err != nil {
		return fmt.Errorf("invalid cube state: %w", err)
	}

	out := cmd.OutOrStdout()
	drawCube(out, "", c, checkPlain)
	fmt.Fprintf(out, "Solved: %v\n", c.IsSolved())
	return nil
}
