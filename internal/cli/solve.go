package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
	"github.com/SeamusWaldron/cubesim/internal/solver"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	solveLevel       string
	solveMoves       string
	solveRandom      int
	solveSeed        uint64
	solveSteps       bool
	solveInteractive bool
	solveNoRecord    bool
	solveSkipInvalid bool
	solvePlain       bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and undo the scramble",
	Long: `Scramble a cube and solve it again by applying the inverse of the
scramble, one move at a time.

This is not a general solver: it only undoes the known scramble.

The scramble comes from --moves, --random, or a level of the scramble list.
Without any of them an interactive level picker opens when running in a
terminal; otherwise the configured default level is used.

Examples:
  cubesim solve --level standard
  cubesim solve --moves "R U R' U'" --steps
  cubesim solve --random 20 --interactive`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveLevel, "level", "l", "", "Scramble level (simple, standard, deep)")
	solveCmd.Flags().StringVarP(&solveMoves, "moves", "m", "", "Scramble to apply instead of picking one")
	solveCmd.Flags().IntVar(&solveRandom, "random", 0, "Generate a random scramble of this many moves")
	solveCmd.Flags().Uint64Var(&solveSeed, "seed", 0, "Random seed (default: time based)")
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "Print the cube after every solution move")
	solveCmd.Flags().BoolVarP(&solveInteractive, "interactive", "i", false, "Step through the solution in a TUI")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "Do not record the run in the database")
	solveCmd.Flags().BoolVar(&solveSkipInvalid, "skip-invalid", false, "Skip unrecognized moves instead of failing")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false, "Print nets without colors")
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	tokens, level, err := chooseScramble(cmd)
	if err != nil {
		return err
	}

	c := newCube()
	drawCube(out, "Initial Cube State", c, solvePlain)

	if level != "" {
		fmt.Fprintf(out, "\n--- %s Scramble Selected ---\n", level.Title())
	}
	fmt.Fprintf(out, "Scrambling cube with moves: %s\n", strings.Join(tokens, " "))

	applied, err := applyTokens(c, tokens, solveSkipInvalid)
	if err != nil {
		return fmt.Errorf("scramble failed: %w", err)
	}
	drawCube(out, "Scrambled Cube State", c, solvePlain)

	start := c.Clone()
	var steps []solver.Step
	hook := func(st solver.Step) {
		steps = append(steps, st)
		if solveSteps {
			drawCube(out, fmt.Sprintf("After move %d: %s", st.Index+1, st.Move), st.State, solvePlain)
		}
	}

	solution, solveErr := solver.New(c, solver.WithStepHook(hook)).Solve(applied)
	if solveErr != nil && !errors.Is(solveErr, solver.ErrNotSolved) {
		return solveErr
	}

	fmt.Fprintf(out, "\nSolution moves (%d):\n", len(solution))
	for _, line := range wrapMoves(solution) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	drawCube(out, "Final Cube State", c, solvePlain)
	fmt.Fprintf(out, "Solved: %v\n", c.IsSolved())

	if solveInteractive {
		if err := runStepper(start, steps); err != nil {
			return err
		}
	}

	if !solveNoRecord {
		id, err := recordRun(level, applied, solution, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Recorded run %s\n", shortID(id))
	}

	return solveErr
}

// chooseScramble returns the scramble tokens and, when picked from the
// list, their level.
func chooseScramble(cmd *cobra.Command) ([]string, scramble.Level, error) {
	levelSet := cmd.Flags().Changed("level")

	sources := 0
	for _, set := range []bool{solveMoves != "", solveRandom > 0, levelSet} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, "", fmt.Errorf("use only one of --moves, --random and --level")
	}

	if solveMoves != "" {
		return strings.Fields(solveMoves), "", nil
	}
	if solveRandom > 0 {
		moves := scramble.Generate(solveRandom, newRand(solveSeed))
		return strings.Fields(cube.FormatMoves(moves)), "", nil
	}

	list, err := loadScrambleList()
	if err != nil {
		return nil, "", err
	}

	var level scramble.Level
	switch {
	case levelSet:
		level, err = scramble.ParseLevel(solveLevel)
		if err != nil {
			return nil, "", err
		}
	case isTerminal(os.Stdin) && isTerminal(os.Stdout):
		level, err = pickLevel(list)
		if err != nil {
			return nil, "", err
		}
	default:
		level = settings.Level()
	}

	picked, err := list.Pick(level, newRand(solveSeed))
	if err != nil {
		return nil, "", err
	}
	log.WithField("line", picked.Line).Debugf("picked %s scramble", level)

	return picked.Tokens, level, nil
}

func recordRun(level scramble.Level, scrambleMoves, solution []cube.Move, c *cube.Cube) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	run := storage.Run{
		Scheme:       settings.CubeScheme().String(),
		ScrambleText: cube.FormatMoves(scrambleMoves),
		SolutionText: cube.FormatMoves(solution),
		MoveCount:    len(solution),
		FinalState:   c.String(),
		Solved:       c.IsSolved(),
	}
	if level != "" {
		l := string(level)
		run.Level = &l
	}

	id, err := storage.NewRunRepository(db).Create(run)
	if err != nil {
		return "", err
	}
	log.WithField("run_id", id).Debug("run recorded")
	return id, nil
}
