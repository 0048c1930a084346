package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List scramble levels",
	Long:  `List the sections of the scramble list and how many scrambles each holds.`,
	RunE:  runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) error {
	list, err := loadScrambleList()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, level := range scramble.Levels {
		n := len(list.Scrambles(level))
		marker := " "
		if level == settings.Level() {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-10s %d scrambles\n", marker, level.Title(), n)
	}

	if err := list.Validate(); err != nil {
		log.Warnf("scramble list has bad moves: %v", err)
	}
	return nil
}
