// Package notation spells out moves for display.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

var faceNames = map[cube.Face]string{
	cube.U: "Up",
	cube.R: "Right",
	cube.F: "Front",
	cube.D: "Down",
	cube.L: "Left",
	cube.B: "Back",
}

// Describe spells out a move, viewed facing the turned face.
// Examples: "Right clockwise", "Up counter-clockwise", "Front 180".
func Describe(m cube.Move) string {
	name, ok := faceNames[m.Face]
	if !ok {
		return m.Notation()
	}

	switch m.Turn {
	case cube.CW:
		return name + " clockwise"
	case cube.CCW:
		return name + " counter-clockwise"
	case cube.Double:
		return name + " 180"
	}
	return m.Notation()
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(moves []cube.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}

// QuarterTurnCount returns the length of moves in the quarter-turn metric.
func QuarterTurnCount(moves []cube.Move) int {
	total := 0
	for _, m := range moves {
		if m.Turn == cube.Double {
			total += 2
		} else {
			total++
		}
	}
	return total
}
