// Package render draws a cube as an unfolded net:
//
//	        U
//	L  F  R  B
//	        D
//
// Faces are read by name through cube.Cube.Face, so the drawing never
// depends on how the facelets are stored.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// sideFaces are drawn left to right in the middle band.
var sideFaces = []cube.Face{cube.L, cube.F, cube.R, cube.B}

const faceGap = "  "

// Net returns the plain text net of c, one letter per sticker.
func Net(c *cube.Cube) string {
	return draw(c, func(color cube.Color) string { return color.String() }, " ")
}

// Styled returns the net with every sticker drawn as a colored block.
func Styled(c *cube.Cube) string {
	return draw(c, func(color cube.Color) string {
		return stickerStyles[color].Render(" " + color.String() + " ")
	}, "")
}

var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("#FFFFFF"),
	cube.Yellow: lipgloss.Color("#FFD500"),
	cube.Green:  lipgloss.Color("#009B48"),
	cube.Blue:   lipgloss.Color("#0046AD"),
	cube.Red:    lipgloss.Color("#B71234"),
	cube.Orange: lipgloss.Color("#FF5800"),
}

var stickerStyles = func() map[cube.Color]lipgloss.Style {
	styles := make(map[cube.Color]lipgloss.Style, len(stickerColors))
	for color, bg := range stickerColors {
		styles[color] = lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color("#000000"))
	}
	return styles
}()

func draw(c *cube.Cube, sticker func(cube.Color) string, sep string) string {
	var sb strings.Builder

	row := func(face cube.Face, r int) string {
		f, _ := c.Face(face)
		parts := make([]string, 3)
		for col := 0; col < 3; col++ {
			parts[col] = sticker(f[r*3+col])
		}
		return strings.Join(parts, sep)
	}

	// Width of one face row, used to indent U and D above F.
	indent := strings.Repeat(" ", lipgloss.Width(row(cube.L, 0))+len(faceGap))

	for r := 0; r < 3; r++ {
		sb.WriteString(indent + row(cube.U, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		parts := make([]string, len(sideFaces))
		for i, face := range sideFaces {
			parts[i] = row(face, r)
		}
		sb.WriteString(strings.Join(parts, faceGap) + "\n")
	}
	for r := 0; r < 3; r++ {
		sb.WriteString(indent + row(cube.D, r) + "\n")
	}

	return sb.String()
}
