package cubesim

import (
	"github.com/SeamusWaldron/cubesim/internal/cube"
)

type (
	// Cube is the 54-facelet state of a cube.
	Cube = cube.Cube
	// Color is a sticker color.
	Color = cube.Color
	// Face is one of the six faces.
	Face = cube.Face
	// Turn is the direction of a move.
	Turn = cube.Turn
	// Move is a face and a turn.
	Move = cube.Move
	// Scheme assigns a color to each face of a solved cube.
	Scheme = cube.Scheme
	// SequenceError reports the token that stopped a move sequence.
	SequenceError = cube.SequenceError
)

// Colors
const (
	White  = cube.White
	Yellow = cube.Yellow
	Green  = cube.Green
	Blue   = cube.Blue
	Red    = cube.Red
	Orange = cube.Orange
)

// Faces
const (
	FaceU = cube.U
	FaceR = cube.R
	FaceF = cube.F
	FaceD = cube.D
	FaceL = cube.L
	FaceB = cube.B
)

// Turns
const (
	CW     = cube.CW
	CCW    = cube.CCW
	Double = cube.Double
)

const (
	// NumFacelets is the number of stickers on a cube.
	NumFacelets = cube.NumFacelets
	// FaceletsPerFace is the number of stickers on one face.
	FaceletsPerFace = cube.FaceletsPerFace
)

// DefaultScheme is the scheme used by NewCube.
var DefaultScheme = cube.DefaultScheme

// NewCube returns a solved cube in the default color scheme.
func NewCube() *Cube {
	return cube.New()
}

// NewCubeWithScheme returns a solved cube in the given scheme.
func NewCubeWithScheme(s Scheme) (*Cube, error) {
	return cube.NewWithScheme(s)
}

// FromFacelets builds a cube from exactly 54 colors in U R F D L B order.
func FromFacelets(colors []Color) (*Cube, error) {
	return cube.FromFacelets(colors)
}

// ParseFacelets builds a cube from 54 color letters such as "YYY...BBB".
func ParseFacelets(s string) (*Cube, error) {
	return cube.ParseFacelets(s)
}

// ParseMove parses a single token like "R", "U'" or "F2".
func ParseMove(s string) (Move, error) {
	return cube.ParseMove(s)
}

// ParseMoves parses a whitespace-separated sequence.
func ParseMoves(s string) ([]Move, error) {
	return cube.ParseMoves(s)
}

// FormatMoves formats moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return cube.FormatMoves(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return cube.InvertMoves(moves)
}
