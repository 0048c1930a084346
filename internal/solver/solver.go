// Package solver undoes a known scramble by applying its inverse.
//
// It does not search: it only works when the exact scramble applied to the
// cube is known.
package solver

import (
	"errors"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// ErrNotSolved is returned when the inverse sequence does not solve the cube,
// which means the scramble given is not the one that was applied.
var ErrNotSolved = errors.New("solver: cube not solved after reversing scramble")

// Step describes one applied solution move.
type Step struct {
	Index int
	Move  cube.Move
	State *cube.Cube
}

// Solver reverses scrambles on a single cube.
type Solver struct {
	cube *cube.Cube
	cfg  *config
}

// New creates a solver bound to c.
func New(c *cube.Cube, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{cube: c, cfg: cfg}
}

// Invert returns the inverse of a move sequence.
func Invert(moves []cube.Move) []cube.Move {
	return cube.InvertMoves(moves)
}

// Solve applies the inverse of scramble and returns it. The solution is
// returned even when the cube ends up unsolved. An invalid move in scramble
// is reported before the cube is touched.
func (s *Solver) Solve(scramble []cube.Move) ([]cube.Move, error) {
	if err := cube.ValidateMoves(scramble); err != nil {
		return nil, err
	}

	solution := Invert(scramble)
	for i, m := range solution {
		if err := s.cube.Apply(m); err != nil {
			return solution[:i], err
		}
		if s.cfg.stepHook != nil {
			s.cfg.stepHook(Step{Index: i, Move: m, State: s.cube.Clone()})
		}
	}

	if !s.cube.IsSolved() {
		return solution, ErrNotSolved
	}
	return solution, nil
}

// SolveTokens parses a scramble and solves it.
func (s *Solver) SolveTokens(tokens []string) ([]cube.Move, error) {
	scramble, err := cube.ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	return s.Solve(scramble)
}
