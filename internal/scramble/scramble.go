// Package scramble reads scramble lists and generates random scrambles.
//
// A scramble list is plain text split into sections by header lines that
// contain "simple scramble", "standard scramble" or "deep scramble". Blank
// lines and lines starting with # are ignored; every other line inside a
// section is one scramble of space-separated move tokens.
package scramble

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

//go:embed scrambles.txt
var defaultList []byte

var (
	ErrUnknownLevel = errors.New("scramble: unknown level")
	ErrEmptySection = errors.New("scramble: no scrambles in section")
)

// Level names a section of a scramble list.
type Level string

const (
	Simple   Level = "simple"
	Standard Level = "standard"
	Deep     Level = "deep"
)

// Levels lists the sections in file order.
var Levels = []Level{Simple, Standard, Deep}

// ParseLevel parses a level name, ignoring case.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Title returns the level name for display, e.g. "Standard".
func (l Level) Title() string {
	return cases.Title(language.English).String(string(l))
}

func (l Level) header() string {
	return string(l) + " scramble"
}

// Scramble is one line of a scramble list.
type Scramble struct {
	Level  Level
	Line   int
	Tokens []string
}

// Moves parses the scramble's tokens.
func (s Scramble) Moves() ([]cube.Move, error) {
	moves, err := cube.ParseTokens(s.Tokens)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", s.Line, err)
	}
	return moves, nil
}

func (s Scramble) String() string {
	return strings.Join(s.Tokens, " ")
}

// List holds the scrambles of each section.
type List struct {
	sections map[Level][]Scramble
}

// Parse reads a scramble list.
func Parse(r io.Reader) (*List, error) {
	list := &List{sections: make(map[Level][]Scramble)}

	var current Level
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if level, ok := headerLevel(line); ok {
			current = level
			continue
		}
		if current == "" {
			continue // Text before the first header
		}

		list.sections[current] = append(list.sections[current], Scramble{
			Level:  current,
			Line:   lineNum,
			Tokens: strings.Fields(line),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scramble list: %w", err)
	}

	return list, nil
}

func headerLevel(line string) (Level, bool) {
	lower := strings.ToLower(line)
	for _, level := range Levels {
		if strings.Contains(lower, level.header()) {
			return level, true
		}
	}
	return "", false
}

// Load reads a scramble list from a file.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scramble list: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Default returns the scramble list built into the binary.
func Default() *List {
	list, err := Parse(bytes.NewReader(defaultList))
	if err != nil {
		panic(err) // embedded data
	}
	return list
}

// Scrambles returns the scrambles of a section.
func (l *List) Scrambles(level Level) []Scramble {
	return l.sections[level]
}

// Pick returns a random scramble from a section.
func (l *List) Pick(level Level, rng *rand.Rand) (Scramble, error) {
	scrambles := l.sections[level]
	if len(scrambles) == 0 {
		return Scramble{}, fmt.Errorf("%w: %s", ErrEmptySection, level)
	}
	return scrambles[rng.IntN(len(scrambles))], nil
}

// Validate parses every scramble and returns the first error.
func (l *List) Validate() error {
	for _, level := range Levels {
		for _, s := range l.sections[level] {
			if _, err := s.Moves(); err != nil {
				return fmt.Errorf("%s: %w", level, err)
			}
		}
	}
	return nil
}

var turns = [3]cube.Turn{cube.CW, cube.CCW, cube.Double}

// Generate returns n random moves. Consecutive moves never turn the same
// face.
func Generate(n int, rng *rand.Rand) []cube.Move {
	moves := make([]cube.Move, 0, n)
	last := cube.Face(-1)
	for len(moves) < n {
		face := cube.FaceOrder[rng.IntN(len(cube.FaceOrder))]
		if face == last {
			continue
		}
		last = face
		moves = append(moves, cube.Move{Face: face, Turn: turns[rng.IntN(len(turns))]})
	}
	return moves
}
