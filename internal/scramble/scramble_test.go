package scramble

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

const sampleList = `# my scrambles
ignored before any header

=== Simple Scramble ===
R U F
# comment inside a section

L D'

STANDARD SCRAMBLE (10-20 moves)
R U R' U' F2 D L B' U2 R2

deep scramble
R X U
`

func TestParse(t *testing.T) {
	list, err := Parse(strings.NewReader(sampleList))
	require.NoError(t, err)

	simple := list.Scrambles(Simple)
	require.Len(t, simple, 2)
	assert.Equal(t, []string{"R", "U", "F"}, simple[0].Tokens)
	assert.Equal(t, 5, simple[0].Line)
	assert.Equal(t, "L D'", simple[1].String())

	require.Len(t, list.Scrambles(Standard), 1)
	assert.Len(t, list.Scrambles(Standard)[0].Tokens, 10)

	require.Len(t, list.Scrambles(Deep), 1)
}

func TestScrambleMovesReportsLine(t *testing.T) {
	list, err := Parse(strings.NewReader(sampleList))
	require.NoError(t, err)

	_, err = list.Scrambles(Deep)[0].Moves()
	require.Error(t, err)
	assert.ErrorIs(t, err, cube.ErrUnknownFace)
	assert.Contains(t, err.Error(), "line 14")

	err = list.Validate()
	assert.ErrorIs(t, err, cube.ErrUnknownFace)
}

func TestPick(t *testing.T) {
	list, err := Parse(strings.NewReader(sampleList))
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10; i++ {
		s, err := list.Pick(Simple, rng)
		require.NoError(t, err)
		assert.Equal(t, Simple, s.Level)
	}

	empty, err := Parse(strings.NewReader("simple scramble\n"))
	require.NoError(t, err)
	_, err = empty.Pick(Simple, rng)
	assert.ErrorIs(t, err, ErrEmptySection)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrambles.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0644))

	list, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, list.Scrambles(Simple), 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestDefaultListIsValid(t *testing.T) {
	list := Default()
	require.NoError(t, list.Validate())

	for _, level := range Levels {
		assert.NotEmpty(t, list.Scrambles(level), level)
	}
	for _, s := range list.Scrambles(Simple) {
		assert.LessOrEqual(t, len(s.Tokens), 6)
	}
	for _, s := range list.Scrambles(Deep) {
		assert.GreaterOrEqual(t, len(s.Tokens), 25)
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" Deep ")
	require.NoError(t, err)
	assert.Equal(t, Deep, l)
	assert.Equal(t, "Deep", l.Title())

	_, err = ParseLevel("insane")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	moves := Generate(25, rng)
	require.Len(t, moves, 25)
	for i := 1; i < len(moves); i++ {
		assert.NotEqual(t, moves[i-1].Face, moves[i].Face, "moves %d and %d", i-1, i)
	}

	// Same seed, same scramble.
	again := Generate(25, rand.New(rand.NewPCG(42, 42)))
	assert.Equal(t, moves, again)

	assert.Empty(t, Generate(0, rng))
}

func TestGeneratedScrambleSolvesByInverse(t *testing.T) {
	moves := Generate(30, rand.New(rand.NewPCG(7, 9)))
	c := cube.New()
	c.Apply(moves...)
	c.Apply(cube.InvertMoves(moves)...)
	assert.True(t, c.IsSolved())
}
