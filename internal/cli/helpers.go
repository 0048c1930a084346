package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/render"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// openDB opens the configured database and applies migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if settings.DBPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(settings.DBPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// loadScrambleList returns the configured scramble list, or the built-in one.
func loadScrambleList() (*scramble.List, error) {
	if settings.ScrambleFile == "" {
		return scramble.Default(), nil
	}
	list, err := scramble.Load(settings.ScrambleFile)
	if err != nil {
		return nil, err
	}
	log.WithField("file", settings.ScrambleFile).Debug("scramble list loaded")
	return list, nil
}

// newCube creates a solved cube in the configured color scheme.
func newCube() *cube.Cube {
	c, err := cube.NewWithScheme(settings.CubeScheme())
	if err != nil {
		return cube.New()
	}
	return c
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// drawCube writes the net of c, colored when enabled and w is a terminal.
func drawCube(w io.Writer, title string, c *cube.Cube, plain bool) {
	if title != "" {
		fmt.Fprintf(w, "\n%s\n", title)
	}

	f, ok := w.(*os.File)
	if !plain && settings.Color && ok && isTerminal(f) {
		fmt.Fprint(w, render.Styled(c))
		return
	}
	fmt.Fprint(w, render.Net(c))
}

// applyTokens applies tokens to c and returns the moves applied. With
// skipInvalid, bad tokens are logged and skipped; otherwise the first bad
// token stops the sequence.
func applyTokens(c *cube.Cube, tokens []string, skipInvalid bool) ([]cube.Move, error) {
	applied := make([]cube.Move, 0, len(tokens))
	for i, tok := range tokens {
		m, err := cube.ParseMove(tok)
		if err != nil {
			seqErr := &cube.SequenceError{Index: i, Token: tok, Err: err}
			if !skipInvalid {
				return applied, seqErr
			}
			log.WithFields(logrus.Fields{
				"index": i,
				"token": tok,
			}).Warnf("move not recognized, skipping: %v", err)
			continue
		}
		if err := c.Apply(m); err != nil {
			return applied, err
		}
		applied = append(applied, m)
	}
	return applied, nil
}

// wrapMoves formats moves in lines of about 60 characters.
func wrapMoves(moves []cube.Move) []string {
	var lines []string
	var line string
	for _, m := range moves {
		n := m.Notation()
		switch {
		case line == "":
			line = n
		case len(line)+len(n)+1 > 60:
			lines = append(lines, line)
			line = n
		default:
			line += " " + n
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func splitTokens(args []string) []string {
	return strings.Fields(strings.Join(args, " "))
}

var errCancelled = errors.New("cancelled")
