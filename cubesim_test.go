package cubesim

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.Apply(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestFourQuarterTurnsReturnToSolved_AllFaces(t *testing.T) {
	faces := []Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}
	for _, face := range faces {
		c := NewCube()
		m := Move{Face: face, Turn: CW}
		c.Apply(m, m, m, m)
		if !c.IsSolved() {
			t.Errorf("%s x4 should return to solved", m)
			t.Log(c.String())
		}
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	c := NewCube()
	for i := 1; i <= 6; i++ {
		c.Apply(SexyMove...)
		if i < 6 && c.IsSolved() {
			t.Errorf("Cube should not be solved after %d sexy moves", i)
		}
	}
	if !c.IsSolved() {
		t.Error("(R U R' U') x6 should return to solved")
		t.Log(c.String())
	}
}

func TestSexyThenInverse(t *testing.T) {
	c := NewCube()
	c.Apply(SexyMove...)
	c.Apply(InverseSexyMove...)
	if !c.IsSolved() {
		t.Error("R U R' U' then U R U' R' should return to solved")
	}
}

func TestTPermTwice(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Error("T-perm should change the cube")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm twice should return to solved")
	}
}

func TestScrambleAndInverse(t *testing.T) {
	moves, err := ParseMoves("F B2 L' D R U2 B' D2")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}

	c := NewCube()
	c.Apply(moves...)
	c.Apply(InvertMoves(moves)...)
	if !c.IsSolved() {
		t.Error("Scramble followed by its inverse should be solved")
	}

	if got := FormatMoves(InvertMoves(moves)); got != "D2 B U2 R' D' L B2 F'" {
		t.Errorf("InvertMoves = %q", got)
	}
}

func TestApplySequenceErrors(t *testing.T) {
	c := NewCube()
	err := c.ApplySequence(strings.Fields("R U X F"))
	if !errors.Is(err, ErrUnknownFace) {
		t.Fatalf("expected ErrUnknownFace, got %v", err)
	}

	var seqErr *SequenceError
	if !errors.As(err, &seqErr) || seqErr.Index != 2 {
		t.Errorf("expected SequenceError at index 2, got %v", err)
	}

	if _, err := ParseMove("R3"); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("R3: expected ErrMalformedToken, got %v", err)
	}
}

func TestParseFaceletsRoundTrip(t *testing.T) {
	c := NewCube()
	c.Apply(R, U, FPrime)

	parsed, err := ParseFacelets(c.String())
	if err != nil {
		t.Fatalf("ParseFacelets: %v", err)
	}
	if !parsed.Equal(c) {
		t.Error("parsed cube should equal original")
	}

	if _, err := ParseFacelets("YYY"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

func TestAllMoves(t *testing.T) {
	if len(AllMoves) != 18 {
		t.Fatalf("len(AllMoves) = %d, want 18", len(AllMoves))
	}
	seen := make(map[string]bool)
	for _, m := range AllMoves {
		if !m.Valid() {
			t.Errorf("%v should be valid", m)
		}
		if seen[m.Notation()] {
			t.Errorf("%v listed twice", m)
		}
		seen[m.Notation()] = true

		parsed, err := ParseMove(m.Notation())
		if err != nil || parsed != m {
			t.Errorf("ParseMove(%q) = %v, %v", m.Notation(), parsed, err)
		}
	}
}

func TestApplyRejectsZeroMove(t *testing.T) {
	c := NewCube()
	if err := c.Apply(R, Move{}); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("expected ErrMalformedToken, got %v", err)
	}
	if !c.IsSolved() {
		t.Error("Cube should be unchanged when a move is rejected")
	}
}
