package cube

import "strings"

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// QuarterTurns returns the number of clockwise quarter turns equivalent to t.
func (t Turn) QuarterTurns() int {
	switch t {
	case CW:
		return 1
	case Double:
		return 2
	case CCW:
		return 3
	default:
		return 0
	}
}

// Valid reports whether t is CW, CCW or Double.
func (t Turn) Valid() bool {
	return t == CW || t == CCW || t == Double
}

// Move is a parsed move token.
type Move struct {
	Face Face
	Turn Turn
}

// Valid reports whether both face and turn are known.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Turn.Valid()
}

// validate returns the error a bad move would get as a token.
func (m Move) validate() error {
	if !m.Face.Valid() {
		return ErrUnknownFace
	}
	if !m.Turn.Valid() {
		return ErrMalformedToken
	}
	return nil
}

// Notation returns the standard notation for this move.
// Examples: R, R', R2. An invalid turn is written as "?".
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CW:
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	default:
		suffix = "?"
	}
	return m.Face.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2. An invalid move stays invalid.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// ParseMove parses a single move token: a face letter (U, R, F, D, L, B)
// optionally followed by ' (or `) or 2.
func ParseMove(token string) (Move, error) {
	if len(token) == 0 {
		return Move{}, ErrMalformedToken
	}

	face, err := ParseFace(token[0])
	if err != nil {
		return Move{}, err
	}

	turn := CW
	switch token[1:] {
	case "":
	case "'", "`":
		turn = CCW
	case "2":
		turn = Double
	default:
		return Move{}, ErrMalformedToken
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated move sequence. It stops at the first
// bad token and returns a *SequenceError.
func ParseMoves(s string) ([]Move, error) {
	return ParseTokens(strings.Fields(s))
}

// ParseTokens parses a list of move tokens. It stops at the first bad token
// and returns a *SequenceError.
func ParseTokens(tokens []string) ([]Move, error) {
	moves := make([]Move, 0, len(tokens))
	for i, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, &SequenceError{Index: i, Token: tok, Err: err}
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// ValidateMoves checks every move and returns a *SequenceError for the
// first invalid one.
func ValidateMoves(moves []Move) error {
	for i, m := range moves {
		if err := m.validate(); err != nil {
			return &SequenceError{Index: i, Token: m.Notation(), Err: err}
		}
	}
	return nil
}

// InvertMoves returns the sequence that undoes moves: reversed, with every
// move inverted.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
