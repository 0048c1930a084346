// Package cube provides a 3x3 Rubik's cube facelet model and the face-turn
// engine that acts on it.
package cube

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White Color = iota
	Yellow
	Green
	Blue
	Red
	Orange
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// ParseColor parses a single color letter (W, Y, G, B, R, O).
func ParseColor(r byte) (Color, error) {
	switch r {
	case 'W', 'w':
		return White, nil
	case 'Y', 'y':
		return Yellow, nil
	case 'G', 'g':
		return Green, nil
	case 'B', 'b':
		return Blue, nil
	case 'R', 'r':
		return Red, nil
	case 'O', 'o':
		return Orange, nil
	default:
		return 0, ErrInvalidColor
	}
}

// Face represents a cube face. The numeric value is the face's position in
// the facelet storage order.
type Face int

const (
	U Face = iota // Up
	R             // Right
	F             // Front
	D             // Down
	L             // Left
	B             // Back
)

// FaceOrder is the storage order of faces in the 54-slot facelet array.
// Face f occupies slots [9*f, 9*f+9).
var FaceOrder = [6]Face{U, R, F, D, L, B}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case R:
		return "R"
	case F:
		return "F"
	case D:
		return "D"
	case L:
		return "L"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= U && f <= B
}

// ParseFace parses a face letter.
func ParseFace(r byte) (Face, error) {
	switch r {
	case 'U':
		return U, nil
	case 'R':
		return R, nil
	case 'F':
		return F, nil
	case 'D':
		return D, nil
	case 'L':
		return L, nil
	case 'B':
		return B, nil
	default:
		return 0, ErrUnknownFace
	}
}

const (
	// FaceletsPerFace is the number of stickers on one face.
	FaceletsPerFace = 9
	// NumFacelets is the number of stickers on the whole cube.
	NumFacelets = 6 * FaceletsPerFace
)

// Scheme assigns a solved color to each face, indexed by Face.
type Scheme [6]Color

// DefaultScheme is yellow on top, green in front.
var DefaultScheme = Scheme{
	U: Yellow,
	R: Red,
	F: Green,
	D: White,
	L: Orange,
	B: Blue,
}

// Validate checks that the scheme uses six distinct known colors.
func (s Scheme) Validate() error {
	var seen [6]bool
	for _, c := range s {
		if c > Orange || seen[c] {
			return ErrInvalidScheme
		}
		seen[c] = true
	}
	return nil
}

// ParseScheme reads six color letters in face storage order (U R F D L B).
func ParseScheme(s string) (Scheme, error) {
	var scheme Scheme
	if len(s) != len(scheme) {
		return scheme, ErrInvalidScheme
	}
	for i := 0; i < len(s); i++ {
		c, err := ParseColor(s[i])
		if err != nil {
			return scheme, ErrInvalidScheme
		}
		scheme[i] = c
	}
	if err := scheme.Validate(); err != nil {
		return scheme, err
	}
	return scheme, nil
}

func (s Scheme) String() string {
	var sb strings.Builder
	for _, c := range s {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Cube represents a 3x3 Rubik's cube as 54 facelets in FaceOrder.
// Each face has 9 facelets indexed as seen from outside the cube:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is seen with B at the top, D with F at the top and the four side faces
// with U at the top. The center (index 4) never moves.
//
// A Cube is not safe for concurrent use.
type Cube struct {
	facelets [NumFacelets]Color
}

// New creates a solved cube using DefaultScheme.
func New() *Cube {
	c, _ := NewWithScheme(DefaultScheme)
	return c
}

// NewWithScheme creates a solved cube with the given face colors.
func NewWithScheme(s Scheme) (*Cube, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c := &Cube{}
	for _, face := range FaceOrder {
		base := int(face) * FaceletsPerFace
		for i := 0; i < FaceletsPerFace; i++ {
			c.facelets[base+i] = s[face]
		}
	}
	return c, nil
}

// FromFacelets creates a cube from 54 colors in FaceOrder. The colors are
// not checked for physical consistency.
func FromFacelets(colors []Color) (*Cube, error) {
	if len(colors) != NumFacelets {
		return nil, ErrInvalidLength
	}
	c := &Cube{}
	copy(c.facelets[:], colors)
	return c, nil
}

// ParseFacelets parses the 54-letter form produced by String.
func ParseFacelets(s string) (*Cube, error) {
	s = strings.TrimSpace(s)
	if len(s) != NumFacelets {
		return nil, ErrInvalidLength
	}
	colors := make([]Color, NumFacelets)
	for i := 0; i < len(s); i++ {
		c, err := ParseColor(s[i])
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return FromFacelets(colors)
}

// Facelet returns the color at slot i.
func (c *Cube) Facelet(i int) (Color, error) {
	if i < 0 || i >= NumFacelets {
		return 0, ErrIndexOutOfRange
	}
	return c.facelets[i], nil
}

// SetFacelet sets the color at slot i.
func (c *Cube) SetFacelet(i int, color Color) error {
	if i < 0 || i >= NumFacelets {
		return ErrIndexOutOfRange
	}
	c.facelets[i] = color
	return nil
}

// Facelets returns a copy of all 54 slots.
func (c *Cube) Facelets() [NumFacelets]Color {
	return c.facelets
}

// Face returns the 9 facelets of a face. ok is false for an unknown face.
func (c *Cube) Face(f Face) (out [FaceletsPerFace]Color, ok bool) {
	if !f.Valid() {
		return out, false
	}
	copy(out[:], c.facelets[int(f)*FaceletsPerFace:])
	return out, true
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes hold the same colors in every slot.
func (c *Cube) Equal(other *Cube) bool {
	return c.facelets == other.facelets
}

// ColorCounts returns how many facelets hold each color.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 6)
	for _, color := range c.facelets {
		counts[color]++
	}
	return counts
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	for _, face := range FaceOrder {
		base := int(face) * FaceletsPerFace
		for i := 1; i < FaceletsPerFace; i++ {
			if c.facelets[base+i] != c.facelets[base] {
				return false
			}
		}
	}
	return true
}

// String returns the 54 color letters in FaceOrder.
func (c *Cube) String() string {
	var sb strings.Builder
	sb.Grow(NumFacelets)
	for _, color := range c.facelets {
		sb.WriteString(color.String())
	}
	return sb.String()
}
