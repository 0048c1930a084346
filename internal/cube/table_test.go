package cube

import "testing"

// permutationOf returns where each slot's sticker ends up after one
// clockwise quarter turn of face.
func permutationOf(face Face) [NumFacelets]int {
	idx := newIndexCube()
	idx.quarterTurn(face)
	var dest [NumFacelets]int
	for to, from := range idx.facelets {
		dest[int(from)] = to
	}
	return dest
}

// newIndexCube returns a cube whose slot i holds Color(i), so every
// sticker is distinguishable while the engine moves it.
func newIndexCube() *Cube {
	c := &Cube{}
	for i := range c.facelets {
		c.facelets[i] = Color(i)
	}
	return c
}

func isIdentity(c *Cube) bool {
	for i, v := range c.facelets {
		if int(v) != i {
			return false
		}
	}
	return true
}

func TestMoveTableIsBijection(t *testing.T) {
	for _, face := range FaceOrder {
		dest := permutationOf(face)
		seen := make(map[int]bool)
		for _, d := range dest {
			if seen[d] {
				t.Errorf("%v: slot %d targeted twice", face, d)
			}
			seen[d] = true
		}
		moved := 0
		for from, to := range dest {
			if from != to {
				moved++
			}
		}
		// 8 own stickers plus 4 strips of 3.
		if moved != 20 {
			t.Errorf("%v moves %d stickers, want 20", face, moved)
		}
	}
}

func TestOwnPermutationCyclesCornersAndEdges(t *testing.T) {
	for _, face := range FaceOrder {
		own := moveTable[face].own
		if own[4] != 4 {
			t.Errorf("%v: center maps to %d", face, own[4])
		}
		for i, src := range own {
			if i != 4 && src == i {
				t.Errorf("%v: slot %d is a fixed point", face, i)
			}
		}
		// Corners and edges each form one 4-cycle.
		visited := map[int]bool{}
		for i := 0; !visited[i]; i = own[i] {
			visited[i] = true
		}
		if len(visited) != 4 {
			t.Errorf("%v: corner orbit has %d slots, want 4", face, len(visited))
		}
		visited = map[int]bool{}
		for i := 1; !visited[i]; i = own[i] {
			visited[i] = true
		}
		if len(visited) != 4 {
			t.Errorf("%v: edge orbit has %d slots, want 4", face, len(visited))
		}
	}
}

func TestStripsLieOnNeighborFaces(t *testing.T) {
	opposite := map[Face]Face{U: D, D: U, R: L, L: R, F: B, B: F}
	for _, face := range FaceOrder {
		neighbors := map[Face]bool{}
		for _, strip := range moveTable[face].strips {
			owner := Face(strip[0] / FaceletsPerFace)
			for _, idx := range strip {
				if Face(idx/FaceletsPerFace) != owner {
					t.Errorf("%v: strip %v spans two faces", face, strip)
				}
				if idx%FaceletsPerFace == 4 {
					t.Errorf("%v: strip %v contains a center", face, strip)
				}
			}
			if owner == face || owner == opposite[face] {
				t.Errorf("%v: strip %v is not on a neighbor face", face, strip)
			}
			neighbors[owner] = true
		}
		if len(neighbors) != 4 {
			t.Errorf("%v: strips cover %d faces, want 4", face, len(neighbors))
		}
	}
}

func TestQuarterTurnHasOrderFour(t *testing.T) {
	for _, face := range FaceOrder {
		idx := newIndexCube()
		for n := 1; n <= 4; n++ {
			idx.quarterTurn(face)
			if identity := isIdentity(idx); identity != (n == 4) {
				t.Errorf("%v^%d identity = %v", face, n, identity)
			}
		}
	}
}

// Orders of well-known sequences pin the table to the real cube group: a
// mirrored strip changes them.
func TestKnownSequenceOrders(t *testing.T) {
	tests := []struct {
		seq   string
		order int
	}{
		{"R U", 105},
		{"R U R' U'", 6},
		{"R U2 D' B D'", 1260},
		{"F", 4},
		{"R2 L2", 2},
	}
	for _, tt := range tests {
		moves, err := ParseMoves(tt.seq)
		if err != nil {
			t.Fatalf("ParseMoves(%q): %v", tt.seq, err)
		}

		idx := newIndexCube()
		n := 0
		for {
			if err := idx.Apply(moves...); err != nil {
				t.Fatalf("Apply(%q): %v", tt.seq, err)
			}
			n++
			if isIdentity(idx) || n > tt.order {
				break
			}
		}
		if n != tt.order {
			t.Errorf("order of %q = %d, want %d", tt.seq, n, tt.order)
		}
	}
}
