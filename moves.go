package cubesim

// Predefined moves, in U R F D L B order. The plain name is a clockwise
// quarter turn, Prime is counter-clockwise and 2 is a half turn.
//
//	cube.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
var (
	U, UPrime, U2 = faceTurns(FaceU)
	R, RPrime, R2 = faceTurns(FaceR)
	F, FPrime, F2 = faceTurns(FaceF)
	D, DPrime, D2 = faceTurns(FaceD)
	L, LPrime, L2 = faceTurns(FaceL)
	B, BPrime, B2 = faceTurns(FaceB)
)

func faceTurns(f Face) (cw, ccw, half Move) {
	return Move{Face: f, Turn: CW}, Move{Face: f, Turn: CCW}, Move{Face: f, Turn: Double}
}

// AllMoves lists the 18 face turns.
var AllMoves = []Move{
	U, UPrime, U2,
	R, RPrime, R2,
	F, FPrime, F2,
	D, DPrime, D2,
	L, LPrime, L2,
	B, BPrime, B2,
}

// SexyMove is R U R' U'. Six repetitions return a cube to where it started.
var SexyMove = []Move{R, U, RPrime, UPrime}

// InverseSexyMove is U R U' R', which undoes SexyMove.
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// TPerm swaps two corners and two edges of the U layer. Order two.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
