// Package cubesim simulates the facelets of a 3x3x3 Rubik's Cube.
//
// A cube is 54 colored stickers. The six faces are stored in the order
// U, R, F, D, L, B, nine stickers each, read row by row as seen from
// outside the cube:
//
//	          U0 U1 U2
//	          U3 U4 U5
//	          U6 U7 U8
//	L0 L1 L2  F0 F1 F2  R0 R1 R2  B0 B1 B2
//	L3 L4 L5  F3 F4 F5  R3 R4 R5  B3 B4 B5
//	L6 L7 L8  F6 F7 F8  R6 R7 R8  B6 B7 B8
//	          D0 D1 D2
//	          D3 D4 D5
//	          D6 D7 D8
//
// # Quick Start
//
//	cube := cubesim.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//
//	// Or from notation
//	if err := cube.ApplySequence(strings.Fields("F B2 L' D")); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubesim.R      // Right clockwise
//	cubesim.RPrime // Right counter-clockwise
//	cubesim.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// # Errors
//
// Bad input is reported with the sentinel errors below; use errors.Is.
// Sequence errors also carry the index of the offending token:
//
//	var seqErr *cubesim.SequenceError
//	if errors.As(err, &seqErr) {
//	    fmt.Println("bad move at", seqErr.Index)
//	}
package cubesim
