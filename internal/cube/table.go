package cube

// faceTurn describes one clockwise quarter turn of a face.
//
// own is applied as new[i] = old[own[i]] over the face's 9 local slots.
// strips holds absolute facelet indices on the four neighbor faces, ordered so
// that the stickers of strips[k] move onto strips[k+1] (and strips[3] onto
// strips[0]). Element j of one strip lands on element j of the next, so a
// strip is listed reversed wherever the neighbors' row or column directions
// run against each other.
type faceTurn struct {
	own    [FaceletsPerFace]int
	strips [4][3]int
}

// clockwise is the same local re-indexing for every face because each face
// is indexed as seen from outside the cube. Corners cycle 0->2->8->6 and
// edges 1->5->7->3.
var clockwise = [FaceletsPerFace]int{6, 3, 0, 7, 4, 1, 8, 5, 2}

// moveTable holds the quarter turn of every face, indexed by Face.
//
// Slot ranges: U 0-8, R 9-17, F 18-26, D 27-35, L 36-44, B 45-53.
var moveTable = [6]faceTurn{
	U: {
		own: clockwise,
		// F top -> L top -> B top -> R top
		strips: [4][3]int{
			{18, 19, 20},
			{36, 37, 38},
			{45, 46, 47},
			{9, 10, 11},
		},
	},
	R: {
		own: clockwise,
		// U right -> B left (upside down) -> D right -> F right
		strips: [4][3]int{
			{2, 5, 8},
			{51, 48, 45},
			{29, 32, 35},
			{20, 23, 26},
		},
	},
	F: {
		own: clockwise,
		// U bottom -> R left -> D top (reversed) -> L right (upwards)
		strips: [4][3]int{
			{6, 7, 8},
			{9, 12, 15},
			{29, 28, 27},
			{44, 41, 38},
		},
	},
	D: {
		own: clockwise,
		// F bottom -> R bottom -> B bottom -> L bottom
		strips: [4][3]int{
			{24, 25, 26},
			{15, 16, 17},
			{51, 52, 53},
			{42, 43, 44},
		},
	},
	L: {
		own: clockwise,
		// U left -> F left -> D left -> B right (upside down)
		strips: [4][3]int{
			{0, 3, 6},
			{18, 21, 24},
			{27, 30, 33},
			{53, 50, 47},
		},
	},
	B: {
		own: clockwise,
		// U top -> L left (upwards) -> D bottom (reversed) -> R right
		strips: [4][3]int{
			{0, 1, 2},
			{42, 39, 36},
			{35, 34, 33},
			{11, 14, 17},
		},
	},
}
