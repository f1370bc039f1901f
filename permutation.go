package cubesim

// Permutation is a length-54 destination map: the sticker at position i
// moves to position p[i]. Every permutation applied to a Cube must be a
// bijection over [0,54).
type Permutation [StickerCount]int

// Identity returns the identity permutation.
func Identity() Permutation {
	var p Permutation
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate checks that p is a bijection over [0,54): every destination in
// range and no destination repeated.
func (p Permutation) Validate() error {
	var seen [StickerCount]bool
	for _, dst := range p {
		if dst < 0 || dst >= StickerCount {
			return ErrInvalidPermutation
		}
		if seen[dst] {
			return ErrInvalidPermutation
		}
		seen[dst] = true
	}
	return nil
}

// Compose returns the permutation equivalent to applying p2 then p1.
func Compose(p1, p2 Permutation) Permutation {
	var out Permutation
	for i := range out {
		out[i] = p1[p2[i]]
	}
	return out
}

// Inverse returns the permutation that undoes p: inv[p[i]] = i.
func Inverse(p Permutation) Permutation {
	var inv Permutation
	for i, dst := range p {
		inv[dst] = i
	}
	return inv
}

// cycleLeg is one stretch of three adjacent-face stickers consumed by a
// face turn.
type cycleLeg struct {
	face  Face
	cells [3]int
}

// moveLegs tabulates, for each base move, the four adjacent-face legs in
// movement order: leg k's stickers travel to leg k+1's cells,
// index-aligned. Some legs are consumed in reversed row/column order so
// the stickers stay continuous around the cube's surface.
var moveLegs = map[Face][4]cycleLeg{
	// U: top rows of the four side faces
	FaceU: {
		{FaceF, [3]int{0, 1, 2}},
		{FaceL, [3]int{0, 1, 2}},
		{FaceB, [3]int{0, 1, 2}},
		{FaceR, [3]int{0, 1, 2}},
	},
	// D: bottom rows, opposite direction
	FaceD: {
		{FaceF, [3]int{6, 7, 8}},
		{FaceR, [3]int{6, 7, 8}},
		{FaceB, [3]int{6, 7, 8}},
		{FaceL, [3]int{6, 7, 8}},
	},
	// F: U bottom row, R left column, D top row (reversed), L right column (reversed)
	FaceF: {
		{FaceU, [3]int{6, 7, 8}},
		{FaceR, [3]int{0, 3, 6}},
		{FaceD, [3]int{2, 1, 0}},
		{FaceL, [3]int{8, 5, 2}},
	},
	// B: U top row (reversed), L left column, D bottom row, R right column (reversed)
	FaceB: {
		{FaceU, [3]int{2, 1, 0}},
		{FaceL, [3]int{0, 3, 6}},
		{FaceD, [3]int{6, 7, 8}},
		{FaceR, [3]int{8, 5, 2}},
	},
	// L: left columns of U, F, D, then B right column (reversed)
	FaceL: {
		{FaceU, [3]int{0, 3, 6}},
		{FaceF, [3]int{0, 3, 6}},
		{FaceD, [3]int{0, 3, 6}},
		{FaceB, [3]int{8, 5, 2}},
	},
	// R: right columns of U then B left column (reversed), D and F right columns
	FaceR: {
		{FaceU, [3]int{2, 5, 8}},
		{FaceB, [3]int{6, 3, 0}},
		{FaceD, [3]int{2, 5, 8}},
		{FaceF, [3]int{2, 5, 8}},
	},
}

// flatIndex converts a (face, cell) pair to a sticker-array index.
func flatIndex(f Face, cell int) int {
	return faceOffsets[f] + cell
}

// buildFaceTurn constructs the clockwise quarter-turn permutation for one
// face: the face's own corners cycle 0→2→8→6→0, its edges 1→5→7→3→1, the
// center stays, and the four adjacent legs cycle per moveLegs.
func buildFaceTurn(f Face) Permutation {
	p := Identity()
	s := faceOffsets[f]

	// Own face, two 4-cycles
	p[s+0], p[s+2], p[s+8], p[s+6] = s+2, s+8, s+6, s+0
	p[s+1], p[s+5], p[s+7], p[s+3] = s+5, s+7, s+3, s+1

	legs := moveLegs[f]
	for k := 0; k < 4; k++ {
		src := legs[k]
		dst := legs[(k+1)%4]
		for j := 0; j < 3; j++ {
			p[flatIndex(src.face, src.cells[j])] = flatIndex(dst.face, dst.cells[j])
		}
	}
	return p
}

// movePerms holds the twelve quarter-turn permutations, built once at
// startup. Primes are derived algebraically from the base moves, never
// hand-tabulated. The table is read-only after construction.
var movePerms = buildMoveTable()

func buildMoveTable() map[Move]Permutation {
	table := make(map[Move]Permutation, 12)
	for _, f := range Faces {
		base := buildFaceTurn(f)
		table[Move{Face: f, Turn: CW}] = base
		table[Move{Face: f, Turn: CCW}] = Inverse(base)
	}
	return table
}

// MovePermutation returns the permutation for a move. Half turns compose
// the base move with itself. Unknown faces or turn amounts return
// ErrUnknownMove.
func MovePermutation(m Move) (Permutation, error) {
	switch m.Turn {
	case CW, CCW:
		p, ok := movePerms[m]
		if !ok {
			return Permutation{}, ErrUnknownMove
		}
		return p, nil
	case Double:
		base, ok := movePerms[Move{Face: m.Face, Turn: CW}]
		if !ok {
			return Permutation{}, ErrUnknownMove
		}
		return Compose(base, base), nil
	default:
		return Permutation{}, ErrUnknownMove
	}
}

// SequencePermutation folds a move sequence into a single permutation.
func SequencePermutation(moves []Move) (Permutation, error) {
	out := Identity()
	for _, m := range moves {
		p, err := MovePermutation(m)
		if err != nil {
			return Permutation{}, err
		}
		out = Compose(p, out)
	}
	return out, nil
}
