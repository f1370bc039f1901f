package cubesim

import "sort"

// borderPairs lists every pair of stickers on different faces that share a
// physical cube edge: 12 cube edges, each contributing a strip of three
// sticker pairs. Together with the same-face grid neighbors this fixes the
// full surface adjacency of the cube.
//
// A sticker's cross-face partners here are exactly the other stickers of
// its physical piece: one partner for an edge sticker, two for a corner
// sticker, none for a center.
var borderPairs = [36][2]int{
	// U-F
	{flatIndex(FaceU, 6), flatIndex(FaceF, 0)}, {flatIndex(FaceU, 7), flatIndex(FaceF, 1)}, {flatIndex(FaceU, 8), flatIndex(FaceF, 2)},
	// U-B
	{flatIndex(FaceU, 0), flatIndex(FaceB, 2)}, {flatIndex(FaceU, 1), flatIndex(FaceB, 1)}, {flatIndex(FaceU, 2), flatIndex(FaceB, 0)},
	// U-L
	{flatIndex(FaceU, 0), flatIndex(FaceL, 0)}, {flatIndex(FaceU, 3), flatIndex(FaceL, 1)}, {flatIndex(FaceU, 6), flatIndex(FaceL, 2)},
	// U-R
	{flatIndex(FaceU, 2), flatIndex(FaceR, 2)}, {flatIndex(FaceU, 5), flatIndex(FaceR, 1)}, {flatIndex(FaceU, 8), flatIndex(FaceR, 0)},
	// D-F
	{flatIndex(FaceD, 0), flatIndex(FaceF, 6)}, {flatIndex(FaceD, 1), flatIndex(FaceF, 7)}, {flatIndex(FaceD, 2), flatIndex(FaceF, 8)},
	// D-B
	{flatIndex(FaceD, 6), flatIndex(FaceB, 8)}, {flatIndex(FaceD, 7), flatIndex(FaceB, 7)}, {flatIndex(FaceD, 8), flatIndex(FaceB, 6)},
	// D-L
	{flatIndex(FaceD, 0), flatIndex(FaceL, 8)}, {flatIndex(FaceD, 3), flatIndex(FaceL, 7)}, {flatIndex(FaceD, 6), flatIndex(FaceL, 6)},
	// D-R
	{flatIndex(FaceD, 2), flatIndex(FaceR, 6)}, {flatIndex(FaceD, 5), flatIndex(FaceR, 7)}, {flatIndex(FaceD, 8), flatIndex(FaceR, 8)},
	// F-L
	{flatIndex(FaceF, 0), flatIndex(FaceL, 2)}, {flatIndex(FaceF, 3), flatIndex(FaceL, 5)}, {flatIndex(FaceF, 6), flatIndex(FaceL, 8)},
	// F-R
	{flatIndex(FaceF, 2), flatIndex(FaceR, 0)}, {flatIndex(FaceF, 5), flatIndex(FaceR, 3)}, {flatIndex(FaceF, 8), flatIndex(FaceR, 6)},
	// B-L
	{flatIndex(FaceB, 2), flatIndex(FaceL, 0)}, {flatIndex(FaceB, 5), flatIndex(FaceL, 3)}, {flatIndex(FaceB, 8), flatIndex(FaceL, 6)},
	// B-R
	{flatIndex(FaceB, 0), flatIndex(FaceR, 2)}, {flatIndex(FaceB, 3), flatIndex(FaceR, 5)}, {flatIndex(FaceB, 6), flatIndex(FaceR, 8)},
}

// neighborTable and partnerTable are built once at startup and read-only
// afterwards.
var (
	neighborTable [StickerCount][]int
	partnerTable  [StickerCount][]int
)

func init() {
	// Same-face orthogonal neighbors via grid arithmetic.
	for _, f := range Faces {
		start := faceOffsets[f]
		for cell := 0; cell < stickersPerFace; cell++ {
			row, col := cell/3, cell%3
			i := start + cell
			if row > 0 {
				neighborTable[i] = append(neighborTable[i], start+(row-1)*3+col)
			}
			if row < 2 {
				neighborTable[i] = append(neighborTable[i], start+(row+1)*3+col)
			}
			if col > 0 {
				neighborTable[i] = append(neighborTable[i], start+row*3+col-1)
			}
			if col < 2 {
				neighborTable[i] = append(neighborTable[i], start+row*3+col+1)
			}
		}
	}

	// Cross-face border adjacency, bidirectional.
	for _, pair := range borderPairs {
		a, b := pair[0], pair[1]
		neighborTable[a] = append(neighborTable[a], b)
		neighborTable[b] = append(neighborTable[b], a)
		partnerTable[a] = append(partnerTable[a], b)
		partnerTable[b] = append(partnerTable[b], a)
	}

	for i := range neighborTable {
		sort.Ints(neighborTable[i])
		sort.Ints(partnerTable[i])
	}
}

// Neighbors returns the stickers adjacent to i on the cube's surface:
// same-face grid neighbors plus stickers across the bordering cube edge.
// The returned slice is shared and must not be modified.
func Neighbors(i int) ([]int, error) {
	if i < 0 || i >= StickerCount {
		return nil, ErrIndexOutOfRange
	}
	return neighborTable[i], nil
}

// PiecePartners returns the stickers that sit on the same physical piece
// as i: two for a corner sticker, one for an edge sticker, none for a
// center. The returned slice is shared and must not be modified.
func PiecePartners(i int) ([]int, error) {
	if i < 0 || i >= StickerCount {
		return nil, ErrIndexOutOfRange
	}
	return partnerTable[i], nil
}

// MovingStickers returns every sticker displaced by a turn of face f: the
// nine on the face plus the twelve adjacent-face stickers of its layer.
// Renderers use this to highlight the turning layer.
func MovingStickers(f Face) ([]int, error) {
	start, ok := faceOffsets[f]
	if !ok {
		return nil, ErrUnknownFace
	}
	indices := make([]int, 0, 21)
	for cell := 0; cell < stickersPerFace; cell++ {
		i := start + cell
		indices = append(indices, i)
		indices = append(indices, partnerTable[i]...)
	}
	sort.Ints(indices)
	return indices, nil
}
