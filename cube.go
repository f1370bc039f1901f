package cubesim

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Orange Color = 4 // Left face when solved
	Red    Color = 5 // Right face when solved
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
	case Orange:
		return "O"
	case Red:
		return "R"
	default:
		return "?"
	}
}

// StickerCount is the number of stickers on a 3x3 cube.
const StickerCount = 54

// stickersPerFace is the number of stickers on one face.
const stickersPerFace = 9

// faceOffsets maps each face to the start of its block in the sticker
// array. Blocks are fixed: U[0-8], D[9-17], F[18-26], B[27-35], L[36-44],
// R[45-53], each face stored row-major.
var faceOffsets = map[Face]int{
	FaceU: 0,
	FaceD: 9,
	FaceF: 18,
	FaceB: 27,
	FaceL: 36,
	FaceR: 45,
}

// solvedColors maps each face to its color in the solved orientation:
// white on top, green in front.
var solvedColors = map[Face]Color{
	FaceU: White,
	FaceD: Yellow,
	FaceF: Green,
	FaceB: Blue,
	FaceL: Orange,
	FaceR: Red,
}

// Cube represents a 3x3 Rubik's cube as a flat array of 54 stickers.
// Each face occupies 9 consecutive slots indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4 within a face) never moves. The only mutation entry
// point is ApplyPermutation, so every reachable state is a rearrangement of
// a valid start state.
type Cube struct {
	stickers [StickerCount]Color
}

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() *Cube {
	c := &Cube{}
	for _, f := range Faces {
		start := faceOffsets[f]
		color := solvedColors[f]
		for i := 0; i < stickersPerFace; i++ {
			c.stickers[start+i] = color
		}
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.stickers = c.stickers
	return clone
}

// ApplyPermutation applies a length-54 bijection to the sticker array.
// The sticker at position i moves to position p[i]. The permutation is
// validated first; on failure the cube is left unmodified and
// ErrInvalidPermutation is returned.
func (c *Cube) ApplyPermutation(p Permutation) error {
	if err := p.Validate(); err != nil {
		return err
	}
	var next [StickerCount]Color
	for i, color := range c.stickers {
		next[p[i]] = color
	}
	c.stickers = next
	return nil
}

// ApplyMove looks up the permutation for m and applies it.
func (c *Cube) ApplyMove(m Move) error {
	p, err := MovePermutation(m)
	if err != nil {
		return err
	}
	return c.ApplyPermutation(p)
}

// ApplyMoves applies a sequence of moves, stopping at the first error.
func (c *Cube) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		start := faceOffsets[f]
		color := c.stickers[start]
		for i := 1; i < stickersPerFace; i++ {
			if c.stickers[start+i] != color {
				return false
			}
		}
	}
	return true
}

// Sticker returns the color at index i.
func (c *Cube) Sticker(i int) (Color, error) {
	if i < 0 || i >= StickerCount {
		return 0, ErrIndexOutOfRange
	}
	return c.stickers[i], nil
}

// SetSticker sets the color at index i.
func (c *Cube) SetSticker(i int, color Color) error {
	if i < 0 || i >= StickerCount {
		return ErrIndexOutOfRange
	}
	c.stickers[i] = color
	return nil
}

// FaceIndex converts a face and a row-major grid position to a flat
// sticker index.
func FaceIndex(f Face, row, col int) (int, error) {
	start, ok := faceOffsets[f]
	if !ok {
		return 0, ErrUnknownFace
	}
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, ErrIndexOutOfRange
	}
	return start + row*3 + col, nil
}

// FaceGrid returns one face's stickers as a 3x3 grid, row-major.
func (c *Cube) FaceGrid(f Face) ([3][3]Color, error) {
	start, ok := faceOffsets[f]
	if !ok {
		return [3][3]Color{}, ErrUnknownFace
	}
	var grid [3][3]Color
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			grid[row][col] = c.stickers[start+row*3+col]
		}
	}
	return grid, nil
}

// SetFaceGrid replaces one face's stickers from a 3x3 grid, row-major.
func (c *Cube) SetFaceGrid(f Face, grid [3][3]Color) error {
	start, ok := faceOffsets[f]
	if !ok {
		return ErrUnknownFace
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c.stickers[start+row*3+col] = grid[row][col]
		}
	}
	return nil
}

// String returns a text representation of the cube as an unfolded net:
// U on top, then L F R B side by side, then D.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(f Face, row int) {
		start := faceOffsets[f]
		for col := 0; col < 3; col++ {
			b.WriteString(c.stickers[start+row*3+col].String())
			b.WriteString(" ")
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(f, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}
