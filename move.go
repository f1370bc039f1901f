package cubesim

import "strings"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
	FaceL Face = "L" // Left
	FaceR Face = "R" // Right
)

// Faces lists all six faces in sticker-array order.
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceL, FaceR}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// quarters returns the number of clockwise quarter turns this move
// performs, in [1,3].
func (m Move) quarters() int {
	switch m.Turn {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

// turnFromQuarters is the inverse of quarters. amount must be in [1,3].
func turnFromQuarters(amount int) Turn {
	switch amount {
	case 2:
		return Double
	case 3:
		return CCW
	default:
		return CW
	}
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'":
			turn = Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated string.
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

// ExpandHalfTurns rewrites every half turn as two quarter turns, leaving
// quarter turns untouched. The animation queue accepts quarter turns only,
// so sequences from external solvers pass through here before queueing.
func ExpandHalfTurns(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.Turn == Double {
			out = append(out, Move{Face: m.Face, Turn: CW}, Move{Face: m.Face, Turn: CW})
			continue
		}
		out = append(out, m)
	}
	return out
}

// InverseSequence returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseSequence(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for i := len(moves) - 1; i >= 0; i-- {
		out = append(out, moves[i].Inverse())
	}
	return out
}
