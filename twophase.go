package cubesim

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// faceletOrder is the face order of the solver-boundary facelet string:
// Up, Right, Front, Down, Left, Back, 9 characters per face, row-major.
var faceletOrder = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// colorFaceLetters maps each color to the face letter it occupies in the
// solved state.
var colorFaceLetters = map[Color]byte{
	White:  'U',
	Red:    'R',
	Green:  'F',
	Yellow: 'D',
	Orange: 'L',
	Blue:   'B',
}

// FaceletString serializes the cube to the 54-character facelet encoding
// consumed by external two-phase solvers.
func FaceletString(c *Cube) string {
	var b strings.Builder
	b.Grow(StickerCount)
	for _, f := range faceletOrder {
		start := faceOffsets[f]
		for i := 0; i < stickersPerFace; i++ {
			b.WriteByte(colorFaceLetters[c.stickers[start+i]])
		}
	}
	return b.String()
}

// DefaultTwoPhaseCommand is the solver executable probed when no command
// is configured.
const DefaultTwoPhaseCommand = "kociemba"

// TwoPhaseSolver runs an external two-phase solver process. The process
// receives the facelet string as its single argument and prints a
// space-separated move sequence.
//
// Availability is determined once, at construction, by looking the command
// up on PATH. Callers must check Available and fall back to ReverseSolver
// explicitly; Solve never substitutes a fallback silently.
type TwoPhaseSolver struct {
	command string
	path    string
	reason  string
}

// NewTwoPhaseSolver probes for the given solver command. An empty command
// selects DefaultTwoPhaseCommand.
func NewTwoPhaseSolver(command string) *TwoPhaseSolver {
	if command == "" {
		command = DefaultTwoPhaseCommand
	}
	s := &TwoPhaseSolver{command: command}
	path, err := exec.LookPath(command)
	if err != nil {
		s.reason = fmt.Sprintf("command %q not found on PATH", command)
		return s
	}
	s.path = path
	return s
}

// Kind returns SolverTwoPhase.
func (s *TwoPhaseSolver) Kind() SolverKind { return SolverTwoPhase }

// Available reports whether the solver command was found at construction.
// The probe is not repeated per call.
func (s *TwoPhaseSolver) Available() bool { return s.path != "" }

// UnavailableReason describes why the solver cannot run, or returns the
// empty string when it can.
func (s *TwoPhaseSolver) UnavailableReason() string { return s.reason }

// Solve serializes the cube to a facelet string, runs the solver process
// and parses its output. Half turns in the result are expanded to two
// quarter turns so every queued entry animates one quarter turn.
func (s *TwoPhaseSolver) Solve(ctx context.Context, cube *Cube, _ []Move) ([]Move, error) {
	if !s.Available() {
		return nil, fmt.Errorf("%w: %s", ErrSolverUnavailable, s.reason)
	}

	cmd := exec.CommandContext(ctx, s.path, FaceletString(cube))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: %s", ErrSolveFailure, msg)
	}

	moves, err := ParseMoves(string(out))
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable solver output %q", ErrSolveFailure, strings.TrimSpace(string(out)))
	}
	return ExpandHalfTurns(moves), nil
}
