package cubesim

import "context"

// SolverKind identifies a solving strategy. Selection is explicit: the
// controller is configured with one solver, never a mutable "current
// solver" slot.
type SolverKind int

const (
	// SolverReverse inverts the recorded move history. Always available,
	// always correct.
	SolverReverse SolverKind = iota

	// SolverTwoPhase delegates to an external two-phase solver process.
	SolverTwoPhase
)

func (k SolverKind) String() string {
	switch k {
	case SolverReverse:
		return "reverse"
	case SolverTwoPhase:
		return "two_phase"
	default:
		return "unknown"
	}
}

// Solver produces a move sequence that brings a cube to the solved state.
//
// Implementations receive both a snapshot of the cube and the move history
// applied since the last solved state; the reverse solver consumes the
// history, combinatorial solvers consume the snapshot.
type Solver interface {
	Kind() SolverKind
	Solve(ctx context.Context, cube *Cube, history []Move) ([]Move, error)
}

// ReverseSolver derives the solution by inverting and reversing the
// applied move history. Inverting and reversing an arbitrary composition
// of group elements yields its group inverse, so the result always reaches
// the solved state from the scrambled one.
type ReverseSolver struct{}

// Kind returns SolverReverse.
func (ReverseSolver) Kind() SolverKind { return SolverReverse }

// Solve returns the inverse sequence of history. The cube snapshot is
// unused; correctness follows from the history alone.
func (ReverseSolver) Solve(_ context.Context, _ *Cube, history []Move) ([]Move, error) {
	return InverseSequence(history), nil
}
