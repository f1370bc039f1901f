package cubesim

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"
)

const testTick = 0.05

func newTestController(opts ...Option) *Controller {
	base := []Option{
		WithMoveDuration(100 * time.Millisecond),
		WithInterMoveDelay(50 * time.Millisecond),
		WithScrambleSource(rand.New(rand.NewSource(7))),
	}
	return NewController(append(base, opts...)...)
}

// runUntilIdle ticks the controller until it goes idle, with a safety cap.
func runUntilIdle(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		if c.Idle() {
			return
		}
		if err := c.Tick(testTick); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	t.Fatal("controller did not reach idle")
}

func TestScrambleRunsToIdle(t *testing.T) {
	c := newTestController()
	scramble, err := c.StartScramble(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scramble) != 10 {
		t.Fatalf("scramble length = %d, want 10", len(scramble))
	}
	if c.State() != StateRunning {
		t.Fatalf("state after StartScramble = %s, want running", c.State())
	}

	runUntilIdle(t, c)

	expected := NewCube()
	if err := expected.ApplyMoves(scramble); err != nil {
		t.Fatal(err)
	}
	if c.Cube().stickers != expected.stickers {
		t.Error("animated scramble should equal direct application")
	}
	if got := FormatMoves(c.History()); got != FormatMoves(scramble) {
		t.Errorf("history = %q, want the scramble %q", got, FormatMoves(scramble))
	}
}

func TestSolveAfterScrambleSolvesCube(t *testing.T) {
	c := newTestController()

	var completed []SolveSummary
	c.SetSolveCompletedCallback(func(s SolveSummary) { completed = append(completed, s) })

	if _, err := c.StartScramble(25); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)

	if err := c.StartSolve(context.Background()); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)

	if !c.Cube().IsSolved() {
		t.Error("cube should be solved after solve run")
		t.Log(c.Cube().String())
	}
	if len(completed) != 1 {
		t.Fatalf("solve completed callback fired %d times, want 1", len(completed))
	}
	sum := completed[0]
	if sum.Solver != SolverReverse {
		t.Errorf("summary solver = %s, want reverse", sum.Solver)
	}
	if sum.MoveCount != 25 {
		t.Errorf("summary move count = %d, want 25", sum.MoveCount)
	}
	if sum.ActiveSeconds <= 0 {
		t.Error("summary active time should be positive")
	}
	if sum.TPS <= 0 {
		t.Error("summary TPS should be positive")
	}
	if len(c.History()) != 0 {
		t.Error("history should reset after a completed solve")
	}
}

func TestStartSolveRejectedWhileRunning(t *testing.T) {
	c := newTestController()
	if _, err := c.StartScramble(5); err != nil {
		t.Fatal(err)
	}
	if err := c.StartSolve(context.Background()); !errors.Is(err, ErrControllerBusy) {
		t.Errorf("StartSolve while scrambling = %v, want ErrControllerBusy", err)
	}
	if _, err := c.StartScramble(5); !errors.Is(err, ErrControllerBusy) {
		t.Errorf("StartScramble while scrambling = %v, want ErrControllerBusy", err)
	}
	if err := c.ApplyManual(R); !errors.Is(err, ErrControllerBusy) {
		t.Errorf("ApplyManual while scrambling = %v, want ErrControllerBusy", err)
	}
}

func TestPauseFreezesActiveTime(t *testing.T) {
	c := newTestController()
	if _, err := c.StartScramble(20); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)
	if err := c.StartSolve(context.Background()); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.Pause(); err != nil {
		t.Fatal(err)
	}
	frozen := c.ActiveSeconds()

	// A long simulated pause must not change active time at all.
	for i := 0; i < 200; i++ {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.ActiveSeconds(); math.Abs(got-frozen) > 1e-9 {
		t.Errorf("active time moved during pause: %v -> %v", frozen, got)
	}

	if err := c.Resume(); err != nil {
		t.Fatal(err)
	}
	if err := c.Tick(testTick); err != nil {
		t.Fatal(err)
	}
	if got := c.ActiveSeconds(); math.Abs(got-(frozen+testTick)) > 1e-9 {
		t.Errorf("active time after resume+tick = %v, want %v", got, frozen+testTick)
	}
}

func TestPausedWithoutGrantNeverDequeues(t *testing.T) {
	c := newTestController()
	if _, err := c.StartScramble(20); err != nil {
		t.Fatal(err)
	}

	// Let one move commit, then pause between moves.
	for !c.Animating() {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}
	for c.Animating() {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Pause(); err != nil {
		t.Fatal(err)
	}

	cursor := c.cursor
	for i := 0; i < 500; i++ {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}
	if c.cursor != cursor {
		t.Errorf("queue cursor moved while paused: %d -> %d", cursor, c.cursor)
	}
	if c.Animating() {
		t.Error("nothing should animate while paused without a step grant")
	}
}

func TestStepGrantsExactlyOneMove(t *testing.T) {
	c := newTestController()
	if _, err := c.StartScramble(20); err != nil {
		t.Fatal(err)
	}
	if err := c.Step(); !errors.Is(err, ErrNotPaused) {
		t.Errorf("Step while running = %v, want ErrNotPaused", err)
	}
	if err := c.Pause(); err != nil {
		t.Fatal(err)
	}

	before := len(c.History())
	if err := c.Step(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 500; i++ {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}

	if got := len(c.History()); got != before+1 {
		t.Errorf("step committed %d moves, want exactly 1", got-before)
	}
	if c.State() != StatePaused {
		t.Errorf("state after step = %s, want paused", c.State())
	}
	if c.Animating() {
		t.Error("no second move should start after the granted one")
	}
}

func TestStepFinishesInFlightAnimationOnly(t *testing.T) {
	c := newTestController()
	if _, err := c.StartScramble(20); err != nil {
		t.Fatal(err)
	}
	for !c.Animating() {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Pause(); err != nil {
		t.Fatal(err)
	}
	before := len(c.History())

	if err := c.Step(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 500; i++ {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}

	if got := len(c.History()); got != before+1 {
		t.Errorf("step finished %d moves, want the in-flight one only", got-before)
	}
	if c.Animating() {
		t.Error("no new move should dequeue after finishing the in-flight one")
	}
}

func TestSolveSteppedToCompletionWhilePaused(t *testing.T) {
	// A run can finish entirely under step grants. The pause span must
	// stay excluded from the final active time, matching the frozen
	// ActiveSeconds value throughout.
	c := newTestController()
	if err := c.ApplyManual(R); err != nil {
		t.Fatal(err)
	}
	if err := c.ApplyManual(U); err != nil {
		t.Fatal(err)
	}
	if err := c.StartSolve(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.Pause(); err != nil {
		t.Fatal(err)
	}
	frozen := c.ActiveSeconds()

	for i := 0; i < 100 && !c.Idle(); i++ {
		if err := c.Step(); err != nil {
			t.Fatal(err)
		}
		for j := 0; j < 500 && (c.Animating() || c.stepGrant); j++ {
			if err := c.Tick(testTick); err != nil {
				t.Fatal(err)
			}
		}
		if got := c.ActiveSeconds(); math.Abs(got-frozen) > 1e-9 {
			t.Fatalf("active time moved while paused: %v -> %v", frozen, got)
		}
	}
	if !c.Idle() {
		t.Fatal("stepping did not finish the solve")
	}
	if !c.Cube().IsSolved() {
		t.Error("cube should be solved after the stepped run")
	}

	summary, ok := c.LastSummary()
	if !ok {
		t.Fatal("no summary after the stepped solve")
	}
	if math.Abs(summary.ActiveSeconds-frozen) > 1e-9 {
		t.Errorf("summary active time = %v, want the frozen %v", summary.ActiveSeconds, frozen)
	}
	if summary.TPS != 0 {
		t.Errorf("TPS with zero active time = %v, want 0", summary.TPS)
	}
}

func TestCancelAbandonsInFlightMove(t *testing.T) {
	c := newTestController()
	if _, err := c.StartScramble(20); err != nil {
		t.Fatal(err)
	}

	// Run until mid-animation of some move.
	for !c.Animating() {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Tick(testTick); err != nil {
		t.Fatal(err)
	}

	committed := len(c.History())
	snapshot := c.Cube().Clone()

	if err := c.Cancel(); err != nil {
		t.Fatal(err)
	}
	if !c.Idle() {
		t.Error("controller should be idle after cancel")
	}
	if c.Cube().stickers != snapshot.stickers {
		t.Error("cancel must not apply the in-flight move")
	}
	if len(c.History()) != committed {
		t.Error("cancel must keep already committed moves")
	}

	if err := c.Cancel(); !errors.Is(err, ErrNoActiveRun) {
		t.Errorf("cancel while idle = %v, want ErrNoActiveRun", err)
	}
}

func TestCancelledSolveRemainsSolvable(t *testing.T) {
	c := newTestController()
	if _, err := c.StartScramble(15); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)

	if err := c.StartSolve(context.Background()); err != nil {
		t.Fatal(err)
	}
	// Commit a few solution moves, then cancel mid-run.
	for len(c.History()) < 18 {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Cancel(); err != nil {
		t.Fatal(err)
	}

	// The committed solve moves stayed in the history, so a fresh reverse
	// solve still reaches solved.
	if err := c.StartSolve(context.Background()); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)
	if !c.Cube().IsSolved() {
		t.Error("re-solving after a cancelled solve should reach solved")
	}
}

func TestUndoRedo(t *testing.T) {
	c := newTestController()
	if err := c.ApplyManual(R); err != nil {
		t.Fatal(err)
	}
	if err := c.ApplyManual(U); err != nil {
		t.Fatal(err)
	}
	afterBoth := c.Cube().Clone()

	if err := c.Undo(); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)
	if got := FormatMoves(c.History()); got != "R" {
		t.Errorf("history after undo = %q, want %q", got, "R")
	}
	if !c.CanRedo() {
		t.Error("undo should populate the redo stack")
	}

	if err := c.Redo(); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)
	if got := FormatMoves(c.History()); got != "R U" {
		t.Errorf("history after redo = %q, want %q", got, "R U")
	}
	if c.Cube().stickers != afterBoth.stickers {
		t.Error("undo then redo should restore the cube state")
	}
	if c.CanRedo() {
		t.Error("redo stack should be empty after redo")
	}

	// Undo everything: back to solved.
	for c.CanUndo() {
		if err := c.Undo(); err != nil {
			t.Fatal(err)
		}
		runUntilIdle(t, c)
	}
	if !c.Cube().IsSolved() {
		t.Error("undoing all moves should return to solved")
	}

	if err := c.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("undo with empty history = %v, want ErrNothingToUndo", err)
	}
}

func TestManualMoveClearsRedoStack(t *testing.T) {
	c := newTestController()
	if err := c.ApplyManual(R); err != nil {
		t.Fatal(err)
	}
	if err := c.Undo(); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)
	if !c.CanRedo() {
		t.Fatal("redo stack should hold the undone move")
	}

	if err := c.ApplyManual(F); err != nil {
		t.Fatal(err)
	}
	if c.CanRedo() {
		t.Error("a new manual move must clear the redo stack")
	}
	if err := c.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("redo after clear = %v, want ErrNothingToRedo", err)
	}
}

func TestManualHalfTurnRecordsTwoQuarterTurns(t *testing.T) {
	c := newTestController()
	if err := c.ApplyManual(R2); err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(c.History()); got != "R R" {
		t.Errorf("history after manual R2 = %q, want %q", got, "R R")
	}
}

func TestSolverFallbackFires(t *testing.T) {
	c := newTestController(WithSolver(NewTwoPhaseSolver("cubesim-test-no-such-solver")))

	var reasons []string
	c.SetFallbackCallback(func(reason string) { reasons = append(reasons, reason) })

	var started SolverKind
	c.SetSolveStartedCallback(func(kind SolverKind, _ int) { started = kind })

	if _, err := c.StartScramble(8); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)
	if err := c.StartSolve(context.Background()); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)

	if len(reasons) != 1 {
		t.Fatalf("fallback callback fired %d times, want 1", len(reasons))
	}
	if started != SolverReverse {
		t.Errorf("solve should have started with the reverse solver, got %s", started)
	}
	if !c.Cube().IsSolved() {
		t.Error("fallback solve should still solve the cube")
	}
}

func TestAnimationStateExposure(t *testing.T) {
	c := newTestController()
	if _, _, ok := c.AnimationState(); ok {
		t.Error("idle controller should report no animation")
	}

	if _, err := c.StartScramble(5); err != nil {
		t.Fatal(err)
	}
	for !c.Animating() {
		if err := c.Tick(testTick); err != nil {
			t.Fatal(err)
		}
	}
	move, progress, ok := c.AnimationState()
	if !ok {
		t.Fatal("animating controller should report the in-flight move")
	}
	if progress < 0 || progress > 1 {
		t.Errorf("progress %v outside [0,1]", progress)
	}
	if move.Turn == Double {
		t.Error("queued moves must be quarter turns")
	}
}

func TestMoveCallbackFiresPerCommit(t *testing.T) {
	c := newTestController()
	var seen []Move
	c.SetMoveCallback(func(m Move) { seen = append(seen, m) })

	if _, err := c.StartScramble(6); err != nil {
		t.Fatal(err)
	}
	runUntilIdle(t, c)

	if len(seen) != 6 {
		t.Errorf("move callback fired %d times, want 6", len(seen))
	}
}
