package cubesim

import (
	"context"
	"math/rand"
)

// ControllerState is the coarse state of the animation queue controller.
// An orthogonal animating flag marks a move mid-transition; it can be true
// in any state, since undo and redo animate while idle.
type ControllerState int

const (
	StateIdle ControllerState = iota
	StateRunning
	StatePaused
)

func (s ControllerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// runMode distinguishes what the active queue is playing.
type runMode int

const (
	modeNone runMode = iota
	modeScramble
	modeSolve
)

// moveOrigin records why a move is animating, which decides how it is
// committed to the history and redo stacks.
type moveOrigin int

const (
	originQueue moveOrigin = iota
	originUndo
	originRedo
)

// SolveSummary reports the outcome of a completed solve run.
type SolveSummary struct {
	Solver        SolverKind
	Solution      []Move
	MoveCount     int     // quarter turns executed
	Metrics       Metrics // HTM/QTM of the canonical solution
	ActiveSeconds float64 // wall time excluding pauses
	TPS           float64 // executed moves per active second
}

// Controller sequences scramble, solve, manual and undo/redo moves over
// time. It is frame-driven and cooperative: nothing blocks, and all
// progress happens inside Tick, which the host calls once per frame with
// the frame delta in seconds.
//
// The controller owns its Cube; every mutation funnels through
// ApplyPermutation, so the bijection invariant is checked on every path.
// The controller is not safe for concurrent use; a multi-threaded host
// must serialize access behind a single writer.
type Controller struct {
	cube *Cube

	state     ControllerState
	mode      runMode
	animating bool
	active    Move
	origin    moveOrigin
	progress  float64

	scramble  []Move
	history   []Move // every committed move since the last solved state
	redoStack []Move

	queue  []Move
	cursor int
	delay  float64

	stepGrant bool

	// Simulated clock, advanced by Tick. All timing anchors below are
	// values of this clock.
	clock       float64
	timing      bool
	startTime   float64
	pausedTotal float64
	pauseStart  float64
	lastActive  float64

	moveDuration   float64
	interMoveDelay float64
	solver         Solver
	runKind        SolverKind
	rng            *rand.Rand

	lastSummary *SolveSummary

	onMove           func(Move)
	onSolveStarted   func(kind SolverKind, queued int)
	onSolveCompleted func(SolveSummary)
	onFallback       func(reason string)
}

// NewController creates an idle controller owning a solved cube.
func NewController(opts ...Option) *Controller {
	cfg := defaultControllerConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Controller{
		cube:           NewCube(),
		moveDuration:   cfg.moveDuration,
		interMoveDelay: cfg.interMoveDelay,
		solver:         cfg.solver,
		rng:            cfg.rng,
	}
}

// SetMoveCallback sets a callback fired after each committed move.
func (c *Controller) SetMoveCallback(cb func(Move)) { c.onMove = cb }

// SetSolveStartedCallback sets a callback fired when a solve run begins.
func (c *Controller) SetSolveStartedCallback(cb func(SolverKind, int)) { c.onSolveStarted = cb }

// SetSolveCompletedCallback sets a callback fired when a solve run
// finishes with its summary metrics.
func (c *Controller) SetSolveCompletedCallback(cb func(SolveSummary)) { c.onSolveCompleted = cb }

// SetFallbackCallback sets a callback fired when the configured solver is
// unavailable and the reverse solver is used instead.
func (c *Controller) SetFallbackCallback(cb func(string)) { c.onFallback = cb }

// Cube returns the controller's cube for inspection. Renderers must treat
// it as read-only.
func (c *Controller) Cube() *Cube { return c.cube }

// State returns the coarse controller state.
func (c *Controller) State() ControllerState { return c.state }

// Idle reports whether no queue is active and nothing is animating.
func (c *Controller) Idle() bool { return c.state == StateIdle && !c.animating }

// Animating reports whether a move is mid-transition.
func (c *Controller) Animating() bool { return c.animating }

// AnimationState returns the in-flight move and its progress in [0,1].
// ok is false when nothing is animating.
func (c *Controller) AnimationState() (move Move, progress float64, ok bool) {
	if !c.animating {
		return Move{}, 0, false
	}
	p := c.progress
	if p > 1 {
		p = 1
	}
	return c.active, p, true
}

// Scramble returns a copy of the most recent scramble sequence.
func (c *Controller) Scramble() []Move {
	out := make([]Move, len(c.scramble))
	copy(out, c.scramble)
	return out
}

// History returns a copy of the committed move history.
func (c *Controller) History() []Move {
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// CanUndo reports whether Undo has a move to take back.
func (c *Controller) CanUndo() bool { return len(c.history) > 0 }

// CanRedo reports whether Redo has a move to replay.
func (c *Controller) CanRedo() bool { return len(c.redoStack) > 0 }

// QueueRemaining returns how many queued moves have not yet started
// animating.
func (c *Controller) QueueRemaining() int { return len(c.queue) - c.cursor }

// QueueSize returns the length of the active queue.
func (c *Controller) QueueSize() int { return len(c.queue) }

// LastSummary returns the summary of the most recently completed solve.
func (c *Controller) LastSummary() (SolveSummary, bool) {
	if c.lastSummary == nil {
		return SolveSummary{}, false
	}
	return *c.lastSummary, true
}

// ActiveSeconds returns the elapsed solve time excluding pauses. The value
// is frozen while paused and after the run ends, and never decreases while
// running.
func (c *Controller) ActiveSeconds() float64 {
	if !c.timing {
		return c.lastActive
	}
	active := c.clock - c.startTime - c.pausedTotal
	if c.state == StatePaused {
		active -= c.clock - c.pauseStart
	}
	if active < 0 {
		active = 0
	}
	return active
}

// StartScramble resets the cube to solved, generates a scramble of the
// given length and begins animating it. Valid only while idle.
func (c *Controller) StartScramble(length int) ([]Move, error) {
	if !c.Idle() {
		return nil, ErrControllerBusy
	}
	if length <= 0 {
		length = DefaultScrambleLength
	}
	moves := GenerateScramble(length, c.rng)

	c.cube = NewCube()
	c.scramble = moves
	c.history = nil
	c.redoStack = nil
	c.queue = moves
	c.cursor = 0
	c.delay = 0
	c.stepGrant = false
	c.mode = modeScramble
	c.state = StateRunning
	c.timing = false
	return c.Scramble(), nil
}

// StartSolve computes a solution with the configured solver and begins
// animating it. Valid only while idle. If the configured solver reports
// itself unavailable, the reverse solver is used and the fallback callback
// fires; a solver computation failure leaves the controller idle and the
// cube untouched.
func (c *Controller) StartSolve(ctx context.Context) error {
	if !c.Idle() {
		return ErrControllerBusy
	}

	solver := c.solver
	if probe, ok := solver.(interface {
		Available() bool
		UnavailableReason() string
	}); ok && !probe.Available() {
		if c.onFallback != nil {
			c.onFallback(probe.UnavailableReason())
		}
		solver = ReverseSolver{}
	}

	solution, err := solver.Solve(ctx, c.cube.Clone(), c.History())
	if err != nil {
		return err
	}
	solution = ExpandHalfTurns(solution)

	c.redoStack = nil
	c.queue = solution
	c.cursor = 0
	c.delay = 0
	c.stepGrant = false
	c.mode = modeSolve
	c.state = StateRunning
	c.timing = true
	c.startTime = c.clock
	c.pausedTotal = 0
	c.runKind = solver.Kind()

	if c.onSolveStarted != nil {
		c.onSolveStarted(solver.Kind(), len(solution))
	}
	return nil
}

// Tick advances the controller by dt seconds of frame time. While paused
// without a step grant nothing moves; otherwise an in-flight animation
// progresses, or the inter-move delay accumulates toward the next dequeue.
func (c *Controller) Tick(dt float64) error {
	if c.Idle() {
		return nil
	}
	c.clock += dt
	paused := c.state == StatePaused

	if c.animating {
		if paused && !c.stepGrant {
			return nil
		}
		if c.moveDuration <= 0 {
			c.progress = 1
		} else {
			c.progress += dt / c.moveDuration
		}
		if c.progress >= 1 {
			return c.commitActive()
		}
		return nil
	}

	if c.state == StateIdle || c.queue == nil {
		return nil
	}
	if paused && !c.stepGrant {
		return nil
	}

	if c.stepGrant {
		// A grant bypasses the inter-move delay: it buys exactly one
		// dequeue-and-animate cycle, immediately.
		c.delay = c.interMoveDelay
	} else {
		c.delay += dt
	}
	if c.delay < c.interMoveDelay {
		return nil
	}

	if c.cursor >= len(c.queue) {
		c.finalizeQueue()
		return nil
	}

	c.active = c.queue[c.cursor]
	c.cursor++
	c.origin = originQueue
	c.animating = true
	c.progress = 0
	c.delay = 0
	return nil
}

// commitActive applies the in-flight move to the cube and updates the
// history and redo stacks according to the move's origin. A move commits
// fully here or, when cancelled, never.
func (c *Controller) commitActive() error {
	perm, err := MovePermutation(c.active)
	if err != nil {
		return err
	}
	if err := c.cube.ApplyPermutation(perm); err != nil {
		return err
	}

	applied := c.active
	c.animating = false
	c.progress = 0

	switch c.origin {
	case originQueue:
		c.history = append(c.history, applied)
	case originUndo:
		// The original token leaves the history only now, so a cancelled
		// undo changes nothing.
		original := c.history[len(c.history)-1]
		c.history = c.history[:len(c.history)-1]
		c.redoStack = append(c.redoStack, original)
	case originRedo:
		c.redoStack = c.redoStack[:len(c.redoStack)-1]
		c.history = append(c.history, applied)
	}

	if c.onMove != nil {
		c.onMove(applied)
	}
	if c.stepGrant {
		// One-shot: the granted move is done, stay paused.
		c.stepGrant = false
	}
	return nil
}

// finalizeQueue ends the active run: for a solve it computes the summary
// metrics and resets the session, since the cube is back at solved.
func (c *Controller) finalizeQueue() {
	mode := c.mode
	executed := len(c.queue)
	solution := c.queue

	// The run can end while paused, by stepping through the last moves.
	// Fold the open pause span in so it stays excluded from active time.
	if c.state == StatePaused {
		c.pausedTotal += c.clock - c.pauseStart
	}

	c.queue = nil
	c.cursor = 0
	c.delay = 0
	c.stepGrant = false
	c.state = StateIdle
	c.mode = modeNone

	if mode != modeSolve {
		return
	}

	c.lastActive = c.clock - c.startTime - c.pausedTotal
	c.timing = false

	summary := SolveSummary{
		Solver:        c.runKind,
		Solution:      solution,
		MoveCount:     executed,
		Metrics:       ComputeMetrics(solution),
		ActiveSeconds: c.lastActive,
	}
	if summary.ActiveSeconds > 0 {
		summary.TPS = float64(executed) / summary.ActiveSeconds
	}
	c.lastSummary = &summary

	// Solved: fresh session.
	c.scramble = nil
	c.history = nil
	c.redoStack = nil

	if c.onSolveCompleted != nil {
		c.onSolveCompleted(summary)
	}
}

// Pause suspends the active run. Time spent paused is excluded from the
// active solve time.
func (c *Controller) Pause() error {
	if c.state != StateRunning {
		return ErrNoActiveRun
	}
	c.state = StatePaused
	c.pauseStart = c.clock
	return nil
}

// Resume continues a paused run and clears any unused step grant.
func (c *Controller) Resume() error {
	if c.state != StatePaused {
		return ErrNoActiveRun
	}
	c.pausedTotal += c.clock - c.pauseStart
	c.state = StateRunning
	c.stepGrant = false
	return nil
}

// Step grants exactly one unit of progress while paused: if a move is
// mid-animation it may finish, otherwise one move is dequeued and
// animated. The controller returns to paused afterwards.
func (c *Controller) Step() error {
	if c.state != StatePaused {
		return ErrNotPaused
	}
	c.stepGrant = true
	return nil
}

// Cancel discards the remaining queue and abandons any in-flight move
// without applying it. Moves already committed stay committed.
func (c *Controller) Cancel() error {
	if c.Idle() {
		return ErrNoActiveRun
	}
	if c.state == StatePaused {
		c.pausedTotal += c.clock - c.pauseStart
	}
	if c.timing {
		c.lastActive = c.clock - c.startTime - c.pausedTotal
		c.timing = false
	}
	c.queue = nil
	c.cursor = 0
	c.delay = 0
	c.animating = false
	c.progress = 0
	c.stepGrant = false
	c.state = StateIdle
	c.mode = modeNone
	return nil
}

// ApplyManual applies a move immediately, outside any animation queue.
// Half turns are recorded as two quarter turns. Any manual move clears the
// redo stack.
func (c *Controller) ApplyManual(m Move) error {
	if !c.Idle() {
		return ErrControllerBusy
	}
	for _, q := range ExpandHalfTurns([]Move{m}) {
		perm, err := MovePermutation(q)
		if err != nil {
			return err
		}
		if err := c.cube.ApplyPermutation(perm); err != nil {
			return err
		}
		c.history = append(c.history, q)
		if c.onMove != nil {
			c.onMove(q)
		}
	}
	c.redoStack = nil
	return nil
}

// Undo animates the inverse of the most recent committed move. On
// completion the original token moves from the history to the redo stack.
func (c *Controller) Undo() error {
	if !c.Idle() {
		return ErrControllerBusy
	}
	if len(c.history) == 0 {
		return ErrNothingToUndo
	}
	c.active = c.history[len(c.history)-1].Inverse()
	c.origin = originUndo
	c.animating = true
	c.progress = 0
	return nil
}

// Redo animates the most recently undone move. On completion the token
// moves from the redo stack back onto the history.
func (c *Controller) Redo() error {
	if !c.Idle() {
		return ErrControllerBusy
	}
	if len(c.redoStack) == 0 {
		return ErrNothingToRedo
	}
	c.active = c.redoStack[len(c.redoStack)-1]
	c.origin = originRedo
	c.animating = true
	c.progress = 0
	return nil
}
