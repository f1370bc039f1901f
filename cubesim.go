// Package cubesim provides a permutation-group engine for the 3x3 Rubik's
// cube together with an animation queue controller for scramble and solve
// playback.
//
// # Cube Model
//
// The cube is a flat array of 54 stickers. Every state change is the
// application of a validated length-54 bijection, so a valid cube can never
// be corrupted by a move:
//
//	cube := cubesim.NewCube()
//	perm, _ := cubesim.MovePermutation(cubesim.R)
//	cube.ApplyPermutation(perm)
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Moves and Notation
//
// The twelve quarter-turn moves are predefined:
//
//	cubesim.R      // Right clockwise
//	cubesim.RPrime // Right counter-clockwise
//	// ... and similarly for L, U, D, F, B
//
// Sequences parse from and format to standard notation:
//
//	moves, _ := cubesim.ParseMoves("R U R' U'")
//	fmt.Println(cubesim.FormatMoves(moves))
//
// # Solving
//
// The reverse solver inverts the recorded move history and is correct by
// construction. An external two-phase solver can be used instead when its
// command is installed; availability is probed once at construction:
//
//	solver := cubesim.NewTwoPhaseSolver("kociemba")
//	if !solver.Available() {
//	    // fall back to cubesim.ReverseSolver{}
//	}
//
// # Animated Playback
//
// The Controller sequences queued moves over time. It is frame-driven:
// advance it with Tick(dt) once per rendered frame. Pause, single-step,
// cancel, undo and redo are supported, and active solve time excludes time
// spent paused:
//
//	ctrl := cubesim.NewController()
//	ctrl.StartScramble(25)
//	for !ctrl.Idle() {
//	    ctrl.Tick(1.0 / 60.0)
//	}
//	ctrl.StartSolve(context.Background())
package cubesim
