package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Permutation and state errors
	ErrInvalidPermutation = errors.New("cubesim: permutation is not a bijection over 54 stickers")
	ErrIndexOutOfRange    = errors.New("cubesim: sticker index out of range")
	ErrUnknownFace        = errors.New("cubesim: unknown face")

	// Parsing errors
	ErrUnknownMove     = errors.New("cubesim: unknown move token")
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")

	// Solver errors
	ErrSolverUnavailable = errors.New("cubesim: external solver unavailable")
	ErrSolveFailure      = errors.New("cubesim: external solver failed")

	// Controller errors
	ErrControllerBusy = errors.New("cubesim: controller is busy")
	ErrNoActiveRun    = errors.New("cubesim: no active move queue")
	ErrNotPaused      = errors.New("cubesim: controller is not paused")
	ErrNothingToUndo  = errors.New("cubesim: nothing to undo")
	ErrNothingToRedo  = errors.New("cubesim: nothing to redo")
)
