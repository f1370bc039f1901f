// Package telemetry provides structured logging for the cubesim
// application and wires controller events into it.
package telemetry

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/cubesim/cubesim"
)

// New creates a console logger writing to out at the given level.
// Unknown level strings fall back to info.
func New(out io.Writer, level string) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(writer).With().Timestamp().Logger().Level(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Attach subscribes the logger to a controller's events: applied moves,
// solve start/completion with metrics, and solver fallback.
func Attach(logger zerolog.Logger, ctrl *cubesim.Controller) {
	ctrl.SetMoveCallback(func(m cubesim.Move) {
		logger.Debug().
			Str("move", m.Notation()).
			Msg("move applied")
	})

	ctrl.SetSolveStartedCallback(func(kind cubesim.SolverKind, queued int) {
		logger.Info().
			Str("solver", kind.String()).
			Int("queued_moves", queued).
			Msg("solve started")
	})

	ctrl.SetSolveCompletedCallback(func(s cubesim.SolveSummary) {
		logger.Info().
			Str("solver", s.Solver.String()).
			Int("htm", s.Metrics.HTM).
			Int("qtm", s.Metrics.QTM).
			Float64("active_seconds", s.ActiveSeconds).
			Float64("tps", s.TPS).
			Msg("solve completed")
	})

	ctrl.SetFallbackCallback(func(reason string) {
		logger.Warn().
			Str("reason", reason).
			Msg("external solver unavailable, falling back to reverse solver")
	})
}
