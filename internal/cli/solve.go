package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/internal/storage"
)

var (
	solveSolver   string
	solveCompare  bool
	solveNoRecord bool
	solveTimeout  time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble...]",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube scrambled with the given move sequence.

The scramble is given in standard notation, either as arguments or
quoted as a single string:

  cubesim solve R U R' U'
  cubesim solve "R U R' U'"

The reverse solver undoes the scramble exactly. The two-phase solver
shells out to an external program and usually finds a much shorter
solution; it requires the solver command to be on PATH.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveSolver, "solver", "s", "", "Solver to use: reverse or two_phase (default from config)")
	solveCmd.Flags().BoolVarP(&solveCompare, "compare", "c", false, "Run both solvers and compare move counts")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "Do not record the solve in the database")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 10*time.Second, "Timeout for the external solver")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scramble, err := cubesim.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(scramble) == 0 {
		return fmt.Errorf("empty scramble")
	}

	cube := cubesim.NewCube()
	if err := cube.ApplyMoves(scramble); err != nil {
		return err
	}

	solverName := solveSolver
	if solverName == "" {
		solverName = cfg.Solver
	}

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	solver, err := selectSolver(solverName, cfg.SolverCommand)
	if err != nil {
		return err
	}

	history := cubesim.ExpandHalfTurns(scramble)
	start := time.Now()
	solution, err := solver.Solve(ctx, cube, history)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	metrics := cubesim.ComputeMetrics(solution)
	fmt.Printf("Scramble: %s\n", cubesim.FormatMoves(scramble))
	fmt.Printf("Solver:   %s\n", solver.Kind())
	fmt.Printf("Solution: %s\n", cubesim.FormatMoves(solution))
	fmt.Printf("Length:   %d moves (HTM %d, QTM %d)\n", len(solution), metrics.HTM, metrics.QTM)
	if verbose {
		fmt.Printf("Elapsed:  %s\n", elapsed.Round(time.Millisecond))
	}

	if solveCompare {
		if err := printComparison(ctx, cube, history, solver.Kind(), solution); err != nil {
			return err
		}
	}

	if !solveNoRecord {
		if err := recordSolve(scramble, solver.Kind(), solution, metrics, elapsed); err != nil {
			return fmt.Errorf("failed to record solve: %w", err)
		}
	}

	return nil
}

// selectSolver resolves a solver name to a ready solver instance.
func selectSolver(name, command string) (cubesim.Solver, error) {
	switch name {
	case "reverse":
		return cubesim.ReverseSolver{}, nil
	case "two_phase":
		if command == "" {
			command = cubesim.DefaultTwoPhaseCommand
		}
		solver := cubesim.NewTwoPhaseSolver(command)
		if !solver.Available() {
			return nil, fmt.Errorf("%w: %s", cubesim.ErrSolverUnavailable, solver.UnavailableReason())
		}
		return solver, nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want reverse or two_phase)", name)
	}
}

// printComparison runs the other solver on the same cube and prints the
// move count deltas.
func printComparison(ctx context.Context, cube *cubesim.Cube, history []cubesim.Move, ran cubesim.SolverKind, reference []cubesim.Move) error {
	var other cubesim.Solver
	if ran == cubesim.SolverReverse {
		solver := cubesim.NewTwoPhaseSolver(cubesim.DefaultTwoPhaseCommand)
		if !solver.Available() {
			fmt.Printf("\nComparison unavailable: %s\n", solver.UnavailableReason())
			return nil
		}
		other = solver
	} else {
		other = cubesim.ReverseSolver{}
	}

	solution, err := other.Solve(ctx, cube, history)
	if err != nil {
		return fmt.Errorf("comparison solve failed: %w", err)
	}

	cmp := cubesim.CompareMetrics(reference, solution)
	fmt.Printf("\nComparison (%s): %s\n", other.Kind(), cubesim.FormatMoves(solution))
	fmt.Printf("Delta:    HTM %+d, QTM %+d\n", cmp.DeltaHTM, cmp.DeltaQTM)
	return nil
}

func recordSolve(scramble []cubesim.Move, kind cubesim.SolverKind, solution []cubesim.Move, metrics cubesim.Metrics, elapsed time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	summary := cubesim.SolveSummary{
		Solver:        kind,
		Solution:      solution,
		MoveCount:     len(solution),
		Metrics:       metrics,
		ActiveSeconds: elapsed.Seconds(),
	}
	if elapsed > 0 {
		summary.TPS = float64(len(solution)) / elapsed.Seconds()
	}

	id, err := repo.Record(scramble, summary)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Recorded: %s\n", id)
	}
	return nil
}
