package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `Display recent solves from the database, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of solves to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded. Run 'cubesim solve' to record one.")
		return nil
	}

	for _, s := range solves {
		fmt.Printf("%s  %s  %-9s  HTM %-3d QTM %-3d %s\n",
			s.SolveID[:8],
			s.CreatedAt.Local().Format(time.DateTime),
			s.Solver,
			s.HTM,
			s.QTM,
			s.Solution,
		)
		if verbose {
			fmt.Printf("          scramble: %s\n", s.Scramble)
		}
	}

	return nil
}
