package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cubesim/cubesim"
)

// Solve represents a recorded solve in the database.
type Solve struct {
	SolveID   string
	CreatedAt time.Time
	Scramble  string
	Solution  string
	Solver    string
	HTM       int
	QTM       int
	ActiveMs  int64
	TPS       float64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Record stores a completed solve and returns its ID.
func (r *SolveRepository) Record(scramble []cubesim.Move, summary cubesim.SolveSummary) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution, solver, htm, qtm, active_ms, tps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		createdAt.Format(time.RFC3339),
		cubesim.FormatMoves(scramble),
		cubesim.FormatMoves(summary.Solution),
		summary.Solver.String(),
		summary.Metrics.HTM,
		summary.Metrics.QTM,
		int64(summary.ActiveSeconds*1000),
		summary.TPS,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil when no such solve exists.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, solver, htm, qtm, active_ms, tps
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution,
		&s.Solver, &s.HTM, &s.QTM, &s.ActiveMs, &s.TPS,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}

	return &s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, solver, htm, qtm, active_ms, tps
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string
		if err := rows.Scan(
			&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution,
			&s.Solver, &s.HTM, &s.QTM, &s.ActiveMs, &s.TPS,
		); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
		}
		solves = append(solves, s)
	}
	return solves, rows.Err()
}
