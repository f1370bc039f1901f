package cubesim

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestFaceletStringSolved(t *testing.T) {
	got := FaceletString(NewCube())
	want := strings.Repeat("U", 9) + strings.Repeat("R", 9) + strings.Repeat("F", 9) +
		strings.Repeat("D", 9) + strings.Repeat("L", 9) + strings.Repeat("B", 9)
	if got != want {
		t.Errorf("FaceletString(solved) = %q, want %q", got, want)
	}
	if len(got) != 54 {
		t.Errorf("facelet string length = %d, want 54", len(got))
	}
}

func TestFaceletStringFaceCounts(t *testing.T) {
	c := NewCube()
	if err := c.ApplyMoves(GenerateScramble(30, nil)); err != nil {
		t.Fatal(err)
	}
	s := FaceletString(c)
	for _, letter := range "URFDLB" {
		if n := strings.Count(s, string(letter)); n != 9 {
			t.Errorf("facelet letter %c appears %d times, want 9", letter, n)
		}
	}
	// Centers never move, so positions 4, 13, 22, ... identify the faces.
	if s[4] != 'U' || s[13] != 'R' || s[22] != 'F' || s[31] != 'D' || s[40] != 'L' || s[49] != 'B' {
		t.Errorf("facelet centers out of order in %q", s)
	}
}

func TestTwoPhaseSolverUnavailable(t *testing.T) {
	s := NewTwoPhaseSolver("cubesim-test-no-such-solver")
	if s.Available() {
		t.Fatal("nonexistent command should be unavailable")
	}
	if s.UnavailableReason() == "" {
		t.Error("unavailable solver should carry a reason")
	}

	_, err := s.Solve(context.Background(), NewCube(), nil)
	if !errors.Is(err, ErrSolverUnavailable) {
		t.Errorf("Solve on unavailable solver = %v, want ErrSolverUnavailable", err)
	}
}

func TestTwoPhaseSolverRunsCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub solver script requires a POSIX shell")
	}

	// Stub solver: prints a fixed solution regardless of input.
	dir := t.TempDir()
	script := filepath.Join(dir, "stub-solver")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho \"R U2 F'\"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	s := NewTwoPhaseSolver("stub-solver")
	if !s.Available() {
		t.Fatalf("stub solver should be available: %s", s.UnavailableReason())
	}

	moves, err := s.Solve(context.Background(), NewCube(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// U2 expands to two quarter turns before queueing.
	if got := FormatMoves(moves); got != "R U U F'" {
		t.Errorf("solver output = %q, want %q", got, "R U U F'")
	}
}

func TestTwoPhaseSolverFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub solver script requires a POSIX shell")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "failing-solver")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho 'unsolvable facelet string' >&2\nexit 1\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	s := NewTwoPhaseSolver("failing-solver")
	_, err := s.Solve(context.Background(), NewCube(), nil)
	if !errors.Is(err, ErrSolveFailure) {
		t.Errorf("failing solver = %v, want ErrSolveFailure", err)
	}
}
