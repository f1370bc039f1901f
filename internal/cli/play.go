package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
)

var playScramble string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive animated playback",
	Long: `Open an interactive terminal session with animated scramble and
solve playback.

Key bindings:
  s        scramble
  enter    solve
  space    pause / resume
  n        step one move while paused
  c        cancel the current run
  u / r    undo / redo
  q        quit

Use --scramble to start from a specific scramble instead of a random
one.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playScramble, "scramble", "", "Initial scramble to apply")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := []cubesim.Option{
		cubesim.WithMoveDuration(time.Duration(cfg.MoveDurationMs) * time.Millisecond),
		cubesim.WithInterMoveDelay(time.Duration(cfg.InterMoveDelayMs) * time.Millisecond),
	}
	if cfg.Solver == "two_phase" {
		command := cfg.SolverCommand
		if command == "" {
			command = cubesim.DefaultTwoPhaseCommand
		}
		opts = append(opts, cubesim.WithSolver(cubesim.NewTwoPhaseSolver(command)))
	}

	ctrl := cubesim.NewController(opts...)

	model := newPlayModel(ctrl, cfg.ScrambleLength)
	if playScramble != "" {
		moves, err := cubesim.ParseMoves(playScramble)
		if err != nil {
			return err
		}
		for _, m := range moves {
			if err := ctrl.ApplyManual(m); err != nil {
				return err
			}
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playback error: %w", err)
	}

	return nil
}

const playTickInterval = 33 * time.Millisecond

var (
	playTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	playStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	playMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	playErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	playHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stickerStyles = map[cubesim.Color]lipgloss.Style{
		cubesim.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
		cubesim.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
		cubesim.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
		cubesim.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")),
		cubesim.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")),
		cubesim.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
	}
)

type playTickMsg time.Time

type playModel struct {
	ctrl           *cubesim.Controller
	scrambleLength int
	lastTick       time.Time
	lastMove       string
	status         string
	err            error
	quitting       bool
}

func newPlayModel(ctrl *cubesim.Controller, scrambleLength int) *playModel {
	m := &playModel{
		ctrl:           ctrl,
		scrambleLength: scrambleLength,
		lastTick:       time.Now(),
	}
	ctrl.SetMoveCallback(func(move cubesim.Move) {
		m.lastMove = move.Notation()
	})
	ctrl.SetSolveCompletedCallback(func(s cubesim.SolveSummary) {
		m.status = fmt.Sprintf("Solved in %d moves (%.1fs active, %.1f TPS)",
			s.MoveCount, s.ActiveSeconds, s.TPS)
	})
	ctrl.SetFallbackCallback(func(reason string) {
		m.status = "Solver unavailable, using reverse solver: " + reason
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return playTick()
}

func playTick() tea.Cmd {
	return tea.Tick(playTickInterval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "s":
			m.do(func() error {
				scramble, err := m.ctrl.StartScramble(m.scrambleLength)
				if err != nil {
					return err
				}
				m.status = "Scrambling: " + cubesim.FormatMoves(scramble)
				return nil
			})

		case "enter":
			m.do(func() error {
				if err := m.ctrl.StartSolve(context.Background()); err != nil {
					return err
				}
				m.status = "Solving"
				return nil
			})

		case " ":
			m.do(func() error {
				if m.ctrl.State() == cubesim.StatePaused {
					return m.ctrl.Resume()
				}
				return m.ctrl.Pause()
			})

		case "n":
			m.do(m.ctrl.Step)

		case "c":
			m.do(func() error {
				if err := m.ctrl.Cancel(); err != nil {
					return err
				}
				m.status = "Cancelled"
				return nil
			})

		case "u":
			m.do(m.ctrl.Undo)

		case "r":
			m.do(m.ctrl.Redo)
		}

	case playTickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		if err := m.ctrl.Tick(dt); err != nil {
			m.err = err
		}
		return m, playTick()
	}

	return m, nil
}

// do runs a controller call and surfaces its error without quitting.
func (m *playModel) do(fn func() error) {
	if err := fn(); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}

	var b strings.Builder

	b.WriteString(playTitleStyle.Render("cubesim"))
	b.WriteString("\n\n")

	highlight := map[int]bool{}
	if move, _, ok := m.ctrl.AnimationState(); ok {
		if moving, err := cubesim.MovingStickers(move.Face); err == nil {
			for _, i := range moving {
				highlight[i] = true
			}
		}
	}
	b.WriteString(renderCube(m.ctrl.Cube(), highlight))
	b.WriteString("\n")

	state := m.ctrl.State().String()
	if m.ctrl.Animating() {
		if move, progress, ok := m.ctrl.AnimationState(); ok {
			state += fmt.Sprintf("  %s %3.0f%%", playMoveStyle.Render(move.Notation()), progress*100)
		}
	}
	b.WriteString(fmt.Sprintf("State: %s\n", state))

	if m.ctrl.QueueSize() > 0 {
		b.WriteString(fmt.Sprintf("Queue: %d/%d\n", m.ctrl.QueueSize()-m.ctrl.QueueRemaining(), m.ctrl.QueueSize()))
	}
	if m.lastMove != "" {
		b.WriteString(fmt.Sprintf("Last move: %s\n", playMoveStyle.Render(m.lastMove)))
	}
	if m.ctrl.Cube().IsSolved() && m.ctrl.Idle() {
		b.WriteString("Cube is solved.\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(playStatusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(playErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("s scramble • enter solve • space pause • n step • c cancel • u undo • r redo • q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderCube draws the cube as an unfolded net with colored stickers.
// Highlighted stickers get a dot marker, marking the layer currently
// turning.
func renderCube(cube *cubesim.Cube, highlight map[int]bool) string {
	row := func(f cubesim.Face, r int) string {
		grid, _ := cube.FaceGrid(f)
		var b strings.Builder
		for c := 0; c < 3; c++ {
			cell := "  "
			if i, err := cubesim.FaceIndex(f, r, c); err == nil && highlight[i] {
				cell = "··"
			}
			b.WriteString(stickerStyles[grid[r][c]].Render(cell))
		}
		return b.String()
	}

	pad := strings.Repeat(" ", 6)
	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(cubesim.FaceU, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(row(cubesim.FaceL, r) + row(cubesim.FaceF, r) + row(cubesim.FaceR, r) + row(cubesim.FaceB, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(cubesim.FaceD, r) + "\n")
	}
	return b.String()
}
