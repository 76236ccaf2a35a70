// Package tui renders the task board in the terminal. Cards are moved by
// picking one up with space, moving the cursor and dropping it with enter.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"projex/internal/actions"
	"projex/internal/kanban"
	"projex/internal/models"
	"projex/internal/state"
)

type (
	changedMsg struct{}
	fetchedMsg struct{ err error }
)

// Board is the bubbletea model of the task board.
type Board struct {
	ctx     context.Context
	act     *actions.Actions
	updates chan struct{}
	unsub   func()

	lanes    []kanban.Lane
	loading  bool
	col, row int
	carrying string
	status   string
	width    int
}

// NewBoard builds a board bound to act's store. Call Close when done.
func NewBoard(ctx context.Context, act *actions.Actions) *Board {
	b := &Board{
		ctx:     ctx,
		act:     act,
		updates: make(chan struct{}, 1),
		lanes:   kanban.Group(nil),
	}
	b.unsub = act.Store().Subscribe(func(state.State) {
		select {
		case b.updates <- struct{}{}:
		default:
		}
	})
	return b
}

// Close stops listening to the store.
func (b *Board) Close() {
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
}

// Init loads the tasks and starts listening for store changes.
func (b *Board) Init() tea.Cmd {
	return tea.Batch(b.fetch(), b.waitForChange())
}

func (b *Board) fetch() tea.Cmd {
	b.loading = true
	return func() tea.Msg {
		_, err := b.act.FetchTasks(b.ctx)
		return fetchedMsg{err: err}
	}
}

func (b *Board) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.updates:
			return changedMsg{}
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *Board) refresh() {
	s := b.act.Store().State()
	b.lanes = kanban.Group(s.Tasks.Tasks)
	b.loading = s.Tasks.IsLoading
	b.clamp()
}

func (b *Board) clamp() {
	if b.col < 0 {
		b.col = 0
	}
	if b.col >= len(b.lanes) {
		b.col = len(b.lanes) - 1
	}
	n := len(b.lanes[b.col].Tasks)
	if b.row >= n {
		b.row = n - 1
	}
	if b.row < 0 {
		b.row = 0
	}
}

// current returns the task under the cursor.
func (b *Board) current() (models.Task, bool) {
	lane := b.lanes[b.col].Tasks
	if b.row < len(lane) {
		return lane[b.row], true
	}
	return models.Task{}, false
}

// Update handles a key press or a store change.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
	case changedMsg:
		b.refresh()
		return b, b.waitForChange()
	case fetchedMsg:
		b.refresh()
		if msg.err != nil {
			b.status = actions.Message(msg.err)
		}
	case tea.KeyMsg:
		return b, b.handleKey(msg)
	}
	return b, nil
}

func (b *Board) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "left", "h":
		b.col--
	case "right", "l":
		b.col++
	case "up", "k":
		b.row--
	case "down", "j":
		b.row++
	case "r":
		b.status = ""
		return b.fetch()
	case " ":
		if t, ok := b.current(); ok && b.carrying == "" {
			b.carrying = t.ID
			b.status = "moving " + t.Title
		}
	case "esc":
		if b.carrying != "" {
			b.act.Drop(b.carrying, "")
			b.carrying = ""
			b.status = "move cancelled"
		}
	case "enter":
		if b.carrying != "" {
			b.drop()
		}
	}
	b.clamp()
	return nil
}

// drop releases the carried card over the task under the cursor, or over the
// column itself when the cursor is on an empty column or on the card itself.
func (b *Board) drop() {
	over := string(b.lanes[b.col].ID)
	if t, ok := b.current(); ok && t.ID != b.carrying {
		over = t.ID
	}
	if b.act.Drop(b.carrying, over) {
		b.status = "moved to " + b.lanes[b.col].Title
	} else {
		b.status = "no change"
	}
	b.carrying = ""
	b.refresh()
}

var (
	laneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeLane    = laneStyle.BorderForeground(lipgloss.Color("63"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	carriedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	priorityStyle = map[models.Priority]lipgloss.Style{
		models.PriorityLow:      mutedStyle,
		models.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		models.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// View renders the lanes and the key help.
func (b *Board) View() string {
	laneWidth := 24
	if b.width > 0 {
		laneWidth = max(16, b.width/len(b.lanes)-4)
	}

	cols := make([]string, len(b.lanes))
	for i, lane := range b.lanes {
		var sb strings.Builder
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", lane.Title, len(lane.Tasks))))
		sb.WriteString("\n")
		for j, t := range lane.Tasks {
			line := truncate(t.Title, laneWidth-2)
			switch {
			case t.ID == b.carrying:
				line = carriedStyle.Render("» " + line)
			case i == b.col && j == b.row:
				line = cursorStyle.Render("  " + line)
			default:
				line = "  " + line
			}
			sb.WriteString(line + "\n")
			sb.WriteString("  " + priorityStyle[t.Priority].Render(string(t.Priority)) + mutedStyle.Render(" · "+t.AssigneeName) + "\n")
		}
		style := laneStyle
		if i == b.col {
			style = activeLane
		}
		cols[i] = style.Width(laneWidth).Render(sb.String())
	}

	footer := "←/→ column  ↑/↓ card  space pick  enter drop  esc cancel  r reload  q quit"
	if b.loading {
		footer = "loading tasks…  " + footer
	}
	if b.status != "" {
		footer = b.status + "\n" + footer
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n" + mutedStyle.Render(footer) + "\n"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
