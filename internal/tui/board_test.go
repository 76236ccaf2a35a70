package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projex/internal/actions"
	"projex/internal/models"
	"projex/internal/state"
	"projex/internal/storage/memory"
)

func newTestBoard(t *testing.T) (*Board, *state.Store) {
	t.Helper()
	store := state.NewStore(state.Initial(nil), zerolog.Nop())
	act := actions.New(store, memory.New(), actions.WithDelays(actions.NoDelays))
	b := NewBoard(context.Background(), act)
	t.Cleanup(b.Close)

	msg := b.fetch()()
	b.Update(msg)
	return b, store
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func status(t *testing.T, store *state.Store, id string) models.TaskStatus {
	t.Helper()
	for _, task := range store.State().Tasks.Tasks {
		if task.ID == id {
			return task.Status
		}
	}
	t.Fatalf("task %s not found", id)
	return ""
}

func TestBoard_LoadsLanes(t *testing.T) {
	b, _ := newTestBoard(t)

	require.Len(t, b.lanes, 5)
	assert.False(t, b.loading)
	assert.Len(t, b.lanes[0].Tasks, 2)
	view := b.View()
	assert.Contains(t, view, "Backlog (2)")
	assert.Contains(t, view, "Done (3)")
}

func TestBoard_DropOnTask(t *testing.T) {
	b, store := newTestBoard(t)
	require.Equal(t, "task-005", b.lanes[0].Tasks[0].ID)

	b.Update(key(tea.KeySpace))
	assert.Equal(t, "task-005", b.carrying)
	b.Update(key(tea.KeyRight))
	b.Update(key(tea.KeyEnter))

	assert.Empty(t, b.carrying)
	assert.Equal(t, models.TaskTodo, status(t, store, "task-005"))
	assert.Equal(t, "moved to To Do", b.status)
	assert.Len(t, b.lanes[1].Tasks, 4)
}

func TestBoard_DropOnOwnCardUsesColumn(t *testing.T) {
	b, store := newTestBoard(t)

	b.Update(key(tea.KeySpace))
	b.Update(key(tea.KeyEnter))

	assert.Equal(t, "no change", b.status)
	assert.Equal(t, models.TaskBacklog, status(t, store, "task-005"))
}

func TestBoard_Cancel(t *testing.T) {
	b, store := newTestBoard(t)

	b.Update(key(tea.KeySpace))
	b.Update(key(tea.KeyRight))
	b.Update(key(tea.KeyEscape))

	assert.Empty(t, b.carrying)
	assert.Equal(t, "move cancelled", b.status)
	assert.Equal(t, models.TaskBacklog, status(t, store, "task-005"))
}

func TestBoard_CursorStaysOnBoard(t *testing.T) {
	b, _ := newTestBoard(t)

	for i := 0; i < 10; i++ {
		b.Update(key(tea.KeyLeft))
		b.Update(key(tea.KeyUp))
	}
	assert.Zero(t, b.col)
	assert.Zero(t, b.row)

	for i := 0; i < 10; i++ {
		b.Update(key(tea.KeyRight))
		b.Update(key(tea.KeyDown))
	}
	assert.Equal(t, 4, b.col)
	assert.Equal(t, 2, b.row)
}

func TestBoard_Quit(t *testing.T) {
	b, _ := newTestBoard(t)

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
