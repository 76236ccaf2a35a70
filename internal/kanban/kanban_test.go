package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projex/internal/models"
)

func board() []models.Task {
	return []models.Task{
		{ID: "t1", Title: "one", Status: models.TaskTodo},
		{ID: "t2", Title: "two", Status: models.TaskTodo},
		{ID: "t3", Title: "three", Status: models.TaskInProgress},
		{ID: "t4", Title: "four", Status: models.TaskDone},
	}
}

func TestResolve_DropOnColumn(t *testing.T) {
	mv, ok := Resolve(board(), "t1", "in-review")

	require.True(t, ok)
	assert.Equal(t, Move{TaskID: "t1", From: models.TaskTodo, To: models.TaskInReview}, mv)
}

func TestResolve_DropOnOwnColumnIsNoop(t *testing.T) {
	_, ok := Resolve(board(), "t1", "todo")
	assert.False(t, ok)
}

func TestResolve_DropOnTaskInOtherColumn(t *testing.T) {
	mv, ok := Resolve(board(), "t1", "t4")

	require.True(t, ok)
	assert.Equal(t, models.TaskDone, mv.To, "task adopts the status of the task it was dropped on")
	assert.Equal(t, models.TaskTodo, mv.From)
}

func TestResolve_DropOnTaskInSameColumnIsNoop(t *testing.T) {
	_, ok := Resolve(board(), "t1", "t2")
	assert.False(t, ok, "reordering inside a column never changes status")
}

func TestResolve_NoTarget(t *testing.T) {
	_, ok := Resolve(board(), "t1", "")
	assert.False(t, ok)
}

func TestResolve_UnknownActiveTask(t *testing.T) {
	_, ok := Resolve(board(), "missing", "done")
	assert.False(t, ok)
}

func TestResolve_UnknownTarget(t *testing.T) {
	_, ok := Resolve(board(), "t1", "nowhere")
	assert.False(t, ok)
}

func TestResolve_DropOnItself(t *testing.T) {
	_, ok := Resolve(board(), "t3", "t3")
	assert.False(t, ok)
}

func TestResolve_EveryColumnIsADropTarget(t *testing.T) {
	tasks := []models.Task{{ID: "x", Status: models.TaskBacklog}}
	for _, c := range Columns[1:] {
		mv, ok := Resolve(tasks, "x", string(c.ID))
		require.True(t, ok, "drop on %s", c.ID)
		assert.Equal(t, c.ID, mv.To)
	}
}

func TestResolve_DoesNotModifyInput(t *testing.T) {
	tasks := board()
	_, ok := Resolve(tasks, "t1", "done")

	require.True(t, ok)
	assert.Equal(t, board(), tasks)
}

func TestColumns_MatchPipeline(t *testing.T) {
	require.Len(t, Columns, len(models.TaskStatuses))
	for i, c := range Columns {
		assert.Equal(t, models.TaskStatuses[i], c.ID)
		assert.NotEmpty(t, c.Title)
	}
}

func TestGroup(t *testing.T) {
	tasks := append(board(), models.Task{ID: "t5", Status: "unknown"})

	lanes := Group(tasks)

	require.Len(t, lanes, 5)
	assert.Equal(t, models.TaskBacklog, lanes[0].ID)
	assert.Empty(t, lanes[0].Tasks)
	assert.NotNil(t, lanes[0].Tasks, "empty lanes encode as []")

	require.Len(t, lanes[1].Tasks, 2)
	assert.Equal(t, "t1", lanes[1].Tasks[0].ID)
	assert.Equal(t, "t2", lanes[1].Tasks[1].ID)
	assert.Len(t, lanes[2].Tasks, 1)
	assert.Len(t, lanes[4].Tasks, 1)

	total := 0
	for _, l := range lanes {
		total += len(l.Tasks)
	}
	assert.Equal(t, 4, total, "tasks with an unknown status are left out")
}
