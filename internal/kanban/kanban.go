// Package kanban decides how a dragged card changes the board.
package kanban

import (
	"projex/internal/models"
)

// Column is one lane of the board.
type Column struct {
	ID    models.TaskStatus `json:"id"`
	Title string            `json:"title"`
}

// Columns lists the board lanes in pipeline order.
var Columns = []Column{
	{ID: models.TaskBacklog, Title: "Backlog"},
	{ID: models.TaskTodo, Title: "To Do"},
	{ID: models.TaskInProgress, Title: "In Progress"},
	{ID: models.TaskInReview, Title: "In Review"},
	{ID: models.TaskDone, Title: "Done"},
}

// Move is the single status change produced by a drop.
type Move struct {
	TaskID string
	From   models.TaskStatus
	To     models.TaskStatus
}

// Resolve decides the outcome of dropping the task activeID onto overID,
// which names either a column or another task. An empty overID means the drag
// was cancelled. It reports false when the drop changes nothing, including
// when activeID is not in tasks. Reordering inside a column is never a move.
func Resolve(tasks []models.Task, activeID, overID string) (Move, bool) {
	if overID == "" {
		return Move{}, false
	}
	active, ok := find(tasks, activeID)
	if !ok {
		return Move{}, false
	}

	if col, ok := column(overID); ok && active.Status != col {
		return Move{TaskID: active.ID, From: active.Status, To: col}, true
	}

	over, ok := find(tasks, overID)
	if ok && over.Status != active.Status {
		return Move{TaskID: active.ID, From: active.Status, To: over.Status}, true
	}
	return Move{}, false
}

func column(id string) (models.TaskStatus, bool) {
	for _, c := range Columns {
		if string(c.ID) == id {
			return c.ID, true
		}
	}
	return "", false
}

func find(tasks []models.Task, id string) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Lane is a column together with the tasks currently in it.
type Lane struct {
	Column
	Tasks []models.Task `json:"tasks"`
}

// Group splits tasks into lanes, keeping their relative order. Tasks with an
// unknown status are left out.
func Group(tasks []models.Task) []Lane {
	lanes := make([]Lane, len(Columns))
	index := make(map[models.TaskStatus]int, len(Columns))
	for i, c := range Columns {
		lanes[i] = Lane{Column: c, Tasks: []models.Task{}}
		index[c.ID] = i
	}
	for _, t := range tasks {
		if i, ok := index[t.Status]; ok {
			lanes[i].Tasks = append(lanes[i].Tasks, t)
		}
	}
	return lanes
}
