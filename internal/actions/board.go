package actions

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"projex/internal/kanban"
	"projex/internal/mockdata"
	"projex/internal/models"
	"projex/internal/state"
)

// Drop completes a drag of task activeID onto overID (a column id, a task id,
// or "" when the drag was cancelled). It applies at most one status change
// and reports whether one happened. Unknown tasks are ignored.
func (a *Actions) Drop(activeID, overID string) bool {
	return a.store.Apply(func(s state.State) state.Event {
		mv, ok := kanban.Resolve(s.Tasks.Tasks, activeID, overID)
		if !ok {
			return nil
		}
		a.logger.Debug().Str("task", mv.TaskID).Str("from", string(mv.From)).Str("to", string(mv.To)).Msg("task moved")
		return state.TaskStatusUpdated{TaskID: mv.TaskID, Status: mv.To, At: a.clock.Now()}
	})
}

// Reorder records a transient in-memory order for the board.
func (a *Actions) Reorder(ids []string) {
	a.store.Dispatch(state.TasksReordered{IDs: ids})
}

// Dashboard is the dashboard page payload.
type Dashboard struct {
	Stats    models.DashboardStats `json:"stats"`
	Active   []models.Project      `json:"activeProjects"`
	Activity []models.ActivityItem `json:"activity"`
}

// LoadDashboard fetches projects, tasks and team concurrently and summarizes
// them. It fails if any fetch fails; the other slices keep what they loaded.
func (a *Actions) LoadDashboard(ctx context.Context) (Dashboard, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := a.FetchProjects(gctx)
		return err
	})
	g.Go(func() error {
		_, err := a.FetchTasks(gctx)
		return err
	})
	g.Go(func() error {
		_, err := a.FetchTeam(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, fmt.Errorf("load dashboard: %w", err)
	}
	return a.Summary(), nil
}

// Summary builds the dashboard payload from the current state without fetching.
func (a *Actions) Summary() Dashboard {
	s := a.store.State()
	active := []models.Project{}
	for _, p := range s.Projects.Projects {
		if p.Status == models.ProjectActive {
			active = append(active, p)
		}
	}
	return Dashboard{
		Stats:    state.Stats(s, a.clock.Now()),
		Active:   active,
		Activity: mockdata.Activity(),
	}
}
