package actions

import (
	"projex/internal/models"
	"projex/internal/state"
)

// SetProjectFilter selects the project status filter (models.AllFilter for none).
// Unknown statuses are ignored.
func (a *Actions) SetProjectFilter(filter string) {
	a.store.Dispatch(state.ProjectFilterSet{Filter: filter})
}

// SetProjectSearch sets the project search query.
func (a *Actions) SetProjectSearch(query string) {
	a.store.Dispatch(state.ProjectSearchSet{Query: query})
}

// SelectProject marks p as the open project; nil clears the selection.
func (a *Actions) SelectProject(p *models.Project) {
	a.store.Dispatch(state.ProjectSelected{Project: p})
}

// SetTaskStatusFilter stores the task status selection.
func (a *Actions) SetTaskStatusFilter(status string) {
	a.store.Dispatch(state.TaskFilterStatusSet{Status: status})
}

// SetTaskPriorityFilter stores the task priority selection.
func (a *Actions) SetTaskPriorityFilter(priority string) {
	a.store.Dispatch(state.TaskFilterPrioritySet{Priority: priority})
}

// SetTaskSearch sets the task search query.
func (a *Actions) SetTaskSearch(query string) {
	a.store.Dispatch(state.TaskSearchSet{Query: query})
}

// SetTeamSearch sets the team search query.
func (a *Actions) SetTeamSearch(query string) {
	a.store.Dispatch(state.TeamSearchSet{Query: query})
}
