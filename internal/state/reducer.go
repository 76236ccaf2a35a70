package state

import (
	"projex/internal/models"
)

// Reduce applies ev to s and returns the next state. It never modifies the
// backing arrays of s, so earlier snapshots stay valid. Unknown events leave
// the state unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case AuthRequested:
		s.Auth.IsLoading = true
		s.Auth.Error = ""
	case AuthSucceeded:
		s.Auth.IsLoading = false
		switch e.Op {
		case OpRegister:
			// registration never signs the user in
		case OpLogout:
			s.Auth.User = nil
			s.Auth.IsAuthenticated = false
		default:
			if e.User != nil {
				u := *e.User
				s.Auth.User = &u
				s.Auth.IsAuthenticated = true
			}
		}
	case AuthFailed:
		s.Auth.IsLoading = false
		s.Auth.Error = e.Message
	case AuthErrorCleared:
		s.Auth.Error = ""

	case ProjectsFetchRequested:
		s.Projects.IsLoading = true
		s.Projects.Error = ""
	case ProjectsFetchSucceeded:
		s.Projects.IsLoading = false
		s.Projects.Loaded = true
		s.Projects.Projects = append([]models.Project{}, e.Projects...)
	case ProjectsFetchFailed:
		s.Projects.IsLoading = false
		s.Projects.Error = e.Message
	case ProjectCreateRequested:
		s.Projects.IsLoading = true
		s.Projects.Error = ""
	case ProjectCreateSucceeded:
		s.Projects.IsLoading = false
		s.Projects.Projects = prepend(s.Projects.Projects, e.Project)
	case ProjectCreateFailed:
		s.Projects.IsLoading = false
		s.Projects.Error = e.Message
	case ProjectFilterSet:
		if e.Filter == models.AllFilter || models.ProjectStatus(e.Filter).Valid() {
			s.Projects.Filter = e.Filter
		}
	case ProjectSearchSet:
		s.Projects.SearchQuery = e.Query
	case ProjectSelected:
		if e.Project == nil {
			s.Projects.SelectedProject = nil
		} else {
			p := cloneProject(*e.Project)
			s.Projects.SelectedProject = &p
		}

	case TasksFetchRequested:
		s.Tasks.IsLoading = true
		s.Tasks.Error = ""
	case TasksFetchSucceeded:
		s.Tasks.IsLoading = false
		s.Tasks.Loaded = true
		s.Tasks.Tasks = append([]models.Task{}, e.Tasks...)
	case TasksFetchFailed:
		s.Tasks.IsLoading = false
		s.Tasks.Error = e.Message
	case TaskCreateRequested:
		s.Tasks.IsLoading = true
		s.Tasks.Error = ""
	case TaskCreateSucceeded:
		s.Tasks.IsLoading = false
		s.Tasks.Tasks = prepend(s.Tasks.Tasks, e.Task)
	case TaskCreateFailed:
		s.Tasks.IsLoading = false
		s.Tasks.Error = e.Message
	case TaskFilterStatusSet:
		if e.Status == models.AllFilter || models.TaskStatus(e.Status).Valid() {
			s.Tasks.FilterStatus = e.Status
		}
	case TaskFilterPrioritySet:
		if e.Priority == models.AllFilter || models.Priority(e.Priority).Valid() {
			s.Tasks.FilterPriority = e.Priority
		}
	case TaskSearchSet:
		s.Tasks.SearchQuery = e.Query
	case TaskStatusUpdated:
		s.Tasks.Tasks = updateStatus(s.Tasks.Tasks, e)
	case TasksReordered:
		s.Tasks.Tasks = reorder(s.Tasks.Tasks, e.IDs)

	case TeamFetchRequested:
		s.Team.IsLoading = true
		s.Team.Error = ""
	case TeamFetchSucceeded:
		s.Team.IsLoading = false
		s.Team.Loaded = true
		s.Team.Members = append([]models.TeamMember{}, e.Members...)
	case TeamFetchFailed:
		s.Team.IsLoading = false
		s.Team.Error = e.Message
	case TeamSearchSet:
		s.Team.SearchQuery = e.Query
	}
	return s
}

func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

func updateStatus(tasks []models.Task, e TaskStatusUpdated) []models.Task {
	if !e.Status.Valid() {
		return tasks
	}
	for i, t := range tasks {
		if t.ID != e.TaskID {
			continue
		}
		out := append([]models.Task{}, tasks...)
		t.Status = e.Status
		t.UpdatedAt = models.Day(e.At)
		out[i] = t
		return out
	}
	return tasks
}

// reorder places the tasks named in ids first, in that order, followed by the
// remaining tasks in their previous order. Unknown ids are skipped.
func reorder(tasks []models.Task, ids []string) []models.Task {
	byID := make(map[string]int, len(tasks))
	for i, t := range tasks {
		byID[t.ID] = i
	}
	used := make([]bool, len(tasks))
	out := make([]models.Task, 0, len(tasks))
	for _, id := range ids {
		i, ok := byID[id]
		if !ok || used[i] {
			continue
		}
		used[i] = true
		out = append(out, tasks[i])
	}
	for i, t := range tasks {
		if !used[i] {
			out = append(out, t)
		}
	}
	return out
}
