// Package state holds the dashboard's single source of truth: four slices
// mutated only by events applied through a pure reducer.
package state

import (
	"projex/internal/models"
)

// AuthSlice tracks the signed-in user.
type AuthSlice struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsLoading       bool         `json:"isLoading"`
	Error           string       `json:"error,omitempty"`
}

// ProjectsSlice holds the project list and its view filters.
type ProjectsSlice struct {
	Projects        []models.Project `json:"projects"`
	Loaded          bool             `json:"loaded"`
	SelectedProject *models.Project  `json:"selectedProject"`
	IsLoading       bool             `json:"isLoading"`
	Error           string           `json:"error,omitempty"`
	Filter          string           `json:"filter"`
	SearchQuery     string           `json:"searchQuery"`
}

// TasksSlice holds the task list and its view filters.
type TasksSlice struct {
	Tasks          []models.Task `json:"tasks"`
	Loaded         bool          `json:"loaded"`
	IsLoading      bool          `json:"isLoading"`
	Error          string        `json:"error,omitempty"`
	FilterStatus   string        `json:"filterStatus"`
	FilterPriority string        `json:"filterPriority"`
	SearchQuery    string        `json:"searchQuery"`
}

// TeamSlice holds the team roster.
type TeamSlice struct {
	Members     []models.TeamMember `json:"members"`
	Loaded      bool                `json:"loaded"`
	IsLoading   bool                `json:"isLoading"`
	Error       string              `json:"error,omitempty"`
	SearchQuery string              `json:"searchQuery"`
}

// State is the whole application state.
type State struct {
	Auth     AuthSlice     `json:"auth"`
	Projects ProjectsSlice `json:"projects"`
	Tasks    TasksSlice    `json:"tasks"`
	Team     TeamSlice     `json:"team"`
}

// Initial returns the empty state. A non-nil user restores a persisted session.
func Initial(user *models.User) State {
	s := State{
		Projects: ProjectsSlice{Projects: []models.Project{}, Filter: models.AllFilter},
		Tasks:    TasksSlice{Tasks: []models.Task{}, FilterStatus: models.AllFilter, FilterPriority: models.AllFilter},
		Team:     TeamSlice{Members: []models.TeamMember{}},
	}
	if user != nil {
		u := *user
		s.Auth.User = &u
		s.Auth.IsAuthenticated = true
	}
	return s
}

// Clone returns a deep copy of s that shares no memory with it.
func (s State) Clone() State {
	out := s
	if s.Auth.User != nil {
		u := *s.Auth.User
		out.Auth.User = &u
	}

	out.Projects.Projects = make([]models.Project, len(s.Projects.Projects))
	for i, p := range s.Projects.Projects {
		out.Projects.Projects[i] = cloneProject(p)
	}
	if s.Projects.SelectedProject != nil {
		p := cloneProject(*s.Projects.SelectedProject)
		out.Projects.SelectedProject = &p
	}

	out.Tasks.Tasks = make([]models.Task, len(s.Tasks.Tasks))
	for i, t := range s.Tasks.Tasks {
		out.Tasks.Tasks[i] = cloneTask(t)
	}

	out.Team.Members = make([]models.TeamMember, len(s.Team.Members))
	for i, m := range s.Team.Members {
		m.Projects = append([]string(nil), m.Projects...)
		out.Team.Members[i] = m
	}
	return out
}

func cloneProject(p models.Project) models.Project {
	p.TeamMembers = append([]string(nil), p.TeamMembers...)
	return p
}

func cloneTask(t models.Task) models.Task {
	t.Tags = append([]string(nil), t.Tags...)
	return t
}
