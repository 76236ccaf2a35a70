package actions

import (
	"context"
	"strings"
	"time"

	"projex/internal/mockdata"
	"projex/internal/models"
	"projex/internal/state"
)

const (
	projectDueIn = 90 * 24 * time.Hour
	taskDueIn    = 14 * 24 * time.Hour
)

var projectPalette = []string{"#6366f1", "#f43f5e", "#10b981", "#f59e0b", "#8b5cf6"}

// ProjectInput is the new-project form. Zero fields take their defaults.
type ProjectInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	Priority    models.Priority      `json:"priority"`
	DueDate     *models.Date         `json:"dueDate"`
	TeamMembers []string             `json:"teamMembers"`
	Color       string               `json:"color"`
}

// TaskInput is the new-task form. Zero fields take their defaults.
type TaskInput struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Status         models.TaskStatus `json:"status"`
	Priority       models.Priority   `json:"priority"`
	ProjectID      string            `json:"projectId"`
	ProjectName    string            `json:"projectName"`
	AssigneeID     string            `json:"assigneeId"`
	AssigneeName   string            `json:"assigneeName"`
	AssigneeAvatar string            `json:"assigneeAvatar"`
	Tags           []string          `json:"tags"`
	DueDate        *models.Date      `json:"dueDate"`
}

// FetchProjects replaces the project list.
func (a *Actions) FetchProjects(ctx context.Context) ([]models.Project, error) {
	return run(a, "projects/fetch", state.ProjectsFetchRequested{},
		func() ([]models.Project, error) {
			if err := a.wait(ctx, "projects/fetch", a.delays.Fetch); err != nil {
				return nil, fail(ErrUnexpected, "Failed to fetch projects")
			}
			return mockdata.Projects(), nil
		},
		func(p []models.Project) state.Event { return state.ProjectsFetchSucceeded{Projects: p} },
		func(msg string) state.Event { return state.ProjectsFetchFailed{Message: msg} },
	)
}

// CreateProject adds a project at the head of the list.
func (a *Actions) CreateProject(ctx context.Context, in ProjectInput) (models.Project, error) {
	return run(a, "projects/create", state.ProjectCreateRequested{},
		func() (models.Project, error) {
			if err := a.wait(ctx, "projects/create", a.delays.Create); err != nil {
				return models.Project{}, fail(ErrUnexpected, "Failed to create project")
			}
			return a.newProject(in)
		},
		func(p models.Project) state.Event { return state.ProjectCreateSucceeded{Project: p} },
		func(msg string) state.Event { return state.ProjectCreateFailed{Message: msg} },
	)
}

func (a *Actions) newProject(in ProjectInput) (models.Project, error) {
	if in.Status != "" && !in.Status.Valid() {
		return models.Project{}, fail(ErrValidation, "Unknown project status "+string(in.Status))
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return models.Project{}, fail(ErrValidation, "Unknown priority "+string(in.Priority))
	}

	now := a.clock.Now()
	today := models.Day(now)
	p := models.Project{
		ID:          a.newID("proj"),
		Name:        orDefault(strings.TrimSpace(in.Name), "Untitled Project"),
		Description: in.Description,
		Status:      models.ProjectActive,
		Priority:    models.PriorityMedium,
		StartDate:   today,
		DueDate:     models.Day(now.Add(projectDueIn)),
		TeamMembers: append([]string{}, in.TeamMembers...),
		CreatedAt:   today,
		UpdatedAt:   today,
		Color:       in.Color,
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	if in.Priority != "" {
		p.Priority = in.Priority
	}
	if in.DueDate != nil && !in.DueDate.IsZero() {
		p.DueDate = models.Day(in.DueDate.Time)
	}
	if p.Color == "" {
		p.Color = projectPalette[a.pick(len(projectPalette))]
	}
	return p, nil
}

// FetchTasks replaces the task list. Any in-memory reordering is lost.
func (a *Actions) FetchTasks(ctx context.Context) ([]models.Task, error) {
	return run(a, "tasks/fetch", state.TasksFetchRequested{},
		func() ([]models.Task, error) {
			if err := a.wait(ctx, "tasks/fetch", a.delays.Fetch); err != nil {
				return nil, fail(ErrUnexpected, "Failed to fetch tasks")
			}
			return mockdata.Tasks(), nil
		},
		func(t []models.Task) state.Event { return state.TasksFetchSucceeded{Tasks: t} },
		func(msg string) state.Event { return state.TasksFetchFailed{Message: msg} },
	)
}

// CreateTask adds a task at the head of the list.
func (a *Actions) CreateTask(ctx context.Context, in TaskInput) (models.Task, error) {
	return run(a, "tasks/create", state.TaskCreateRequested{},
		func() (models.Task, error) {
			if err := a.wait(ctx, "tasks/create", a.delays.Create); err != nil {
				return models.Task{}, fail(ErrUnexpected, "Failed to create task")
			}
			return a.newTask(in)
		},
		func(t models.Task) state.Event { return state.TaskCreateSucceeded{Task: t} },
		func(msg string) state.Event { return state.TaskCreateFailed{Message: msg} },
	)
}

func (a *Actions) newTask(in TaskInput) (models.Task, error) {
	if in.Status != "" && !in.Status.Valid() {
		return models.Task{}, fail(ErrValidation, "Unknown task status "+string(in.Status))
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return models.Task{}, fail(ErrValidation, "Unknown priority "+string(in.Priority))
	}

	now := a.clock.Now()
	today := models.Day(now)
	t := models.Task{
		ID:             a.newID("task"),
		Title:          orDefault(strings.TrimSpace(in.Title), "Untitled Task"),
		Description:    in.Description,
		Status:         models.TaskTodo,
		Priority:       models.PriorityMedium,
		ProjectID:      orDefault(in.ProjectID, "proj-001"),
		ProjectName:    orDefault(in.ProjectName, "Website Redesign"),
		AssigneeID:     orDefault(in.AssigneeID, "usr-001"),
		AssigneeName:   orDefault(in.AssigneeName, "Jamshed Iqbal"),
		AssigneeAvatar: orDefault(in.AssigneeAvatar, mockdata.Avatar("Jamshed")),
		Tags:           append([]string{}, in.Tags...),
		DueDate:        models.Day(now.Add(taskDueIn)),
		CreatedAt:      today,
		UpdatedAt:      today,
	}
	if in.Status != "" {
		t.Status = in.Status
	}
	if in.Priority != "" {
		t.Priority = in.Priority
	}
	if in.DueDate != nil && !in.DueDate.IsZero() {
		t.DueDate = models.Day(in.DueDate.Time)
	}
	return t, nil
}

// FetchTeam replaces the team roster.
func (a *Actions) FetchTeam(ctx context.Context) ([]models.TeamMember, error) {
	return run(a, "team/fetch", state.TeamFetchRequested{},
		func() ([]models.TeamMember, error) {
			if err := a.wait(ctx, "team/fetch", a.delays.Fetch); err != nil {
				return nil, fail(ErrUnexpected, "Failed to fetch team members")
			}
			return mockdata.TeamMembers(), nil
		},
		func(m []models.TeamMember) state.Event { return state.TeamFetchSucceeded{Members: m} },
		func(msg string) state.Event { return state.TeamFetchFailed{Message: msg} },
	)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
