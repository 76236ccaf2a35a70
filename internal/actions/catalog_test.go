package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projex/internal/models"
)

func TestFetchProjects(t *testing.T) {
	f := newFixture(t)

	projects, err := f.act.FetchProjects(context.Background())

	require.NoError(t, err)
	assert.Len(t, projects, 6)
	p := f.store.State().Projects
	assert.Len(t, p.Projects, 6)
	assert.False(t, p.IsLoading)
	assert.Empty(t, p.Error)
	assert.Equal(t, []time.Duration{DefaultDelays.Fetch}, f.clock.sleeps())
}

func TestFetchProjects_Failure(t *testing.T) {
	f := newFixture(t)
	f.clock.failed = true

	_, err := f.act.FetchProjects(context.Background())

	assert.ErrorIs(t, err, ErrUnexpected)
	p := f.store.State().Projects
	assert.Equal(t, "Failed to fetch projects", p.Error)
	assert.False(t, p.IsLoading)
}

func TestCreateProject_Defaults(t *testing.T) {
	f := newFixture(t)

	p, err := f.act.CreateProject(context.Background(), ProjectInput{Name: "  "})

	require.NoError(t, err)
	assert.Equal(t, "proj-001", p.ID)
	assert.Equal(t, "Untitled Project", p.Name)
	assert.Equal(t, models.ProjectActive, p.Status)
	assert.Equal(t, models.PriorityMedium, p.Priority)
	assert.Zero(t, p.Progress)
	assert.Zero(t, p.TasksCount)
	assert.Zero(t, p.CompletedTasks)
	assert.Equal(t, models.Day(testNow), p.StartDate)
	assert.Equal(t, models.NewDate(2027, time.January, 14), p.DueDate, "due in 90 days")
	assert.Equal(t, projectPalette[0], p.Color)
	assert.NotNil(t, p.TeamMembers)

	list := f.store.State().Projects.Projects
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestCreateProject_PrependsAndKeepsInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.act.FetchProjects(ctx)
	require.NoError(t, err)
	due := models.NewDate(2027, time.March, 3)

	p, err := f.act.CreateProject(ctx, ProjectInput{
		Name: "Data Platform", Status: models.ProjectOnHold, Priority: models.PriorityCritical,
		DueDate: &due, Color: "#000000", TeamMembers: []string{"usr-002"},
	})

	require.NoError(t, err)
	assert.Equal(t, models.ProjectOnHold, p.Status)
	assert.Equal(t, models.PriorityCritical, p.Priority)
	assert.Equal(t, due, p.DueDate)
	assert.Equal(t, "#000000", p.Color)
	list := f.store.State().Projects.Projects
	require.Len(t, list, 7)
	assert.Equal(t, "Data Platform", list[0].Name)
}

func TestCreateProject_InvalidStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.act.CreateProject(context.Background(), ProjectInput{Status: "paused"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Unknown project status paused", f.store.State().Projects.Error)
	assert.Empty(t, f.store.State().Projects.Projects)
}

func TestCreateTask_Defaults(t *testing.T) {
	f := newFixture(t)

	task, err := f.act.CreateTask(context.Background(), TaskInput{})

	require.NoError(t, err)
	assert.Equal(t, "task-001", task.ID)
	assert.Equal(t, "Untitled Task", task.Title)
	assert.Equal(t, models.TaskTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, "proj-001", task.ProjectID)
	assert.Equal(t, "Website Redesign", task.ProjectName)
	assert.Equal(t, "usr-001", task.AssigneeID)
	assert.Equal(t, "Jamshed Iqbal", task.AssigneeName)
	assert.Equal(t, models.NewDate(2026, time.October, 30), task.DueDate, "due in 14 days")
	assert.Equal(t, []time.Duration{DefaultDelays.Create}, f.clock.sleeps())
}

func TestCreateTask_InvalidPriority(t *testing.T) {
	f := newFixture(t)

	_, err := f.act.CreateTask(context.Background(), TaskInput{Priority: "urgent"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Unknown priority urgent", Message(err))
}

func TestFetchTeam(t *testing.T) {
	f := newFixture(t, WithDelays(NoDelays))

	members, err := f.act.FetchTeam(context.Background())

	require.NoError(t, err)
	assert.Len(t, members, 6)
	assert.Len(t, f.store.State().Team.Members, 6)
	assert.Equal(t, []time.Duration{0}, f.clock.sleeps())
}
