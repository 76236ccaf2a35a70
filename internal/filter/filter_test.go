package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projex/internal/mockdata"
	"projex/internal/models"
)

func ids[T any](list []T, id func(T) string) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = id(v)
	}
	return out
}

func projectID(p models.Project) string { return p.ID }
func taskID(t models.Task) string       { return t.ID }

func TestProjects_AllKeepsEverything(t *testing.T) {
	list := mockdata.Projects()

	assert.Equal(t, ids(list, projectID), ids(Projects(list, models.AllFilter, ""), projectID))
	assert.Equal(t, ids(list, projectID), ids(Projects(list, "", ""), projectID))
}

func TestProjects_StatusAndSearch(t *testing.T) {
	list := mockdata.Projects()

	active := Projects(list, string(models.ProjectActive), "")
	assert.Equal(t, []string{"proj-001", "proj-002", "proj-005"}, ids(active, projectID))

	found := Projects(list, models.AllFilter, "MOBILE")
	assert.Equal(t, []string{"proj-002"}, ids(found, projectID))

	byDescription := Projects(list, models.AllFilter, "gateway")
	assert.Equal(t, []string{"proj-004"}, ids(byDescription, projectID))

	none := Projects(list, string(models.ProjectArchived), "mobile")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTeam_Search(t *testing.T) {
	list := mockdata.TeamMembers()

	assert.Len(t, Team(list, ""), len(list))

	design := Team(list, "design")
	require.Len(t, design, 1)
	assert.Equal(t, "Sarah Chen", design[0].Name)

	managers := Team(list, "manager")
	assert.Len(t, managers, 2, "role matches")

	byEmail := Team(list, "diego@")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "usr-005", byEmail[0].ID)
}

func TestTasks_DoneKeepsOrder(t *testing.T) {
	list := mockdata.Tasks()

	done := Tasks(list, TaskCriteria{Status: string(models.TaskDone)})

	assert.Equal(t, []string{"task-001", "task-007", "task-012"}, ids(done, taskID))
}

func TestTasks_CombinedCriteria(t *testing.T) {
	list := mockdata.Tasks()

	got := Tasks(list, TaskCriteria{Status: models.AllFilter, Priority: string(models.PriorityHigh), Query: "qa"})
	assert.Equal(t, []string{"task-011"}, ids(got, taskID), "query matches tags")

	byProject := Tasks(list, TaskCriteria{Query: "mobile app"})
	assert.Equal(t, []string{"task-004", "task-005", "task-006"}, ids(byProject, taskID))

	assert.Empty(t, Tasks(list, TaskCriteria{Status: "nope"}))
}
