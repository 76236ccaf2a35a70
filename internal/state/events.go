package state

import (
	"time"

	"projex/internal/models"
)

// Event is a discrete state transition request. The set of events is closed.
type Event interface {
	// Name identifies the event in logs.
	Name() string
}

// AuthOp names the authentication operation an auth event belongs to.
type AuthOp string

const (
	OpLogin    AuthOp = "login"
	OpRegister AuthOp = "register"
	OpLogout   AuthOp = "logout"
	OpGuest    AuthOp = "guest"
	OpSocial   AuthOp = "social"
)

type (
	// AuthRequested marks the start of an auth operation.
	AuthRequested struct{ Op AuthOp }
	// AuthSucceeded resolves an auth operation. User is nil for register and logout.
	AuthSucceeded struct {
		Op   AuthOp
		User *models.User
	}
	// AuthFailed resolves an auth operation with a user-facing message.
	AuthFailed struct {
		Op      AuthOp
		Message string
	}
	// AuthErrorCleared drops the auth slice error.
	AuthErrorCleared struct{}
)

type (
	ProjectsFetchRequested struct{}
	ProjectsFetchSucceeded struct{ Projects []models.Project }
	ProjectsFetchFailed    struct{ Message string }
	ProjectCreateRequested struct{}
	ProjectCreateSucceeded struct{ Project models.Project }
	ProjectCreateFailed    struct{ Message string }
	// ProjectFilterSet sets the status filter; models.AllFilter disables it.
	ProjectFilterSet struct{ Filter string }
	ProjectSearchSet struct{ Query string }
	// ProjectSelected selects a project; nil clears the selection.
	ProjectSelected struct{ Project *models.Project }
)

type (
	TasksFetchRequested   struct{}
	TasksFetchSucceeded   struct{ Tasks []models.Task }
	TasksFetchFailed      struct{ Message string }
	TaskCreateRequested   struct{}
	TaskCreateSucceeded   struct{ Task models.Task }
	TaskCreateFailed      struct{ Message string }
	TaskFilterStatusSet   struct{ Status string }
	TaskFilterPrioritySet struct{ Priority string }
	TaskSearchSet         struct{ Query string }
	// TaskStatusUpdated moves a task to another pipeline stage at time At.
	TaskStatusUpdated struct {
		TaskID string
		Status models.TaskStatus
		At     time.Time
	}
	// TasksReordered rearranges the in-memory task order. The order is not
	// persisted and is lost on the next fetch.
	TasksReordered struct{ IDs []string }
)

type (
	TeamFetchRequested struct{}
	TeamFetchSucceeded struct{ Members []models.TeamMember }
	TeamFetchFailed    struct{ Message string }
	TeamSearchSet      struct{ Query string }
)

func (AuthRequested) Name() string    { return "auth/requested" }
func (AuthSucceeded) Name() string    { return "auth/succeeded" }
func (AuthFailed) Name() string       { return "auth/failed" }
func (AuthErrorCleared) Name() string { return "auth/errorCleared" }

func (ProjectsFetchRequested) Name() string { return "projects/fetchRequested" }
func (ProjectsFetchSucceeded) Name() string { return "projects/fetchSucceeded" }
func (ProjectsFetchFailed) Name() string    { return "projects/fetchFailed" }
func (ProjectCreateRequested) Name() string { return "projects/createRequested" }
func (ProjectCreateSucceeded) Name() string { return "projects/createSucceeded" }
func (ProjectCreateFailed) Name() string    { return "projects/createFailed" }
func (ProjectFilterSet) Name() string       { return "projects/filterSet" }
func (ProjectSearchSet) Name() string       { return "projects/searchSet" }
func (ProjectSelected) Name() string        { return "projects/selected" }

func (TasksFetchRequested) Name() string   { return "tasks/fetchRequested" }
func (TasksFetchSucceeded) Name() string   { return "tasks/fetchSucceeded" }
func (TasksFetchFailed) Name() string      { return "tasks/fetchFailed" }
func (TaskCreateRequested) Name() string   { return "tasks/createRequested" }
func (TaskCreateSucceeded) Name() string   { return "tasks/createSucceeded" }
func (TaskCreateFailed) Name() string      { return "tasks/createFailed" }
func (TaskFilterStatusSet) Name() string   { return "tasks/filterStatusSet" }
func (TaskFilterPrioritySet) Name() string { return "tasks/filterPrioritySet" }
func (TaskSearchSet) Name() string         { return "tasks/searchSet" }
func (TaskStatusUpdated) Name() string     { return "tasks/statusUpdated" }
func (TasksReordered) Name() string        { return "tasks/reordered" }

func (TeamFetchRequested) Name() string { return "team/fetchRequested" }
func (TeamFetchSucceeded) Name() string { return "team/fetchSucceeded" }
func (TeamFetchFailed) Name() string    { return "team/fetchFailed" }
func (TeamSearchSet) Name() string      { return "team/searchSet" }
