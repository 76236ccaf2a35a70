package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Role is the access level of a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// Presence is the online status shown next to a user's avatar.
type Presence string

const (
	PresenceActive  Presence = "active"
	PresenceAway    Presence = "away"
	PresenceOffline Presence = "offline"
)

// User is an authenticated identity.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	JoinedAt   Date     `json:"joinedAt"`
	Status     Presence  `json:"status"`
}

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectArchived  ProjectStatus = "archived"
)

// ProjectStatuses lists every project status in display order.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectCompleted, ProjectOnHold, ProjectArchived}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	for _, v := range ProjectStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Priority ranks projects and tasks.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

// Project groups tasks and the team members working on them.
// CompletedTasks never exceeds TasksCount.
type Project struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Status         ProjectStatus `json:"status"`
	Priority       Priority      `json:"priority"`
	Progress       int           `json:"progress"`
	StartDate      Date          `json:"startDate"`
	DueDate        Date          `json:"dueDate"`
	TeamMembers    []string      `json:"teamMembers"`
	TasksCount     int           `json:"tasksCount"`
	CompletedTasks int           `json:"completedTasks"`
	CreatedAt      Date          `json:"createdAt"`
	UpdatedAt      Date          `json:"updatedAt"`
	Color          string        `json:"color"`
}

// TaskStatus is a stage of the board pipeline.
type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskInReview   TaskStatus = "in-review"
	TaskDone       TaskStatus = "done"
)

// TaskStatuses enumerates the board pipeline in column order. The set is closed.
var TaskStatuses = []TaskStatus{TaskBacklog, TaskTodo, TaskInProgress, TaskInReview, TaskDone}

// Valid reports whether s is one of the pipeline stages.
func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Task represents a single card on the board.
//
// ProjectName and the Assignee* fields are copies taken when the task was
// created. They are not refreshed when the project or user changes.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         TaskStatus `json:"status"`
	Priority       Priority   `json:"priority"`
	ProjectID      string     `json:"projectId"`
	ProjectName    string     `json:"projectName"`
	AssigneeID     string     `json:"assigneeId"`
	AssigneeName   string     `json:"assigneeName"`
	AssigneeAvatar string     `json:"assigneeAvatar"`
	Tags           []string   `json:"tags"`
	DueDate        Date       `json:"dueDate"`
	CreatedAt      Date       `json:"createdAt"`
	UpdatedAt      Date       `json:"updatedAt"`
}

// TeamMember is a user together with their workload.
type TeamMember struct {
	User
	TasksAssigned  int      `json:"tasksAssigned"`
	TasksCompleted int      `json:"tasksCompleted"`
	Projects       []string `json:"projects"`
}

// DashboardStats summarizes the workspace on the dashboard page.
type DashboardStats struct {
	TotalProjects  int `json:"totalProjects"`
	ActiveProjects int `json:"activeProjects"`
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	TeamMembers    int `json:"teamMembers"`
	OverdueTasks   int `json:"overdueTasks"`
}

// ActivityItem is one entry of the recent activity feed.
type ActivityItem struct {
	ID         string    `json:"id"`
	User       string    `json:"user"`
	UserAvatar string    `json:"userAvatar"`
	Action     string    `json:"action"`
	Target     string    `json:"target"`
	Timestamp  time.Time `json:"timestamp"`
}

// Theme is the persisted appearance preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// DateLayout is the wire and storage format of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day at midnight UTC. It encodes as "2006-01-02" and
// the zero Date encodes as null.
type Date struct {
	time.Time
}

// Day returns the calendar day of t in UTC.
func Day(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate builds the Date y-m-d.
func NewDate(y int, m time.Month, d int) Date {
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts "2006-01-02" or an RFC 3339 timestamp, keeping only the day.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Day(t), nil
}

// String formats d as "2006-01-02", or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes d as a "2006-01-02" string, or null when zero.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON accepts what ParseDate accepts; null and "" give the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AllFilter is the pass-through value for status and priority filters.
const AllFilter = "all"
