// Package mockdata holds the fixed record sets served by the simulated fetches.
// Every accessor returns a fresh copy so callers may keep or modify the result.
package mockdata

import (
	"time"

	"projex/internal/models"
)

const avatarBase = "https://api.dicebear.com/9.x/avataaars/svg?seed="

// Avatar builds the generated avatar URL for a seed.
func Avatar(seed string) string {
	return avatarBase + seed
}

func date(y int, m time.Month, d int) models.Date {
	return models.NewDate(y, m, d)
}

var members = []models.TeamMember{
	{
		User:          models.User{ID: "usr-001", Name: "Jamshed Iqbal", Email: "jamshed@projex.io", Avatar: Avatar("Jamshed"), Role: models.RoleAdmin, Department: "Engineering", JoinedAt: date(2023, time.January, 15), Status: models.PresenceActive},
		TasksAssigned: 12, TasksCompleted: 8, Projects: []string{"proj-001", "proj-002", "proj-004"},
	},
	{
		User:          models.User{ID: "usr-002", Name: "Sarah Chen", Email: "sarah@projex.io", Avatar: Avatar("Sarah"), Role: models.RoleManager, Department: "Design", JoinedAt: date(2023, time.March, 2), Status: models.PresenceActive},
		TasksAssigned: 9, TasksCompleted: 7, Projects: []string{"proj-001", "proj-003"},
	},
	{
		User:          models.User{ID: "usr-003", Name: "Marcus Johnson", Email: "marcus@projex.io", Avatar: Avatar("Marcus"), Role: models.RoleMember, Department: "Engineering", JoinedAt: date(2023, time.May, 20), Status: models.PresenceAway},
		TasksAssigned: 7, TasksCompleted: 3, Projects: []string{"proj-002", "proj-005"},
	},
	{
		User:          models.User{ID: "usr-004", Name: "Aisha Patel", Email: "aisha@projex.io", Avatar: Avatar("Aisha"), Role: models.RoleMember, Department: "Marketing", JoinedAt: date(2023, time.August, 11), Status: models.PresenceActive},
		TasksAssigned: 5, TasksCompleted: 5, Projects: []string{"proj-003", "proj-006"},
	},
	{
		User:          models.User{ID: "usr-005", Name: "Diego Ramirez", Email: "diego@projex.io", Avatar: Avatar("Diego"), Role: models.RoleMember, Department: "Quality Assurance", JoinedAt: date(2024, time.February, 5), Status: models.PresenceOffline},
		TasksAssigned: 6, TasksCompleted: 2, Projects: []string{"proj-001", "proj-005"},
	},
	{
		User:          models.User{ID: "usr-006", Name: "Emma Wilson", Email: "emma@projex.io", Avatar: Avatar("Emma"), Role: models.RoleManager, Department: "Product", JoinedAt: date(2024, time.April, 18), Status: models.PresenceActive},
		TasksAssigned: 4, TasksCompleted: 1, Projects: []string{"proj-004", "proj-006"},
	},
}

var projects = []models.Project{
	{ID: "proj-001", Name: "Website Redesign", Description: "Complete overhaul of the company website with modern design", Status: models.ProjectActive, Priority: models.PriorityHigh, Progress: 65, StartDate: date(2026, time.June, 1), DueDate: date(2026, time.December, 15), TeamMembers: []string{"usr-001", "usr-002", "usr-005"}, TasksCount: 24, CompletedTasks: 16, CreatedAt: date(2026, time.May, 28), UpdatedAt: date(2026, time.October, 10), Color: "#6366f1"},
	{ID: "proj-002", Name: "Mobile App v2", Description: "Second major release of the customer mobile application", Status: models.ProjectActive, Priority: models.PriorityCritical, Progress: 40, StartDate: date(2026, time.July, 15), DueDate: date(2027, time.January, 31), TeamMembers: []string{"usr-001", "usr-003"}, TasksCount: 32, CompletedTasks: 13, CreatedAt: date(2026, time.July, 10), UpdatedAt: date(2026, time.October, 12), Color: "#f43f5e"},
	{ID: "proj-003", Name: "Brand Guidelines", Description: "Unified brand book for marketing and design teams", Status: models.ProjectCompleted, Priority: models.PriorityMedium, Progress: 100, StartDate: date(2026, time.February, 1), DueDate: date(2026, time.May, 30), TeamMembers: []string{"usr-002", "usr-004"}, TasksCount: 14, CompletedTasks: 14, CreatedAt: date(2026, time.January, 25), UpdatedAt: date(2026, time.May, 29), Color: "#10b981"},
	{ID: "proj-004", Name: "API Gateway Migration", Description: "Move internal services behind the new API gateway", Status: models.ProjectOnHold, Priority: models.PriorityHigh, Progress: 20, StartDate: date(2026, time.August, 1), DueDate: date(2026, time.November, 30), TeamMembers: []string{"usr-001", "usr-006"}, TasksCount: 18, CompletedTasks: 4, CreatedAt: date(2026, time.July, 29), UpdatedAt: date(2026, time.September, 2), Color: "#f59e0b"},
	{ID: "proj-005", Name: "QA Automation", Description: "End-to-end test automation for the release pipeline", Status: models.ProjectActive, Priority: models.PriorityMedium, Progress: 55, StartDate: date(2026, time.March, 10), DueDate: date(2026, time.October, 1), TeamMembers: []string{"usr-003", "usr-005"}, TasksCount: 20, CompletedTasks: 11, CreatedAt: date(2026, time.March, 5), UpdatedAt: date(2026, time.September, 28), Color: "#8b5cf6"},
	{ID: "proj-006", Name: "Legacy CRM Sunset", Description: "Archive the legacy CRM after data migration", Status: models.ProjectArchived, Priority: models.PriorityLow, Progress: 100, StartDate: date(2025, time.September, 1), DueDate: date(2026, time.January, 15), TeamMembers: []string{"usr-004", "usr-006"}, TasksCount: 9, CompletedTasks: 9, CreatedAt: date(2025, time.August, 20), UpdatedAt: date(2026, time.January, 14), Color: "#6366f1"},
}

func task(id, title, desc string, status models.TaskStatus, prio models.Priority, projectID, assigneeID string, tags []string, due, created models.Date) models.Task {
	t := models.Task{
		ID: id, Title: title, Description: desc, Status: status, Priority: prio,
		ProjectID: projectID, AssigneeID: assigneeID, Tags: tags,
		DueDate: due, CreatedAt: created, UpdatedAt: created,
	}
	for _, p := range projects {
		if p.ID == projectID {
			t.ProjectName = p.Name
		}
	}
	for _, m := range members {
		if m.ID == assigneeID {
			t.AssigneeName = m.Name
			t.AssigneeAvatar = m.Avatar
		}
	}
	return t
}

var tasks = []models.Task{
	task("task-001", "Design new homepage hero", "Create hero section mockups in three variants", models.TaskDone, models.PriorityHigh, "proj-001", "usr-002", []string{"design", "ui"}, date(2026, time.September, 20), date(2026, time.August, 1)),
	task("task-002", "Implement responsive navigation", "Mobile-first navigation with accessible menu", models.TaskInProgress, models.PriorityHigh, "proj-001", "usr-001", []string{"frontend"}, date(2026, time.October, 25), date(2026, time.August, 12)),
	task("task-003", "Cross-browser testing", "Verify layouts on the supported browser matrix", models.TaskTodo, models.PriorityMedium, "proj-001", "usr-005", []string{"qa"}, date(2026, time.November, 10), date(2026, time.September, 3)),
	task("task-004", "Set up push notifications", "Integrate the push provider for iOS and Android", models.TaskInReview, models.PriorityCritical, "proj-002", "usr-003", []string{"mobile", "backend"}, date(2026, time.October, 30), date(2026, time.August, 20)),
	task("task-005", "Offline sync strategy", "Decide conflict resolution for offline edits", models.TaskBacklog, models.PriorityHigh, "proj-002", "usr-001", []string{"architecture"}, date(2026, time.December, 1), date(2026, time.September, 1)),
	task("task-006", "Onboarding flow screens", "Build the four onboarding screens", models.TaskTodo, models.PriorityMedium, "proj-002", "usr-003", []string{"mobile", "ui"}, date(2026, time.November, 15), date(2026, time.September, 8)),
	task("task-007", "Typography scale", "Finalize heading and body type scale", models.TaskDone, models.PriorityLow, "proj-003", "usr-002", []string{"design"}, date(2026, time.April, 2), date(2026, time.February, 10)),
	task("task-008", "Gateway rate limiting", "Configure per-tenant rate limits", models.TaskBacklog, models.PriorityHigh, "proj-004", "usr-006", []string{"backend", "infra"}, date(2026, time.November, 20), date(2026, time.August, 5)),
	task("task-009", "Migrate auth service", "Route the auth service through the gateway", models.TaskInProgress, models.PriorityCritical, "proj-004", "usr-001", []string{"backend"}, date(2026, time.October, 5), date(2026, time.August, 9)),
	task("task-010", "Flaky test triage", "Quarantine and fix the flakiest suites", models.TaskInReview, models.PriorityMedium, "proj-005", "usr-005", []string{"qa"}, date(2026, time.September, 25), date(2026, time.July, 1)),
	task("task-011", "Checkout E2E suite", "Cover the checkout flow end to end", models.TaskTodo, models.PriorityHigh, "proj-005", "usr-003", []string{"qa", "e2e"}, date(2026, time.October, 20), date(2026, time.August, 15)),
	task("task-012", "Export CRM contacts", "Export and verify contact records", models.TaskDone, models.PriorityMedium, "proj-006", "usr-004", []string{"data"}, date(2025, time.December, 1), date(2025, time.September, 10)),
}

var activity = []models.ActivityItem{
	{ID: "act-001", User: "Sarah Chen", UserAvatar: Avatar("Sarah"), Action: "completed", Target: "Design new homepage hero", Timestamp: time.Date(2026, time.October, 12, 14, 30, 0, 0, time.UTC)},
	{ID: "act-002", User: "Marcus Johnson", UserAvatar: Avatar("Marcus"), Action: "moved to review", Target: "Set up push notifications", Timestamp: time.Date(2026, time.October, 12, 11, 5, 0, 0, time.UTC)},
	{ID: "act-003", User: "Jamshed Iqbal", UserAvatar: Avatar("Jamshed"), Action: "created", Target: "Offline sync strategy", Timestamp: time.Date(2026, time.October, 11, 16, 45, 0, 0, time.UTC)},
	{ID: "act-004", User: "Emma Wilson", UserAvatar: Avatar("Emma"), Action: "put on hold", Target: "API Gateway Migration", Timestamp: time.Date(2026, time.October, 10, 9, 20, 0, 0, time.UTC)},
	{ID: "act-005", User: "Diego Ramirez", UserAvatar: Avatar("Diego"), Action: "commented on", Target: "Flaky test triage", Timestamp: time.Date(2026, time.October, 9, 17, 0, 0, 0, time.UTC)},
	{ID: "act-006", User: "Aisha Patel", UserAvatar: Avatar("Aisha"), Action: "archived", Target: "Legacy CRM Sunset", Timestamp: time.Date(2026, time.October, 8, 10, 15, 0, 0, time.UTC)},
	{ID: "act-007", User: "Jamshed Iqbal", UserAvatar: Avatar("Jamshed"), Action: "joined", Target: "Mobile App v2", Timestamp: time.Date(2026, time.October, 7, 8, 0, 0, 0, time.UTC)},
}

// Projects returns the fixed project list.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		p.TeamMembers = append([]string(nil), p.TeamMembers...)
		out[i] = p
	}
	return out
}

// Tasks returns the fixed task list.
func Tasks() []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		t.Tags = append([]string(nil), t.Tags...)
		out[i] = t
	}
	return out
}

// TeamMembers returns the fixed team.
func TeamMembers() []models.TeamMember {
	out := make([]models.TeamMember, len(members))
	for i, m := range members {
		m.Projects = append([]string(nil), m.Projects...)
		out[i] = m
	}
	return out
}

// Activity returns the recent activity feed, newest first.
func Activity() []models.ActivityItem {
	return append([]models.ActivityItem(nil), activity...)
}
