// Package filter implements the list views' status filters and text search.
// Results keep the input order and are never nil.
package filter

import (
	"strings"

	"projex/internal/models"
)

// Projects keeps projects whose status equals status (models.AllFilter keeps
// all) and whose name or description contains query, ignoring case.
func Projects(list []models.Project, status, query string) []models.Project {
	out := []models.Project{}
	for _, p := range list {
		if !matchesEnum(string(p.Status), status) {
			continue
		}
		if !containsAny(query, p.Name, p.Description) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Team keeps members whose name, email, department or role contains query.
func Team(list []models.TeamMember, query string) []models.TeamMember {
	out := []models.TeamMember{}
	for _, m := range list {
		if containsAny(query, m.Name, m.Email, m.Department, string(m.Role)) {
			out = append(out, m)
		}
	}
	return out
}

// TaskCriteria selects tasks. Empty Status or Priority behaves like models.AllFilter.
type TaskCriteria struct {
	Status   string
	Priority string
	Query    string
}

// Tasks keeps the tasks matching every criterion. The query is matched
// against title, description, project name and tags.
func Tasks(list []models.Task, c TaskCriteria) []models.Task {
	out := []models.Task{}
	for _, t := range list {
		if !matchesEnum(string(t.Status), c.Status) || !matchesEnum(string(t.Priority), c.Priority) {
			continue
		}
		fields := append([]string{t.Title, t.Description, t.ProjectName}, t.Tags...)
		if !containsAny(c.Query, fields...) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesEnum(value, want string) bool {
	return want == "" || want == models.AllFilter || value == want
}

func containsAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
