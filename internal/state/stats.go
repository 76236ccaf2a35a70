package state

import (
	"time"

	"projex/internal/models"
)

// Stats derives the dashboard counters from s. A task is overdue when it is
// not done and its due date is before the day of now.
func Stats(s State, now time.Time) models.DashboardStats {
	today := models.Day(now)
	stats := models.DashboardStats{
		TotalProjects: len(s.Projects.Projects),
		TotalTasks:    len(s.Tasks.Tasks),
		TeamMembers:   len(s.Team.Members),
	}
	for _, p := range s.Projects.Projects {
		if p.Status == models.ProjectActive {
			stats.ActiveProjects++
		}
	}
	for _, t := range s.Tasks.Tasks {
		if t.Status == models.TaskDone {
			stats.CompletedTasks++
			continue
		}
		if t.DueDate.Before(today.Time) {
			stats.OverdueTasks++
		}
	}
	return stats
}
