package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projex/internal/actions"
	"projex/internal/filter"
	"projex/internal/kanban"
)

type taskViewRequest struct {
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	SearchQuery *string `json:"searchQuery"`
}

type dropRequest struct {
	ActiveID string `json:"activeId" binding:"required"`
	OverID   string `json:"overId"`
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

// ensureTasks fetches the task list unless a fetch already succeeded.
func (s *Server) ensureTasks(c *gin.Context) bool {
	if s.store.State().Tasks.Loaded && c.Query("refresh") != "true" {
		return true
	}
	if _, err := s.actions.FetchTasks(c.Request.Context()); err != nil {
		s.respondAction(c, err)
		return false
	}
	return true
}

// handleListTasks returns the task list. The stored status and priority
// selections are reported but not applied; only explicit status, priority and
// q query parameters narrow the result.
func (s *Server) handleListTasks(c *gin.Context) {
	if !s.ensureTasks(c) {
		return
	}
	t := s.store.State().Tasks

	list := t.Tasks
	if c.Query("status") != "" || c.Query("priority") != "" || c.Query("q") != "" {
		list = filter.Tasks(list, filter.TaskCriteria{
			Status:   c.Query("status"),
			Priority: c.Query("priority"),
			Query:    c.Query("q"),
		})
	}
	respondSuccess(c, http.StatusOK, gin.H{
		"tasks":          list,
		"filterStatus":   t.FilterStatus,
		"filterPriority": t.FilterPriority,
		"searchQuery":    t.SearchQuery,
		"isLoading":      t.IsLoading,
		"error":          t.Error,
	})
}

// handleCreateTask inserts a new task at the top of the list.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req actions.TaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if !s.ensureTasks(c) {
		return
	}

	task, err := s.actions.CreateTask(c.Request.Context(), req)
	if err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"task": task})
}

// handleTaskView stores the task filter selections.
func (s *Server) handleTaskView(c *gin.Context) {
	var req taskViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status != nil {
		s.actions.SetTaskStatusFilter(*req.Status)
	}
	if req.Priority != nil {
		s.actions.SetTaskPriorityFilter(*req.Priority)
	}
	if req.SearchQuery != nil {
		s.actions.SetTaskSearch(*req.SearchQuery)
	}
	t := s.store.State().Tasks
	respondSuccess(c, http.StatusOK, gin.H{
		"filterStatus":   t.FilterStatus,
		"filterPriority": t.FilterPriority,
		"searchQuery":    t.SearchQuery,
	})
}

// handleBoard returns the tasks grouped into board columns.
func (s *Server) handleBoard(c *gin.Context) {
	if !s.ensureTasks(c) {
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"columns": kanban.Group(s.store.State().Tasks.Tasks)})
}

// handleDrop completes a drag gesture. Drops that change nothing, including
// drops of unknown tasks, still succeed with moved=false.
func (s *Server) handleDrop(c *gin.Context) {
	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	moved := s.actions.Drop(req.ActiveID, req.OverID)
	respondSuccess(c, http.StatusOK, gin.H{
		"moved":   moved,
		"columns": kanban.Group(s.store.State().Tasks.Tasks),
	})
}

// handleReorder keeps a client-side ordering until the next fetch.
func (s *Server) handleReorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	s.actions.Reorder(req.IDs)
	respondSuccess(c, http.StatusOK, gin.H{"columns": kanban.Group(s.store.State().Tasks.Tasks)})
}
