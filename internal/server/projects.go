package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projex/internal/actions"
	"projex/internal/filter"
	"projex/internal/models"
)

type projectViewRequest struct {
	Filter      *string `json:"filter"`
	SearchQuery *string `json:"searchQuery"`
}

type selectProjectRequest struct {
	ID string `json:"id"`
}

// ensureProjects fetches the project list unless a fetch already succeeded.
func (s *Server) ensureProjects(c *gin.Context) bool {
	if s.store.State().Projects.Loaded && c.Query("refresh") != "true" {
		return true
	}
	if _, err := s.actions.FetchProjects(c.Request.Context()); err != nil {
		s.respondAction(c, err)
		return false
	}
	return true
}

// handleListProjects returns the projects visible under the current filter
// and search. Pass ?refresh=true to fetch again.
func (s *Server) handleListProjects(c *gin.Context) {
	if !s.ensureProjects(c) {
		return
	}

	p := s.store.State().Projects
	respondSuccess(c, http.StatusOK, gin.H{
		"projects":        filter.Projects(p.Projects, p.Filter, p.SearchQuery),
		"total":           len(p.Projects),
		"filter":          p.Filter,
		"searchQuery":     p.SearchQuery,
		"selectedProject": p.SelectedProject,
		"isLoading":       p.IsLoading,
		"error":           p.Error,
	})
}

// handleCreateProject creates a new project entity.
func (s *Server) handleCreateProject(c *gin.Context) {
	var req actions.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	// Load first so the later fetch does not replace the new project.
	if !s.ensureProjects(c) {
		return
	}

	project, err := s.actions.CreateProject(c.Request.Context(), req)
	if err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"project": project})
}

// handleProjectView updates the status filter and search query.
func (s *Server) handleProjectView(c *gin.Context) {
	var req projectViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Filter != nil {
		s.actions.SetProjectFilter(*req.Filter)
	}
	if req.SearchQuery != nil {
		s.actions.SetProjectSearch(*req.SearchQuery)
	}
	p := s.store.State().Projects
	respondSuccess(c, http.StatusOK, gin.H{"filter": p.Filter, "searchQuery": p.SearchQuery})
}

// handleSelectProject selects a loaded project by id; an empty id clears it.
func (s *Server) handleSelectProject(c *gin.Context) {
	var req selectProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.ID == "" {
		s.actions.SelectProject(nil)
		respondSuccess(c, http.StatusOK, gin.H{"selectedProject": nil})
		return
	}

	var selected *models.Project
	for _, p := range s.store.State().Projects.Projects {
		if p.ID == req.ID {
			selected = &p
			break
		}
	}
	if selected == nil {
		s.respondAction(c, &actions.Failure{Kind: actions.ErrNotFound, Message: "Project not found"})
		return
	}
	s.actions.SelectProject(selected)
	respondSuccess(c, http.StatusOK, gin.H{"selectedProject": selected})
}
