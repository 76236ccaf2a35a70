package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projex/internal/filter"
)

type teamViewRequest struct {
	SearchQuery string `json:"searchQuery"`
}

// handleListTeam returns the members matching the stored search query.
func (s *Server) handleListTeam(c *gin.Context) {
	st := s.store.State()
	if !st.Team.Loaded || c.Query("refresh") == "true" {
		if _, err := s.actions.FetchTeam(c.Request.Context()); err != nil {
			s.respondAction(c, err)
			return
		}
		st = s.store.State()
	}
	t := st.Team
	respondSuccess(c, http.StatusOK, gin.H{
		"members":     filter.Team(t.Members, t.SearchQuery),
		"total":       len(t.Members),
		"searchQuery": t.SearchQuery,
		"isLoading":   t.IsLoading,
		"error":       t.Error,
	})
}

func (s *Server) handleTeamView(c *gin.Context) {
	var req teamViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	s.actions.SetTeamSearch(req.SearchQuery)
	respondSuccess(c, http.StatusOK, gin.H{"searchQuery": s.store.State().Team.SearchQuery})
}
