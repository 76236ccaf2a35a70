package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projex/internal/mockdata"
	"projex/internal/models"
)

// handleDashboard loads every slice and returns the summary.
func (s *Server) handleDashboard(c *gin.Context) {
	dash, err := s.actions.LoadDashboard(c.Request.Context())
	if err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dash)
}

func (s *Server) handleActivity(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"activity": mockdata.Activity()})
}

type themeRequest struct {
	Theme models.Theme `json:"theme"`
}

func (s *Server) handleGetTheme(c *gin.Context) {
	theme, err := s.actions.Theme(c.Request.Context())
	if err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"theme": theme})
}

func (s *Server) handleSetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := s.actions.SetTheme(c.Request.Context(), req.Theme); err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"theme": req.Theme})
}
