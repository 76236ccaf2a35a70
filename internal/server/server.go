package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"projex/internal/actions"
	"projex/internal/session"
	"projex/internal/state"
)

// Server exposes the dashboard store over a JSON API and serves the frontend.
type Server struct {
	engine    *gin.Engine
	actions   *actions.Actions
	store     *state.Store
	sessions  *session.Issuer
	resets    *resetRegistry
	logger    zerolog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured.
func New(act *actions.Actions, sessions *session.Issuer, logger zerolog.Logger, staticDir string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{
		engine:    router,
		actions:   act,
		store:     act.Store(),
		sessions:  sessions,
		resets:    newResetRegistry(),
		logger:    logger,
		staticDir: staticDir,
	}
	router.Use(srv.requestLogger())

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		auth := api.Group("/auth")
		{
			auth.POST("/login", s.handleLogin)
			auth.POST("/register", s.handleRegister)
			auth.POST("/guest", s.handleGuestLogin)
			auth.POST("/social/:provider", s.handleSocialLogin)
			auth.DELETE("/error", s.handleClearAuthError)

			auth.POST("/reset", s.handleResetStart)
			auth.POST("/reset/:id/resend", s.handleResetResend)
			auth.POST("/reset/:id/code", s.handleResetCode)
			auth.POST("/reset/:id/password", s.handleResetPassword)

			auth.GET("/me", s.requireSession(), s.handleMe)
			auth.POST("/logout", s.requireSession(), s.handleLogout)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/theme", s.handleGetTheme)
			settings.PUT("/theme", s.handleSetTheme)
		}

		authed := api.Group("", s.requireSession())
		{
			authed.GET("/dashboard", s.handleDashboard)
			authed.GET("/activity", s.handleActivity)

			projects := authed.Group("/projects")
			{
				projects.GET("", s.handleListProjects)
				projects.POST("", s.denyGuest(), s.handleCreateProject)
				projects.PUT("/view", s.handleProjectView)
				projects.PUT("/selected", s.handleSelectProject)
			}

			tasks := authed.Group("/tasks")
			{
				tasks.GET("", s.handleListTasks)
				tasks.POST("", s.handleCreateTask)
				tasks.PUT("/view", s.handleTaskView)
			}

			board := authed.Group("/board")
			{
				board.GET("", s.handleBoard)
				board.POST("/drop", s.handleDrop)
				board.PUT("/order", s.handleReorder)
			}

			team := authed.Group("/team")
			{
				team.GET("", s.handleListTeam)
				team.PUT("/view", s.handleTeamView)
			}
		}
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLogger logs every API request after it completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}

// statusFor maps an action error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, actions.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, actions.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, actions.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, actions.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	msg := actions.Message(err)
	var f *actions.Failure
	if !errors.As(err, &f) && status < http.StatusInternalServerError {
		msg = err.Error()
	}
	s.logger.Warn().Str("path", c.FullPath()).Int("status", status).Err(err).Msg("request failed")
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// respondAction reports an action error with its mapped status.
func (s *Server) respondAction(c *gin.Context, err error) {
	s.respondError(c, statusFor(err), err)
}

// respondSuccess writes payload as JSON, or only the status when payload is nil.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
