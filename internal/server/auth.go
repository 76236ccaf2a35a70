package server

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"projex/internal/actions"
	"projex/internal/models"
	"projex/internal/session"
)

const claimsKey = "session"

var (
	errMissingToken   = errors.New("missing bearer token")
	errSessionExpired = errors.New("session is no longer active")
	errGuestForbidden = errors.New("guest sessions cannot perform this action")
)

// requireSession accepts requests carrying a valid token for the user that
// is currently signed in.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			s.respondError(c, http.StatusUnauthorized, errMissingToken)
			return
		}
		claims, err := s.sessions.Parse(strings.TrimSpace(raw))
		if err != nil {
			s.respondError(c, http.StatusUnauthorized, err)
			return
		}
		current := s.store.State().Auth.User
		if current == nil || current.ID != claims.UserID {
			s.respondError(c, http.StatusUnauthorized, errSessionExpired)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// denyGuest rejects guest sessions.
func (s *Server) denyGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := c.Get(claimsKey); ok && claims.(*session.Claims).Guest {
			s.respondError(c, http.StatusForbidden, errGuestForbidden)
			return
		}
		c.Next()
	}
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *Server) signIn(c *gin.Context, user *models.User, err error) {
	if err != nil {
		s.respondAction(c, err)
		return
	}
	token, err := s.sessions.Issue(user.ID, string(user.Role), user.ID == actions.GuestUserID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, loginResponse{Token: token, User: user})
}

// handleLogin signs a registered user in.
func (s *Server) handleLogin(c *gin.Context) {
	var req actions.LoginCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	user, err := s.actions.Login(c.Request.Context(), req)
	s.signIn(c, user, err)
}

// handleRegister creates an account without signing it in.
func (s *Server) handleRegister(c *gin.Context) {
	var req actions.RegisterCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := s.actions.Register(c.Request.Context(), req)
	if err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, result)
}

func (s *Server) handleGuestLogin(c *gin.Context) {
	user, err := s.actions.GuestLogin(c.Request.Context())
	s.signIn(c, user, err)
}

func (s *Server) handleSocialLogin(c *gin.Context) {
	user, err := s.actions.SocialLogin(c.Request.Context(), c.Param("provider"))
	s.signIn(c, user, err)
}

func (s *Server) handleLogout(c *gin.Context) {
	if err := s.actions.Logout(c.Request.Context()); err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "signed out"})
}

// handleMe returns the auth slice.
func (s *Server) handleMe(c *gin.Context) {
	respondSuccess(c, http.StatusOK, s.store.State().Auth)
}

func (s *Server) handleClearAuthError(c *gin.Context) {
	s.actions.ClearAuthError()
	respondSuccess(c, http.StatusNoContent, nil)
}

const (
	resetFlowTTL  = 15 * time.Minute
	maxResetFlows = 1024
)

type resetEntry struct {
	flow    *actions.PasswordReset
	created time.Time
}

// resetRegistry tracks open password reset flows by id. Flows expire after
// resetFlowTTL and at most maxResetFlows are kept; the oldest goes first.
type resetRegistry struct {
	mu    sync.Mutex
	now   func() time.Time
	flows map[string]resetEntry
}

func newResetRegistry() *resetRegistry {
	return &resetRegistry{now: time.Now, flows: make(map[string]resetEntry)}
}

func (r *resetRegistry) add(flow *actions.PasswordReset) string {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweep(now)
	for len(r.flows) >= maxResetFlows {
		r.dropOldest()
	}
	r.flows[id] = resetEntry{flow: flow, created: now}
	return id
}

// sweep drops expired flows. Callers hold mu.
func (r *resetRegistry) sweep(now time.Time) {
	for id, e := range r.flows {
		if now.Sub(e.created) >= resetFlowTTL {
			delete(r.flows, id)
		}
	}
}

func (r *resetRegistry) dropOldest() {
	var (
		oldest string
		at     time.Time
	)
	for id, e := range r.flows {
		if oldest == "" || e.created.Before(at) {
			oldest, at = id, e.created
		}
	}
	delete(r.flows, oldest)
}

func (r *resetRegistry) get(id string) (*actions.PasswordReset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.flows[id]
	if !ok {
		return nil, false
	}
	if r.now().Sub(e.created) >= resetFlowTTL {
		delete(r.flows, id)
		return nil, false
	}
	return e.flow, true
}

func (r *resetRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, id)
}

func (r *resetRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flows)
}

type resetEmailRequest struct {
	Email string `json:"email"`
}

type resetCodeRequest struct {
	Code string `json:"code"`
}

type resetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// handleResetStart runs the email step. The verification code is returned in
// the response because no mail is sent.
func (s *Server) handleResetStart(c *gin.Context) {
	var req resetEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	flow := s.actions.NewPasswordReset()
	code, err := flow.SubmitEmail(c.Request.Context(), req.Email)
	if err != nil {
		s.respondAction(c, err)
		return
	}
	id := s.resets.add(flow)
	respondSuccess(c, http.StatusCreated, gin.H{"id": id, "step": flow.Step(), "code": code})
}

func (s *Server) resetFlow(c *gin.Context) (*actions.PasswordReset, bool) {
	flow, ok := s.resets.get(c.Param("id"))
	if !ok {
		s.respondError(c, http.StatusNotFound, errors.New("password reset not found"))
	}
	return flow, ok
}

func (s *Server) handleResetResend(c *gin.Context) {
	flow, ok := s.resetFlow(c)
	if !ok {
		return
	}
	code, err := flow.Resend()
	if err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"step": flow.Step(), "code": code})
}

func (s *Server) handleResetCode(c *gin.Context) {
	flow, ok := s.resetFlow(c)
	if !ok {
		return
	}
	var req resetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := flow.SubmitCode(c.Request.Context(), req.Code); err != nil {
		s.respondAction(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"step": flow.Step()})
}

func (s *Server) handleResetPassword(c *gin.Context) {
	flow, ok := s.resetFlow(c)
	if !ok {
		return
	}
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := flow.SubmitPassword(c.Request.Context(), req.Password, req.ConfirmPassword); err != nil {
		s.respondAction(c, err)
		return
	}
	s.resets.remove(c.Param("id"))
	respondSuccess(c, http.StatusOK, gin.H{"step": flow.Step()})
}
