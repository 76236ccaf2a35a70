package actions

import (
	"context"
	"net/url"
	"strings"

	"projex/internal/mockdata"
	"projex/internal/models"
	"projex/internal/state"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgInvalidCredentials  = "Invalid email or password"
	msgPasswordMismatch    = "Passwords do not match"
	msgEmailTaken          = "An account with this email already exists"
	msgRegistered          = "Registration successful! Please sign in."

	defaultDepartment = "Engineering"
)

// LoginCredentials is the sign-in form.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCredentials is the sign-up form.
type RegisterCredentials struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterResult is returned by a successful registration.
type RegisterResult struct {
	User    models.User `json:"user"`
	Message string      `json:"message"`
}

// GuestUserID identifies the shared guest session.
const GuestUserID = "guest"

var socialProviders = map[string]string{
	"google": "Google",
	"github": "GitHub",
	"apple":  "Apple",
}

// run executes one request lifecycle: requested, work, then succeeded or failed.
func run[T any](a *Actions, op string, requested state.Event, work func() (T, error), succeeded func(T) state.Event, failed func(string) state.Event) (T, error) {
	a.store.Dispatch(requested)
	out, err := work()
	if err != nil {
		a.logger.Info().Str("op", op).Str("reason", Message(err)).Msg("request failed")
		a.store.Dispatch(failed(Message(err)))
		var zero T
		return zero, err
	}
	a.store.Dispatch(succeeded(out))
	return out, nil
}

func authRun(a *Actions, op state.AuthOp, work func() (*models.User, error)) (*models.User, error) {
	return run(a, "auth/"+string(op), state.AuthRequested{Op: op}, work,
		func(u *models.User) state.Event { return state.AuthSucceeded{Op: op, User: u} },
		func(msg string) state.Event { return state.AuthFailed{Op: op, Message: msg} },
	)
}

// Login signs in a registered user. Unknown emails and wrong passwords fail
// with the same message.
func (a *Actions) Login(ctx context.Context, c LoginCredentials) (*models.User, error) {
	return authRun(a, state.OpLogin, func() (*models.User, error) {
		if err := a.wait(ctx, "login", a.delays.Login); err != nil {
			return nil, err
		}
		if c.Email == "" || c.Password == "" {
			return nil, fail(ErrValidation, msgCredentialsRequired)
		}

		a.accounts.Lock()
		defer a.accounts.Unlock()
		users, err := a.registeredUsers(ctx)
		if err != nil {
			return nil, a.unexpected("login", err)
		}
		user, ok := findUser(users, c.Email)
		if !ok {
			return nil, fail(ErrInvalidCredentials, msgInvalidCredentials)
		}
		passwords, err := a.passwords(ctx)
		if err != nil {
			return nil, a.unexpected("login", err)
		}
		if stored, ok := passwords[c.Email]; !ok || stored != c.Password {
			return nil, fail(ErrInvalidCredentials, msgInvalidCredentials)
		}

		if err := state.SaveJSON(ctx, a.persist, state.KeyCurrentUser, user); err != nil {
			return nil, a.unexpected("login", err)
		}
		return &user, nil
	})
}

// Register creates an account. It does not sign the new user in.
func (a *Actions) Register(ctx context.Context, c RegisterCredentials) (RegisterResult, error) {
	var result RegisterResult
	_, err := authRun(a, state.OpRegister, func() (*models.User, error) {
		if err := a.wait(ctx, "register", a.delays.Register); err != nil {
			return nil, err
		}
		if c.Password != c.ConfirmPassword {
			return nil, fail(ErrValidation, msgPasswordMismatch)
		}

		a.accounts.Lock()
		defer a.accounts.Unlock()
		users, err := a.registeredUsers(ctx)
		if err != nil {
			return nil, a.unexpected("register", err)
		}
		if _, taken := findUser(users, c.Email); taken {
			return nil, fail(ErrConflict, msgEmailTaken)
		}

		user := models.User{
			ID:         a.newID("usr"),
			Name:       c.Name,
			Email:      c.Email,
			Avatar:     mockdata.Avatar(url.QueryEscape(c.Name)),
			Role:       models.RoleMember,
			Department: defaultDepartment,
			JoinedAt:   models.Day(a.clock.Now()),
			Status:     models.PresenceActive,
		}
		passwords, err := a.passwords(ctx)
		if err != nil {
			return nil, a.unexpected("register", err)
		}
		passwords[c.Email] = c.Password

		if err := state.SaveJSON(ctx, a.persist, state.KeyRegisteredUsers, append(users, user)); err != nil {
			return nil, a.unexpected("register", err)
		}
		if err := state.SaveJSON(ctx, a.persist, state.KeyPasswords, passwords); err != nil {
			return nil, a.unexpected("register", err)
		}
		result = RegisterResult{User: user, Message: msgRegistered}
		// the auth slice must not pick the user up
		return nil, nil
	})
	if err != nil {
		return RegisterResult{}, err
	}
	return result, nil
}

// Logout ends the session and forgets the persisted user.
func (a *Actions) Logout(ctx context.Context) error {
	_, err := authRun(a, state.OpLogout, func() (*models.User, error) {
		if err := a.wait(ctx, "logout", a.delays.Logout); err != nil {
			return nil, err
		}
		if err := a.persist.Delete(ctx, state.KeyCurrentUser); err != nil {
			return nil, a.unexpected("logout", err)
		}
		return nil, nil
	})
	return err
}

// GuestLogin starts a session as the shared guest identity.
func (a *Actions) GuestLogin(ctx context.Context) (*models.User, error) {
	return authRun(a, state.OpGuest, func() (*models.User, error) {
		if err := a.wait(ctx, "guest", a.delays.Guest); err != nil {
			return nil, err
		}
		user := models.User{
			ID:         GuestUserID,
			Name:       "Guest User",
			Email:      "guest@projex.io",
			Avatar:     mockdata.Avatar("Guest"),
			Role:       models.RoleMember,
			Department: defaultDepartment,
			JoinedAt:   models.Day(a.clock.Now()),
			Status:     models.PresenceActive,
		}
		if err := state.SaveJSON(ctx, a.persist, state.KeyCurrentUser, user); err != nil {
			return nil, a.unexpected("guest", err)
		}
		return &user, nil
	})
}

// SocialLogin signs in through an external identity provider (google,
// github or apple).
func (a *Actions) SocialLogin(ctx context.Context, provider string) (*models.User, error) {
	provider = strings.ToLower(provider)
	return authRun(a, state.OpSocial, func() (*models.User, error) {
		if err := a.wait(ctx, "social", a.delays.Social); err != nil {
			return nil, err
		}
		name, ok := socialProviders[provider]
		if !ok {
			return nil, fail(ErrValidation, "Failed to login with "+provider)
		}
		user := models.User{
			ID:         a.newID("usr"),
			Name:       "User (" + name + ")",
			Email:      "user@" + provider + ".com",
			Avatar:     mockdata.Avatar(provider),
			Role:       models.RoleMember,
			Department: defaultDepartment,
			JoinedAt:   models.Day(a.clock.Now()),
			Status:     models.PresenceActive,
		}
		if err := state.SaveJSON(ctx, a.persist, state.KeyCurrentUser, user); err != nil {
			return nil, a.unexpected("social", err)
		}
		return &user, nil
	})
}

// ClearAuthError dismisses the auth error banner.
func (a *Actions) ClearAuthError() {
	a.store.Dispatch(state.AuthErrorCleared{})
}

func (a *Actions) registeredUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if _, err := state.LoadJSON(ctx, a.persist, state.KeyRegisteredUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// passwords loads the email to password map. Passwords are stored as typed.
func (a *Actions) passwords(ctx context.Context) (map[string]string, error) {
	passwords := map[string]string{}
	if _, err := state.LoadJSON(ctx, a.persist, state.KeyPasswords, &passwords); err != nil {
		return nil, err
	}
	return passwords, nil
}

func (a *Actions) unexpected(op string, err error) error {
	a.logger.Error().Err(err).Str("op", op).Msg("persistence failure")
	return unexpected(err)
}

func findUser(users []models.User, email string) (models.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}
