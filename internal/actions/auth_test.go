package actions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projex/internal/models"
	"projex/internal/state"
	"projex/internal/storage/memory"
)

func TestRegisterThenLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.act.Register(ctx, RegisterCredentials{
		Name: "Ada Lovelace", Email: "ada@example.com", Password: "engine42", ConfirmPassword: "engine42",
	})
	require.NoError(t, err)
	assert.Equal(t, "Registration successful! Please sign in.", res.Message)
	assert.Equal(t, "usr-001", res.User.ID)
	assert.Equal(t, models.RoleMember, res.User.Role)
	assert.Equal(t, "Engineering", res.User.Department)
	assert.Equal(t, models.Day(testNow), res.User.JoinedAt)
	assert.False(t, f.store.State().Auth.IsAuthenticated, "registration does not sign in")

	user, err := f.act.Login(ctx, LoginCredentials{Email: "ada@example.com", Password: "engine42"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	auth := f.store.State().Auth
	assert.True(t, auth.IsAuthenticated)
	assert.False(t, auth.IsLoading)
	assert.Empty(t, auth.Error)

	var persisted models.User
	ok, err := state.LoadJSON(ctx, f.persist, state.KeyCurrentUser, &persisted)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, persisted.ID)

	assert.Equal(t, []time.Duration{DefaultDelays.Register, DefaultDelays.Login}, f.clock.sleeps())
}

func TestLogin_Failures(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ada", "ada@example.com", "engine42")

	tests := []struct {
		name string
		in   LoginCredentials
		kind error
		msg  string
	}{
		{"unknown email", LoginCredentials{Email: "bob@example.com", Password: "engine42"}, ErrInvalidCredentials, "Invalid email or password"},
		{"wrong password", LoginCredentials{Email: "ada@example.com", Password: "nope"}, ErrInvalidCredentials, "Invalid email or password"},
		{"missing password", LoginCredentials{Email: "ada@example.com"}, ErrValidation, "Email and password are required"},
		{"missing email", LoginCredentials{Password: "engine42"}, ErrValidation, "Email and password are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := f.act.Login(context.Background(), tt.in)

			require.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
			assert.Equal(t, tt.msg, Message(err))

			auth := f.store.State().Auth
			assert.Equal(t, tt.msg, auth.Error)
			assert.False(t, auth.IsAuthenticated)
			assert.False(t, auth.IsLoading)
		})
	}
}

func TestRegister_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "Ada", "ada@example.com", "engine42")

	_, err := f.act.Register(ctx, RegisterCredentials{Name: "B", Email: "b@example.com", Password: "one", ConfirmPassword: "two"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Passwords do not match", Message(err))

	_, err = f.act.Register(ctx, RegisterCredentials{Name: "Ada 2", Email: "ada@example.com", Password: "x", ConfirmPassword: "x"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "An account with this email already exists", Message(err))
	assert.Equal(t, "An account with this email already exists", f.store.State().Auth.Error)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.act.GuestLogin(ctx)
	require.NoError(t, err)

	require.NoError(t, f.act.Logout(ctx))

	auth := f.store.State().Auth
	assert.False(t, auth.IsAuthenticated)
	assert.Nil(t, auth.User)
	_, ok, err := f.persist.Load(ctx, state.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGuestLogin(t *testing.T) {
	f := newFixture(t)

	user, err := f.act.GuestLogin(context.Background())

	require.NoError(t, err)
	assert.Equal(t, GuestUserID, user.ID)
	assert.Equal(t, "Guest User", user.Name)
	assert.Equal(t, "guest@projex.io", user.Email)
	assert.True(t, f.store.State().Auth.IsAuthenticated)
}

func TestSocialLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.act.SocialLogin(ctx, "GitHub")
	require.NoError(t, err)
	assert.Equal(t, "User (GitHub)", user.Name)
	assert.Equal(t, "user@github.com", user.Email)

	_, err = f.act.SocialLogin(ctx, "myspace")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Failed to login with myspace", f.store.State().Auth.Error)
	assert.True(t, f.store.State().Auth.IsAuthenticated, "failed social login keeps the previous session")

	f.act.ClearAuthError()
	assert.Empty(t, f.store.State().Auth.Error)
}

func TestLogin_CancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.act.Login(ctx, LoginCredentials{Email: "a@b.co", Password: "x"})

	assert.ErrorIs(t, err, ErrUnexpected)
	assert.Equal(t, "An unexpected error occurred", f.store.State().Auth.Error)
}

// slowPersistence widens the window between loading and saving a document.
type slowPersistence struct {
	*memory.Store
	delay time.Duration
}

func (s slowPersistence) Load(ctx context.Context, key string) ([]byte, bool, error) {
	time.Sleep(s.delay)
	return s.Store.Load(ctx, key)
}

func newSlowActions() (*Actions, *memory.Store) {
	persist := memory.New()
	store := state.NewStore(state.Initial(nil), zerolog.Nop())
	act := New(store, slowPersistence{Store: persist, delay: 20 * time.Millisecond},
		WithClock(&fakeClock{now: testNow}))
	return act, persist
}

func registerAll(act *Actions, emails ...string) []error {
	errs := make([]error, len(emails))
	var wg sync.WaitGroup
	for i, email := range emails {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = act.Register(context.Background(), RegisterCredentials{
				Name: email, Email: email, Password: "secret123", ConfirmPassword: "secret123",
			})
		}()
	}
	wg.Wait()
	return errs
}

func TestRegister_ConcurrentRegistrationsKeepEveryAccount(t *testing.T) {
	act, persist := newSlowActions()
	ctx := context.Background()

	for _, err := range registerAll(act, "a@x.io", "b@x.io", "c@x.io") {
		require.NoError(t, err)
	}

	var users []models.User
	_, err := state.LoadJSON(ctx, persist, state.KeyRegisteredUsers, &users)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	for _, email := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		_, err := act.Login(ctx, LoginCredentials{Email: email, Password: "secret123"})
		assert.NoError(t, err, email)
	}
}

func TestRegister_ConcurrentDuplicateEmail(t *testing.T) {
	act, persist := newSlowActions()

	errs := registerAll(act, "dup@x.io", "dup@x.io", "dup@x.io", "dup@x.io")

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrConflict)
	}
	assert.Equal(t, 1, succeeded)

	var users []models.User
	_, err := state.LoadJSON(context.Background(), persist, state.KeyRegisteredUsers, &users)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
