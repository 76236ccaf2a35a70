package actions

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"projex/internal/state"
)

// ResetStep is the stage a password reset is waiting on.
type ResetStep string

const (
	ResetAwaitingEmail    ResetStep = "email"
	ResetAwaitingCode     ResetStep = "otp"
	ResetAwaitingPassword ResetStep = "password"
	ResetDone             ResetStep = "success"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PasswordReset is one run of the three-step reset dialog: email, one-time
// code, new password. Steps must be completed in order.
//
// The email step reports unknown accounts explicitly, unlike Login.
type PasswordReset struct {
	a *Actions

	mu    sync.Mutex
	step  ResetStep
	email string
	code  string
}

// NewPasswordReset opens a reset flow.
func (a *Actions) NewPasswordReset() *PasswordReset {
	return &PasswordReset{a: a, step: ResetAwaitingEmail}
}

// Step returns the current stage.
func (r *PasswordReset) Step() ResetStep {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.step
}

// Email returns the address the reset applies to once the email step passed.
func (r *PasswordReset) Email() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.email
}

func (r *PasswordReset) expect(step ResetStep) error {
	if r.step != step {
		return fail(ErrValidation, "This step of the password reset is not available")
	}
	return nil
}

// SubmitEmail checks that an account exists for email and issues a 6-digit
// code. The code is returned so it can be shown in place of a sent email.
func (r *PasswordReset) SubmitEmail(ctx context.Context, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.expect(ResetAwaitingEmail); err != nil {
		return "", err
	}

	if strings.TrimSpace(email) == "" {
		return "", fail(ErrValidation, "Please enter your email address")
	}
	if !emailPattern.MatchString(email) {
		return "", fail(ErrValidation, "Please enter a valid email address")
	}
	if err := r.a.wait(ctx, "reset/email", r.a.delays.ResetEmail); err != nil {
		return "", err
	}

	r.a.accounts.Lock()
	users, err := r.a.registeredUsers(ctx)
	r.a.accounts.Unlock()
	if err != nil {
		return "", r.a.unexpected("reset/email", err)
	}
	if _, ok := findUser(users, email); !ok {
		return "", fail(ErrNotFound, "No account found with this email address")
	}

	r.email = email
	r.code = r.a.codes()
	r.step = ResetAwaitingCode
	return r.code, nil
}

// Resend replaces the outstanding code. The previous code stops matching.
func (r *PasswordReset) Resend() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.expect(ResetAwaitingCode); err != nil {
		return "", err
	}
	r.code = r.a.codes()
	return r.code, nil
}

// SubmitCode verifies the one-time code.
func (r *PasswordReset) SubmitCode(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.expect(ResetAwaitingCode); err != nil {
		return err
	}

	if len(code) != 6 {
		return fail(ErrValidation, "Please enter the complete 6-digit code")
	}
	if err := r.a.wait(ctx, "reset/code", r.a.delays.ResetCode); err != nil {
		return err
	}
	if code != r.code {
		return fail(ErrValidation, "Invalid verification code. Please try again.")
	}

	r.step = ResetAwaitingPassword
	return nil
}

// SubmitPassword stores the new password for the verified email.
func (r *PasswordReset) SubmitPassword(ctx context.Context, password, confirm string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.expect(ResetAwaitingPassword); err != nil {
		return err
	}

	switch {
	case password == "":
		return fail(ErrValidation, "Please enter a new password")
	case len(password) < minPasswordLength:
		return fail(ErrValidation, "Password must be at least 8 characters")
	case confirm == "":
		return fail(ErrValidation, "Please confirm your new password")
	case password != confirm:
		return fail(ErrValidation, "Passwords don't match")
	}
	if err := r.a.wait(ctx, "reset/password", r.a.delays.ResetSubmit); err != nil {
		return err
	}

	r.a.accounts.Lock()
	defer r.a.accounts.Unlock()
	passwords, err := r.a.passwords(ctx)
	if err != nil {
		return r.a.unexpected("reset/password", err)
	}
	passwords[r.email] = password
	if err := state.SaveJSON(ctx, r.a.persist, state.KeyPasswords, passwords); err != nil {
		return r.a.unexpected("reset/password", err)
	}

	r.step = ResetDone
	r.code = ""
	return nil
}
