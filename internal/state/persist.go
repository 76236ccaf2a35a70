package state

import (
	"context"
	"encoding/json"
	"fmt"

	"projex/internal/models"
)

// Keys under which the dashboard persists its data.
const (
	KeyCurrentUser     = "projex-user"
	KeyRegisteredUsers = "projex-registered-users"
	KeyPasswords       = "projex-user-passwords"
	KeyTheme           = "projex-theme"
)

// Persistence is a string-keyed store of JSON documents.
type Persistence interface {
	// Load returns the value stored under key. ok is false when the key is absent.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the value under key into dst. It reports false, leaving dst
// untouched, when the key is absent.
func LoadJSON(ctx context.Context, p Persistence, key string, dst any) (bool, error) {
	raw, ok, err := p.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes v and stores it under key.
func SaveJSON(ctx context.Context, p Persistence, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := p.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Restore builds the initial state, resuming the persisted session if any.
func Restore(ctx context.Context, p Persistence) (State, error) {
	var user models.User
	ok, err := LoadJSON(ctx, p, KeyCurrentUser, &user)
	if err != nil {
		return Initial(nil), err
	}
	if !ok {
		return Initial(nil), nil
	}
	return Initial(&user), nil
}
