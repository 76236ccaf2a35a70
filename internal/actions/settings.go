package actions

import (
	"context"

	"projex/internal/models"
	"projex/internal/state"
)

// Theme returns the saved appearance preference, models.ThemeSystem when unset.
func (a *Actions) Theme(ctx context.Context) (models.Theme, error) {
	var theme models.Theme
	ok, err := state.LoadJSON(ctx, a.persist, state.KeyTheme, &theme)
	if err != nil {
		return "", a.unexpected("theme/load", err)
	}
	if !ok || !theme.Valid() {
		return models.ThemeSystem, nil
	}
	return theme, nil
}

// SetTheme saves the appearance preference.
func (a *Actions) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fail(ErrValidation, "Unknown theme "+string(theme))
	}
	if err := state.SaveJSON(ctx, a.persist, state.KeyTheme, theme); err != nil {
		return a.unexpected("theme/save", err)
	}
	return nil
}
