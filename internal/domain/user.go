package domain

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User профиль владельца. ID совпадает с идентификатором владельца,
// которым помечены все остальные записи
type User struct {
	ID             string
	Email          string
	Name           string
	ProfilePicture *string
	Theme          Theme
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type UserProfileUpdate struct {
	Name           string
	ProfilePicture *string
	Theme          Theme
}

func (u UserProfileUpdate) Validate() error {
	switch u.Theme {
	case "", ThemeLight, ThemeDark:
		return nil
	}
	return NewValidationError("invalid theme %q", u.Theme)
}
