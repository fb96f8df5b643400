package model

// ThemeKey is the cache key holding the dark mode flag as "true" or "false"
const ThemeKey = "darkMode"

// ThemePreference is the persisted theme flag
type ThemePreference struct {
	DarkMode bool `json:"dark_mode"`
}

// UpdateThemeRequest represents a request to change the theme flag
type UpdateThemeRequest struct {
	DarkMode *bool `json:"dark_mode" validate:"required"`
}

// Validate validates the theme request
func (r *UpdateThemeRequest) Validate() []FieldError {
	return validateStruct(r)
}
