package domain

// ThemePreference is the user's stored theme choice
type ThemePreference string

const (
	ThemeSystem ThemePreference = "system"
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
)

// IsValid reports whether the preference is one of the known values
func (p ThemePreference) IsValid() bool {
	switch p {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}

// ColorScheme is a concrete rendering scheme, always light or dark
type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

// Opposite returns the other concrete scheme
func (s ColorScheme) Opposite() ColorScheme {
	if s == SchemeDark {
		return SchemeLight
	}
	return SchemeDark
}

// ResolveScheme maps a preference to the concrete scheme to render with.
// The system preference follows the host environment's current scheme.
func ResolveScheme(pref ThemePreference, system ColorScheme) ColorScheme {
	switch pref {
	case ThemeLight:
		return SchemeLight
	case ThemeDark:
		return SchemeDark
	default:
		return system
	}
}
