package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

// ThemeMode is a user's colour scheme preference.
type ThemeMode int

const (
	ThemeModeLight ThemeMode = iota
	ThemeModeDark
	ThemeModeSystem
)

func (m ThemeMode) String() string {
	switch m {
	case ThemeModeLight:
		return "light"
	case ThemeModeDark:
		return "dark"
	case ThemeModeSystem:
		return "system"
	default:
		return fmt.Sprintf("ThemeMode(%d)", int(m))
	}
}

// ParseThemeMode parses "light", "dark" or "system", ignoring case and surrounding space.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeModeLight, nil
	case "dark":
		return ThemeModeDark, nil
	case "system":
		return ThemeModeSystem, nil
	default:
		return ThemeModeSystem, fmt.Errorf("unknown theme mode %q", s)
	}
}

// ResolveTheme picks the theme for mode. ThemeModeSystem follows the terminal
// background; callers pass lipgloss.HasDarkBackground().
func ResolveTheme(mode ThemeMode, hasDarkBackground bool) Theme {
	switch mode {
	case ThemeModeDark:
		return DarkTheme()
	case ThemeModeSystem:
		if hasDarkBackground {
			return DarkTheme()
		}
		return LightTheme()
	default:
		return LightTheme()
	}
}

// ThemeToggleOption is one choice in a ThemeToggle.
type ThemeToggleOption struct {
	Value ThemeMode
	Icon  string
	Label string
}

// DefaultThemeToggleOptions returns light, dark and system.
func DefaultThemeToggleOptions() []ThemeToggleOption {
	return []ThemeToggleOption{
		{Value: ThemeModeLight, Icon: "☀", Label: "Light"},
		{Value: ThemeModeDark, Icon: "☾", Label: "Dark"},
		{Value: ThemeModeSystem, Icon: "◐", Label: "System"},
	}
}

// ThemeToggle is a button group selecting a ThemeMode.
type ThemeToggle struct {
	BaseComponent
	value    ThemeMode
	options  []ThemeToggleOption
	onChange func(ThemeMode)
}

// NewThemeToggle creates a toggle with the default options. onChange may be nil.
func NewThemeToggle(value ThemeMode, onChange func(ThemeMode)) *ThemeToggle {
	return &ThemeToggle{
		BaseComponent: NewBaseComponent(),
		value:         value,
		options:       DefaultThemeToggleOptions(),
		onChange:      onChange,
	}
}

// WithOptions replaces the options. An empty slice keeps the current ones.
func (t *ThemeToggle) WithOptions(options []ThemeToggleOption) *ThemeToggle {
	if len(options) > 0 {
		t.options = options
	}
	return t
}

// WithAppliers adds theme-based style modifiers to the group.
func (t *ThemeToggle) WithAppliers(appliers ...StyleFunc) *ThemeToggle {
	t.AddAppliers(appliers...)
	return t
}

// Value returns the selected mode.
func (t *ThemeToggle) Value() ThemeMode {
	return t.value
}

// Options returns the available options.
func (t *ThemeToggle) Options() []ThemeToggleOption {
	return t.options
}

// Select chooses mode and notifies the callback, even when mode is already selected.
func (t *ThemeToggle) Select(mode ThemeMode) {
	t.value = mode
	if t.onChange != nil {
		t.onChange(mode)
	}
}

// Cycle selects the option after the current one, wrapping at the end.
func (t *ThemeToggle) Cycle() ThemeMode {
	next := 0
	for i, option := range t.options {
		if option.Value == t.value {
			next = (i + 1) % len(t.options)
			break
		}
	}
	t.Select(t.options[next].Value)
	return t.value
}

// View renders the toggle with the default theme.
func (t *ThemeToggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders one button per option, highlighting the selected one.
func (t *ThemeToggle) ViewWithContext(ctx RenderContext) string {
	buttons := make([]ui.Renderable, 0, len(t.options))
	for _, option := range t.options {
		label := strings.TrimSpace(option.Icon + " " + option.Label)
		if option.Value == t.value {
			buttons = append(buttons, NewButton(label).WithActive(true))
			continue
		}
		buttons = append(buttons, GhostButton(label))
	}

	group := HStack(buttons...).WithGap(1)
	return t.ComputeStyle(ctx.Theme).Render(group.ViewWithContext(ctx))
}
