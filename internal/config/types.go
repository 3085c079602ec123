package config

import (
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// Config is the uikit configuration document.
type Config struct {
	Theme      string     `yaml:"theme" validate:"required,theme_mode"`
	Pagination Pagination `yaml:"pagination"`
	Log        Log        `yaml:"log"`
}

// Pagination configures the pagination control.
type Pagination struct {
	SiblingCount *int   `yaml:"sibling_count,omitempty" validate:"omitempty,min=0,max=16"`
	PageSize     int    `yaml:"page_size,omitempty" validate:"omitempty,min=1,max=1000"`
	ShowSummary  *bool  `yaml:"show_summary,omitempty"`
	Language     string `yaml:"language,omitempty" validate:"omitempty,bcp47_language_tag"`

	Labels components.PaginationLabels `yaml:"labels,omitempty" validate:"-"`
}

// Log configures logging.
type Log struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// DefaultPageSize is used when the config leaves page_size unset.
const DefaultPageSize = 10

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Theme: components.ThemeModeSystem.String(),
		Log:   Log{Level: "info", HumanReadable: true},
	}
}

// ThemeMode returns the parsed theme preference.
func (c *Config) ThemeMode() components.ThemeMode {
	mode, err := components.ParseThemeMode(c.Theme)
	if err != nil {
		return components.ThemeModeSystem
	}
	return mode
}

// PageSizeOrDefault returns the configured page size or DefaultPageSize.
func (p Pagination) PageSizeOrDefault() int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	return DefaultPageSize
}

// ComponentConfig merges the file settings over the component defaults.
func (p Pagination) ComponentConfig(total int) components.PaginationConfig {
	cfg := components.DefaultPaginationConfig()
	if p.SiblingCount != nil {
		cfg.SiblingCount = *p.SiblingCount
	}
	if p.ShowSummary != nil {
		cfg.ShowSummary = *p.ShowSummary
	}
	if p.Language != "" {
		cfg.Language = p.Language
	}
	cfg.Labels = cfg.Labels.Merge(p.Labels)
	cfg.Total = total
	cfg.PageSize = p.PageSizeOrDefault()
	return cfg
}
