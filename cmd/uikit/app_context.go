package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/logger"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// AppContext bundles what every subcommand needs after flags are parsed.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
}

// loadAppContext reads the config file and applies root flag overrides.
func loadAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.theme != "" {
		mode, err := components.ParseThemeMode(flags.theme)
		if err != nil {
			return nil, err
		}
		cfg.Theme = mode.String()
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{
		"config": flags.configPath,
		"theme":  cfg.Theme,
	}).Debug("configuration resolved")

	return &AppContext{Config: cfg, Logger: log}, nil
}

// Theme resolves the configured theme mode against the terminal background.
func (a *AppContext) Theme() components.Theme {
	return components.ResolveTheme(a.Config.ThemeMode(), lipgloss.HasDarkBackground())
}
