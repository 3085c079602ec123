package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/tui"
)

type browseOptions struct {
	items         int
	loadingFrames int
}

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	opts := browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through synthetic items interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.items < 0 {
				return fmt.Errorf("items must be >= 0")
			}

			model := newBrowseModel(flags.app, opts)
			flags.app.Logger.With("items", opts.items).Info("starting browser")

			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.items, "items", "n", 237, "Number of synthetic items")
	cmd.Flags().IntVar(&opts.loadingFrames, "loading-frames", 6, "Skeleton pulses shown before the first page")

	return cmd
}

func newBrowseModel(app *AppContext, opts browseOptions) tui.PagerModel {
	items := make([]string, opts.items)
	for i := range items {
		items[i] = fmt.Sprintf("Item #%d", i+1)
	}

	cfg := app.Config.Pagination.ComponentConfig(len(items))
	return tui.NewPagerModel(tui.PagerOptions{
		Title:          "uikit browser",
		Items:          items,
		Config:         &cfg,
		Theme:          app.Config.ThemeMode(),
		DarkBackground: lipgloss.HasDarkBackground(),
		LoadingFrames:  opts.loadingFrames,
		Logger:         app.Logger,
	})
}
