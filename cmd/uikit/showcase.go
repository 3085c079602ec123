package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/uikit/internal/pagination"
	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

const (
	fallbackWidth = 80
	showcaseItems = 230
)

type showcaseOptions struct {
	width int
}

func newShowcaseCmd(flags *rootFlags) *cobra.Command {
	opts := showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Render every component once with the configured theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			width := opts.width
			if width <= 0 {
				width = terminalWidth()
			}

			ctx := components.DefaultContext().
				WithTheme(flags.app.Theme()).
				WithConstraints(components.WithMaxWidth(width))

			flags.app.Logger.WithFields(map[string]any{
				"theme": ctx.Theme.Name,
				"width": width,
			}).Debug("rendering showcase")

			fmt.Fprintln(cmd.OutOrStdout(), showcase(flags.app).ViewWithContext(ctx))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Maximum width (defaults to the terminal width)")

	return cmd
}

func showcase(app *AppContext) *components.Stack {
	pc := app.Config.Pagination.ComponentConfig(showcaseItems)
	totalPages := pagination.TotalPagesFor(showcaseItems, pc.PageSize)

	section := func(title string, body ...ui.Renderable) ui.Renderable {
		return components.VStack(append([]ui.Renderable{components.TitleText(title)}, body...)...)
	}

	return components.VStack(
		section("Buttons",
			components.HStack(
				components.NewButton("Primary"),
				components.OutlineButton("Outline"),
				components.GhostButton("Ghost"),
				components.OutlineButton("Disabled").WithDisabled(true),
			).WithGap(1),
		),
		section("Pagination",
			components.NewPagination(1, totalPages, nil).WithConfig(pc),
			components.NewPagination(max(1, totalPages/2), totalPages, nil).WithConfig(pc),
			components.NewPagination(totalPages, totalPages, nil).WithConfig(pc),
		),
		section("Skeleton",
			components.NewSkeleton().WithSize(32, 3),
		),
		section("Theme toggle",
			components.NewThemeToggle(app.Config.ThemeMode(), nil),
		),
	).WithGap(1)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
