package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/uikit/internal/pagination"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

type pagesOptions struct {
	page       int
	totalPages int
	siblings   int
	output     string
	render     bool
}

// pagesReport is the yaml form of a page window.
type pagesReport struct {
	Page         int                `yaml:"page"`
	TotalPages   int                `yaml:"total_pages"`
	SiblingCount int                `yaml:"sibling_count"`
	Tokens       []pagination.Token `yaml:"tokens"`
}

func newPagesCmd(flags *rootFlags) *cobra.Command {
	opts := pagesOptions{}

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the page window for a page and page count",
		Example: `  uikit pages --page 5 --total 10
  uikit pages --page 1 --total 10 --siblings 0 --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "text" && opts.output != "yaml" {
				return fmt.Errorf("unsupported output %q (want text or yaml)", opts.output)
			}

			pc := flags.app.Config.Pagination.ComponentConfig(0)
			if cmd.Flags().Changed("siblings") {
				if opts.siblings < 0 {
					return fmt.Errorf("siblings must be >= 0")
				}
				pc.SiblingCount = opts.siblings
			}

			tokens := pagination.Compute(opts.page, opts.totalPages, pc.SiblingCount)
			flags.app.Logger.WithFields(map[string]any{
				"page":        opts.page,
				"total_pages": opts.totalPages,
				"siblings":    pc.SiblingCount,
				"tokens":      len(tokens),
			}).Debug("computed page window")

			out := cmd.OutOrStdout()
			if opts.output == "yaml" {
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(pagesReport{
					Page:         opts.page,
					TotalPages:   opts.totalPages,
					SiblingCount: pc.SiblingCount,
					Tokens:       tokens,
				})
			}

			words := make([]string, len(tokens))
			for i, tok := range tokens {
				words[i] = tok.String()
			}
			fmt.Fprintln(out, strings.Join(words, " "))

			if opts.render {
				ctx := components.DefaultContext().WithTheme(flags.app.Theme())
				view := components.NewPagination(opts.page, opts.totalPages, nil).
					WithConfig(pc).
					ViewWithContext(ctx)
				if view != "" {
					fmt.Fprintln(out, view)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Current page (1-indexed)")
	cmd.Flags().IntVarP(&opts.totalPages, "total", "t", 0, "Total number of pages")
	cmd.Flags().IntVarP(&opts.siblings, "siblings", "s", pagination.DefaultSiblingCount, "Pages shown on each side of the current page")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or yaml")
	cmd.Flags().BoolVar(&opts.render, "render", false, "Also draw the pagination control")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}
