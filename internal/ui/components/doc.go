// Package components provides theme-aware terminal UI components built on lipgloss.
//
// # Overview
//
// Components are small, stateless-by-default values that render to strings. Each
// one implements View, which uses the default theme, and ViewWithContext, which
// renders against an explicit RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := pager.ViewWithContext(ctx)
//
// # Theme System
//
// A Theme bundles a semantic Palette, a skeleton ShadeRamp, spacing, typography
// presets and a VariantRegistry mapping component variants to style strategies.
// Themes travel through RenderContext, never through package state.
//
// Style modifiers are StyleFunc values applied through WithAppliers:
//
//	NewText("Saved").WithAppliers(Foreground(PalettePrimary), Typography(TypographyVariantEmphasis))
//
// # Components
//
// Primitives:
//   - Text: styled text
//   - Button: primary, outline and ghost variants with disabled/active state
//   - Stack: vertical or horizontal layout with gaps
//
// Composites:
//   - Pagination: previous/next control around the page window from package pagination
//   - Skeleton: pulsing placeholder block
//   - ThemeToggle: light/dark/system button group
//
// # Pagination
//
// Pagination renders nothing for a single page, disables previous/next at the
// boundaries and only calls its change callback when the page actually changes:
//
//	pager := NewPagination(1, 12, func(page int) { load(page) }).
//		WithConfig(PaginationConfig{SiblingCount: 1, ShowSummary: true, Total: 230, PageSize: 20})
//	pager.Next()
package components
