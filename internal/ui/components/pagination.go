package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/uikit/internal/pagination"
	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PaginationLabels are the strings a Pagination draws besides page numbers.
type PaginationLabels struct {
	Previous string `yaml:"previous" validate:"required"`
	Next     string `yaml:"next" validate:"required"`
	Ellipsis string `yaml:"ellipsis" validate:"required"`
	// Summary is a format string receiving the first item, last item and total.
	Summary string `yaml:"summary" validate:"required"`
}

// PaginationConfig holds the optional Pagination settings.
type PaginationConfig struct {
	SiblingCount int    `yaml:"sibling_count" validate:"min=0,max=16"`
	ShowSummary  bool   `yaml:"show_summary"`
	Total        int    `yaml:"total" validate:"min=0"`
	PageSize     int    `yaml:"page_size" validate:"min=0"`
	Language     string `yaml:"language" validate:"omitempty,bcp47_language_tag"`

	Labels PaginationLabels `yaml:"labels"`
}

// DefaultPaginationLabels returns the English labels.
func DefaultPaginationLabels() PaginationLabels {
	return PaginationLabels{
		Previous: "‹",
		Next:     "›",
		Ellipsis: "…",
		Summary:  "Showing %d - %d of %d",
	}
}

// Merge returns l with every non-empty label of over applied on top.
func (l PaginationLabels) Merge(over PaginationLabels) PaginationLabels {
	if over.Previous != "" {
		l.Previous = over.Previous
	}
	if over.Next != "" {
		l.Next = over.Next
	}
	if over.Ellipsis != "" {
		l.Ellipsis = over.Ellipsis
	}
	if over.Summary != "" {
		l.Summary = over.Summary
	}
	return l
}

// DefaultPaginationConfig returns two siblings per side with the summary enabled.
func DefaultPaginationConfig() PaginationConfig {
	return PaginationConfig{
		SiblingCount: pagination.DefaultSiblingCount,
		ShowSummary:  true,
		Language:     "en",
		Labels:       DefaultPaginationLabels(),
	}
}

// Validate checks the config against its field constraints.
func (c PaginationConfig) Validate() error {
	return validatorInstance().Struct(c)
}

// Pagination renders a previous/next control around the page window computed by
// pagination.Compute. It draws nothing when there is at most one page.
type Pagination struct {
	BaseComponent
	page       int
	totalPages int
	config     PaginationConfig
	onChange   func(page int)
}

// NewPagination creates a control for page out of totalPages. onChange may be nil.
func NewPagination(page, totalPages int, onChange func(page int)) *Pagination {
	return &Pagination{
		BaseComponent: NewBaseComponent(),
		page:          page,
		totalPages:    totalPages,
		config:        DefaultPaginationConfig(),
		onChange:      onChange,
	}
}

// WithConfig replaces the config. Empty labels keep their defaults.
func (p *Pagination) WithConfig(config PaginationConfig) *Pagination {
	config.Labels = DefaultPaginationLabels().Merge(config.Labels)
	p.config = config
	return p
}

// WithTotalPages updates the page count, e.g. after the item set changes.
func (p *Pagination) WithTotalPages(totalPages int) *Pagination {
	p.totalPages = totalPages
	return p
}

// WithAppliers adds theme-based style modifiers to the outer container.
func (p *Pagination) WithAppliers(appliers ...StyleFunc) *Pagination {
	p.AddAppliers(appliers...)
	return p
}

// Page returns the current page.
func (p *Pagination) Page() int {
	return p.page
}

// TotalPages returns the page count.
func (p *Pagination) TotalPages() int {
	return p.totalPages
}

// Config returns the active config.
func (p *Pagination) Config() PaginationConfig {
	return p.config
}

// State returns the pagination state behind the control.
func (p *Pagination) State() pagination.State {
	return pagination.State{
		Page:         p.page,
		TotalPages:   p.totalPages,
		SiblingCount: p.config.SiblingCount,
		Total:        p.config.Total,
		PageSize:     p.config.PageSize,
	}
}

// GoTo moves to target, clamped to the page range, and reports whether the page
// changed. The callback only runs on a change.
func (p *Pagination) GoTo(target int) bool {
	if p.totalPages < 1 {
		return false
	}
	target = max(1, min(p.totalPages, target))
	if target == p.page {
		return false
	}

	p.page = target
	if p.onChange != nil {
		p.onChange(target)
	}
	return true
}

// Previous moves back one page.
func (p *Pagination) Previous() bool {
	return p.GoTo(p.State().Previous())
}

// Next moves forward one page.
func (p *Pagination) Next() bool {
	return p.GoTo(p.State().Next())
}

// First moves to page 1.
func (p *Pagination) First() bool {
	return p.GoTo(1)
}

// Last moves to the final page.
func (p *Pagination) Last() bool {
	return p.GoTo(p.totalPages)
}

// Summary returns the "showing X - Y of N" line, or "" when it is disabled or
// Total and PageSize are not both set.
func (p *Pagination) Summary() string {
	state := p.State()
	if !p.config.ShowSummary || !state.HasRange() {
		return ""
	}

	start, end := state.Range()
	printer := message.NewPrinter(language.Make(p.config.Language))
	return printer.Sprintf(p.config.Labels.Summary, start, end, state.Total)
}

// View renders the control with the default theme.
func (p *Pagination) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the summary line above the navigation row.
func (p *Pagination) ViewWithContext(ctx RenderContext) string {
	state := p.State()
	if !state.Visible() {
		return ""
	}

	labels := p.config.Labels
	controls := []ui.Renderable{
		OutlineButton(labels.Previous).WithDisabled(!state.HasPrevious()),
	}
	for _, tok := range state.Tokens() {
		if tok.IsEllipsis() {
			controls = append(controls, MutedText(labels.Ellipsis))
			continue
		}
		controls = append(controls, p.pageButton(tok.Page()))
	}
	controls = append(controls, OutlineButton(labels.Next).WithDisabled(!state.HasNext()))

	content := VStack()
	if summary := p.Summary(); summary != "" {
		content.Add(SubtitleText(summary))
	}
	content.Add(HStack(controls...).WithGap(1))

	return p.ComputeStyle(ctx.Theme).Render(content.ViewWithContext(ctx))
}

func (p *Pagination) pageButton(page int) *Button {
	label := strconv.Itoa(page)
	if page == p.page {
		return NewButton(label).WithActive(true).WithDisabled(true)
	}
	return OutlineButton(label)
}
