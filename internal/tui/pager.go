package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uikit/internal/logger"
	"github.com/alexisbeaulieu97/uikit/internal/pagination"
	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

const defaultPageSize = 10

// PagerOptions configures a PagerModel.
type PagerOptions struct {
	Title string
	Items []string
	// Config overrides the pagination defaults; nil uses DefaultPaginationConfig.
	Config *components.PaginationConfig
	Theme  components.ThemeMode
	// DarkBackground is what ThemeModeSystem resolves against.
	DarkBackground bool
	// LoadingFrames is how many skeleton pulses to show before the first page.
	LoadingFrames int
	Logger        *logger.Logger
}

// PagerModel is a bubbletea model paging through a list of strings with the
// Pagination component.
type PagerModel struct {
	title          string
	items          []string
	pageSize       int
	pagination     *components.Pagination
	toggle         *components.ThemeToggle
	skeleton       *components.Skeleton
	keys           KeyMap
	help           help.Model
	darkBackground bool
	loadingFrames  int
	width          int
	log            *logger.Logger
}

// NewPagerModel creates a pager on page 1.
func NewPagerModel(opts PagerOptions) PagerModel {
	cfg := components.DefaultPaginationConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	cfg.Total = len(opts.Items)

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "pager")

	totalPages := pagination.TotalPagesFor(cfg.Total, cfg.PageSize)
	pager := components.NewPagination(1, totalPages, func(page int) {
		log.WithFields(map[string]any{"page": page, "total_pages": totalPages}).Debug("page changed")
	}).WithConfig(cfg)

	toggle := components.NewThemeToggle(opts.Theme, func(mode components.ThemeMode) {
		log.With("theme", mode.String()).Debug("theme changed")
	})

	return PagerModel{
		title:          opts.Title,
		items:          opts.Items,
		pageSize:       cfg.PageSize,
		pagination:     pager,
		toggle:         toggle,
		skeleton:       components.NewSkeleton().WithLines(min(cfg.PageSize, 5)),
		keys:           DefaultKeyMap(),
		help:           help.New(),
		darkBackground: opts.DarkBackground,
		loadingFrames:  max(0, opts.LoadingFrames),
		log:            log,
	}
}

// Init starts the skeleton animation when a loading phase is configured.
func (m PagerModel) Init() tea.Cmd {
	if m.loadingFrames > 0 {
		return skeletonTickCmd()
	}
	return nil
}

// Update handles key presses, resizes and skeleton ticks.
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case SkeletonTickMsg:
		if m.loadingFrames == 0 {
			return m, nil
		}
		m.skeleton.Pulse()
		m.loadingFrames--
		if m.loadingFrames > 0 {
			return m, skeletonTickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m PagerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Theme) {
		m.toggle.Cycle()
		return m, nil
	}
	if m.Loading() {
		return m, nil
	}

	var moved bool
	switch {
	case key.Matches(msg, m.keys.Previous):
		moved = m.pagination.Previous()
	case key.Matches(msg, m.keys.Next):
		moved = m.pagination.Next()
	case key.Matches(msg, m.keys.First):
		moved = m.pagination.First()
	case key.Matches(msg, m.keys.Last):
		moved = m.pagination.Last()
	}

	if moved {
		return m, pageChangedCmd(m.pagination.Page())
	}
	return m, nil
}

// Loading reports whether the skeleton is still shown.
func (m PagerModel) Loading() bool {
	return m.loadingFrames > 0
}

// Page returns the current page.
func (m PagerModel) Page() int {
	return m.pagination.Page()
}

// ThemeMode returns the selected theme preference.
func (m PagerModel) ThemeMode() components.ThemeMode {
	return m.toggle.Value()
}

// PageItems returns the items on the current page.
func (m PagerModel) PageItems() []string {
	start, end := pagination.Range(m.pagination.Page(), m.pageSize, len(m.items))
	if start == 0 || start > end {
		return nil
	}
	return m.items[start-1 : end]
}

// View renders the header, the current page (or skeleton) and the controls.
func (m PagerModel) View() string {
	ctx := components.DefaultContext().
		WithTheme(components.ResolveTheme(m.toggle.Value(), m.darkBackground))
	if m.width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(m.width))
	}

	header := components.HStack(components.TitleText(m.title), m.toggle).WithGap(2)

	var body ui.Renderable
	switch {
	case m.Loading():
		body = m.skeleton
	case len(m.items) == 0:
		body = components.MutedText("No items")
	default:
		rows := components.VStack()
		for _, item := range m.PageItems() {
			rows.Add(components.NewText(item))
		}
		body = rows
	}

	layout := components.VStack(header, body).WithGap(1)
	if !m.Loading() {
		layout.Add(m.pagination)
	}
	layout.Add(components.MutedText(m.help.View(m.keys)))

	return layout.ViewWithContext(ctx)
}
