package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(1, 10, nil)

	cfg := p.Config()
	assert.Equal(t, 2, cfg.SiblingCount)
	assert.True(t, cfg.ShowSummary)
	assert.Equal(t, DefaultPaginationLabels(), cfg.Labels)
	assert.NoError(t, cfg.Validate())
}

func TestPaginationConfigValidate(t *testing.T) {
	cfg := DefaultPaginationConfig()
	cfg.SiblingCount = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultPaginationConfig()
	cfg.PageSize = -10
	assert.Error(t, cfg.Validate())

	cfg = DefaultPaginationConfig()
	cfg.Language = "not a language"
	assert.Error(t, cfg.Validate())
}

func TestPaginationHiddenForSinglePage(t *testing.T) {
	assert.Empty(t, NewPagination(1, 1, nil).View())
	assert.Empty(t, NewPagination(1, 0, nil).View())
}

func TestPaginationRendersWindow(t *testing.T) {
	view := NewPagination(5, 10, nil).View()

	for _, label := range []string{"‹", "›", "1", "3", "4", "5", "6", "7", "10"} {
		assert.Contains(t, view, label)
	}
	assert.Equal(t, 2, strings.Count(view, "…"), "both gaps should collapse")
	assert.NotContains(t, view, " 2 ")
	assert.NotContains(t, view, " 9 ")
}

func TestPaginationSummary(t *testing.T) {
	cfg := DefaultPaginationConfig()
	cfg.Total = 12345
	cfg.PageSize = 20

	p := NewPagination(3, 618, nil).WithConfig(cfg)
	assert.Equal(t, "Showing 41 - 60 of 12,345", p.Summary())
	assert.Contains(t, p.View(), "Showing 41 - 60 of 12,345")

	cfg.ShowSummary = false
	p.WithConfig(cfg)
	assert.Empty(t, p.Summary())
	assert.NotContains(t, p.View(), "Showing")
}

func TestPaginationSummaryNeedsTotals(t *testing.T) {
	cfg := DefaultPaginationConfig()
	cfg.Total = 100

	assert.Empty(t, NewPagination(2, 5, nil).WithConfig(cfg).Summary())
}

func TestPaginationSummaryLastPageClamped(t *testing.T) {
	cfg := DefaultPaginationConfig()
	cfg.Total = 95
	cfg.PageSize = 10

	assert.Equal(t, "Showing 91 - 95 of 95", NewPagination(10, 10, nil).WithConfig(cfg).Summary())
}

func TestPaginationWithConfigKeepsDefaultLabels(t *testing.T) {
	p := NewPagination(1, 3, nil).WithConfig(PaginationConfig{SiblingCount: 1, Labels: PaginationLabels{Next: "next"}})

	labels := p.Config().Labels
	assert.Equal(t, "next", labels.Next)
	assert.Equal(t, "‹", labels.Previous)
	assert.Equal(t, "…", labels.Ellipsis)
}

func TestPaginationNavigation(t *testing.T) {
	var calls []int
	p := NewPagination(1, 5, func(page int) { calls = append(calls, page) })

	assert.False(t, p.Previous(), "previous is a no-op on the first page")
	assert.True(t, p.Next())
	assert.True(t, p.GoTo(4))
	assert.False(t, p.GoTo(4), "selecting the current page does not notify")
	assert.True(t, p.Last())
	assert.False(t, p.Next(), "next is a no-op on the last page")
	assert.True(t, p.First())

	assert.Equal(t, []int{2, 4, 5, 1}, calls)
	assert.Equal(t, 1, p.Page())
}

func TestPaginationGoToClamps(t *testing.T) {
	var calls []int
	p := NewPagination(2, 5, func(page int) { calls = append(calls, page) })

	require.True(t, p.GoTo(99))
	assert.Equal(t, 5, p.Page())
	require.True(t, p.GoTo(-3))
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, []int{5, 1}, calls)

	empty := NewPagination(1, 0, func(int) { t.Fatal("callback must not run without pages") })
	assert.False(t, empty.GoTo(1))
}

func TestPaginationState(t *testing.T) {
	cfg := DefaultPaginationConfig()
	cfg.SiblingCount = 1
	cfg.Total = 40
	cfg.PageSize = 10

	state := NewPagination(2, 4, nil).WithConfig(cfg).State()
	assert.Equal(t, 2, state.Page)
	assert.Equal(t, 4, state.TotalPages)
	assert.Equal(t, 1, state.SiblingCount)
	assert.True(t, state.HasRange())
}

func TestPaginationRespectsContextWidth(t *testing.T) {
	ctx := DefaultContext().WithConstraints(WithMaxWidth(20))
	view := NewPagination(50, 100, nil).ViewWithContext(ctx)

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 20)
	}
}

func TestPaginationCurrentPageButtonDisabled(t *testing.T) {
	p := NewPagination(3, 10, nil)

	current := p.pageButton(3)
	assert.True(t, current.IsActive())
	assert.True(t, current.IsDisabled())

	other := p.pageButton(4)
	assert.False(t, other.IsActive())
	assert.False(t, other.IsDisabled())
}

func TestPaginationLabelsMerge(t *testing.T) {
	merged := DefaultPaginationLabels().Merge(PaginationLabels{Summary: "Items %d-%d of %d"})

	assert.Equal(t, "Items %d-%d of %d", merged.Summary)
	assert.Equal(t, DefaultPaginationLabels().Previous, merged.Previous)
	assert.Equal(t, DefaultPaginationLabels().Next, merged.Next)
	assert.Equal(t, DefaultPaginationLabels().Ellipsis, merged.Ellipsis)
}
