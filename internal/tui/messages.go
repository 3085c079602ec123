package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// PageChangedMsg is emitted after the pager moves to a new page.
type PageChangedMsg struct {
	Page int
}

// SkeletonTickMsg advances the loading placeholder.
type SkeletonTickMsg struct{}

func skeletonTickCmd() tea.Cmd {
	return tea.Tick(components.SkeletonPulseInterval, func(time.Time) tea.Msg {
		return SkeletonTickMsg{}
	})
}

func pageChangedCmd(page int) tea.Cmd {
	return func() tea.Msg {
		return PageChangedMsg{Page: page}
	}
}
