package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SkeletonPulseInterval is how long a skeleton holds each shade before Pulse is
// expected to be called again.
const SkeletonPulseInterval = 250 * time.Millisecond

const (
	skeletonGlyph        = "█"
	defaultSkeletonWidth = 24
)

// Skeleton is a placeholder block shown while content loads.
type Skeleton struct {
	BaseComponent
	width int
	lines int
	phase int
}

// NewSkeleton creates a one-line skeleton.
func NewSkeleton() *Skeleton {
	return &Skeleton{
		BaseComponent: NewBaseComponent(),
		width:         defaultSkeletonWidth,
		lines:         1,
	}
}

// WithSize sets the width and number of lines. Non-positive values are ignored.
func (s *Skeleton) WithSize(width, lines int) *Skeleton {
	if width > 0 {
		s.width = width
	}
	if lines > 0 {
		s.lines = lines
	}
	return s
}

// WithLines sets the number of lines, mimicking a paragraph of text.
func (s *Skeleton) WithLines(lines int) *Skeleton {
	return s.WithSize(0, lines)
}

// WithAppliers adds theme-based style modifiers.
func (s *Skeleton) WithAppliers(appliers ...StyleFunc) *Skeleton {
	s.AddAppliers(appliers...)
	return s
}

// Pulse advances the animation by one shade.
func (s *Skeleton) Pulse() *Skeleton {
	s.phase++
	return s
}

// Phase returns the animation step.
func (s *Skeleton) Phase() int {
	return s.phase
}

// Size returns the width and number of lines.
func (s *Skeleton) Size() (int, int) {
	return s.width, s.lines
}

// View renders the skeleton with the default theme.
func (s *Skeleton) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the block. With more than one line the last line is
// shorter, like the tail of a paragraph.
func (s *Skeleton) ViewWithContext(ctx RenderContext) string {
	width := s.width
	if ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth > 0 {
		width = min(width, ctx.Constraints.MaxWidth)
	}

	rows := make([]string, s.lines)
	for i := range rows {
		w := width
		if s.lines > 1 && i == s.lines-1 {
			w = max(1, width*3/5)
		}
		rows[i] = strings.Repeat(skeletonGlyph, w)
	}

	style := s.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Skeleton.At(s.phase))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
