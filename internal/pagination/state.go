package pagination

// State is what a pagination control holds between renders.
type State struct {
	// Page is the 1-indexed current page.
	Page int
	// TotalPages is the number of pages; the control is hidden when it is 1 or less.
	TotalPages int
	// SiblingCount is the window size passed to Compute.
	SiblingCount int
	// Total is the number of items across all pages (optional, 0 disables the range).
	Total int
	// PageSize is the number of items per page (optional, 0 disables the range).
	PageSize int
}

// NewState returns a State for page out of totalPages with the default sibling count.
func NewState(page, totalPages int) State {
	return State{
		Page:         page,
		TotalPages:   totalPages,
		SiblingCount: DefaultSiblingCount,
	}
}

// Tokens computes the page window for the state.
func (s State) Tokens() []Token {
	return Compute(s.Page, s.TotalPages, s.SiblingCount)
}

// Visible reports whether there is more than one page to navigate.
func (s State) Visible() bool {
	return s.TotalPages > 1
}

// HasPrevious reports whether a previous page exists.
func (s State) HasPrevious() bool {
	return s.Page > 1
}

// HasNext reports whether a next page exists.
func (s State) HasNext() bool {
	return s.Page < s.TotalPages
}

// Previous returns the page before the current one, never below 1.
func (s State) Previous() int {
	return max(1, s.Page-1)
}

// Next returns the page after the current one, never above TotalPages.
func (s State) Next() int {
	return min(s.TotalPages, s.Page+1)
}

// Range returns the 1-indexed item range shown on the current page.
func (s State) Range() (int, int) {
	return Range(s.Page, s.PageSize, s.Total)
}

// HasRange reports whether Total and PageSize are both set.
func (s State) HasRange() bool {
	return s.Total > 0 && s.PageSize > 0
}

// Range returns the inclusive item range [start, end] covered by page, or (0, 0)
// when total or pageSize is not positive.
func Range(page, pageSize, total int) (int, int) {
	if total <= 0 || pageSize <= 0 {
		return 0, 0
	}
	start := (page-1)*pageSize + 1
	end := min(page*pageSize, total)
	return start, end
}

// TotalPagesFor returns how many pages of pageSize items are needed for total items.
func TotalPagesFor(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
