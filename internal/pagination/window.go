package pagination

// DefaultSiblingCount is the number of pages shown on each side of the current page.
const DefaultSiblingCount = 2

// Compute returns the tokens to render for currentPage out of totalPages.
//
// When totalPages is at most siblingCount+4 every page is listed. Otherwise the
// window [currentPage-siblingCount, currentPage+siblingCount], clamped to the page
// range, is emitted between page 1 and totalPages, with an ellipsis standing in for
// each gap of at least one hidden page.
//
// currentPage is not clamped. Callers keep it within [1, totalPages]; values outside
// that range still produce a window but ordering and uniqueness are not guaranteed.
func Compute(currentPage, totalPages, siblingCount int) []Token {
	if totalPages <= 0 {
		return []Token{}
	}

	if totalPages <= siblingCount+4 {
		tokens := make([]Token, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			tokens = append(tokens, PageToken(i))
		}
		return tokens
	}

	left := max(1, currentPage-siblingCount)
	right := min(totalPages, currentPage+siblingCount)

	tokens := make([]Token, 0, max(0, right-left+1)+4)
	tokens = append(tokens, PageToken(1))
	if left > 2 {
		tokens = append(tokens, EllipsisToken())
	}
	for i := left; i <= right; i++ {
		if i != 1 && i != totalPages {
			tokens = append(tokens, PageToken(i))
		}
	}
	if right < totalPages-1 {
		tokens = append(tokens, EllipsisToken())
	}

	if totalPages > 1 && tokens[len(tokens)-1] != PageToken(totalPages) {
		tokens = append(tokens, PageToken(totalPages))
	}

	return tokens
}
