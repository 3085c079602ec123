package pagination

import "strconv"

// TokenKind distinguishes the two cases of a Token.
type TokenKind int

const (
	// TokenKindPage is a navigable page number.
	TokenKindPage TokenKind = iota
	// TokenKindEllipsis stands for one or more hidden pages.
	TokenKindEllipsis
)

// ellipsisGlyph is the display form of an ellipsis token.
const ellipsisGlyph = "…"

// Token is one rendered unit of a pagination control: either a navigable page
// number or a gap marker.
type Token struct {
	kind TokenKind
	page int
}

// PageToken returns a token for page n.
func PageToken(n int) Token {
	return Token{kind: TokenKindPage, page: n}
}

// EllipsisToken returns a gap marker.
func EllipsisToken() Token {
	return Token{kind: TokenKindEllipsis}
}

// Kind reports which case the token holds.
func (t Token) Kind() TokenKind {
	return t.kind
}

// IsEllipsis reports whether the token is a gap marker.
func (t Token) IsEllipsis() bool {
	return t.kind == TokenKindEllipsis
}

// Page returns the page number, or 0 for an ellipsis.
func (t Token) Page() int {
	if t.IsEllipsis() {
		return 0
	}
	return t.page
}

func (t Token) String() string {
	if t.IsEllipsis() {
		return ellipsisGlyph
	}
	return strconv.Itoa(t.page)
}

// MarshalYAML encodes pages as integers and ellipses as the string "ellipsis".
func (t Token) MarshalYAML() (interface{}, error) {
	if t.IsEllipsis() {
		return "ellipsis", nil
	}
	return t.page, nil
}

// Pages returns the page numbers in tokens, skipping ellipses.
func Pages(tokens []Token) []int {
	pages := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsEllipsis() {
			pages = append(pages, tok.page)
		}
	}
	return pages
}
