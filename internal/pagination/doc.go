// Package pagination computes the page window shown by a pagination control.
//
// Compute maps a current page, a total page count and a sibling window size to an
// ordered sequence of tokens: concrete page numbers and ellipsis gap markers. The
// first and last pages are always present; pages around the current one are shown
// up to SiblingCount on each side, and any hidden run of pages collapses into a
// single ellipsis.
//
//	Compute(5, 10, 2) // 1 … 3 4 5 6 7 … 10
//
// State bundles the inputs a renderer holds (current page, totals, page size) and
// derives navigation flags and the "showing X - Y of N" item range from them.
//
// Everything in this package is pure and safe for concurrent use.
package pagination
