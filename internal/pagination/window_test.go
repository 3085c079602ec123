package pagination

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// e marks an ellipsis in expected sequences.
const e = -1

func tokensOf(values ...int) []Token {
	tokens := make([]Token, 0, len(values))
	for _, v := range values {
		if v == e {
			tokens = append(tokens, EllipsisToken())
			continue
		}
		tokens = append(tokens, PageToken(v))
	}
	return tokens
}

func TestCompute_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		total    int
		siblings int
		want     []Token
	}{
		{name: "middle page", page: 5, total: 10, siblings: 2, want: tokensOf(1, e, 3, 4, 5, 6, 7, e, 10)},
		{name: "first page", page: 1, total: 10, siblings: 2, want: tokensOf(1, 2, 3, e, 10)},
		{name: "last page", page: 10, total: 10, siblings: 2, want: tokensOf(1, e, 8, 9, 10)},
		{name: "small total", page: 3, total: 5, siblings: 2, want: tokensOf(1, 2, 3, 4, 5)},
		{name: "single page", page: 1, total: 1, siblings: 2, want: tokensOf(1)},
		{name: "no pages", page: 5, total: 0, siblings: 2, want: tokensOf()},
		{name: "threshold exactly", page: 1, total: 6, siblings: 2, want: tokensOf(1, 2, 3, 4, 5, 6)},
		{name: "just above threshold", page: 1, total: 7, siblings: 2, want: tokensOf(1, 2, 3, e, 7)},
		{name: "left window touches page 2", page: 4, total: 10, siblings: 2, want: tokensOf(1, 2, 3, 4, 5, 6, e, 10)},
		{name: "right window touches second to last", page: 7, total: 10, siblings: 2, want: tokensOf(1, e, 5, 6, 7, 8, 9, 10)},
		{name: "zero siblings middle", page: 5, total: 10, siblings: 0, want: tokensOf(1, e, 5, e, 10)},
		{name: "zero siblings first", page: 1, total: 10, siblings: 0, want: tokensOf(1, e, 10)},
		{name: "zero siblings second", page: 2, total: 10, siblings: 0, want: tokensOf(1, 2, e, 10)},
		{name: "one sibling", page: 50, total: 100, siblings: 1, want: tokensOf(1, e, 49, 50, 51, e, 100)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Compute(tt.page, tt.total, tt.siblings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_EmptyForNonPositiveTotal(t *testing.T) {
	t.Parallel()

	for _, total := range []int{0, -1, -5} {
		for page := -2; page <= 3; page++ {
			for siblings := 0; siblings <= 3; siblings++ {
				got := Compute(page, total, siblings)
				require.NotNil(t, got)
				require.Empty(t, got, "page=%d total=%d siblings=%d", page, total, siblings)
			}
		}
	}
}

func TestCompute_SmallTotalListsEveryPage(t *testing.T) {
	t.Parallel()

	for siblings := 0; siblings <= 4; siblings++ {
		for total := 1; total <= siblings+4; total++ {
			want := make([]int, total)
			for i := range want {
				want[i] = i + 1
			}
			for page := 1; page <= total; page++ {
				got := Compute(page, total, siblings)
				require.Equal(t, want, Pages(got))
				require.Len(t, got, total, "small totals never elide pages")
			}
		}
	}
}

func TestCompute_Invariants(t *testing.T) {
	t.Parallel()

	for siblings := 0; siblings <= 4; siblings++ {
		for total := 1; total <= 40; total++ {
			for page := 1; page <= total; page++ {
				label := fmt.Sprintf("page=%d total=%d siblings=%d", page, total, siblings)
				got := Compute(page, total, siblings)

				require.NotEmpty(t, got, label)
				require.Equal(t, PageToken(1), got[0], label)
				require.Equal(t, PageToken(total), got[len(got)-1], label)

				pages := Pages(got)
				for i := 1; i < len(pages); i++ {
					require.Greater(t, pages[i], pages[i-1], "%s: pages must strictly increase", label)
				}
				require.Contains(t, pages, page, label)

				for i, tok := range got {
					if !tok.IsEllipsis() {
						continue
					}
					require.NotZero(t, i, label)
					require.NotEqual(t, len(got)-1, i, label)
					require.False(t, got[i-1].IsEllipsis(), "%s: adjacent ellipses", label)
					// A gap marker always hides at least one page.
					require.Greater(t, got[i+1].Page()-got[i-1].Page(), 1, label)
				}
			}
		}
	}
}

func TestCompute_OutOfRangePageDoesNotPanic(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		Compute(50, 10, 2)
		Compute(-3, 10, 2)
		Compute(5, 10, -3)
		Compute(1, 1, -4)
	})

	// Beyond the last page the window collapses but the boundaries remain.
	got := Compute(50, 10, 2)
	assert.Equal(t, PageToken(1), got[0])
	assert.Equal(t, PageToken(10), got[len(got)-1])
}

func TestCompute_ConcurrentCallers(t *testing.T) {
	t.Parallel()

	want := tokensOf(1, e, 3, 4, 5, 6, 7, e, 10)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Compute(5, 10, 2))
		}()
	}
	wg.Wait()
}
