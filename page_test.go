package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func labelsOf(pages []Page) []string {
	labels := make([]string, 0, len(pages))
	for _, pg := range pages {
		labels = append(labels, pg.Label())
	}

	return labels
}

func currentOf(pages []Page) (int, int) {
	num, count := 0, 0
	for _, pg := range pages {
		if pg.Current {
			num = pg.Num
			count++
		}
	}

	return num, count
}

func Test_Pages_SlidingWindow(t *testing.T) {
	tests := []struct {
		name           string
		totalItems     int
		itemsPerPage   int
		currentPage    int
		maxPagesToShow int
		wantLabels     []string
		wantCurrent    int
	}{
		{
			name:       "window in the middle",
			totalItems: 1000, itemsPerPage: 50, currentPage: 8, maxPagesToShow: 10,
			wantLabels:  []string{"1", "...", "5", "6", "7", "8", "9", "10", "11", "12", "...", "20"},
			wantCurrent: 8,
		},
		{
			name:       "window pinned to the left edge",
			totalItems: 1000, itemsPerPage: 50, currentPage: 1, maxPagesToShow: 10,
			wantLabels:  []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "...", "20"},
			wantCurrent: 1,
		},
		{
			name:       "window pinned to the right edge",
			totalItems: 1000, itemsPerPage: 50, currentPage: 20, maxPagesToShow: 10,
			wantLabels:  []string{"1", "...", "12", "13", "14", "15", "16", "17", "18", "19", "20"},
			wantCurrent: 20,
		},
		{
			name:       "leading ellipsis collapses when window touches page 2",
			totalItems: 1000, itemsPerPage: 50, currentPage: 5, maxPagesToShow: 10,
			wantLabels:  []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "...", "20"},
			wantCurrent: 5,
		},
		{
			name:       "minimal window",
			totalItems: 100, itemsPerPage: 10, currentPage: 5, maxPagesToShow: 3,
			wantLabels:  []string{"1", "...", "5", "...", "10"},
			wantCurrent: 5,
		},
		{
			name:       "no truncation when everything fits",
			totalItems: 50, itemsPerPage: 10, currentPage: 3, maxPagesToShow: 10,
			wantLabels:  []string{"1", "2", "3", "4", "5"},
			wantCurrent: 3,
		},
		{
			name:       "boundary fit equals window size",
			totalItems: 100, itemsPerPage: 10, currentPage: 1, maxPagesToShow: 10,
			wantLabels:  []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
			wantCurrent: 1,
		},
		{
			name:       "current page beyond range still pins right",
			totalItems: 1000, itemsPerPage: 50, currentPage: 25, maxPagesToShow: 10,
			wantLabels:  []string{"1", "...", "12", "13", "14", "15", "16", "17", "18", "19", "20"},
			wantCurrent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.totalItems, tt.itemsPerPage, tt.currentPage, "/p/(:num)")
			require.NoError(t, p.SetMaxPagesToShow(tt.maxPagesToShow))

			pages := p.Pages()
			require.Equal(t, tt.wantLabels, labelsOf(pages))

			num, count := currentOf(pages)
			if tt.wantCurrent == 0 {
				require.Zero(t, count, "no page should be current")
			} else {
				require.Equal(t, 1, count, "exactly one page should be current")
				require.Equal(t, tt.wantCurrent, num)
			}
		})
	}
}

func Test_Pages_Empty(t *testing.T) {
	tests := []struct {
		name         string
		totalItems   int
		itemsPerPage int
	}{
		{"no items", 0, 50},
		{"zero per page", 100, 0},
		{"single page", 10, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.totalItems, tt.itemsPerPage, 1, "/p/(:num)")
			if pages := p.Pages(); len(pages) != 0 {
				t.Errorf("%s: expected no pages, got %d", tt.name, len(pages))
			}
		})
	}
}

func Test_Pages_Descriptors(t *testing.T) {
	p := New(1000, 50, 8, "/p/(:num)")

	pages := p.Pages()
	require.Len(t, pages, 12)

	for _, pg := range pages {
		if pg.Ellipsis {
			require.Zero(t, pg.Num)
			require.Empty(t, pg.URL)
			require.False(t, pg.Current)
			require.Equal(t, EllipsisText, pg.Label())
			continue
		}
		require.Equal(t, p.PageURL(pg.Num), pg.URL)
	}

	require.Equal(t, "/p/1", pages[0].URL)
	require.Equal(t, "/p/20", pages[len(pages)-1].URL)
}

// Exhaustive sweep of the window invariants over a grid of inputs.
func Test_Pages_Invariants(t *testing.T) {
	const maxPagesToShow = 7

	for totalItems := 0; totalItems <= 500; totalItems += 37 {
		for itemsPerPage := 1; itemsPerPage <= 60; itemsPerPage += 13 {
			for currentPage := -1; currentPage <= 30; currentPage += 3 {
				p := New(totalItems, itemsPerPage, currentPage, "/p/(:num)")
				require.NoError(t, p.SetMaxPagesToShow(maxPagesToShow))

				pages := p.Pages()
				numPages := p.NumPages()

				switch {
				case numPages <= 1:
					if len(pages) != 0 {
						t.Fatalf("total=%d per=%d page=%d: expected empty list, got %d", totalItems, itemsPerPage, currentPage, len(pages))
					}
					continue
				case numPages <= maxPagesToShow:
					if len(pages) != numPages {
						t.Fatalf("total=%d per=%d page=%d: expected %d pages, got %d", totalItems, itemsPerPage, currentPage, numPages, len(pages))
					}
				default:
					if len(pages) > maxPagesToShow+2 {
						t.Fatalf("total=%d per=%d page=%d: window too wide: %d", totalItems, itemsPerPage, currentPage, len(pages))
					}
					if pages[0].Num != 1 || pages[len(pages)-1].Num != numPages {
						t.Fatalf("total=%d per=%d page=%d: window not anchored: %v", totalItems, itemsPerPage, currentPage, labelsOf(pages))
					}
				}

				_, count := currentOf(pages)
				wantCount := 0
				if currentPage >= 1 && currentPage <= numPages {
					wantCount = 1
				}
				if count != wantCount {
					t.Fatalf("total=%d per=%d page=%d: current count %d, want %d", totalItems, itemsPerPage, currentPage, count, wantCount)
				}
			}
		}
	}
}
