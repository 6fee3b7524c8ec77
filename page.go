package pagination

import (
	"strconv"

	"github.com/samber/lo"
)

// EllipsisText is the label rendered for truncated page ranges.
const EllipsisText = "..."

// Page is one entry of the page list: either a real, navigable page or an
// ellipsis marking a truncated range. Ellipsis entries carry Num 0, an empty
// URL and are never current.
type Page struct {
	Num      int
	URL      string
	Current  bool
	Ellipsis bool
}

// Label returns the text shown for the page inside navigation markup.
func (pg Page) Label() string {
	return lo.Ternary(pg.Ellipsis, EllipsisText, strconv.Itoa(pg.Num))
}

// Pages returns the navigable page window as an ordered list of descriptors,
// or nil when there is at most one page.
//
// When every page fits into MaxPagesToShow the list is simply 1..NumPages.
// Otherwise the first and last page are always present and a contiguous
// window slides with the current page between them; gaps on either side are
// collapsed into a single ellipsis entry, so the list never exceeds
// MaxPagesToShow+2 entries.
func (p *Paginator) Pages() []Page {
	if p.numPages <= 1 {
		return nil
	}

	if p.numPages <= p.maxPagesToShow {
		pages := make([]Page, 0, p.numPages)
		for num := 1; num <= p.numPages; num++ {
			pages = append(pages, p.pageFor(num))
		}

		return pages
	}

	// Three window slots are reserved for the first page, the last page and
	// the current page; the rest split evenly around the current page.
	numAdjacents := (p.maxPagesToShow - 3) / 2

	slidingStart := p.currentPage - numAdjacents
	if p.currentPage+numAdjacents > p.numPages {
		// Window would run past the last page, pin it to the right edge.
		slidingStart = p.numPages - p.maxPagesToShow + 2
	}
	slidingStart = max(slidingStart, 2)

	slidingEnd := min(slidingStart+p.maxPagesToShow-3, p.numPages-1)

	pages := make([]Page, 0, p.maxPagesToShow+2)
	pages = append(pages, p.pageFor(1))
	if slidingStart > 2 {
		pages = append(pages, Page{Ellipsis: true})
	}
	for num := slidingStart; num <= slidingEnd; num++ {
		pages = append(pages, p.pageFor(num))
	}
	if slidingEnd < p.numPages-1 {
		pages = append(pages, Page{Ellipsis: true})
	}
	pages = append(pages, p.pageFor(p.numPages))

	return pages
}

func (p *Paginator) pageFor(num int) Page {
	return Page{
		Num:     num,
		URL:     p.PageURL(num),
		Current: num == p.currentPage,
	}
}
