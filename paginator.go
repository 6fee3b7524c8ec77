package pagination

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PagePlaceholder is the literal token inside a URL pattern that gets replaced
// with the decimal page number when building page URLs.
const PagePlaceholder = "(:num)"

// ErrInvalidConfiguration is returned by setters when the requested value
// would break a Paginator invariant.
var ErrInvalidConfiguration = errors.New("invalid paginator configuration")

// Paginator holds the pagination configuration and derives all metadata from
// it. The zero value is not useful; construct with New.
//
// IMPORTANT:
// totalItems, itemsPerPage and currentPage are accepted as-is, including
// negative and out-of-range values. Degenerate inputs yield well-defined
// outputs (zero pages, empty page list, no next/prev) instead of errors.
// Callers that want strict input validation should decode requests through
// RawPager or validate before calling the setters.
type Paginator struct {
	totalItems   int
	itemsPerPage int
	currentPage  int
	urlPattern   string

	// numPages is derived from totalItems and itemsPerPage. Every setter
	// touching either of them recomputes it synchronously.
	numPages int

	maxPagesToShow int
	previousText   string
	nextText       string
}

// New builds a Paginator over a dataset of totalItems records shown
// itemsPerPage at a time, positioned on currentPage. urlPattern should
// contain the PagePlaceholder token; pass "" when page URLs are not needed.
func New(totalItems, itemsPerPage, currentPage int, urlPattern string) *Paginator {
	p := &Paginator{
		totalItems:     totalItems,
		itemsPerPage:   itemsPerPage,
		currentPage:    currentPage,
		urlPattern:     urlPattern,
		maxPagesToShow: DefaultMaxPagesToShow,
		previousText:   DefaultPreviousText,
		nextText:       DefaultNextText,
	}
	p.updateNumPages()

	return p
}

// updateNumPages restores the numPages invariant. Must be called after every
// mutation of totalItems or itemsPerPage.
func (p *Paginator) updateNumPages() {
	if p.itemsPerPage == 0 {
		p.numPages = 0
		return
	}

	p.numPages = max(int(math.Ceil(float64(p.totalItems)/float64(p.itemsPerPage))), 0)
}

// NumPages returns the derived total number of pages.
func (p *Paginator) NumPages() int {
	return p.numPages
}

// MaxPagesToShow returns the page-list window size.
func (p *Paginator) MaxPagesToShow() int {
	return p.maxPagesToShow
}

// SetMaxPagesToShow sets the page-list window size. Values below
// MinPagesToShow are rejected with ErrInvalidConfiguration and leave the
// stored value unchanged: the window must at least fit the first page, the
// last page and the current page.
func (p *Paginator) SetMaxPagesToShow(maxPagesToShow int) error {
	if maxPagesToShow < MinPagesToShow {
		return fmt.Errorf("%w: maxPagesToShow must be at least %d, got %d",
			ErrInvalidConfiguration, MinPagesToShow, maxPagesToShow)
	}
	p.maxPagesToShow = maxPagesToShow

	return nil
}

// CurrentPage returns the current page number as it was stored.
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// SetCurrentPage stores the current page number unconditionally. Out-of-range
// values are tolerated: derived outputs treat pages beyond the dataset as
// having no next page and no items.
func (p *Paginator) SetCurrentPage(currentPage int) {
	p.currentPage = currentPage
}

// ItemsPerPage returns the number of items shown per page.
func (p *Paginator) ItemsPerPage() int {
	return p.itemsPerPage
}

// SetItemsPerPage stores the per-page size and recomputes NumPages. Zero is a
// valid degenerate input and yields zero pages.
func (p *Paginator) SetItemsPerPage(itemsPerPage int) {
	p.itemsPerPage = itemsPerPage
	p.updateNumPages()
}

// TotalItems returns the total number of items across all pages.
func (p *Paginator) TotalItems() int {
	return p.totalItems
}

// SetTotalItems stores the total item count and recomputes NumPages.
func (p *Paginator) SetTotalItems(totalItems int) {
	p.totalItems = totalItems
	p.updateNumPages()
}

// URLPattern returns the page URL template.
func (p *Paginator) URLPattern() string {
	return p.urlPattern
}

// SetURLPattern sets the page URL template.
func (p *Paginator) SetURLPattern(urlPattern string) {
	p.urlPattern = urlPattern
}

// PreviousText returns the label used for the previous-page link.
func (p *Paginator) PreviousText() string {
	return p.previousText
}

// SetPreviousText sets the label used for the previous-page link.
func (p *Paginator) SetPreviousText(text string) {
	p.previousText = text
}

// NextText returns the label used for the next-page link.
func (p *Paginator) NextText() string {
	return p.nextText
}

// SetNextText sets the label used for the next-page link.
func (p *Paginator) SetNextText(text string) {
	p.nextText = text
}

// PageURL builds the URL for the given page by replacing every occurrence of
// PagePlaceholder in the URL pattern. Patterns without the placeholder are
// returned unchanged.
func (p *Paginator) PageURL(page int) string {
	return strings.ReplaceAll(p.urlPattern, PagePlaceholder, strconv.Itoa(page))
}

// NextPage returns the page following the current one. ok is false when the
// current page is the last page or beyond it.
func (p *Paginator) NextPage() (page int, ok bool) {
	if p.currentPage >= p.numPages {
		return 0, false
	}

	return p.currentPage + 1, true
}

// PrevPage returns the page preceding the current one. ok is false when the
// current page is the first page or before it.
func (p *Paginator) PrevPage() (page int, ok bool) {
	if p.currentPage <= 1 {
		return 0, false
	}

	return p.currentPage - 1, true
}

// NextURL returns the URL of the next page, or ok=false when there is none.
func (p *Paginator) NextURL() (url string, ok bool) {
	page, ok := p.NextPage()
	if !ok {
		return "", false
	}

	return p.PageURL(page), true
}

// PrevURL returns the URL of the previous page, or ok=false when there is none.
func (p *Paginator) PrevURL() (url string, ok bool) {
	page, ok := p.PrevPage()
	if !ok {
		return "", false
	}

	return p.PageURL(page), true
}

// CurrentPageFirstItem returns the 1-based index of the first item on the
// current page. ok is false when the current page lies beyond the dataset.
func (p *Paginator) CurrentPageFirstItem() (item int, ok bool) {
	first := (p.currentPage-1)*p.itemsPerPage + 1
	if first > p.totalItems {
		return 0, false
	}

	return first, true
}

// CurrentPageLastItem returns the 1-based index of the last item on the
// current page, clamped to the dataset size. ok is false when the current
// page lies beyond the dataset.
func (p *Paginator) CurrentPageLastItem() (item int, ok bool) {
	first, ok := p.CurrentPageFirstItem()
	if !ok {
		return 0, false
	}

	return min(first+p.itemsPerPage-1, p.totalItems), true
}
