package pagination

// RawPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - 1-based page number requested by the client.
	Page int `json:"page"`
	// PerPage - maximum number of items to show per page.
	PerPage int `json:"perPage"`
}

// Decode converts RawPager into a *Paginator over a dataset of totalItems
// records, normalizing PerPage via NormalizePerPage and lifting non-positive
// page numbers to the first page.
func (r RawPager) Decode(totalItems int, urlPattern string) *Paginator {
	page := r.Page
	if page <= 0 {
		page = 1
	}

	return New(totalItems, NormalizePerPage(r.PerPage), page, urlPattern)
}
