package pagination

import (
	"fmt"
	"html"
	"strings"

	"github.com/samber/lo"
)

// HTML renders the pagination metadata as a Bootstrap-style unordered list:
//
//	<ul class="pagination">
//	  <li><a href="/p/1">&laquo; Previous</a></li>
//	  <li><a href="/p/1">1</a></li>
//	  <li class="disabled"><span>...</span></li>
//	  <li class="active"><a href="/p/5">5</a></li>
//	  ...
//	  <li><a href="/p/6">Next &raquo;</a></li>
//	</ul>
//
// Returns "" when there is at most one page. URLs, labels and page numbers
// are HTML-escaped.
func (p *Paginator) HTML() string {
	if p.numPages <= 1 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<ul class="pagination">`)

	if url, ok := p.PrevURL(); ok {
		writeItem(&b, "", url, "&laquo; "+html.EscapeString(p.previousText))
	}

	for _, page := range p.Pages() {
		if page.Ellipsis {
			b.WriteString(`<li class="disabled"><span>` + html.EscapeString(page.Label()) + `</span></li>`)
			continue
		}
		writeItem(&b, lo.Ternary(page.Current, "active", ""), page.URL, html.EscapeString(page.Label()))
	}

	if url, ok := p.NextURL(); ok {
		writeItem(&b, "", url, html.EscapeString(p.nextText)+" &raquo;")
	}

	b.WriteString(`</ul>`)

	return b.String()
}

// writeItem appends one linking list item. label must already be escaped.
func writeItem(b *strings.Builder, class, url, label string) {
	if class != "" {
		b.WriteString(`<li class="` + class + `">`)
	} else {
		b.WriteString(`<li>`)
	}
	b.WriteString(`<a href="` + html.EscapeString(url) + `">` + label + `</a></li>`)
}

// String - implements fmt.Stringer. Identical to HTML.
func (p *Paginator) String() string {
	return p.HTML()
}

var _ fmt.Stringer = (*Paginator)(nil)
