package pagination

// Package pagination computes pagination metadata for page-numbered datasets.
//
// Overview
//
// Given a total item count, an items-per-page size and a current page number,
// a Paginator derives:
//   - the total number of pages, recomputed on every mutation so it is never
//     observed stale;
//   - a bounded sliding window of page links with ellipsis truncation, always
//     anchored on the first and last page;
//   - previous/next navigation targets and their URLs;
//   - the 1-based index range of the items shown on the current page;
//   - ready-to-embed HTML navigation markup.
//
// Key concepts
//   - Paginator: owns the configuration and derives all outputs on demand.
//   - Page: one entry of the page list, either a real page or an ellipsis.
//   - RawPager: a JSON-inlineable request shape that decodes into a Paginator
//     with normalized inputs.
//
// Paginator does not fetch or slice the underlying collection; it only does
// the arithmetic. A Paginator is not safe for concurrent mutation: build one
// per request or synchronize externally.
//
// See README for examples and usage details.
