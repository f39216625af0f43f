// Package aggregation turns mood entries into the statistics shapes served by
// the API: monthly summaries, all-time stats, the dashboard series, the public
// board and the share export. It also holds the keyword based emoji
// suggestion rules.
//
// Every function is pure. Callers fetch the entries (already scoped to the
// right owner or projection) and pass the current time explicitly where a
// window is involved.
package aggregation
