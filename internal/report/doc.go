// Package report renders a comparison result as a standalone HTML document.
//
// The report is a single self-contained file: light theme, Added/Removed and
// Changed tabs, per-domain checkbox filtering persisted in localStorage, a
// live search box, and expandable rows showing header diffs and GraphQL
// details. All presentation lives here; the comparison core emits no markup.
package report
