package report

import (
	"fmt"
	"sort"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/roach88/harcmp/internal/compare"
	"github.com/roach88/harcmp/internal/record"
)

// The view model is fully materialized before templating: maps become sorted
// slices and diff spans become tagged text runs, so rendering is
// deterministic and the model itself can be snapshotted in tests.

type pageView struct {
	Domains []string     `json:"domains"`
	Added   []entryView  `json:"added"`
	Removed []entryView  `json:"removed"`
	Changed []changeView `json:"changed"`
}

type entryView struct {
	ID              string       `json:"id"`
	Method          string       `json:"method"`
	URL             string       `json:"url"`
	Domain          string       `json:"domain"`
	Name            string       `json:"name"`
	RequestHeaders  []headerView `json:"request_headers"`
	ResponseHeaders []headerView `json:"response_headers"`
	GraphQL         *gqlView     `json:"graphql,omitempty"`
}

type headerView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type gqlView struct {
	Operation string `json:"operation"`
	Query     string `json:"query"`
	Variables string `json:"variables"`
}

type changeView struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	URL    string `json:"url"`
	Domain string `json:"domain"`
	Name   string `json:"name"`

	StatusOld     int  `json:"status_old"`
	StatusNew     int  `json:"status_new"`
	StatusChanged bool `json:"status_changed"`

	TimeOld     string `json:"time_old"`
	TimeNew     string `json:"time_new"`
	TimeChanged bool   `json:"time_changed"`

	Badges []string `json:"badges"`

	RequestHeaders  headerDeltaView `json:"request_headers"`
	ResponseHeaders headerDeltaView `json:"response_headers"`
	GraphQL         *gqlDeltaView   `json:"graphql,omitempty"`
}

type headerDeltaView struct {
	Title   string             `json:"title"`
	Added   []headerView       `json:"added"`
	Removed []headerView       `json:"removed"`
	Changed []headerChangeView `json:"changed"`
	Empty   bool               `json:"empty"`
}

type headerChangeView struct {
	Name string `json:"name"`
	Old  string `json:"old"`
	New  string `json:"new"`
}

type gqlDeltaView struct {
	OperationOld     string     `json:"operation_old"`
	OperationNew     string     `json:"operation_new"`
	OperationChanged bool       `json:"operation_changed"`
	QueryChanged     bool       `json:"query_changed"`
	VariablesChanged bool       `json:"variables_changed"`
	QueryOld         string     `json:"query_old"`
	QueryNew         string     `json:"query_new"`
	VariablesOld     string     `json:"variables_old"`
	VariablesNew     string     `json:"variables_new"`
	QuerySpans       []spanView `json:"query_spans,omitempty"`
	VariableSpans    []spanView `json:"variable_spans,omitempty"`
}

// spanView is one run of aligned text: op is "eq", "ins" or "del".
type spanView struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}

func buildPage(res compare.Result) pageView {
	page := pageView{Domains: res.Domains}
	for i, rec := range res.Added {
		page.Added = append(page.Added, buildEntry(fmt.Sprintf("add-%d", i), rec))
	}
	for i, rec := range res.Removed {
		page.Removed = append(page.Removed, buildEntry(fmt.Sprintf("rem-%d", i), rec))
	}
	for i, row := range res.Changed {
		page.Changed = append(page.Changed, buildChange(fmt.Sprintf("chg-%d", i), row))
	}
	return page
}

func buildEntry(id string, rec record.TransactionRecord) entryView {
	v := entryView{
		ID:              id,
		Method:          rec.Method,
		URL:             rec.URL,
		Domain:          rec.Domain,
		Name:            compare.DisplayName(rec),
		RequestHeaders:  sortedHeaders(rec.RequestHeaders),
		ResponseHeaders: sortedHeaders(rec.ResponseHeaders),
	}
	if rec.IsGraphQL() {
		v.GraphQL = &gqlView{
			Operation: rec.GraphQL.OperationName,
			Query:     rec.GraphQL.RawQuery,
			Variables: record.CanonicalizeValue(rec.GraphQL.Variables),
		}
	}
	return v
}

func buildChange(id string, row compare.ChangeRow) changeView {
	a, b := row.Baseline, row.Candidate
	v := changeView{
		ID:              id,
		Method:          b.Method,
		URL:             b.URL,
		Domain:          row.Domain,
		Name:            row.Name,
		StatusOld:       a.Status,
		StatusNew:       b.Status,
		StatusChanged:   row.Badges.Status,
		TimeOld:         formatMs(a.DurationMs),
		TimeNew:         formatMs(b.DurationMs),
		TimeChanged:     row.Badges.Time,
		Badges:          badgeLabels(row.Badges),
		RequestHeaders:  buildHeaderDelta("Request Headers", row.Diff.RequestHeaders),
		ResponseHeaders: buildHeaderDelta("Response Headers", row.Diff.ResponseHeaders),
	}
	if a.IsGraphQL() || b.IsGraphQL() {
		v.GraphQL = &gqlDeltaView{
			OperationOld:     a.GraphQL.OperationName,
			OperationNew:     b.GraphQL.OperationName,
			OperationChanged: a.GraphQL.OperationName != b.GraphQL.OperationName,
			QueryChanged:     row.Badges.GQLQuery,
			VariablesChanged: row.Badges.GQLVariables,
			QueryOld:         a.GraphQL.RawQuery,
			QueryNew:         b.GraphQL.RawQuery,
			VariablesOld:     record.CanonicalizeValue(a.GraphQL.Variables),
			VariablesNew:     record.CanonicalizeValue(b.GraphQL.Variables),
			QuerySpans:       buildSpans(row.Diff.QueryDiff),
			VariableSpans:    buildSpans(row.Diff.VariablesDiff),
		}
	}
	return v
}

func buildHeaderDelta(title string, d compare.HeaderDelta) headerDeltaView {
	v := headerDeltaView{
		Title:   title,
		Added:   sortedHeaders(d.Added),
		Removed: sortedHeaders(d.Removed),
		Empty:   d.Empty(),
	}
	names := make([]string, 0, len(d.Changed))
	for name := range d.Changed {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ch := d.Changed[name]
		v.Changed = append(v.Changed, headerChangeView{Name: name, Old: ch.Old, New: ch.New})
	}
	return v
}

func buildSpans(diffs []diffmatchpatch.Diff) []spanView {
	if len(diffs) == 0 {
		return nil
	}
	spans := make([]spanView, 0, len(diffs))
	for _, d := range diffs {
		op := "eq"
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = "ins"
		case diffmatchpatch.DiffDelete:
			op = "del"
		}
		spans = append(spans, spanView{Op: op, Text: d.Text})
	}
	return spans
}

func sortedHeaders(m map[string]string) []headerView {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]headerView, 0, len(names))
	for _, name := range names {
		out = append(out, headerView{Name: name, Value: m[name]})
	}
	return out
}

func badgeLabels(b compare.Badges) []string {
	var labels []string
	if b.Status {
		labels = append(labels, "status")
	}
	if b.Time {
		labels = append(labels, "time")
	}
	if b.Headers {
		labels = append(labels, "headers")
	}
	if b.GQLQuery {
		labels = append(labels, "gql:query")
	}
	if b.GQLVariables {
		labels = append(labels, "gql:variables")
	}
	return labels
}

func formatMs(ms float64) string {
	if ms == float64(int64(ms)) {
		return fmt.Sprintf("%dms", int64(ms))
	}
	return fmt.Sprintf("%.1fms", ms)
}
