package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/roach88/harcmp/internal/compare"
)

type pageData struct {
	Page pageView
	CSS  template.CSS
	JS   template.JS
}

// Render writes the comparison result as a standalone HTML document.
func Render(w io.Writer, res compare.Result) error {
	data := pageData{
		Page: buildPage(res),
		CSS:  template.CSS(pageCSS),
		JS:   template.JS(pageJS),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// entryRowData bundles an entry with its badge label and style so the
// added/removed sections share one row template.
type entryRowData struct {
	Entry entryView
	Label string
	Style string
}

func entryRow(e entryView, label, style string) entryRowData {
	return entryRowData{Entry: e, Label: label, Style: style}
}

const mainTemplate = `<!doctype html><html><head><meta charset='utf-8'><meta name='viewport' content='width=device-width,initial-scale=1'>
<title>HAR Compare</title>
<style>{{.CSS}}</style>
</head><body>
<div class="container">
  <div class="h1">HAR Compare</div>
  <div class="toolbar">
    <div class="tabs">
      <div id="tab-added" class="tab active" onclick="showTab('added')">Added/Removed</div>
      <div id="tab-changed" class="tab" onclick="showTab('changed')">Changed</div>
    </div>
    <div class="filters">
      <div class="checkbox-list">{{range .Page.Domains}}<label><input type="checkbox" class="domain-checkbox" value="{{.}}" checked onchange="onFilterChanged()"> {{.}}</label>{{end}} <button onclick="selectAllDomains(true)" type="button">All</button> <button onclick="selectAllDomains(false)" type="button">None</button></div>
      <input id="searchBox" type="search" placeholder="Search request name..." oninput="onFilterChanged()"/>
    </div>
  </div>
  <div id="panel-added" class="panel" style="display:block">
    <h3 class="section-title">New Requests</h3>
    <table class="table">
      {{range .Page.Added}}{{template "entryRow" entry . "added" "good"}}{{end}}
    </table>
    <h3 class="section-title">Missing Requests</h3>
    <table class="table">
      {{range .Page.Removed}}{{template "entryRow" entry . "removed" "bad"}}{{end}}
    </table>
  </div>
  <div id="panel-changed" class="panel" style="display:none">
    <table class="table">
      {{range .Page.Changed}}{{template "changeRow" .}}{{end}}
    </table>
  </div>
</div>
<script>{{.JS}}</script>
</body></html>
`

const entryRowTemplate = `<tr class="tr expand" data-row="req" onclick="toggleDetails('{{.Entry.ID}}')" data-detail-id="{{.Entry.ID}}" data-domain="{{.Entry.Domain}}" data-name="{{.Entry.Name}}">
        <td class="td">{{.Entry.Method}}</td>
        <td class="td"><span class="url">{{.Entry.URL}}</span></td>
        <td class="td"><span class="badge {{.Style}}">{{.Label}}</span></td>
      </tr>
      <tr id="{{.Entry.ID}}" class="details"><td class="td" colspan="3">
        <div class="section-title">Request Headers</div>
        <ul class="kv">{{range .Entry.RequestHeaders}}<li>{{.Name}}: {{.Value}}</li>{{end}}</ul>
        <div class="section-title">Response Headers</div>
        <ul class="kv">{{range .Entry.ResponseHeaders}}<li>{{.Name}}: {{.Value}}</li>{{end}}</ul>
        {{with .Entry.GraphQL}}{{if .Operation}}<div class="section-title">GraphQL Operation</div><div class="td">[{{.Operation}}]</div>{{end}}{{if .Query}}<div class="section-title">Query</div><div class="code">{{.Query}}</div>{{end}}{{if .Variables}}<div class="section-title">Variables</div><pre class="code">{{.Variables}}</pre>{{end}}{{end}}
      </td></tr>`

const headerDeltaTemplate = `<div class="section-title">{{.Title}}</div>
        {{if .Empty}}<div class="td" style="color:var(--muted)">No changes</div>{{else}}<ul class="kv">
        {{range .Added}}<li><span class="badge good">+ {{.Name}}</span> {{.Value}}</li>{{end}}
        {{range .Removed}}<li><span class="badge bad">- {{.Name}}</span> {{.Value}}</li>{{end}}
        {{range .Changed}}<li>{{.Name}}: <span class="diff"><span class="old">{{.Old}}</span> &rarr; <span class="new">{{.New}}</span></span></li>{{end}}
        </ul>{{end}}`

const spansTemplate = `<div class="code diff">{{range .}}{{if eq .Op "ins"}}<span class="new">{{.Text}}</span>{{else if eq .Op "del"}}<span class="old">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}</div>`

const changeRowTemplate = `<tr class="tr expand" onclick="toggleDetails('{{.ID}}')" data-row="req" data-detail-id="{{.ID}}" data-domain="{{.Domain}}" data-name="{{.Name}}">
        <td class="td">{{.Method}}</td>
        <td class="td"><span class="url">{{.URL}}</span><div style="color:var(--muted);font-size:12px">{{.Name}}</div></td>
        <td class="td">{{if .StatusChanged}}<span class="diff"><span class="old">{{.StatusOld}}</span> &rarr; <span class="new">{{.StatusNew}}</span></span>{{else}}{{.StatusNew}}{{end}}</td>
        <td class="td">{{if .TimeChanged}}<span class="diff"><span class="old">{{.TimeOld}}</span> &rarr; <span class="new">{{.TimeNew}}</span></span>{{else}}{{.TimeNew}}{{end}}</td>
        <td class="td">{{range .Badges}}<span class="badge warn">{{.}}</span>{{else}}<span class="badge">no-change</span>{{end}}</td>
      </tr>
      <tr id="{{.ID}}" class="details"><td class="td" colspan="5">
        {{template "headerDelta" .RequestHeaders}}
        {{template "headerDelta" .ResponseHeaders}}
        {{with .GraphQL}}{{if or .OperationOld .OperationNew}}<div class="section-title">GraphQL Operation{{if .OperationChanged}} <span class="badge warn">changed</span>{{end}}</div>
        <div class="td">[{{.OperationOld}}] &rarr; [{{.OperationNew}}]</div>{{end}}
        {{if or .QueryOld .QueryNew}}<div class="section-title">Query{{if .QueryChanged}} <span class="badge warn">changed</span>{{end}}</div>
        {{if .QuerySpans}}{{template "spans" .QuerySpans}}{{else}}<div class="code">{{.QueryNew}}</div>{{end}}{{end}}
        {{if or .VariablesOld .VariablesNew}}<div class="section-title">Variables{{if .VariablesChanged}} <span class="badge warn">changed</span>{{end}}</div>
        {{if .VariableSpans}}{{template "spans" .VariableSpans}}{{else}}<pre class="code">{{.VariablesNew}}</pre>{{end}}{{end}}{{end}}
      </td></tr>`

var pageTemplate = func() *template.Template {
	t := template.New("report").Funcs(template.FuncMap{"entry": entryRow})
	template.Must(t.Parse(mainTemplate))
	template.Must(t.New("entryRow").Parse(entryRowTemplate))
	template.Must(t.New("headerDelta").Parse(headerDeltaTemplate))
	template.Must(t.New("spans").Parse(spansTemplate))
	template.Must(t.New("changeRow").Parse(changeRowTemplate))
	return t
}()
