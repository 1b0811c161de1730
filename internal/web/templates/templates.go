// Package templates renders the application's HTML as templ components.
//
// Components are written directly against the templ runtime (ComponentFunc)
// rather than generated from .templ sources; the markup is small enough that
// the generator would add more ceremony than it removes.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ResultsParams carries everything the results page needs.
type ResultsParams struct {
	FileName       string
	Columns        []string
	OriginalRows   [][]string
	DuplicateRows  [][]string
	HasDuplicates  bool
	DuplicateCount int
}

// Index renders the upload page.
func Index() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, "Duplicate Row Finder")
		b.WriteString(`<main class="container">`)
		b.WriteString(`<h1>Duplicate Row Finder</h1>`)
		b.WriteString(`<p>Upload a CSV file to find rows that are exact duplicates of another row.</p>`)
		b.WriteString(`<form class="upload-form" action="/upload" method="post" enctype="multipart/form-data">`)
		b.WriteString(`<input type="file" name="file" accept=".csv,text/csv" required>`)
		b.WriteString(`<button type="submit">Find duplicates</button>`)
		b.WriteString(`</form>`)
		b.WriteString(`</main>`)
		writeFoot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Results renders the post-upload page: the full original table, the
// duplicate subset, and the download action when duplicates exist.
func Results(p ResultsParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, "Results for "+p.FileName)
		b.WriteString(`<main class="container">`)
		fmt.Fprintf(&b, `<h1>Results for %s</h1>`, templ.EscapeString(p.FileName))

		b.WriteString(`<section>`)
		fmt.Fprintf(&b, `<h2>Original data (%d rows)</h2>`, len(p.OriginalRows))
		writeTable(&b, p.Columns, p.OriginalRows)
		b.WriteString(`</section>`)

		b.WriteString(`<section>`)
		if p.HasDuplicates {
			fmt.Fprintf(&b, `<h2>Duplicate rows (%d)</h2>`, p.DuplicateCount)
			writeTable(&b, p.Columns, p.DuplicateRows)
			b.WriteString(`<a class="button" href="/download_duplicates">Download duplicates as CSV</a>`)
		} else {
			b.WriteString(`<h2>Duplicate rows</h2>`)
			b.WriteString(`<p class="empty">No duplicate rows found.</p>`)
		}
		b.WriteString(`</section>`)

		b.WriteString(`<p><a href="/">Upload another file</a></p>`)
		b.WriteString(`</main>`)
		writeFoot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ErrorAlert renders an error fragment with the support code.
// Used both standalone for HTMX requests and inside the error page.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="alert alert-error" role="alert">`)
		fmt.Fprintf(&b, `<strong>%s</strong>`, templ.EscapeString(message))
		if action != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(action))
		}
		fmt.Fprintf(&b, `<span class="code">Code: %s</span>`, templ.EscapeString(code))
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ErrorPage wraps ErrorAlert in the full page layout.
func ErrorPage(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, "Error")
		b.WriteString(`<main class="container">`)
		b.WriteString(`<h1>Something went wrong</h1>`)
		if err := ErrorAlert(message, action, code).Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`<p><a href="/">Back to upload</a></p>`)
		b.WriteString(`</main>`)
		writeFoot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeTable renders a data table. Cell text is escaped.
func writeTable(b *strings.Builder, columns []string, rows [][]string) {
	b.WriteString(`<div class="table-wrap"><table class="data-table"><thead><tr>`)
	for _, c := range columns {
		fmt.Fprintf(b, `<th>%s</th>`, templ.EscapeString(c))
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, row := range rows {
		b.WriteString(`<tr>`)
		for _, cell := range row {
			fmt.Fprintf(b, `<td>%s</td>`, templ.EscapeString(cell))
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></div>`)
}

func writeHead(b *strings.Builder, title string) {
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	fmt.Fprintf(b, `<title>%s</title>`, templ.EscapeString(title))
	b.WriteString(`<link rel="stylesheet" href="/static/styles.css">`)
	b.WriteString(`</head><body>`)
}

func writeFoot(b *strings.Builder) {
	b.WriteString(`</body></html>`)
}
