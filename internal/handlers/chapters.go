package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"hs-exporter/internal/contextutil"
	"hs-exporter/internal/hscode"
	"hs-exporter/internal/service"
)

// ChapterHandler serves the tree view of a single chapter, as JSON or as an HTML page.
type ChapterHandler struct {
	catalog  service.CatalogService
	parser   goldmark.Markdown
	template *template.Template
}

// chapterPageData holds template data for rendered chapter pages.
type chapterPageData struct {
	Title   string
	Chapter string
	Rows    int
	Content template.HTML
}

// NewChapterHandler creates a new handler for chapter trees.
func NewChapterHandler(catalog service.CatalogService) *ChapterHandler {
	tmpl := template.Must(template.New("chapter").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 960px;
      line-height: 1.6;
      color: #1f2937;
    }
    header {
      margin-bottom: 1.5rem;
      border-bottom: 1px solid #e5e7eb;
    }
    table {
      border-collapse: collapse;
      width: 100%;
      margin-bottom: 1.5rem;
    }
    th, td {
      text-align: left;
      padding: 0.35rem 0.6rem;
      border-bottom: 1px solid #e5e7eb;
    }
    td:first-child {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
      white-space: nowrap;
    }
    .meta {
      color: #6b7280;
      font-size: 0.95rem;
    }
  </style>
</head>
<body>
  <header>
    <p class="meta">Chapter {{.Chapter}} &middot; {{.Rows}} rows</p>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &ChapterHandler{
		catalog: catalog,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// ServeTree writes the chapter's TreeRow list as JSON.
func (h *ChapterHandler) ServeTree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := h.catalog.ChapterTree(ctx, strings.TrimSpace(chi.URLParam(r, "hs2")))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load chapter")
		return
	}

	writeJSON(ctx, w, rows)
}

// ServePage renders the chapter tree as an HTML page.
func (h *ChapterHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	hs2 := strings.TrimSpace(chi.URLParam(r, "hs2"))
	rows, err := h.catalog.ChapterTree(ctx, hs2)
	if err != nil {
		status, msg := serviceErrorStatus(err, "Failed to load chapter")
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "failed to load chapter", "hs2", hs2, "error", err)
		}
		http.Error(w, msg, status)
		return
	}

	var html bytes.Buffer
	if err := h.parser.Convert([]byte(chapterMarkdown(rows)), &html); err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "hs2", hs2, "error", err)
		http.Error(w, "failed to render chapter", http.StatusInternalServerError)
		return
	}

	pageData := chapterPageData{
		Title:   fmt.Sprintf("HS chapter %s", hs2),
		Chapter: hs2,
		Rows:    len(rows),
		Content: template.HTML(html.String()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute chapter template", "hs2", hs2, "error", err)
	}
}

// chapterMarkdown lays out tree rows as a level-1 heading per chapter, a
// level-2 heading per heading and a table of its subheadings.
func chapterMarkdown(rows []hscode.TreeRow) string {
	var b strings.Builder
	inTable := false

	for _, row := range rows {
		switch row.Level {
		case hscode.LevelChapter:
			fmt.Fprintf(&b, "# Chapter %s\n\n", escapeMarkdown(row.HS2))
			inTable = false
		case hscode.LevelHeading:
			if inTable {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "## %s %s\n\n", escapeMarkdown(row.HS4), escapeMarkdown(row.Description))
			inTable = false
		case hscode.LevelSubheading:
			if !inTable {
				b.WriteString("| HS6 | Description |\n| --- | --- |\n")
				inTable = true
			}
			fmt.Fprintf(&b, "| %s | %s |\n", escapeMarkdown(row.HS6), escapeMarkdown(row.Description))
		}
	}
	return b.String()
}

// escapeMarkdown backslash-escapes ASCII punctuation so descriptions render as
// plain text, and flattens newlines so a value stays inside its table cell.
func escapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x80 && strings.ContainsRune("\\`*_{}[]()<>#+-.!|~&", r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
