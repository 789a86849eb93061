package reporting

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Revenue Estimator Report</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; margin-bottom: 1rem; }
th, td { border: 1px solid #ddd; padding: 0.3rem 0.6rem; text-align: right; }
th:first-child, td:first-child { text-align: left; }
</style>
</head>
<body>
`

const htmlTail = `</body>
</html>
`

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

// RenderHTML renders the Markdown report as a standalone HTML page.
func RenderHTML(r *Report) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(RenderMarkdown(r)), &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	var out bytes.Buffer
	out.WriteString(htmlHead)
	out.Write(body.Bytes())
	out.WriteString(htmlTail)
	return out.Bytes(), nil
}
