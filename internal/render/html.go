package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"briefgen/internal/brief"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// htmlShell wraps the converted body in a printable page. Colours match
// the delivered brief template.
const htmlShell = `<!DOCTYPE html>
<html lang="en-GB">
<head>
<meta charset="utf-8">
<title>%s - Content Brief</title>
<style>
body { font-family: Calibri, Arial, sans-serif; font-size: 11pt; color: #000; max-width: 50rem; margin: 2rem auto; }
h1 { background: #002060; color: #fff; padding: 0.5rem 1rem; font-size: 16pt; text-align: center; }
h2 { background: #4472c4; color: #fff; padding: 0.25rem 0.75rem; font-size: 12pt; }
table { border-collapse: collapse; width: 100%%; }
th, td { border: 1px solid #999; padding: 0.25rem 0.5rem; text-align: left; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the brief as a standalone styled page, produced from the
// markdown rendering.
func HTML(b *brief.GeneratedBrief) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(b)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert brief to HTML: %w", err)
	}
	return []byte(fmt.Sprintf(htmlShell, b.Client, body.String())), nil
}
