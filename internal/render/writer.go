package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"briefgen/internal/brief"
)

// Format selects the output document type.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// Writer saves rendered briefs into an output directory.
type Writer struct {
	dir string
}

// NewWriter creates the output directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Write renders the brief and saves it as
// {client}_{topic}_{timestamp}.{ext}, returning the file path.
func (w *Writer) Write(b *brief.GeneratedBrief, format Format) (string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatHTML:
		data, err = HTML(b)
		if err != nil {
			return "", err
		}
	case FormatMarkdown, "":
		data = []byte(Markdown(b))
		format = FormatMarkdown
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}

	name := fmt.Sprintf("%s_%s_%s.%s",
		safeName(b.Client),
		safeName(truncate(b.Topic, 30)),
		b.GeneratedAt.Format("20060102_150405"),
		format,
	)
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write brief document: %w", err)
	}
	return path, nil
}

func safeName(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
