package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefgen/internal/brief"
	"briefgen/internal/provider"
)

func sampleBrief() *brief.GeneratedBrief {
	sections := make(map[brief.SectionID]brief.Section, len(brief.SectionOrder))
	for _, id := range brief.SectionOrder {
		sections[id] = brief.Section{ID: id, Body: "Body for " + string(id) + "."}
	}
	sections[brief.SectionPageTitle] = brief.Section{
		ID:   brief.SectionPageTitle,
		Body: "Measured Building Surveys - Accurate Floor Plans",
	}
	return &brief.GeneratedBrief{
		Client:            "Apex Surveys",
		Site:              "https://www.apexsurveys.co.uk",
		Topic:             "Measured Building Surveys",
		PrimaryKeyword:    "measured building survey",
		SecondaryKeywords: []string{"building survey cost"},
		Provider:          provider.Mistral,
		GeneratedAt:       time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Sections:          sections,
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleBrief())

	assert.True(t, strings.HasPrefix(out, "# Apex Surveys - Measured Building Surveys - Content Brief\n"))
	assert.Contains(t, out, "| Site | https://www.apexsurveys.co.uk |")
	assert.Contains(t, out, "| Primary Keyword | measured building survey |")
	assert.Contains(t, out, "| Provider | mistral |")
	assert.Contains(t, out, "| Date Generated | 14 March 2026 |")

	assert.Contains(t, out, "## 1. Page Type Identification")
	assert.Contains(t, out, "## 2. Page Title")
	assert.Contains(t, out, "Measured Building Surveys - Accurate Floor Plans")
	assert.Contains(t, out, "## 12. Suggested Headings & Key Points (+ FAQ)")

	// Sections appear in fixed order.
	assert.Less(t,
		strings.Index(out, "## 1. Page Type Identification"),
		strings.Index(out, "## 9. CTA / Path"))
}

func TestHTML(t *testing.T) {
	data, err := HTML(sampleBrief())
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Apex Surveys - Measured Building Surveys - Content Brief")
	assert.Contains(t, html, "Page Type Identification")
	assert.NotContains(t, html, "## 1.", "markdown headings must be converted")
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	path, err := w.Write(sampleBrief(), FormatMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "Apex_Surveys_Measured_Building_Surveys_20260314_093000.md", filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Apex Surveys - Measured Building Surveys - Content Brief")
}

func TestWriter_DefaultsToMarkdown(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	path, err := w.Write(sampleBrief(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".md"))
}

func TestWriter_HTMLFormat(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	path, err := w.Write(sampleBrief(), FormatHTML)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".html"))
}

func TestWriter_RejectsUnknownFormat(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	_, err = w.Write(sampleBrief(), "docx")
	assert.Error(t, err)
}

func TestWriter_TruncatesLongTopics(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	b := sampleBrief()
	b.Topic = strings.Repeat("very long topic ", 10)
	path, err := w.Write(b, FormatMarkdown)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.Less(t, len(base), 80)
}
