// Package render turns generated briefs into deliverable documents.
package render

import (
	"fmt"
	"strings"

	"briefgen/internal/brief"
)

// sectionTitles are the printed document headings, numbered as in the
// delivered brief template.
var sectionTitles = map[brief.SectionID]string{
	brief.SectionPageType:        "Page Type Identification",
	brief.SectionPageTitle:       "Page Title",
	brief.SectionMetaDescription: "Meta Description",
	brief.SectionURLStructure:    "URL Structure",
	brief.SectionH1:              "H1 Heading",
	brief.SectionSummaryBullets:  "Summary Bullets",
	brief.SectionInternalLinks:   "Internal Linking",
	brief.SectionTargetAudience:  "Audience Definition",
	brief.SectionCTA:             "CTA / Path",
	brief.SectionRestrictions:    "Restrictions",
	brief.SectionRequirements:    "Requirements",
	brief.SectionHeadingsFAQ:     "Suggested Headings & Key Points (+ FAQ)",
}

// Markdown renders the brief as a markdown document: a metadata header
// followed by the twelve numbered sections.
func Markdown(b *brief.GeneratedBrief) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s - %s - Content Brief\n\n", b.Client, b.Topic)
	fmt.Fprintf(&sb, "| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Site | %s |\n", b.Site)
	fmt.Fprintf(&sb, "| Primary Keyword | %s |\n", b.PrimaryKeyword)
	fmt.Fprintf(&sb, "| Secondary Keywords | %s |\n", strings.Join(b.SecondaryKeywords, ", "))
	fmt.Fprintf(&sb, "| Provider | %s |\n", b.Provider)
	fmt.Fprintf(&sb, "| Date Generated | %s |\n\n", b.GeneratedAt.Format("02 January 2006"))

	for i, s := range b.Ordered() {
		fmt.Fprintf(&sb, "## %d. %s\n\n", i+1, sectionTitles[s.ID])
		sb.WriteString(strings.TrimSpace(s.Body))
		sb.WriteString("\n\n")
	}
	return sb.String()
}
