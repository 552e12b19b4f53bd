package brief

import (
	"regexp"
	"strings"
)

// headingVariants maps normalised heading labels to section ids. The
// model is instructed to use the canonical labels, but replies drift;
// each section accepts the label variants seen in practice.
var headingVariants = map[string]SectionID{
	"page type":                SectionPageType,
	"page type identification": SectionPageType,
	"page title":               SectionPageTitle,
	"meta description":         SectionMetaDescription,
	"url structure":            SectionURLStructure,
	"target url":               SectionURLStructure,
	"url":                      SectionURLStructure,
	"h1":                       SectionH1,
	"h1 heading":               SectionH1,
	"summary bullets":          SectionSummaryBullets,
	"summary bullet points":    SectionSummaryBullets,
	"internal linking":         SectionInternalLinks,
	"internal links":           SectionInternalLinks,
	"internal linking table":   SectionInternalLinks,
	"target audience":          SectionTargetAudience,
	"audience":                 SectionTargetAudience,
	"audience definition":      SectionTargetAudience,
	"cta":                      SectionCTA,
	"cta path":                 SectionCTA,
	"call to action":           SectionCTA,
	"restrictions":             SectionRestrictions,
	"requirements":             SectionRequirements,
	"suggested headings and faq":                SectionHeadingsFAQ,
	"suggested headings faq":                    SectionHeadingsFAQ,
	"suggested headings":                        SectionHeadingsFAQ,
	"suggested headings and key points faq":     SectionHeadingsFAQ,
	"suggested headings and key points and faq": SectionHeadingsFAQ,
	"headings and faq":                          SectionHeadingsFAQ,
	"headings faq":                              SectionHeadingsFAQ,
}

var (
	numberPrefixRe  = regexp.MustCompile(`^\d{1,2}[.)]\s*`)
	nonLabelCharsRe = regexp.MustCompile(`[^a-z0-9 ]+`)
	spaceRunRe      = regexp.MustCompile(`\s+`)
	bulletRe        = regexp.MustCompile(`^[-*•]\s+`)
	faqNumberRe     = regexp.MustCompile(`^\d{1,2}[.)]\s*(.+)$`)
)

// Parse extracts the twelve sections from a raw model reply. All twelve
// must be locatable by heading; otherwise a ParseError lists what is
// missing and no brief is returned. Sub-structure that cannot be
// decomposed degrades to raw body text.
func Parse(raw string) (*GeneratedBrief, error) {
	lines := strings.Split(raw, "\n")

	type mark struct {
		id   SectionID
		line int
	}
	var marks []mark
	seen := make(map[SectionID]bool)
	for i, line := range lines {
		id, ok := matchHeading(line)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		marks = append(marks, mark{id: id, line: i})
	}

	var missing []SectionID
	for _, id := range SectionOrder {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{Missing: missing}
	}

	sections := make(map[SectionID]Section, len(SectionOrder))
	for i, m := range marks {
		end := len(lines)
		if i+1 < len(marks) {
			end = marks[i+1].line
		}
		body := strings.TrimSpace(strings.Join(lines[m.line+1:end], "\n"))
		sections[m.id] = decompose(Section{ID: m.id, Body: body})
	}

	return &GeneratedBrief{Sections: sections}, nil
}

// matchHeading reports whether a line is a section heading. Matching is
// case-insensitive and tolerant of markdown marks, numbering prefixes,
// bold markers, and trailing colons.
func matchHeading(line string) (SectionID, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 80 {
		return "", false
	}
	if bulletRe.MatchString(trimmed) {
		return "", false
	}
	id, ok := headingVariants[normalizeHeading(trimmed)]
	return id, ok
}

func normalizeHeading(s string) string {
	s = strings.TrimLeft(s, "#")
	s = strings.ReplaceAll(s, "**", "")
	s = strings.TrimSpace(s)
	s = numberPrefixRe.ReplaceAllString(s, "")
	s = strings.TrimRight(s, ":")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")
	s = nonLabelCharsRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func decompose(s Section) Section {
	switch s.ID {
	case SectionSummaryBullets:
		s.Bullets = parseBullets(s.Body)
	case SectionInternalLinks:
		s.Links = parseLinkTable(s.Body)
	case SectionHeadingsFAQ:
		s.Outline, s.FAQ = parseOutline(s.Body)
	}
	return s
}

func parseBullets(body string) []string {
	var bullets []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if loc := bulletRe.FindString(trimmed); loc != "" {
			if text := strings.TrimSpace(trimmed[len(loc):]); text != "" {
				bullets = append(bullets, text)
			}
		}
	}
	return bullets
}

// parseLinkTable reads a markdown table into anchor/URL pairs. Column
// positions come from the header row when one is present; otherwise the
// first column is the anchor and the second the URL.
func parseLinkTable(body string) []Link {
	anchorCol, urlCol := 0, 1
	headerSeen := false
	var links []Link
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "|") {
			continue
		}
		cells := splitTableRow(trimmed)
		if len(cells) < 2 || isSeparatorRow(cells) {
			continue
		}
		if !headerSeen {
			headerSeen = true
			if a, u, ok := headerColumns(cells); ok {
				anchorCol, urlCol = a, u
				continue
			}
			// No recognisable header; treat this row as data.
		}
		if anchorCol >= len(cells) || urlCol >= len(cells) {
			continue
		}
		anchor, url := cells[anchorCol], cells[urlCol]
		if anchor == "" || url == "" {
			continue
		}
		links = append(links, Link{AnchorText: anchor, TargetURL: url})
	}
	return links
}

func splitTableRow(row string) []string {
	row = strings.Trim(row, "|")
	parts := strings.Split(row, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, "-: ") != "" {
			return false
		}
	}
	return true
}

func headerColumns(cells []string) (anchorCol, urlCol int, ok bool) {
	anchorCol, urlCol = -1, -1
	for i, c := range cells {
		lower := strings.ToLower(c)
		switch {
		case strings.Contains(lower, "anchor"):
			anchorCol = i
		case strings.Contains(lower, "url") || strings.Contains(lower, "target"):
			if urlCol == -1 {
				urlCol = i
			}
		}
	}
	if anchorCol == -1 || urlCol == -1 {
		return 0, 0, false
	}
	return anchorCol, urlCol, true
}

// parseOutline reads the "H2:"/"H3:" outline and trailing FAQ block.
// Markdown-style ## and ### headings are accepted as well.
func parseOutline(body string) ([]Heading, []QA) {
	var (
		outline []Heading
		faq     []QA
		inFAQ   bool
	)
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(strings.TrimRight(trimmed, ":"))
		if lower == "faq" || lower == "faqs" || lower == "## faq" {
			inFAQ = true
			continue
		}
		if inFAQ {
			if m := faqNumberRe.FindStringSubmatch(trimmed); m != nil {
				faq = append(faq, QA{Question: strings.TrimSpace(m[1])})
				continue
			}
			if q, ok := cutPrefixFold(trimmed, "q:"); ok {
				faq = append(faq, QA{Question: q})
				continue
			}
			if a, ok := cutPrefixFold(trimmed, "a:"); ok && len(faq) > 0 {
				faq[len(faq)-1].Answer = a
			} else if a, ok := cutPrefixFold(trimmed, "answer:"); ok && len(faq) > 0 {
				faq[len(faq)-1].Answer = a
			}
			continue
		}
		switch {
		case hasHeadingPrefix(trimmed, "H2:"), strings.HasPrefix(trimmed, "## "):
			outline = append(outline, Heading{Level: 2, Text: headingText(trimmed)})
		case hasHeadingPrefix(trimmed, "H3:"), strings.HasPrefix(trimmed, "### "):
			outline = append(outline, Heading{Level: 3, Text: headingText(trimmed)})
		case bulletRe.MatchString(trimmed) && len(outline) > 0:
			note := strings.TrimSpace(bulletRe.ReplaceAllString(trimmed, ""))
			last := len(outline) - 1
			outline[last].Notes = append(outline[last].Notes, note)
		}
	}
	return outline, faq
}

func hasHeadingPrefix(s, prefix string) bool {
	return len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func headingText(s string) string {
	s = strings.TrimLeft(s, "#")
	for _, p := range []string{"H2:", "h2:", "H3:", "h3:"} {
		s = strings.TrimPrefix(strings.TrimSpace(s), p)
	}
	return strings.TrimSpace(s)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return strings.TrimSpace(s[len(prefix):]), true
	}
	return "", false
}
