package brief

import (
	"fmt"
	"strings"

	"briefgen/internal/client"
	"briefgen/internal/provider"
)

// systemInstruction is sent with every generation. The "Absolute Mode"
// block strips conversational padding from the model output so the
// section headings stay machine-locatable.
const systemInstruction = `System Instruction: Absolute Mode
• Eliminate: emojis, filler, hype, soft asks, conversational transitions, call-to-action appendixes.
• Assume: user retains high-perception despite blunt tone.
• Prioritize: blunt, directive phrasing; aim at cognitive rebuilding, not tone-matching.
• Disable: engagement/sentiment-boosting behaviors.
• Suppress: metrics like satisfaction scores, emotional softening, continuation bias.
• Never mirror: user's diction, mood, or affect.
• Speak only: to underlying cognitive tier.
• No: questions, offers, suggestions, transitions, motivational content.
• Terminate reply: immediately after delivering info - no closures.
• Goal: restore independent, high-fidelity thinking.
• Outcome: model obsolescence via user self-sufficiency.

Use UK English. Use hyphens rather than em-dashes. Write at 8th grade reading level. Simple words only.`

// maxInformationRunes caps the free-text client information so the
// prompt stays within provider context limits. Restrictions and
// requirements are never truncated.
const maxInformationRunes = 4000

// sectionLabels are the canonical heading names the model is told to
// emit and the parser looks for.
var sectionLabels = map[SectionID]string{
	SectionPageType:        "Page Type",
	SectionPageTitle:       "Page Title",
	SectionMetaDescription: "Meta Description",
	SectionURLStructure:    "URL Structure",
	SectionH1:              "H1 Heading",
	SectionSummaryBullets:  "Summary Bullets",
	SectionInternalLinks:   "Internal Linking",
	SectionTargetAudience:  "Target Audience",
	SectionCTA:             "CTA",
	SectionRestrictions:    "Restrictions",
	SectionRequirements:    "Requirements",
	SectionHeadingsFAQ:     "Suggested Headings & FAQ",
}

// BuildPrompt deterministically encodes the request into one prompt
// covering all twelve sections. Pure function, no I/O.
func BuildPrompt(req Request) provider.Prompt {
	p := req.Profile
	var b strings.Builder

	b.WriteString("Create a complete content brief with exactly 12 sections.\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Primary keyword: %s\n", req.PrimaryKeyword)
	fmt.Fprintf(&b, "Secondary keywords: %s\n", strings.Join(req.SecondaryKeywords, ", "))

	fmt.Fprintf(&b, "\nClient: %s\nSite: %s\n", p.Name, p.Site)
	if info := truncateRunes(p.Information, maxInformationRunes); info != "" {
		fmt.Fprintf(&b, "Client information: %s\n", info)
	}

	b.WriteString("\nClient restrictions. The content must respect every item. Echo them verbatim in section 10.\n")
	b.WriteString(FormatRestrictions(p))
	b.WriteString("\nClient requirements. Echo them verbatim in section 11.\n")
	b.WriteString(FormatRequirements(p))

	b.WriteString("\nOutput exactly 12 sections, each under a markdown heading of the form \"## <number>. <name>\", in this order. Follow the rules given under each heading.\n\n")
	for i, id := range SectionOrder {
		fmt.Fprintf(&b, "## %d. %s\n", i+1, sectionLabels[id])
		b.WriteString(sectionRules(id, req))
		b.WriteString("\n")
	}
	b.WriteString("Do not add any text before the first heading or after the last section.\n")

	return provider.Prompt{System: systemInstruction, User: b.String()}
}

func sectionRules(id SectionID, req Request) string {
	p := req.Profile
	switch id {
	case SectionPageType:
		return "State whether this should be a Landing Page or a Blog Post. Transactional, commercial, or service intent means Landing Page; informational or research intent means Blog Post. One sentence of reasoning covering search intent, funnel stage, and conversion goal.\n"
	case SectionPageTitle:
		return fmt.Sprintf("One title, 60 characters or fewer. Lead with \"%s\" or a close variant. People-first and accurate. Brand name at the end only if it adds relevance. Hyphens for structure; no pipes.\n", req.PrimaryKeyword)
	case SectionMetaDescription:
		return fmt.Sprintf("One description of 150-160 characters. Include \"%s\" naturally plus one secondary keyword if it reads smoothly. Active voice with a soft CTA such as Learn, Discover, or Get insight.\n", req.PrimaryKeyword)
	case SectionURLStructure:
		return fmt.Sprintf("One full canonical URL on %s. Lowercase, hyphenated, descriptive. No dates, tracking parameters, or filler words. Reflect the correct folder (/services/, /blog/).\n", p.Site)
	case SectionH1:
		return fmt.Sprintf("One H1 containing \"%s\" early and naturally. May differ from the title for readability. Reader-focused and benefit-driven.\n", req.PrimaryKeyword)
	case SectionSummaryBullets:
		return "4-6 bullet points, one line each, each starting with \"- \". Each bullet opens with a verb or benefit phrase and states what the reader learns, gains, or achieves.\n"
	case SectionInternalLinks:
		n := p.Requirements.InternalLinksMin
		if n < 6 {
			n = 6
		}
		return fmt.Sprintf("A markdown table with header row \"| Anchor Text | Target URL |\" and at least %d rows. Descriptive anchors of 2-5 words, one unique anchor per target, URLs consistent with %s. Mix parent hub, sibling, cornerstone, conversion, and supporting links.\n", n, p.Site)
	case SectionTargetAudience:
		return "3-5 lines starting \"We are writing for\". Define 1-2 personas with role, industry, pain point, and funnel stage.\n"
	case SectionCTA:
		rule := "Primary CTA text, optional secondary CTA text, a suggested destination URL, and a placement note (end, sidebar, or mid-section). Blogs get soft CTAs; landing pages get direct ones.\n"
		if p.Requirements.CTAPreference != "" {
			rule += fmt.Sprintf("The primary CTA must be \"%s\".\n", p.Requirements.CTAPreference)
		}
		return rule
	case SectionRestrictions:
		return "Repeat the client restrictions given above, verbatim and in full, grouped under the same category headings.\n"
	case SectionRequirements:
		return "Repeat the client requirements given above, verbatim and in full, one per line.\n"
	case SectionHeadingsFAQ:
		return "A full outline: 4-6 main headings written as \"H2: <text>\", each followed by 1-2 bullets of what to cover and optional \"H3: <text>\" subheadings. Flow: intro, background, main points, benefits, steps, conclusion. End with a line \"FAQ\" followed by 5-8 numbered questions phrased as real user queries.\n"
	default:
		return ""
	}
}

// FormatRestrictions renders every restriction string verbatim, grouped
// by category. Group headings are always present, even when empty.
func FormatRestrictions(p *client.Profile) string {
	var b strings.Builder
	writeGroup(&b, "Legal restrictions:", p.Restrictions.Legal)
	writeGroup(&b, "Brand restrictions:", p.Restrictions.Brand)
	writeGroup(&b, "SEO restrictions:", p.Restrictions.SEO)
	writeGroup(&b, "Content-integrity restrictions:", p.Restrictions.ContentIntegrity)
	return b.String()
}

// FormatRequirements renders every populated requirement verbatim, one
// per line.
func FormatRequirements(p *client.Profile) string {
	r := p.Requirements
	var b strings.Builder
	if r.WordCount != "" {
		fmt.Fprintf(&b, "- Word count: %s\n", r.WordCount)
	}
	if r.ReadabilityScore != "" {
		fmt.Fprintf(&b, "- Readability: %s\n", r.ReadabilityScore)
	}
	if r.Tone != "" {
		fmt.Fprintf(&b, "- Tone: %s\n", r.Tone)
	}
	if len(r.MandatoryMentions) > 0 {
		fmt.Fprintf(&b, "- Mandatory mentions: %s\n", strings.Join(r.MandatoryMentions, ", "))
	}
	if len(r.SectionsToInclude) > 0 {
		fmt.Fprintf(&b, "- Sections to include: %s\n", strings.Join(r.SectionsToInclude, ", "))
	}
	if r.CTAPreference != "" {
		fmt.Fprintf(&b, "- Preferred CTA: %s\n", r.CTAPreference)
	}
	if r.SchemaRequired {
		b.WriteString("- Schema markup required\n")
	}
	if r.ImagesRequired > 0 {
		fmt.Fprintf(&b, "- Minimum images: %d\n", r.ImagesRequired)
	}
	if r.InternalLinksMin > 0 {
		fmt.Fprintf(&b, "- Minimum internal links: %d\n", r.InternalLinksMin)
	}
	return b.String()
}

func writeGroup(b *strings.Builder, heading string, items []string) {
	b.WriteString(heading + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func truncateRunes(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + " [truncated]"
}
