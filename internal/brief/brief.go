// Package brief assembles structured content briefs from client
// profiles, topic input, and a single AI provider call.
package brief

import (
	"encoding/json"
	"time"

	"briefgen/internal/client"
	"briefgen/internal/provider"
)

// SectionID names one of the twelve fixed brief sections.
type SectionID string

const (
	SectionPageType        SectionID = "page_type"
	SectionPageTitle       SectionID = "page_title"
	SectionMetaDescription SectionID = "meta_description"
	SectionURLStructure    SectionID = "url_structure"
	SectionH1              SectionID = "h1"
	SectionSummaryBullets  SectionID = "summary_bullets"
	SectionInternalLinks   SectionID = "internal_links"
	SectionTargetAudience  SectionID = "target_audience"
	SectionCTA             SectionID = "cta"
	SectionRestrictions    SectionID = "restrictions_echo"
	SectionRequirements    SectionID = "requirements_echo"
	SectionHeadingsFAQ     SectionID = "headings_faq"
)

// SectionOrder is the canonical document order of the twelve sections.
var SectionOrder = []SectionID{
	SectionPageType,
	SectionPageTitle,
	SectionMetaDescription,
	SectionURLStructure,
	SectionH1,
	SectionSummaryBullets,
	SectionInternalLinks,
	SectionTargetAudience,
	SectionCTA,
	SectionRestrictions,
	SectionRequirements,
	SectionHeadingsFAQ,
}

// Request describes one brief to generate. Profile is read-only;
// ownership stays with the client store.
type Request struct {
	Topic             string
	PrimaryKeyword    string
	SecondaryKeywords []string
	Provider          provider.ID
	Profile           *client.Profile
}

// Link is one internal-linking suggestion.
type Link struct {
	AnchorText string `json:"anchor_text"`
	TargetURL  string `json:"target_url"`
}

// Heading is one node of the suggested outline.
type Heading struct {
	Level int      `json:"level"`
	Text  string   `json:"text"`
	Notes []string `json:"notes,omitempty"`
}

// QA is one FAQ entry.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// Section is one located brief section. Body always carries the raw
// text; the typed fields are filled only when the sub-structure of a
// structured section could be decomposed.
type Section struct {
	ID      SectionID `json:"id"`
	Body    string    `json:"body"`
	Bullets []string  `json:"bullets,omitempty"`
	Links   []Link    `json:"links,omitempty"`
	Outline []Heading `json:"outline,omitempty"`
	FAQ     []QA      `json:"faq,omitempty"`
}

// GeneratedBrief is a complete twelve-section content brief. After a
// successful generation every SectionID in SectionOrder is present.
type GeneratedBrief struct {
	Client            string      `json:"client"`
	Site              string      `json:"site"`
	Topic             string      `json:"topic"`
	PrimaryKeyword    string      `json:"primary_keyword"`
	SecondaryKeywords []string    `json:"secondary_keywords"`
	Provider          provider.ID `json:"provider"`
	GeneratedAt       time.Time   `json:"generated_at"`
	Sections          map[SectionID]Section
}

// Ordered returns the sections in canonical order.
func (b *GeneratedBrief) Ordered() []Section {
	out := make([]Section, 0, len(SectionOrder))
	for _, id := range SectionOrder {
		if s, ok := b.Sections[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// briefJSON is the wire shape: sections travel as an array so the
// canonical order survives serialization.
type briefJSON struct {
	Client            string      `json:"client"`
	Site              string      `json:"site"`
	Topic             string      `json:"topic"`
	PrimaryKeyword    string      `json:"primary_keyword"`
	SecondaryKeywords []string    `json:"secondary_keywords"`
	Provider          provider.ID `json:"provider"`
	GeneratedAt       time.Time   `json:"generated_at"`
	Sections          []Section   `json:"sections"`
}

func (b *GeneratedBrief) MarshalJSON() ([]byte, error) {
	return json.Marshal(briefJSON{
		Client:            b.Client,
		Site:              b.Site,
		Topic:             b.Topic,
		PrimaryKeyword:    b.PrimaryKeyword,
		SecondaryKeywords: b.SecondaryKeywords,
		Provider:          b.Provider,
		GeneratedAt:       b.GeneratedAt,
		Sections:          b.Ordered(),
	})
}

func (b *GeneratedBrief) UnmarshalJSON(data []byte) error {
	var raw briefJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Client = raw.Client
	b.Site = raw.Site
	b.Topic = raw.Topic
	b.PrimaryKeyword = raw.PrimaryKeyword
	b.SecondaryKeywords = raw.SecondaryKeywords
	b.Provider = raw.Provider
	b.GeneratedAt = raw.GeneratedAt
	b.Sections = make(map[SectionID]Section, len(raw.Sections))
	for _, s := range raw.Sections {
		b.Sections[s.ID] = s
	}
	return nil
}
