// Package client manages client profiles stored as JSON files.
package client

// Profile holds a client's content rules, merged into every brief
// prompt generated for that client.
type Profile struct {
	Name         string       `json:"client_name"`
	Site         string       `json:"site"`
	Information  string       `json:"information,omitempty"`
	Restrictions Restrictions `json:"restrictions"`
	Requirements Requirements `json:"requirements"`
}

// Restrictions are hard rules the generated content must never break,
// grouped by category.
type Restrictions struct {
	Legal            []string `json:"legal"`
	Brand            []string `json:"brand"`
	SEO              []string `json:"seo"`
	ContentIntegrity []string `json:"content_integrity"`
}

// Requirements are the deliverable expectations for each piece of
// content written for the client.
type Requirements struct {
	WordCount         string   `json:"word_count"`
	ReadabilityScore  string   `json:"readability_score"`
	Tone              string   `json:"tone"`
	MandatoryMentions []string `json:"mandatory_mentions"`
	SectionsToInclude []string `json:"sections_to_include,omitempty"`
	CTAPreference     string   `json:"cta_preference,omitempty"`
	SchemaRequired    bool     `json:"schema_required"`
	ImagesRequired    int      `json:"images_required"`
	InternalLinksMin  int      `json:"internal_links_min"`
}
