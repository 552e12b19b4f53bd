package brief

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefgen/internal/client"
	"briefgen/internal/provider"
)

func surveyProfile() *client.Profile {
	return &client.Profile{
		Name:        "Apex Surveys",
		Site:        "https://www.apexsurveys.co.uk",
		Information: "Chartered surveying practice covering London and the South East.",
		Restrictions: client.Restrictions{
			Legal:            []string{"Do not guarantee survey turnaround times"},
			Brand:            []string{"Always write the company name as Apex Surveys, never Apex"},
			SEO:              []string{"No keyword stuffing", "One H1 per page"},
			ContentIntegrity: []string{"No fabricated statistics"},
		},
		Requirements: client.Requirements{
			WordCount:         "800-1200 words",
			ReadabilityScore:  "8th grade level",
			Tone:              "Professional, plain-spoken",
			MandatoryMentions: []string{"RICS regulated", "3D laser scanning"},
			CTAPreference:     "Request a quote",
			SchemaRequired:    true,
			ImagesRequired:    2,
			InternalLinksMin:  6,
		},
	}
}

func surveyRequest() Request {
	return Request{
		Topic:             "Measured Building Surveys",
		PrimaryKeyword:    "measured building survey",
		SecondaryKeywords: []string{"building survey cost", "laser scanning survey"},
		Provider:          provider.Mistral,
		Profile:           surveyProfile(),
	}
}

func TestBuildPrompt_ContainsTopicAndKeywords(t *testing.T) {
	p := BuildPrompt(surveyRequest())

	assert.Contains(t, p.User, "Topic: Measured Building Surveys")
	assert.Contains(t, p.User, "Primary keyword: measured building survey")
	assert.Contains(t, p.User, "building survey cost")
	assert.Contains(t, p.User, "laser scanning survey")
}

func TestBuildPrompt_ContainsEveryRestrictionAndRequirementVerbatim(t *testing.T) {
	req := surveyRequest()
	p := BuildPrompt(req)

	r := req.Profile.Restrictions
	for _, group := range [][]string{r.Legal, r.Brand, r.SEO, r.ContentIntegrity} {
		for _, item := range group {
			assert.Contains(t, p.User, item)
		}
	}

	assert.Contains(t, p.User, "Word count: 800-1200 words")
	assert.Contains(t, p.User, "Readability: 8th grade level")
	assert.Contains(t, p.User, "Tone: Professional, plain-spoken")
	assert.Contains(t, p.User, "RICS regulated, 3D laser scanning")
	assert.Contains(t, p.User, "Schema markup required")
	assert.Contains(t, p.User, "Minimum images: 2")
	assert.Contains(t, p.User, "Minimum internal links: 6")
}

func TestBuildPrompt_ContainsAllTwelveHeadings(t *testing.T) {
	p := BuildPrompt(surveyRequest())

	for _, id := range SectionOrder {
		assert.Contains(t, p.User, sectionLabels[id])
	}
	assert.Contains(t, p.User, "## 1. Page Type")
	assert.Contains(t, p.User, "## 12. Suggested Headings & FAQ")
}

func TestBuildPrompt_SystemInstruction(t *testing.T) {
	p := BuildPrompt(surveyRequest())

	assert.Contains(t, p.System, "Absolute Mode")
	assert.Contains(t, p.System, "UK English")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt(surveyRequest())
	b := BuildPrompt(surveyRequest())
	assert.Equal(t, a, b)
}

func TestBuildPrompt_TruncatesLongInformation(t *testing.T) {
	req := surveyRequest()
	req.Profile.Information = strings.Repeat("history ", 2000)

	p := BuildPrompt(req)
	require.Contains(t, p.User, "[truncated]")
	assert.Less(t, len(p.User), len(req.Profile.Information))

	// Short inputs are never cut.
	req.Profile.Information = "Established 2009."
	p = BuildPrompt(req)
	assert.Contains(t, p.User, "Established 2009.")
	assert.NotContains(t, p.User, "[truncated]")
}
