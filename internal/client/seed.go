package client

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// Seed creates sample client profiles so the service is usable out of
// the box. Existing profiles are left untouched.
func Seed(store *Store) error {
	for _, p := range sampleProfiles {
		p := p
		err := store.Create(&p)
		switch {
		case errors.Is(err, ErrProfileExists):
			continue
		case err != nil:
			return err
		default:
			log.Info().Str("client", p.Name).Msg("Seeded client profile")
		}
	}
	return nil
}

var sampleProfiles = []Profile{
	{
		Name:        "Apex Surveys",
		Site:        "https://www.apexsurveys.co.uk",
		Information: "Chartered surveying practice covering London and the South East. Core services: measured building surveys, topographical surveys, 3D laser scanning. Established 2009, RICS regulated.",
		Restrictions: Restrictions{
			Legal: []string{
				"Do not guarantee survey turnaround times",
				"No claims of RICS endorsement beyond regulated status",
			},
			Brand: []string{
				"Always write the company name as Apex Surveys, never Apex",
				"No competitor comparisons by name",
			},
			SEO: []string{
				"No keyword stuffing",
				"One H1 per page",
			},
			ContentIntegrity: []string{
				"No fabricated statistics",
				"Cite sources for any industry figures",
			},
		},
		Requirements: Requirements{
			WordCount:         "800-1200 words",
			ReadabilityScore:  "8th grade level",
			Tone:              "Professional, plain-spoken",
			MandatoryMentions: []string{"RICS regulated", "3D laser scanning"},
			CTAPreference:     "Request a quote",
			SchemaRequired:    true,
			ImagesRequired:    2,
			InternalLinksMin:  6,
		},
	},
	{
		Name:        "Bramble & Co",
		Site:        "https://www.brambleandco.com",
		Information: "Independent accountancy firm for small businesses and sole traders. Services: bookkeeping, VAT returns, self assessment, payroll.",
		Restrictions: Restrictions{
			Legal: []string{
				"No specific tax advice; general guidance only",
				"Include 'speak to an adviser' disclaimer on tax topics",
			},
			Brand: []string{
				"Friendly but never jokey",
			},
			SEO: []string{
				"Avoid exact-match anchor text repetition",
			},
			ContentIntegrity: []string{
				"HMRC figures must reference the current tax year",
			},
		},
		Requirements: Requirements{
			WordCount:         "1000-1500 words",
			ReadabilityScore:  "8th grade level",
			Tone:              "Approachable, clear",
			MandatoryMentions: []string{"free initial consultation"},
			CTAPreference:     "Book a consultation",
			SchemaRequired:    false,
			ImagesRequired:    1,
			InternalLinksMin:  8,
		},
	},
}
