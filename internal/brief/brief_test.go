package brief

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedBriefJSON_SectionsInCanonicalOrder(t *testing.T) {
	b, err := Parse(wellFormedReply)
	require.NoError(t, err)
	b.Client = "Apex Surveys"
	b.Topic = "Measured Building Surveys"

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var wire struct {
		Sections []struct {
			ID SectionID `json:"id"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(data, &wire))
	require.Len(t, wire.Sections, len(SectionOrder))
	for i, id := range SectionOrder {
		assert.Equal(t, id, wire.Sections[i].ID, "section %d out of order", i)
	}
}

func TestGeneratedBriefJSON_RoundTrip(t *testing.T) {
	b, err := Parse(wellFormedReply)
	require.NoError(t, err)
	b.Client = "Apex Surveys"
	b.Site = "https://www.apexsurveys.co.uk"

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var back GeneratedBrief
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "Apex Surveys", back.Client)
	assert.Equal(t, b.Sections, back.Sections)
}
