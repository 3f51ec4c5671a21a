package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRowMatchesColumns(t *testing.T) {
	lead := Lead{
		FirstName:      "Jane",
		LastName:       "Doe",
		JobTitle:       "CTO",
		CompanyName:    "Example",
		CompanyWebsite: "https://example.com",
		Industry:       "Software",
		Email:          "jane@example.com",
		EmailVerified:  true,
		MobilePhone:    "5551230000",
		MobileVerified: false,
		LinkedinURL:    "linkedin.com/in/jdoe",
		Source:         SourceApolloEnrichment,
	}

	row := lead.Row()
	require.Len(t, row, len(LeadColumns))
	assert.Len(t, LeadColumns, 12)

	assert.Equal(t, "Jane", row[0])
	assert.Equal(t, "true", row[7])
	assert.Equal(t, "false", row[9])
	assert.Equal(t, "apollo_enrichment", row[11])
}

func TestEmptyLeadStillFillsEveryColumn(t *testing.T) {
	row := Lead{}.Row()
	require.Len(t, row, 12)
	assert.Equal(t, "false", row[7])
	assert.Equal(t, "false", row[9])
}
