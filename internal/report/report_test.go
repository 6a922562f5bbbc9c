package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/config"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/projection"
)

func TestBriefingSections(t *testing.T) {
	p := config.Defaults().ToModelParams()
	res, err := projection.New().Run(p)
	require.NoError(t, err)

	text, err := Briefing(p, res)
	require.NoError(t, err)

	assert.Contains(t, text, "RATE OUTLOOK (2030)")
	assert.Contains(t, text, "Status Quo")
	assert.Contains(t, text, "Expansion + Anchor")
	assert.Contains(t, text, "DIESEL DISPLACEMENT")
	assert.Contains(t, text, "EXPANSION VIABILITY")
	assert.Contains(t, text, "COMMUNITY IMPACT")
	assert.NotContains(t, text, "%!", "no malformed format verbs")
}

func TestBriefingViabilityVerdicts(t *testing.T) {
	p := config.Defaults().ToModelParams()

	// Default case: the 2 MW anchor at $120/MWh covers 60-90% of the $8M debt
	// share, the partial-coverage verdict.
	res, err := projection.New().Run(p)
	require.NoError(t, err)
	text, err := Briefing(p, res)
	require.NoError(t, err)
	assert.Contains(t, text, "Ratepayers absorb only the remaining")

	// A bigger anchor over-covers.
	p.AnchorPowerMW = 4
	res, err = projection.New().Run(p)
	require.NoError(t, err)
	text, err = Briefing(p, res)
	require.NoError(t, err)
	assert.Contains(t, text, "pays for itself")

	// A below-cost tariff trips the warning.
	p.AnchorTariffPerMWh = 80
	res, err = projection.New().Run(p)
	require.NoError(t, err)
	text, err = Briefing(p, res)
	require.NoError(t, err)
	assert.Contains(t, text, "not financially viable")
}
