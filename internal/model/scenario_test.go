package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioTraits(t *testing.T) {
	assert.False(t, StatusQuo.HasExpansion())
	assert.False(t, StatusQuo.HasAnchor())
	assert.True(t, ExpansionOnly.HasExpansion())
	assert.False(t, ExpansionOnly.HasAnchor())
	assert.True(t, ExpansionPlusAnchor.HasExpansion())
	assert.True(t, ExpansionPlusAnchor.HasAnchor())
}

func TestScenariosOrderIsStable(t *testing.T) {
	require.Equal(t, []Scenario{StatusQuo, ExpansionOnly, ExpansionPlusAnchor}, Scenarios())
}

func TestParseScenario(t *testing.T) {
	for _, sc := range Scenarios() {
		got, err := ParseScenario(string(sc))
		require.NoError(t, err)
		assert.Equal(t, sc, got)
	}
	_, err := ParseScenario("expansion")
	require.Error(t, err)
}
