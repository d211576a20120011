package afl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDataForTeam(t *testing.T) {
	data := GetDataInstance()

	// canonical name
	ti, err := data.GetDataForTeam("West Coast Eagles")
	require.NoError(t, err)
	assert.Equal(t, "WA", ti.State)

	// raw spellings resolve through the name mapping
	ti, err = data.GetDataForTeam("GW Sydney")
	require.NoError(t, err)
	assert.Equal(t, "GWS Giants", ti.Name)
	assert.Equal(t, "NSW", ti.State)

	_, err = data.GetDataForTeam("University")
	assert.Error(t, err)
}

func TestGetDataForVenue(t *testing.T) {
	data := GetDataInstance()

	vi, err := data.GetDataForVenue("M.C.G.")
	require.NoError(t, err)
	assert.Equal(t, "Australia/Melbourne", vi.Timezone)

	// sponsor names resolve to the canonical venue
	for _, alias := range []string{"Marvel Stadium", "Etihad Stadium"} {
		vi, err = data.GetDataForVenue(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, "Docklands", vi.Name)
	}

	vi, err = data.GetDataForVenue("Optus Stadium")
	require.NoError(t, err)
	assert.Equal(t, "Australia/Perth", vi.Timezone)

	_, err = data.GetDataForVenue("Waverley Park")
	assert.Error(t, err)
}

// Every canonical team name must map to itself transitively: the
// mapping's values are all valid keys into the teams table
func TestNameMappingClosed(t *testing.T) {
	data := GetDataInstance()
	for raw, canonical := range data.TeamNames {
		_, ok := data.TeamsData[canonical]
		assert.True(t, ok, "mapping %q -> %q points at an unknown team", raw, canonical)
	}
	for _, alias := range data.VenueAliases {
		_, ok := data.VenuesData[alias]
		assert.True(t, ok, "venue alias target %q is unknown", alias)
	}
}
