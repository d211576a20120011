package afl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveID(t *testing.T) {
	m := NewMatch()
	m.LocalDate = "2015-10-03"
	m.HomeTeamName = "Hawthorn"
	m.AwayTeamName = "West Coast Eagles"
	assert.Equal(t, "20151003_hawthorn_west coast eagles", m.DeriveID())

	// swapping home and away yields the same identifier
	n := NewMatch()
	n.LocalDate = "2015-10-03"
	n.HomeTeamName = "West Coast Eagles"
	n.AwayTeamName = "Hawthorn"
	assert.Equal(t, m.DeriveID(), n.DeriveID())
}

func TestMatchEquals(t *testing.T) {
	m := NewMatch()
	m.LocalDate = "2017-04-01"
	m.HomeTeamName = "Richmond"
	m.AwayTeamName = "Collingwood"

	n := NewMatch()
	n.LocalDate = "2017-04-01"
	n.HomeTeamName = "Collingwood"
	n.AwayTeamName = "Richmond"
	assert.True(t, m.Equals(n), "same date, same pairing, either orientation")

	n.LocalDate = "2017-04-08"
	assert.False(t, m.Equals(n))
	assert.False(t, m.Equals(nil))
}

func TestRoundHelpers(t *testing.T) {
	assert.Equal(t, 1, ParseRoundNumber("Round 1"))
	assert.Equal(t, 23, ParseRoundNumber("Round 23"))
	assert.Equal(t, 0, ParseRoundNumber("Grand Final"))
	assert.Equal(t, 0, ParseRoundNumber("Preliminary Final"))

	assert.False(t, IsFinalsRound("Round 14"))
	assert.True(t, IsFinalsRound("Qualifying Final"))
	assert.False(t, IsFinalsRound(""), "an unlabelled round is not assumed to be a final")
}

func TestMatchMerge(t *testing.T) {
	m := NewMatch()
	m.Venue = "M.C.G."

	n := NewMatch()
	n.Crowd = 85000
	n.HomeGoals, n.HomeBehinds, n.HomeScore = 14, 9, 93
	n.AwayGoals, n.AwayBehinds, n.AwayScore = 10, 10, 70
	n.Venue = "Docklands"

	require.NoError(t, m.Merge(n))
	assert.Equal(t, 85000, m.Crowd)
	assert.Equal(t, 93, m.HomeScore)
	assert.Equal(t, "M.C.G.", m.Venue, "existing values are never overwritten")
	assert.Equal(t, "14.9.93 - 10.10.70", m.RecreateScoreStr())

	assert.Error(t, m.Merge(nil))
}

func TestSortMatchesByTime(t *testing.T) {
	base := time.Date(2019, 4, 5, 9, 0, 0, 0, time.UTC)
	m1 := NewMatch()
	m1.UTCTime = base
	m2 := NewMatch()
	m2.UTCTime = base.AddDate(0, 0, 7)
	m3 := NewMatch()
	m3.UTCTime = base.AddDate(0, 0, 14)

	matches := []*Match{m3, m1, m2}
	SortMatchesByTime(matches)
	assert.Equal(t, []*Match{m1, m2, m3}, matches)
}

func TestFilterMatches(t *testing.T) {
	mk := func(season int, round string) *Match {
		m := NewMatch()
		m.Season = season
		m.Round = round
		return m
	}
	matches := []*Match{
		mk(2019, "Round 1"),
		mk(2020, "Round 1"),  // excluded season
		mk(2019, "Grand Final"),
		mk(2022, "Round 23"),
	}

	config := DefaultCrowdsConfig()
	config.ExcludedSeasons = []int{2020, 2021}
	config.IncludeFinals = false
	out := FilterMatches(matches, config)
	require.Len(t, out, 2)
	assert.Equal(t, 2019, out[0].Season)
	assert.Equal(t, 2022, out[1].Season)

	// the policy is configuration, flipping it changes the output
	config.IncludeFinals = true
	out = FilterMatches(matches, config)
	require.Len(t, out, 3)
}
