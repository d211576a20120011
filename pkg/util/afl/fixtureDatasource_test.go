package afl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixtureJSON = `{
  "games": [
    {
      "date": "2015-10-03 14:30:00",
      "tz": "+10:00",
      "round": 28,
      "roundname": "Grand Final",
      "year": 2015,
      "venue": "M.C.G.",
      "hteam": "West Coast",
      "ateam": "Hawthorn",
      "hscore": 61,
      "hgoals": 8,
      "hbehinds": 13,
      "ascore": 107,
      "agoals": 16,
      "abehinds": 11
    },
    {
      "date": "2016-03-24 19:20:00",
      "tz": "+11:00",
      "round": 1,
      "roundname": "Round 1",
      "year": 2016,
      "venue": "M.C.G.",
      "hteam": "Richmond",
      "ateam": "Carlton"
    }
  ]
}`

func TestExtractMatches(t *testing.T) {
	f := &FixtureDatasource{}
	matches, err := f.extractMatches([]byte(sampleFixtureJSON), 2015)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	t.Log("Played fixture carries scores and a finals round label")
	m := matches[0]
	assert.Equal(t, "West Coast", m.HomeTeamName)
	assert.Equal(t, "Hawthorn", m.AwayTeamName)
	assert.Equal(t, "Grand Final", m.Round)
	assert.True(t, m.IsFinal())
	assert.Equal(t, 61, m.HomeScore)
	assert.Equal(t, 107, m.AwayScore)
	assert.True(t, m.HasBeenPlayed())

	t.Log("Local calendar date is taken at the venue, not at UTC")
	assert.Equal(t, "2015-10-03", m.LocalDate)
	assert.Equal(t, time.Date(2015, 10, 3, 4, 30, 0, 0, time.UTC), m.UTCTime)

	t.Log("Unplayed fixture keeps score sentinels")
	n := matches[1]
	assert.Equal(t, -1, n.HomeScore)
	assert.False(t, n.HasBeenPlayed())
	assert.False(t, n.IsFinal())
	assert.NotEmpty(t, n.ID)
}

func TestExtractMatchesBadPayload(t *testing.T) {
	f := &FixtureDatasource{}

	_, err := f.extractMatches([]byte(`{"error": "no data"}`), 2015)
	assert.Error(t, err)

	_, err = f.extractMatches([]byte(`not json`), 2015)
	assert.Error(t, err)

	_, err = f.extractMatches([]byte(`{"games": [{"ateam": "Carlton"}]}`), 2015)
	assert.Error(t, err, "a game without a home team is a source fault, not a skippable row")
}

func TestParseFixtureDateTime(t *testing.T) {
	// an evening game in daylight saving time
	utc, localDate, err := parseFixtureDateTime("2019-03-21 19:25:00", "+11:00")
	require.NoError(t, err)
	assert.Equal(t, "2019-03-21", localDate)
	assert.Equal(t, time.Date(2019, 3, 21, 8, 25, 0, 0, time.UTC), utc)

	// a Perth night game crosses the UTC date boundary, the local date
	// must win
	utc, localDate, err = parseFixtureDateTime("2017-06-10 19:40:00", "+08:00")
	require.NoError(t, err)
	assert.Equal(t, "2017-06-10", localDate)
	assert.Equal(t, 11, utc.Hour())

	_, _, err = parseFixtureDateTime("", "+10:00")
	assert.Error(t, err)
	_, _, err = parseFixtureDateTime("03/10/2015", "+10:00")
	assert.Error(t, err)
}
