package afl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScheduleMatch(date, home, away, venue string) *Match {
	m := NewMatch()
	m.LocalDate = date
	m.HomeTeamName = home
	m.AwayTeamName = away
	m.Venue = venue
	m.ID = m.DeriveID()
	return m
}

func testAttendanceRecord(date, home, away string, crowd int) *AttendanceRecord {
	d, err := ParseAttendanceDate(date)
	if err != nil {
		panic(err)
	}
	return &AttendanceRecord{
		Date:         d,
		HomeTeamName: home,
		AwayTeamName: away,
		Crowd:        crowd,
	}
}

func TestBuildKeyCommutative(t *testing.T) {
	pairs := [][2]string{
		{"Richmond", "Carlton"},
		{"Hawthorn", "West Coast Eagles"},
		{"GWS Giants", "Sydney Swans"},
		{"St Kilda", "st kilda"},
	}
	for _, p := range pairs {
		ab := BuildKey(p[0], p[1])
		ba := BuildKey(p[1], p[0])
		assert.Equal(t, ab, ba, "key must not depend on argument order")
	}
	assert.Equal(t, "carlton_richmond", BuildKey("Richmond", "Carlton"))
}

func TestNormalizeTeamName(t *testing.T) {
	names := GetDataInstance().TeamNames

	// raw spellings from both sources resolve
	assert.Equal(t, "GWS Giants", NormalizeTeamName("GW Sydney", names))
	assert.Equal(t, "GWS Giants", NormalizeTeamName("Greater Western Sydney", names))
	assert.Equal(t, "Western Bulldogs", NormalizeTeamName("Footscray", names))
	assert.Equal(t, "North Melbourne", NormalizeTeamName("Kangaroos", names))

	// canonical names are fixed points, normalizing twice changes nothing
	for _, raw := range []string{"Sydney", "Geelong", "Richmond"} {
		once := NormalizeTeamName(raw, names)
		assert.Equal(t, once, NormalizeTeamName(once, names))
	}

	// unknown names pass through unchanged
	assert.Equal(t, "Fitzroy", NormalizeTeamName("Fitzroy", names))
}

func TestLinkExact(t *testing.T) {
	names := GetDataInstance().TeamNames
	schedule := []*Match{
		testScheduleMatch("2017-04-01", "Richmond", "Collingwood", "M.C.G."),
		testScheduleMatch("2017-04-01", "Sydney", "Collingwood", "S.C.G."),
	}
	attendance := []*AttendanceRecord{
		testAttendanceRecord("1-Apr-2017", "Richmond", "Collingwood", 60214),
		testAttendanceRecord("1-Apr-2017", "Sydney", "Collingwood", 38210),
	}

	result := Link(schedule, attendance, names)
	require.Len(t, result.Matched, 2)
	require.Empty(t, result.Unmatched)
	assert.Equal(t, 60214, result.Matched[0].Crowd)
	assert.Equal(t, 38210, result.Matched[1].Crowd)
}

// The two sources occasionally disagree on which team was "home", most
// famously for the 2015 grand final. The fallback pass must still link
// the record, and must keep the schedule side's home/away assignment.
func TestLinkHomeAwaySwap(t *testing.T) {
	names := GetDataInstance().TeamNames
	schedule := []*Match{
		testScheduleMatch("2015-10-03", "West Coast", "Hawthorn", "M.C.G."),
	}
	attendance := []*AttendanceRecord{
		testAttendanceRecord("3-Oct-2015", "Hawthorn", "West Coast", 98633),
	}

	result := Link(schedule, attendance, names)
	require.Len(t, result.Matched, 1)
	require.Empty(t, result.Unmatched)

	m := result.Matched[0]
	assert.Equal(t, 98633, m.Crowd)
	assert.Equal(t, "West Coast", m.HomeTeamName, "schedule assignment must survive the swap")
	assert.Equal(t, "Hawthorn", m.AwayTeamName)
}

func TestLinkUnmatchedReported(t *testing.T) {
	names := GetDataInstance().TeamNames
	schedule := []*Match{
		testScheduleMatch("2018-06-09", "Melbourne", "Collingwood", "M.C.G."),
		testScheduleMatch("2018-06-09", "Carlton", "Essendon", "M.C.G."),
	}
	attendance := []*AttendanceRecord{
		testAttendanceRecord("9-Jun-2018", "Melbourne", "Collingwood", 83518),
	}

	result := Link(schedule, attendance, names)
	require.Len(t, result.Matched, 1)
	require.Len(t, result.Unmatched, 1, "a record with no partner is reported, never dropped")
	assert.Equal(t, "Carlton", result.Unmatched[0].Match.HomeTeamName)
	assert.Equal(t, -1, result.Unmatched[0].Match.Crowd, "crowd stays at the unknown sentinel")
}

// An unmatched record caused by a missing name mapping should suggest
// the nearest attendance pairing on the same date as a diagnostic.
func TestLinkSuggestsNearestPairing(t *testing.T) {
	names := map[string]string{} // deliberately empty mapping
	schedule := []*Match{
		testScheduleMatch("2016-07-16", "Greater Western Sydney", "Richmond", "Sydney Showground"),
	}
	attendance := []*AttendanceRecord{
		testAttendanceRecord("16-Jul-2016", "GW Sydney", "Richmond", 12881),
	}

	result := Link(schedule, attendance, names)
	require.Len(t, result.Unmatched, 1)
	assert.Contains(t, result.Unmatched[0].Suggestion, "GW Sydney")
	t.Log("suggestion:", result.Unmatched[0].String())
}

// Two schedule records must never consume the same attendance record
func TestLinkAttendanceUsedOnce(t *testing.T) {
	names := GetDataInstance().TeamNames
	schedule := []*Match{
		testScheduleMatch("2019-05-11", "Hawthorn", "Melbourne", "M.C.G."),
		testScheduleMatch("2019-05-11", "Melbourne", "Hawthorn", "M.C.G."),
	}
	attendance := []*AttendanceRecord{
		testAttendanceRecord("11-May-2019", "Hawthorn", "Melbourne", 42334),
	}

	result := Link(schedule, attendance, names)
	require.Len(t, result.Matched, 1)
	require.Len(t, result.Unmatched, 1)
}
