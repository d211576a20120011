package afl

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// attendanceLine lays out one fixed-width row at the table's column offsets
func attendanceLine(rank, crowd, home, homeScore, away, awayScore, venue, date string) string {
	return fmt.Sprintf("%-7s%-9s%-20s%-11s%-20s%-11s%-20s%s",
		rank, crowd, home, homeScore, away, awayScore, venue, date)
}

func TestParseCrowd(t *testing.T) {
	cases := map[string]int{
		"121,696":  121696,
		"95,000*":  95000,
		"98633":    98633,
		" 38,210 ": 38210,
	}
	for in, want := range cases {
		got, err := ParseCrowd(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCrowd("")
	assert.Error(t, err, "empty crowd field must not coerce to zero")
	_, err = ParseCrowd("n/a")
	assert.Error(t, err)
}

func TestParseAttendanceDate(t *testing.T) {
	d, err := ParseAttendanceDate("28-Sep-2015")
	require.NoError(t, err)
	assert.Equal(t, 2015, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 28, d.Day())

	// single digit days appear without a leading zero
	d, err = ParseAttendanceDate("3-Oct-2015")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Day())

	_, err = ParseAttendanceDate("2015-09-28")
	assert.Error(t, err, "the source is day-month-year, other orders must fail loudly")
}

func TestParseAttendanceRow(t *testing.T) {
	line := attendanceLine("1", "121,696", "Carlton", "17.9.111", "Collingwood", "14.17.101", "M.C.G.", "26-Sep-1970")
	rec, err := ParseAttendanceRow(line, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Rank)
	assert.Equal(t, 121696, rec.Crowd)
	assert.Equal(t, "Carlton", rec.HomeTeamName)
	assert.Equal(t, "17.9.111", rec.HomeScore)
	assert.Equal(t, "Collingwood", rec.AwayTeamName)
	assert.Equal(t, "M.C.G.", rec.Venue)
	assert.Equal(t, "1970-09-26", rec.DateKey())
	assert.Equal(t, 3, rec.Line)
}

func TestParseAttendanceTable(t *testing.T) {
	table := strings.Join([]string{
		"Biggest crowds at league games",
		"",
		attendanceLine("1", "121,696", "Carlton", "17.9.111", "Collingwood", "14.17.101", "M.C.G.", "26-Sep-1970"),
		attendanceLine("2", "n/a", "Hawthorn", "16.11.107", "West Coast", "8.13.61", "M.C.G.", "3-Oct-2015"),
		attendanceLine("3", "98,633", "Hawthorn", "16.11.107", "West Coast", "8.13.61", "M.C.G.", "3-Oct-2015"),
		"",
	}, "\n")

	records, rowErrors := ParseAttendanceTable(table, 2)
	require.Len(t, records, 2, "good rows survive a bad neighbour")
	require.Len(t, rowErrors, 1, "the bad row is surfaced, not swallowed")

	assert.Equal(t, 4, rowErrors[0].Line)
	assert.Contains(t, rowErrors[0].Error(), "attendance row 4")
	assert.Equal(t, 121696, records[0].Crowd)
	assert.Equal(t, 98633, records[1].Crowd)
}

// Truncated lines must not panic the column slicer
func TestParseAttendanceRowShortLine(t *testing.T) {
	_, err := ParseAttendanceRow("1      98,633", 1)
	assert.Error(t, err)
}
