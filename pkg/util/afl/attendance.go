package afl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bairdj/afl-crowds/pkg/util"
)

// AttendanceRecord is one row of the attendance source's fixed-width
// crowd table. Team names are raw (the source's own convention) until
// the linker normalizes them.
type AttendanceRecord struct {
	Rank         int
	Crowd        int
	HomeTeamName string
	HomeScore    string // raw goals.behinds.points text
	AwayTeamName string
	AwayScore    string
	Venue        string
	Date         time.Time // calendar date only, no timezone in the source
	Line         int       // source line number, for error reporting
}

// RowError surfaces a malformed fixed-width row rather than silently
// coercing it to a placeholder
type RowError struct {
	Line int
	Text string
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("attendance row %d: %v", e.Line, e.Err)
}

// Column offsets of the attendance table. The source is a fixed-width
// report so the fields are sliced, not split.
type columnSpan struct {
	start, end int
}

var attendanceColumns = struct {
	rank      columnSpan
	crowd     columnSpan
	homeTeam  columnSpan
	homeScore columnSpan
	awayTeam  columnSpan
	awayScore columnSpan
	venue     columnSpan
	date      columnSpan
}{
	rank:      columnSpan{0, 7},
	crowd:     columnSpan{7, 16},
	homeTeam:  columnSpan{16, 36},
	homeScore: columnSpan{36, 47},
	awayTeam:  columnSpan{47, 67},
	awayScore: columnSpan{67, 78},
	venue:     columnSpan{78, 98},
	date:      columnSpan{98, 120},
}

// field slices a column out of a fixed-width line, tolerating short lines
func (c columnSpan) field(line string) string {
	if c.start >= len(line) {
		return ""
	}
	end := c.end
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[c.start:end])
}

// ParseCrowd parses a crowd figure by stripping all non-digit characters
// before numeric conversion, which handles thousands separators and
// footnote markers embedded in the source text ("95,000*" -> 95000)
func ParseCrowd(s string) (int, error) {
	digits := util.DigitsOnly(s)
	if digits == "" {
		return -1, fmt.Errorf("no digits in crowd field %q", s)
	}
	crowd, err := strconv.Atoi(digits)
	if err != nil {
		return -1, fmt.Errorf("unparseable crowd field %q: %w", s, err)
	}
	return crowd, nil
}

// ParseAttendanceDate parses the source's day-month-year date field,
// e.g. "28-Sep-2015"
func ParseAttendanceDate(s string) (time.Time, error) {
	t, err := time.Parse("2-Jan-2006", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date field %q: %w", s, err)
	}
	return t, nil
}

// ParseAttendanceRow parses a single fixed-width row
func ParseAttendanceRow(line string, lineNo int) (*AttendanceRecord, error) {
	crowd, err := ParseCrowd(attendanceColumns.crowd.field(line))
	if err != nil {
		return nil, err
	}

	date, err := ParseAttendanceDate(attendanceColumns.date.field(line))
	if err != nil {
		return nil, err
	}

	home := attendanceColumns.homeTeam.field(line)
	away := attendanceColumns.awayTeam.field(line)
	if home == "" || away == "" {
		return nil, fmt.Errorf("missing team name")
	}

	rec := &AttendanceRecord{
		Crowd:        crowd,
		HomeTeamName: home,
		HomeScore:    attendanceColumns.homeScore.field(line),
		AwayTeamName: away,
		AwayScore:    attendanceColumns.awayScore.field(line),
		Venue:        attendanceColumns.venue.field(line),
		Date:         date,
		Line:         lineNo,
	}

	if rankStr := util.DigitsOnly(attendanceColumns.rank.field(line)); rankStr != "" {
		rec.Rank, _ = strconv.Atoi(rankStr)
	}

	return rec, nil
}

// ParseAttendanceTable parses the whole fixed-width table, skipping the
// configured number of header lines. Malformed rows are collected as
// RowErrors so a discrepancy is visible; they never abort the parse.
func ParseAttendanceTable(text string, headerRows int) ([]*AttendanceRecord, []RowError) {
	var records []*AttendanceRecord
	var rowErrors []RowError

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lineNo := i + 1
		if i < headerRows {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseAttendanceRow(line, lineNo)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: lineNo, Text: line, Err: err})
			continue
		}
		records = append(records, rec)
	}

	return records, rowErrors
}

// DateKey renders the record's calendar date in the form used for join
// keys throughout the linker
func (a *AttendanceRecord) DateKey() string {
	return a.Date.Format("2006-01-02")
}
