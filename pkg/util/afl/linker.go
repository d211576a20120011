package afl

import (
	"fmt"
	"strings"

	"github.com/bairdj/afl-crowds/internal/logger"
	"github.com/bairdj/afl-crowds/pkg/util"
)

// NormalizeTeamName returns the canonical team name for a raw name from
// either source, using the explicit finite mapping in the lookup
// tables. Names without a mapping pass through unchanged, which makes
// the function idempotent: canonical names map to themselves.
func NormalizeTeamName(name string, names map[string]string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := names[name]; ok {
		return canonical
	}
	return name
}

// BuildKey derives an order-independent identifier from two team names:
// lower-case both, sort lexicographically, join with a fixed delimiter.
// BuildKey(a, b) == BuildKey(b, a) for any pair, so a match is found
// regardless of which source recorded which team as home.
func BuildKey(teamA, teamB string) string {
	a := strings.ToLower(strings.TrimSpace(teamA))
	b := strings.ToLower(strings.TrimSpace(teamB))
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

// Unmatched identifies a schedule record that could not be linked to an
// attendance record after both join passes
type Unmatched struct {
	Match      *Match
	Suggestion string // closest attendance team pairing on the same date, if any
}

func (u Unmatched) String() string {
	s := fmt.Sprintf("%s: %s v %s at %s", u.Match.LocalDate,
		u.Match.HomeTeamName, u.Match.AwayTeamName, u.Match.Venue)
	if u.Suggestion != "" {
		s += " (nearest: " + u.Suggestion + ")"
	}
	return s
}

// LinkResult is the matched/unmatched partition produced by Link
type LinkResult struct {
	Matched   []*Match
	Unmatched []Unmatched
}

// Link joins schedule records to attendance records. Two passes:
//
//  1. Exact join on (calendar date, home team, away team) with both
//     sides normalized.
//  2. For leftovers, join on (calendar date, symmetric key). This
//     recovers matches where the sources disagree on the home/away
//     designation, such as the 2015 grand final; the schedule source's
//     assignment is preserved in the output record.
//
// Schedule records unmatched after both passes are returned in the
// Unmatched list, never dropped. Link is a pure function of its inputs:
// the schedule records are mutated only by setting Crowd.
func Link(schedule []*Match, attendance []*AttendanceRecord, names map[string]string) *LinkResult {
	// Index the attendance records both ways. Each record may link at
	// most once, the used map guards the fallback pass.
	exact := make(map[string]*AttendanceRecord, len(attendance))
	symmetric := make(map[string]*AttendanceRecord, len(attendance))
	used := make(map[*AttendanceRecord]bool, len(attendance))
	for _, rec := range attendance {
		home := NormalizeTeamName(rec.HomeTeamName, names)
		away := NormalizeTeamName(rec.AwayTeamName, names)
		exact[exactKey(rec.DateKey(), home, away)] = rec
		symmetric[symmetricKey(rec.DateKey(), home, away)] = rec
	}

	result := &LinkResult{}

	var leftovers []*Match
	for _, m := range schedule {
		home := NormalizeTeamName(m.HomeTeamName, names)
		away := NormalizeTeamName(m.AwayTeamName, names)
		if rec, ok := exact[exactKey(m.LocalDate, home, away)]; ok && !used[rec] {
			m.Crowd = rec.Crowd
			used[rec] = true
			result.Matched = append(result.Matched, m)
			continue
		}
		leftovers = append(leftovers, m)
	}

	// Fallback pass: discard the home/away distinction for matching
	// purposes, the schedule record keeps its own assignment
	for _, m := range leftovers {
		home := NormalizeTeamName(m.HomeTeamName, names)
		away := NormalizeTeamName(m.AwayTeamName, names)
		if rec, ok := symmetric[symmetricKey(m.LocalDate, home, away)]; ok && !used[rec] {
			logger.Debug("Linked via symmetric key", m.LocalDate, home, "v", away)
			m.Crowd = rec.Crowd
			used[rec] = true
			result.Matched = append(result.Matched, m)
			continue
		}
		result.Unmatched = append(result.Unmatched, Unmatched{
			Match:      m,
			Suggestion: nearestPairing(m, attendance, used, names),
		})
	}

	return result
}

func exactKey(date, home, away string) string {
	return date + "|" + strings.ToLower(home) + "|" + strings.ToLower(away)
}

func symmetricKey(date, home, away string) string {
	return date + "|" + BuildKey(home, away)
}

// nearestPairing finds the most similar unused attendance pairing on the
// same date. This is purely diagnostic: an unmatched record almost
// always means a team-name mapping is missing, and the suggestion names
// the spelling to add.
func nearestPairing(m *Match, attendance []*AttendanceRecord, used map[*AttendanceRecord]bool, names map[string]string) string {
	want := BuildKey(NormalizeTeamName(m.HomeTeamName, names), NormalizeTeamName(m.AwayTeamName, names))

	best := ""
	bestScore := 0.0
	for _, rec := range attendance {
		if used[rec] || rec.DateKey() != m.LocalDate {
			continue
		}
		got := BuildKey(NormalizeTeamName(rec.HomeTeamName, names), NormalizeTeamName(rec.AwayTeamName, names))
		score := util.FuzzyMatchScore(want, got)
		if score > bestScore {
			bestScore = score
			best = fmt.Sprintf("%s v %s", rec.HomeTeamName, rec.AwayTeamName)
		}
	}
	return best
}

// ReportUnmatched logs the count and identity of every unmatched record.
// Silently proceeding would bias downstream statistics, so the analyst
// gets the full list and decides whether to exclude or resolve manually.
func ReportUnmatched(unmatched []Unmatched) {
	if len(unmatched) == 0 {
		logger.Info("All schedule records linked to attendance records")
		return
	}
	logger.Warn("Schedule records with no attendance record:", len(unmatched))
	for _, u := range unmatched {
		logger.Warn("  unmatched", u.String())
	}
}
