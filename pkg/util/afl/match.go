package afl

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Compile-time check to ensure Match implements Persistable interface
var _ Persistable = (*Match)(nil)

// Match is the unified record for one AFL match. The schedule fields
// come from the fixture source, Crowd comes from the attendance source
// after linking, and the feature fields are derived.
type Match struct {
	// Primary key
	ID string `json:"id" column:"id" dbtype:"TEXT" primary:"true" index:"true"`

	// Schedule source fields
	UTCTime   time.Time `json:"utcTime" column:"utcTime" dbtype:"DATETIME" index:"true"`
	LocalDate string    `json:"localDate" column:"localDate" dbtype:"TEXT NOT NULL" index:"true"` // calendar date at the venue, "2006-01-02"
	Season    int       `json:"season" column:"season" dbtype:"INTEGER DEFAULT -1" index:"true"`
	Round     string    `json:"round" column:"round" dbtype:"TEXT" index:"true"`
	Venue     string    `json:"venue" column:"venue" dbtype:"TEXT"`

	HomeTeamName string `json:"homeTeamName" column:"homeTeamName" dbtype:"TEXT NOT NULL" index:"true"`
	AwayTeamName string `json:"awayTeamName" column:"awayTeamName" dbtype:"TEXT NOT NULL" index:"true"`

	// Scores (goals.behinds.points), -1 until the match is complete
	HomeGoals   int `json:"homeGoals" column:"homeGoals" dbtype:"INTEGER DEFAULT -1"`
	HomeBehinds int `json:"homeBehinds" column:"homeBehinds" dbtype:"INTEGER DEFAULT -1"`
	HomeScore   int `json:"homeScore" column:"homeScore" dbtype:"INTEGER DEFAULT -1"`
	AwayGoals   int `json:"awayGoals" column:"awayGoals" dbtype:"INTEGER DEFAULT -1"`
	AwayBehinds int `json:"awayBehinds" column:"awayBehinds" dbtype:"INTEGER DEFAULT -1"`
	AwayScore   int `json:"awayScore" column:"awayScore" dbtype:"INTEGER DEFAULT -1"`

	// Weather, where the schedule source supplies it
	Temperature float64 `json:"temperature,omitempty" column:"temperature" dbtype:"REAL DEFAULT -1.0"`
	Weather     string  `json:"weather,omitempty" column:"weather" dbtype:"TEXT"`

	// Attendance source field, populated by the linker
	Crowd int `json:"crowd" column:"crowd" dbtype:"INTEGER DEFAULT -1"`

	// Engineered features
	HomeFormPercentage float64 `json:"homeFormPercentage,omitempty" column:"homeFormPercentage" dbtype:"REAL DEFAULT -1.0"`
	AwayFormPercentage float64 `json:"awayFormPercentage,omitempty" column:"awayFormPercentage" dbtype:"REAL DEFAULT -1.0"`
	PublicHoliday      string  `json:"publicHoliday,omitempty" column:"publicHoliday" dbtype:"TEXT"`
	InterstateAway     bool    `json:"interstateAway" column:"interstateAway" dbtype:"INTEGER DEFAULT 0"`

	// Metadata
	CreatedAt time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" column:"updated_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

// NewMatch creates a new Match with default values for numeric fields
// All unknown numerics default to -1 to distinguish from valid zero values
func NewMatch() *Match {
	return &Match{
		Season:             -1,
		HomeGoals:          -1,
		HomeBehinds:        -1,
		HomeScore:          -1,
		AwayGoals:          -1,
		AwayBehinds:        -1,
		AwayScore:          -1,
		Temperature:        -1.0,
		Crowd:              -1,
		HomeFormPercentage: -1.0,
		AwayFormPercentage: -1.0,
	}
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

// GetTableName returns the table name for matches
func (m *Match) GetTableName() string {
	return "match"
}

// GetPrimaryKey returns the primary key as a map
func (m *Match) GetPrimaryKey() map[string]any {
	return map[string]any{
		"id": m.ID,
	}
}

// BeforeSave is called before saving the match
func (m *Match) BeforeSave() error {
	if m.ID == "" {
		m.ID = m.DeriveID()
	}
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}

// DeriveID builds a stable match identifier from the local date and the
// symmetric team key, so the same fixture always gets the same ID no
// matter which source it was first seen in
func (m *Match) DeriveID() string {
	date := strings.ReplaceAll(m.LocalDate, "-", "")
	return fmt.Sprintf("%s_%s", date, BuildKey(m.HomeTeamName, m.AwayTeamName))
}

/////////////////////////////////////////////////////////////////////////
////// Status Query Methods
/////////////////////////////////////////////////////////////////////////

// HasBeenPlayed determines if the match has been completed
func (m *Match) HasBeenPlayed() bool {
	return m.HomeScore >= 0 && m.AwayScore >= 0
}

// HasCrowd returns true once the attendance source has been linked in
func (m *Match) HasCrowd() bool {
	return m.Crowd >= 0
}

// IsFinal returns true for finals-series rounds. The schedule source
// labels them rather than numbering them ("Qualifying Final",
// "Grand Final" etc.) so any round without a number is a final.
func (m *Match) IsFinal() bool {
	return IsFinalsRound(m.Round)
}

// RecreateScoreStr generates an AFL score string such as "14.9.93"
func (m *Match) RecreateScoreStr() string {
	if !m.HasBeenPlayed() {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d - %d.%d.%d",
		m.HomeGoals, m.HomeBehinds, m.HomeScore,
		m.AwayGoals, m.AwayBehinds, m.AwayScore)
}

// Merges the data from n into m if the data in m
// is missing and n has it
func (m *Match) Merge(n *Match) error {
	if n == nil {
		return fmt.Errorf("must pass a match")
	}
	if m.Crowd == -1 && n.Crowd != -1 {
		m.Crowd = n.Crowd
	}
	if m.HomeGoals == -1 && n.HomeGoals != -1 {
		m.HomeGoals = n.HomeGoals
		m.HomeBehinds = n.HomeBehinds
		m.HomeScore = n.HomeScore
	}
	if m.AwayGoals == -1 && n.AwayGoals != -1 {
		m.AwayGoals = n.AwayGoals
		m.AwayBehinds = n.AwayBehinds
		m.AwayScore = n.AwayScore
	}
	if m.Venue == "" && n.Venue != "" {
		m.Venue = n.Venue
	}
	if m.Weather == "" && n.Weather != "" {
		m.Weather = n.Weather
	}
	if m.Temperature == -1.0 && n.Temperature != -1.0 {
		m.Temperature = n.Temperature
	}
	return nil
}

/**
* Returns true if the given Match object is ostensibly the same match
* That is, if it falls on the same local date between the same two teams
 */
func (m *Match) Equals(n *Match) bool {
	if n == nil {
		return false
	}
	if m.ID != "" && m.ID == n.ID {
		return true
	}
	if m.LocalDate != n.LocalDate {
		return false
	}
	return BuildKey(m.HomeTeamName, m.AwayTeamName) == BuildKey(n.HomeTeamName, n.AwayTeamName)
}

/////////////////////////////////////////////////////////////////////////
////// Round Helpers
/////////////////////////////////////////////////////////////////////////

// ParseRoundNumber extracts a numeric round from a round string.
// Returns 0 for finals and anything else without a number.
func ParseRoundNumber(roundStr string) int {
	roundStr = strings.TrimSpace(roundStr)

	parts := strings.Fields(roundStr)
	for _, part := range parts {
		if num, err := strconv.Atoi(part); err == nil {
			return num
		}
	}

	if num, err := strconv.Atoi(roundStr); err == nil {
		return num
	}

	return 0
}

// IsFinalsRound returns true when the round label names a finals match
func IsFinalsRound(roundStr string) bool {
	if roundStr == "" {
		return false
	}
	return ParseRoundNumber(roundStr) == 0
}

/////////////////////////////////////////////////////////////////////////
////// Match Collection Operations
/////////////////////////////////////////////////////////////////////////

// SaveMatches saves matches to the database using BulkSave
func SaveMatches(matches []*Match) error {
	var persistables []Persistable
	for _, match := range matches {
		persistables = append(persistables, match)
	}
	if len(persistables) == 0 {
		return nil
	}
	if err := BulkSave(persistables); err != nil {
		return fmt.Errorf("failed to bulk save matches: %w", err)
	}
	return nil
}

// SortMatchesByTime orders matches chronologically, in place.
// Form features depend on processing matches in played order.
func SortMatchesByTime(matches []*Match) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].UTCTime.Before(matches[j-1].UTCTime); j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}

// FilterMatches applies the season/round filter policy to a linked
// dataset. The policy is explicit configuration, never hardcoded in the
// pipeline itself.
func FilterMatches(matches []*Match, config *CrowdsConfig) []*Match {
	var out []*Match
	for _, m := range matches {
		excluded := false
		for _, s := range config.ExcludedSeasons {
			if m.Season == s {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if !config.IncludeFinals && m.IsFinal() {
			continue
		}
		out = append(out, m)
	}
	return out
}
