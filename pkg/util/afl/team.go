package afl

import (
	"fmt"
	"strings"
	"time"

	"github.com/bairdj/afl-crowds/internal/logger"
)

// Compile-time check to ensure Team implements Persistable interface
var _ Persistable = (*Team)(nil)

// Team represents a club with database persistence annotations
type Team struct {
	Name       string    `json:"name" column:"name" dbtype:"TEXT" primary:"true" index:"true"`
	State      string    `json:"state" column:"state" dbtype:"TEXT NOT NULL"`
	HomeGround string    `json:"homeGround" column:"home_ground" dbtype:"TEXT"`
	CreatedAt  time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updatedAt" column:"updated_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

// GetTableName returns the table name for teams
func (t *Team) GetTableName() string {
	return "teams"
}

// GetPrimaryKey returns the primary key as a map
func (t *Team) GetPrimaryKey() map[string]any {
	return map[string]any{
		"name": t.Name,
	}
}

// BeforeSave is called before saving the team
func (t *Team) BeforeSave() error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	return nil
}

/////////////////////////////////////////////////////////////////////////
////// Team Collection Operations
/////////////////////////////////////////////////////////////////////////

// ExtractTeamsFromMatches extracts unique teams from match data,
// enriching them from the static lookup tables
func ExtractTeamsFromMatches(matches []*Match, data *Data) []*Team {
	teamMap := make(map[string]*Team)

	add := func(name string) {
		if name == "" {
			return
		}
		if _, exists := teamMap[name]; exists {
			return
		}
		ti, err := data.GetDataForTeam(name)
		if err != nil {
			logger.Warn("Team "+name+" does not exist in the data lookup table, you should add it", err)
			teamMap[name] = &Team{Name: name}
			return
		}
		teamMap[name] = &Team{
			Name:       ti.Name,
			State:      ti.State,
			HomeGround: ti.HomeGround,
		}
	}

	for _, match := range matches {
		add(match.HomeTeamName)
		add(match.AwayTeamName)
	}

	teams := make([]*Team, 0, len(teamMap))
	for _, team := range teamMap {
		teams = append(teams, team)
	}
	return teams
}

// SaveTeams saves teams to the database using BulkSave
func SaveTeams(teams []*Team) error {
	var newTeams []Persistable
	for _, team := range teams {
		exists, err := Exists(team)
		if err != nil {
			logger.Warn("Failed to check if team exists", team.Name, err)
			continue
		}
		if !exists {
			newTeams = append(newTeams, team)
		}
	}

	if len(newTeams) > 0 {
		if err := BulkSave(newTeams); err != nil {
			return fmt.Errorf("failed to bulk save teams: %w", err)
		}
		logger.Info("Bulk saved teams", len(newTeams))
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////
////// Form Calculation Functions
/////////////////////////////////////////////////////////////////////////

// UpdateFormData updates a rolling form value using quaternary encoding.
// Each digit of the base-4 number is one result, most recent first
// (win=3, draw=2, loss=1); the window is capped at Config.FormWindow.
func UpdateFormData(previousForm int, result int) int {
	s := Quaternary(previousForm)

	// Add the new result to the front (most recent)
	s = fmt.Sprintf("%d%s", result, s)

	// Trim to the rolling window
	if len(s) > Config.FormWindow {
		s = s[:Config.FormWindow]
	}

	// Convert back to decimal for storage
	ret := 0
	multiplier := 1
	for i := len(s) - 1; i >= 0; i-- {
		digit := int(s[i] - '0')
		ret += digit * multiplier
		multiplier *= 4
	}

	return ret
}

// Quaternary converts decimal to quaternary (base-4) string
func Quaternary(n int) string {
	if n == 0 {
		return "0"
	}

	var nums []string
	for n > 0 {
		remainder := n % 4
		nums = append([]string{fmt.Sprintf("%d", remainder)}, nums...)
		n = n / 4
	}

	return strings.Join(nums, "")
}

// FormPercentage converts an encoded form value into the fraction of
// available points taken over the window, between 0.0 and 1.0
func FormPercentage(form int) float64 {
	s := Quaternary(form)

	// zero digits are empty history slots, not results
	points := 0
	games := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '3':
			points += 2 // win
			games++
		case '2':
			points += 1 // draw
			games++
		case '1':
			games++
		}
	}
	if games == 0 {
		return 0.0
	}
	return float64(points) / float64(games*2)
}
