package afl

import (
	"fmt"
	"os"

	"github.com/bairdj/afl-crowds/internal/logger"
)

// Dataset is the final output of a pipeline run: the linked and
// feature-enriched match records plus everything that did not link
// cleanly, so nothing is silently dropped.
type Dataset struct {
	Matches   []*Match
	Teams     []*Team
	Unmatched []Unmatched
	RowErrors []RowError
}

// BuildDataset runs the full pipeline: fetch the schedule for each
// configured season, fetch the attendance table, link the two sources,
// derive modelling features and persist the result. Fetch failures are
// fatal; per-record problems are collected and reported instead.
func BuildDataset() (*Dataset, error) {
	if err := ValidateConfig(Config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := ensureDirectories(); err != nil {
		return nil, err
	}
	if err := CreateTables(); err != nil {
		return nil, fmt.Errorf("failed to create database tables: %w", err)
	}

	data := GetDataInstance()

	// Schedule side, one fetch per season
	fixtures := GetFixtureInstance()
	var schedule []*Match
	for _, season := range Config.Seasons {
		if IsExcludedSeason(season) {
			logger.Info("Skipping excluded season", season)
			continue
		}
		matches, err := fixtures.GetSeasonMatches(season)
		if err != nil {
			return nil, err
		}
		logger.Info("Season", season, "has", len(matches), "schedule records")
		schedule = append(schedule, matches...)
	}

	// Attendance side, one fetch covers everything
	attendance := GetAttendanceInstance()
	records, err := attendance.GetAttendanceRecords()
	if err != nil {
		return nil, err
	}

	// Venue cross-check before linking, unknown venues are the usual
	// cause of holiday and interstate features coming out wrong
	VerifyVenues(schedule, GetVenueInstance().GetVenueNames(), data)

	// Canonical team names on the schedule side before anything keys
	// off them. IDs are re-derived because they embed the team names.
	for _, m := range schedule {
		m.HomeTeamName = NormalizeTeamName(m.HomeTeamName, data.TeamNames)
		m.AwayTeamName = NormalizeTeamName(m.AwayTeamName, data.TeamNames)
		m.ID = m.DeriveID()
	}

	result := Link(schedule, records, data.TeamNames)
	ReportUnmatched(result.Unmatched)

	matches := FilterMatches(result.Matched, Config)
	logger.Info("Matches after season and round filtering:", len(matches))

	ComputeFeatures(matches, data)

	teams := ExtractTeamsFromMatches(matches, data)
	if err := SaveTeams(teams); err != nil {
		return nil, fmt.Errorf("failed to save teams: %w", err)
	}
	if err := SaveMatches(matches); err != nil {
		return nil, fmt.Errorf("failed to save matches: %w", err)
	}
	logger.Highlight("Dataset built:", len(matches), "matches,", len(teams), "teams,",
		len(result.Unmatched), "unmatched,", len(attendance.Errors), "malformed attendance rows")

	return &Dataset{
		Matches:   matches,
		Teams:     teams,
		Unmatched: result.Unmatched,
		RowErrors: attendance.Errors,
	}, nil
}

// ensureDirectories creates the assets and cache directories if missing
func ensureDirectories() error {
	for _, dir := range []string{Config.AssetsPath, Config.CachePath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
