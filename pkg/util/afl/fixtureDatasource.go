package afl

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bairdj/afl-crowds/internal/logger"
	"github.com/bairdj/afl-crowds/pkg/transport"
	"github.com/bairdj/afl-crowds/pkg/util"
)

// FixtureDatasource fetches per-season match schedules from the fixture
// source. Responses are cached on disk per season so a re-run of the
// analysis does not refetch historical data.
type FixtureDatasource struct {
	BaseURL string
	Matches []*Match
}

var (
	fixtureInstance *FixtureDatasource
	fixtureOnce     sync.Once
)

// GetFixtureInstance returns the singleton instance of FixtureDatasource
func GetFixtureInstance() *FixtureDatasource {
	fixtureOnce.Do(func() {
		fixtureInstance = &FixtureDatasource{
			BaseURL: Config.FixtureBaseURL,
			Matches: make([]*Match, 0),
		}
	})
	return fixtureInstance
}

/////////////////////////////////////////////////////////////////////////
////// Transport and Parsing
/////////////////////////////////////////////////////////////////////////

// GetSeasonMatches returns all schedule records for one season, from
// cache when available. A fetch failure is fatal to the run.
func (f *FixtureDatasource) GetSeasonMatches(season int) ([]*Match, error) {
	if season <= 0 {
		return nil, fmt.Errorf("must supply a valid season")
	}

	cacheFilename := fmt.Sprintf("%sfixture-%d.json", Config.CachePath, season)

	var raw []byte
	if cacheData, err := os.ReadFile(cacheFilename); err == nil {
		logger.Debug("Loaded fixture data from cache:", cacheFilename)
		raw = cacheData
	} else {
		logger.Info("Fetching fixture data for season", season)
		url := fmt.Sprintf("%s?q=games;year=%d", f.BaseURL, season)
		raw, err = transport.Get(url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch fixture data for season %d: %w", season, err)
		}
		if err := os.WriteFile(cacheFilename, raw, 0644); err != nil {
			logger.Warn("Failed to write cache file", cacheFilename, err)
			// Continue processing even if caching fails
		}
	}

	matches, err := f.extractMatches(raw, season)
	if err != nil {
		return nil, fmt.Errorf("error extracting matches for season %d: %w", season, err)
	}
	return matches, nil
}

// extractMatches parses the fixture source's JSON payload
func (f *FixtureDatasource) extractMatches(raw []byte, season int) ([]*Match, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("error parsing fixture JSON: %w", err)
	}

	gamesData, ok := payload["games"].([]any)
	if !ok {
		return nil, fmt.Errorf("could not find 'games' in fixture payload")
	}

	var matches []*Match
	for i, gameData := range gamesData {
		game, ok := gameData.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("game %d is not an object", i)
		}
		match, err := f.parseGame(game, season)
		if err != nil {
			return nil, fmt.Errorf("error parsing game %d: %w", i, err)
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// parseGame converts one fixture source game object into a Match
func (f *FixtureDatasource) parseGame(game map[string]any, season int) (*Match, error) {
	match := NewMatch()
	match.Season = season

	home, ok := game["hteam"].(string)
	if !ok || home == "" {
		return nil, fmt.Errorf("missing home team")
	}
	away, ok := game["ateam"].(string)
	if !ok || away == "" {
		return nil, fmt.Errorf("missing away team")
	}
	match.HomeTeamName = home
	match.AwayTeamName = away

	if venue, ok := game["venue"].(string); ok {
		match.Venue = venue
	}
	if roundName, ok := game["roundname"].(string); ok {
		match.Round = roundName
	} else if round, ok := game["round"]; ok {
		if r, err := util.GetAsInteger(round); err == nil {
			match.Round = fmt.Sprintf("Round %d", r)
		}
	}

	// The source supplies the kickoff as a local timestamp plus a UTC
	// offset, e.g. "2015-10-03 14:30:00" with tz "+10:00"
	dateStr, _ := game["date"].(string)
	tzStr, _ := game["tz"].(string)
	utc, localDate, err := parseFixtureDateTime(dateStr, tzStr)
	if err != nil {
		return nil, err
	}
	match.UTCTime = utc
	match.LocalDate = localDate

	// Scores are absent for unplayed fixtures
	if hs, err := util.GetAsInteger(game["hscore"]); err == nil {
		match.HomeScore = hs
	}
	if hg, err := util.GetAsInteger(game["hgoals"]); err == nil {
		match.HomeGoals = hg
	}
	if hb, err := util.GetAsInteger(game["hbehinds"]); err == nil {
		match.HomeBehinds = hb
	}
	if as, err := util.GetAsInteger(game["ascore"]); err == nil {
		match.AwayScore = as
	}
	if ag, err := util.GetAsInteger(game["agoals"]); err == nil {
		match.AwayGoals = ag
	}
	if ab, err := util.GetAsInteger(game["abehinds"]); err == nil {
		match.AwayBehinds = ab
	}

	// Weather attributes, where the source supplies them
	if temp, ok := game["temperature"].(float64); ok {
		match.Temperature = temp
	}
	if weather, ok := game["weather"].(string); ok {
		match.Weather = weather
	}

	match.ID = match.DeriveID()
	return match, nil
}

// parseFixtureDateTime parses the source's local timestamp and offset
// into a UTC instant plus the local calendar date at the venue
func parseFixtureDateTime(dateStr, tzStr string) (time.Time, string, error) {
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("missing date field")
	}
	if tzStr == "" {
		tzStr = "+10:00"
	}

	// Combine into an RFC3339 style timestamp: the offset string is
	// already in the "+10:00" form the format expects
	combined := strings.Replace(strings.TrimSpace(dateStr), " ", "T", 1) + tzStr
	t, err := time.Parse(time.RFC3339, combined)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("could not parse fixture date %q: %w", dateStr, err)
	}

	// The calendar date at the venue is the date part of the local form
	localDate := strings.TrimSpace(dateStr)[:10]
	return t.UTC(), localDate, nil
}
