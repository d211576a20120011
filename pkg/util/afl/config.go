package afl

import "fmt"

// CrowdsConfig contains all configurable parameters of the dataset build.
// This centralizes URLs, paths and filter policy for easy adjustment
type CrowdsConfig struct {
	// Database and cache parameters
	AssetsPath string // The base directory of assets relating to the crowds dataset
	CachePath  string // The location in which cached downloaded data is stored
	DbPath     string // The location of the sqlite database

	// === SOURCE PARAMETERS ===

	FixtureBaseURL       string // Base URL of the schedule source API
	AttendanceURL        string // Fixed URL of the attendance source text table
	VenueDirectoryURL    string // URL of the venue directory page used for alias checking
	AttendanceHeaderRows int    // Number of header lines to skip in the attendance table

	// === SEASON / ROUND FILTER POLICY ===

	// Seasons is the list of seasons to fetch from the schedule source.
	// ExcludedSeasons and IncludeFinals control which linked records are
	// retained in the modelling dataset; both are explicit so the caller
	// can widen or narrow the dataset without touching code.
	Seasons         []int
	ExcludedSeasons []int
	IncludeFinals   bool

	// === FEATURE ENGINEERING ===

	FormWindow    int // Number of recent matches in the rolling form window (default: 5)
	FormLossValue int // Value for losses in form calculation (default: 1)
	FormDrawValue int // Value for draws in form calculation (default: 2)
	FormWinValue  int // Value for wins in form calculation (default: 3)
}

// DefaultCrowdsConfig returns the default configuration with all standard values
func DefaultCrowdsConfig() *CrowdsConfig {
	assetsPath := "/tmp/.afl-crowds/"
	config := &CrowdsConfig{
		AssetsPath: assetsPath,
		CachePath:  assetsPath + "cache/",
		DbPath:     assetsPath + "crowds.db",

		FixtureBaseURL:       "https://api.squiggle.com.au/",
		AttendanceURL:        "https://afltables.com/afl/stats/biglists/bg3.txt",
		VenueDirectoryURL:    "https://afltables.com/afl/venues/",
		AttendanceHeaderRows: 2,

		Seasons:         []int{2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2022, 2023, 2024},
		ExcludedSeasons: []int{2020, 2021},
		IncludeFinals:   false,

		FormWindow:    5,
		FormLossValue: 1,
		FormDrawValue: 2,
		FormWinValue:  3,
	}
	return config
}

// Global configuration instance
var Config *CrowdsConfig

func init() {
	Config = DefaultCrowdsConfig()
}

// UpdateConfig allows updating the global configuration
func UpdateConfig(newConfig *CrowdsConfig) {
	Config = newConfig
}

// === CONFIGURATION VALIDATION ===

// ValidateConfig ensures all configuration values are within reasonable ranges
func ValidateConfig(config *CrowdsConfig) error {
	if len(config.Seasons) == 0 {
		return fmt.Errorf("at least one season must be configured")
	}

	for _, season := range config.Seasons {
		if season < 1897 {
			return fmt.Errorf("season %d predates the competition", season)
		}
	}

	if config.AttendanceHeaderRows < 0 {
		return fmt.Errorf("AttendanceHeaderRows cannot be negative, got: %d", config.AttendanceHeaderRows)
	}

	if config.FormWindow < 1 || config.FormWindow > 10 {
		return fmt.Errorf("FormWindow should be between 1 and 10, got: %d", config.FormWindow)
	}

	if config.FixtureBaseURL == "" || config.AttendanceURL == "" {
		return fmt.Errorf("source URLs must not be empty")
	}

	return nil
}

// === HELPER FUNCTIONS FOR EASY ACCESS ===

// IsExcludedSeason returns true if the given season is excluded from the
// modelling dataset by the current filter policy
func IsExcludedSeason(season int) bool {
	for _, s := range Config.ExcludedSeasons {
		if s == season {
			return true
		}
	}
	return false
}
