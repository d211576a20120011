package afl

import (
	"fmt"
	"sync"
)

// TeamInfo holds static information about a club
type TeamInfo struct {
	Name       string // canonical name as used by the schedule source
	State      string // home state of the club
	HomeGround string // canonical name of the usual home venue
}

// VenueInfo holds static information about a ground
type VenueInfo struct {
	Name     string // canonical name as used by the attendance source
	State    string // state (or territory/country marker) the ground is in
	Timezone string // IANA timezone of the ground
}

// Data is the set of immutable lookup tables used by the normalizer,
// the linker and the feature builders. The tables are plain data so
// everything that consumes them can be tested with a substitute set.
type Data struct {
	// TeamNames maps raw team names, from either source, to the
	// canonical name used throughout the dataset
	TeamNames map[string]string
	// TeamsData is keyed by canonical team name
	TeamsData map[string]*TeamInfo
	// VenuesData is keyed by canonical venue name
	VenuesData map[string]*VenueInfo
	// VenueAliases maps the schedule source's venue names (and other
	// common spellings, mostly sponsor names) to canonical venue names
	VenueAliases map[string]string
	// StateHolidays holds state-specific public holidays not covered by
	// the national calendar, keyed by state with "2006-01-02" dates
	StateHolidays map[string][]string
}

var (
	dataInstance *Data
	dataOnce     sync.Once
)

// GetDataInstance returns the singleton instance of the lookup tables
func GetDataInstance() *Data {
	dataOnce.Do(func() {
		dataInstance = &Data{
			TeamNames:     teamNames,
			TeamsData:     teamsData,
			VenuesData:    venuesData,
			VenueAliases:  venueAliases,
			StateHolidays: stateHolidays,
		}
	})
	return dataInstance
}

// GetDataForTeam looks up the static data for a canonical team name
func (d *Data) GetDataForTeam(name string) (*TeamInfo, error) {
	if ti, ok := d.TeamsData[name]; ok {
		return ti, nil
	}
	// raw names can be passed here too, resolve them first
	if canonical, ok := d.TeamNames[name]; ok {
		if ti, ok := d.TeamsData[canonical]; ok {
			return ti, nil
		}
	}
	return nil, fmt.Errorf("team %s does not exist in the data lookup table", name)
}

// GetDataForVenue looks up the static data for a venue, resolving aliases
func (d *Data) GetDataForVenue(name string) (*VenueInfo, error) {
	if vi, ok := d.VenuesData[name]; ok {
		return vi, nil
	}
	if canonical, ok := d.VenueAliases[name]; ok {
		if vi, ok := d.VenuesData[canonical]; ok {
			return vi, nil
		}
	}
	return nil, fmt.Errorf("venue %s does not exist in the data lookup table", name)
}

// teamNames maps every known raw spelling to a canonical team name.
// The attendance source uses its own abbreviations ("GW Sydney") and the
// schedule source uses plain city names ("Sydney"); both land here.
var teamNames = map[string]string{
	// attendance source spellings
	"GW Sydney":   "GWS Giants",
	"Gold Coast":  "Gold Coast Suns",
	"Geelong":     "Geelong Cats",
	"West Coast":  "West Coast Eagles",
	"Sydney":      "Sydney Swans",
	"Adelaide":    "Adelaide Crows",
	"Kangaroos":   "North Melbourne",
	"Footscray":   "Western Bulldogs",
	"Brisbane":    "Brisbane Lions",
	"P Adelaide":  "Port Adelaide",
	"St.Kilda":    "St Kilda",
	// schedule source spellings
	"Greater Western Sydney": "GWS Giants",
}

// teamsData is keyed by canonical team name
var teamsData = map[string]*TeamInfo{
	"Adelaide Crows":    {Name: "Adelaide Crows", State: "SA", HomeGround: "Adelaide Oval"},
	"Brisbane Lions":    {Name: "Brisbane Lions", State: "QLD", HomeGround: "Gabba"},
	"Carlton":           {Name: "Carlton", State: "VIC", HomeGround: "M.C.G."},
	"Collingwood":       {Name: "Collingwood", State: "VIC", HomeGround: "M.C.G."},
	"Essendon":          {Name: "Essendon", State: "VIC", HomeGround: "Docklands"},
	"Fremantle":         {Name: "Fremantle", State: "WA", HomeGround: "Perth Stadium"},
	"Geelong Cats":      {Name: "Geelong Cats", State: "VIC", HomeGround: "Kardinia Park"},
	"Gold Coast Suns":   {Name: "Gold Coast Suns", State: "QLD", HomeGround: "Carrara"},
	"GWS Giants":        {Name: "GWS Giants", State: "NSW", HomeGround: "Sydney Showground"},
	"Hawthorn":          {Name: "Hawthorn", State: "VIC", HomeGround: "M.C.G."},
	"Melbourne":         {Name: "Melbourne", State: "VIC", HomeGround: "M.C.G."},
	"North Melbourne":   {Name: "North Melbourne", State: "VIC", HomeGround: "Docklands"},
	"Port Adelaide":     {Name: "Port Adelaide", State: "SA", HomeGround: "Adelaide Oval"},
	"Richmond":          {Name: "Richmond", State: "VIC", HomeGround: "M.C.G."},
	"St Kilda":          {Name: "St Kilda", State: "VIC", HomeGround: "Docklands"},
	"Sydney Swans":      {Name: "Sydney Swans", State: "NSW", HomeGround: "S.C.G."},
	"West Coast Eagles": {Name: "West Coast Eagles", State: "WA", HomeGround: "Perth Stadium"},
	"Western Bulldogs":  {Name: "Western Bulldogs", State: "VIC", HomeGround: "Docklands"},
}

// venuesData is keyed by the attendance source's venue names
var venuesData = map[string]*VenueInfo{
	"M.C.G.":            {Name: "M.C.G.", State: "VIC", Timezone: "Australia/Melbourne"},
	"Docklands":         {Name: "Docklands", State: "VIC", Timezone: "Australia/Melbourne"},
	"Kardinia Park":     {Name: "Kardinia Park", State: "VIC", Timezone: "Australia/Melbourne"},
	"Eureka Stadium":    {Name: "Eureka Stadium", State: "VIC", Timezone: "Australia/Melbourne"},
	"S.C.G.":            {Name: "S.C.G.", State: "NSW", Timezone: "Australia/Sydney"},
	"Sydney Showground": {Name: "Sydney Showground", State: "NSW", Timezone: "Australia/Sydney"},
	"Stadium Australia": {Name: "Stadium Australia", State: "NSW", Timezone: "Australia/Sydney"},
	"Gabba":             {Name: "Gabba", State: "QLD", Timezone: "Australia/Brisbane"},
	"Carrara":           {Name: "Carrara", State: "QLD", Timezone: "Australia/Brisbane"},
	"Cazaly's Stadium":  {Name: "Cazaly's Stadium", State: "QLD", Timezone: "Australia/Brisbane"},
	"Riverway Stadium":  {Name: "Riverway Stadium", State: "QLD", Timezone: "Australia/Brisbane"},
	"Adelaide Oval":     {Name: "Adelaide Oval", State: "SA", Timezone: "Australia/Adelaide"},
	"Football Park":     {Name: "Football Park", State: "SA", Timezone: "Australia/Adelaide"},
	"Norwood Oval":      {Name: "Norwood Oval", State: "SA", Timezone: "Australia/Adelaide"},
	"Perth Stadium":     {Name: "Perth Stadium", State: "WA", Timezone: "Australia/Perth"},
	"Subiaco":           {Name: "Subiaco", State: "WA", Timezone: "Australia/Perth"},
	"W.A.C.A.":          {Name: "W.A.C.A.", State: "WA", Timezone: "Australia/Perth"},
	"Bellerive Oval":    {Name: "Bellerive Oval", State: "TAS", Timezone: "Australia/Hobart"},
	"York Park":         {Name: "York Park", State: "TAS", Timezone: "Australia/Hobart"},
	"Manuka Oval":       {Name: "Manuka Oval", State: "ACT", Timezone: "Australia/Sydney"},
	"Marrara Oval":      {Name: "Marrara Oval", State: "NT", Timezone: "Australia/Darwin"},
	"Traeger Park":      {Name: "Traeger Park", State: "NT", Timezone: "Australia/Darwin"},
	"Wellington":        {Name: "Wellington", State: "NZ", Timezone: "Pacific/Auckland"},
	"Jiangwan Stadium":  {Name: "Jiangwan Stadium", State: "CHN", Timezone: "Asia/Shanghai"},
}

// venueAliases covers the schedule source names and sponsor renames
var venueAliases = map[string]string{
	"MCG":                   "M.C.G.",
	"Marvel Stadium":        "Docklands",
	"Etihad Stadium":        "Docklands",
	"GMHBA Stadium":         "Kardinia Park",
	"Simonds Stadium":       "Kardinia Park",
	"Mars Stadium":          "Eureka Stadium",
	"SCG":                   "S.C.G.",
	"Giants Stadium":        "Sydney Showground",
	"Spotless Stadium":      "Sydney Showground",
	"ANZ Stadium":           "Stadium Australia",
	"Accor Stadium":         "Stadium Australia",
	"The Gabba":             "Gabba",
	"Metricon Stadium":      "Carrara",
	"Heritage Bank Stadium": "Carrara",
	"People First Stadium":  "Carrara",
	"AAMI Stadium":          "Football Park",
	"Optus Stadium":         "Perth Stadium",
	"Domain Stadium":        "Subiaco",
	"Subiaco Oval":          "Subiaco",
	"Blundstone Arena":      "Bellerive Oval",
	"UTAS Stadium":          "York Park",
	"University of Tasmania Stadium": "York Park",
	"TIO Stadium":           "Marrara Oval",
	"TIO Traeger Park":      "Traeger Park",
	"Westpac Stadium":       "Wellington",
	"Adelaide Arena at Jiangwan Stadium": "Jiangwan Stadium",
}

// stateHolidays lists state-specific public holidays for the modelled
// seasons that the national calendar misses. Mostly Victorian Labour Day
// and the AFL's own Grand Final Eve holiday.
var stateHolidays = map[string][]string{
	"VIC": {
		// Labour Day (second Monday of March)
		"2012-03-12", "2013-03-11", "2014-03-10", "2015-03-09",
		"2016-03-14", "2017-03-13", "2018-03-12", "2019-03-11",
		"2022-03-14", "2023-03-13", "2024-03-11",
		// Grand Final Eve (from 2015)
		"2015-10-02", "2016-09-30", "2017-09-29", "2018-09-28",
		"2019-09-27", "2022-09-23", "2023-09-29", "2024-09-27",
	},
	"SA": {
		// Adelaide Cup (second Monday of March)
		"2012-03-12", "2013-03-11", "2014-03-10", "2015-03-09",
		"2016-03-14", "2017-03-13", "2018-03-12", "2019-03-11",
		"2022-03-14", "2023-03-13", "2024-03-11",
	},
	"WA": {
		// Western Australia Day (first Monday of June)
		"2012-06-04", "2013-06-03", "2014-06-02", "2015-06-01",
		"2016-06-06", "2017-06-05", "2018-06-04", "2019-06-03",
		"2022-06-06", "2023-06-05", "2024-06-03",
	},
	"QLD": {
		// Labour Day (May, moved to October 2013-2015)
		"2012-05-07", "2013-10-07", "2014-10-06", "2015-10-05",
		"2016-05-02", "2017-05-01", "2018-05-07", "2019-05-06",
		"2022-05-02", "2023-05-01", "2024-05-06",
	},
}
