package afl

import (
	"sync"
	"time"

	"github.com/bairdj/afl-crowds/internal/logger"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/au"
)

var (
	holidayCal  *cal.Calendar
	holidayOnce sync.Once
)

// holidayCalendar returns the shared national holiday calendar
func holidayCalendar() *cal.Calendar {
	holidayOnce.Do(func() {
		holidayCal = &cal.Calendar{Name: "Australia", Cacheable: true}
		// The au package exports no aggregate national slice, only the
		// individual holiday vars; these are the nationwide ones.
		holidayCal.AddHoliday(
			au.NewYear,
			au.AustraliaDay,
			au.GoodFriday,
			au.EasterMonday,
			au.AnzacDay,
			au.ChristmasDay,
			au.BoxingDay,
		)
	})
	return holidayCal
}

// PublicHolidayName returns the name of the public holiday on the given
// date in the given state, or "" when it is an ordinary day. National
// holidays come from the calendar library, state-specific ones from the
// explicit lookup table.
func PublicHolidayName(date time.Time, state string, data *Data) string {
	if actual, observed, h := holidayCalendar().IsHoliday(date); (actual || observed) && h != nil {
		return h.Name
	}

	dateKey := date.Format("2006-01-02")
	for _, d := range data.StateHolidays[state] {
		if d == dateKey {
			return "State holiday"
		}
	}
	return ""
}

// IsInterstateAway returns true when the away side has travelled out of
// its home state for the match
func IsInterstateAway(m *Match, data *Data) bool {
	away, err := data.GetDataForTeam(m.AwayTeamName)
	if err != nil {
		logger.Warn("Cannot derive interstate flag:", err)
		return false
	}
	venue, err := data.GetDataForVenue(m.Venue)
	if err != nil {
		logger.Warn("Cannot derive interstate flag:", err)
		return false
	}
	return away.State != venue.State
}

// ComputeFeatures derives the modelling features for every match:
// rolling team form going INTO the match, the public holiday flag for
// the venue's state, and the interstate travel flag. Matches are
// processed chronologically so form never leaks a result backwards.
func ComputeFeatures(matches []*Match, data *Data) {
	SortMatchesByTime(matches)

	// form value per team, quaternary encoded
	form := make(map[string]int)

	for _, m := range matches {
		// form reflects results before this match only
		m.HomeFormPercentage = FormPercentage(form[m.HomeTeamName])
		m.AwayFormPercentage = FormPercentage(form[m.AwayTeamName])

		if venue, err := data.GetDataForVenue(m.Venue); err == nil {
			if loc, lerr := time.LoadLocation(venue.Timezone); lerr == nil {
				m.PublicHoliday = PublicHolidayName(m.UTCTime.In(loc), venue.State, data)
			}
		}

		m.InterstateAway = IsInterstateAway(m, data)

		if m.HasBeenPlayed() {
			homeResult, awayResult := resultValues(m)
			form[m.HomeTeamName] = UpdateFormData(form[m.HomeTeamName], homeResult)
			form[m.AwayTeamName] = UpdateFormData(form[m.AwayTeamName], awayResult)
		}
	}
}

// resultValues maps a final score to form encoding values for each side
func resultValues(m *Match) (home int, away int) {
	switch {
	case m.HomeScore > m.AwayScore:
		return Config.FormWinValue, Config.FormLossValue
	case m.HomeScore < m.AwayScore:
		return Config.FormLossValue, Config.FormWinValue
	default:
		return Config.FormDrawValue, Config.FormDrawValue
	}
}
