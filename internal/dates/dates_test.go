package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip_WideRange(t *testing.T) {
	birthDates := []string{"1990-01-01", "1964-02-29", "2000-12-31"}
	for _, birth := range birthDates {
		// Steps of 7 keep the property check fast while still crossing
		// every month boundary and many DST transitions.
		for days := -3650; days <= 40000; days += 7 {
			dateStr, err := DateFromDays(days, birth)
			require.NoError(t, err)
			back, err := DaysSinceBirth(dateStr, birth)
			require.NoError(t, err)
			require.Equal(t, days, back, "birth %s days %d via %s", birth, days, dateStr)
		}
	}
}

func TestDaysSinceBirth_BeforeBirth(t *testing.T) {
	days, err := DaysSinceBirth("1989-12-25", "1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, -7, days)
}

func TestDaysSinceBirth_InvalidInput(t *testing.T) {
	_, err := DaysSinceBirth("not-a-date", "1990-01-01")
	assert.Error(t, err)

	_, err = DaysSinceBirth("1990-06-01", "garbage")
	assert.Error(t, err)

	_, err = DateFromDays(10, "1990-13-45")
	assert.Error(t, err)
}

func TestDateFromDays_LeapYear(t *testing.T) {
	// 2020 was a leap year: Feb 28 + 1 day is Feb 29, + 2 is Mar 1.
	d1, err := DateFromDays(1, "2020-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2020-02-29", d1)

	d2, err := DateFromDays(2, "2020-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2020-03-01", d2)
}

func TestAgeAt_CompletedYears(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		birth string
		want  int
	}{
		{"day before birthday", "2020-05-14", "1990-05-15", 29},
		{"on birthday", "2020-05-15", "1990-05-15", 30},
		{"day after birthday", "2020-05-16", "1990-05-15", 30},
		{"earlier month", "2020-01-10", "1990-05-15", 29},
		{"later month", "2020-11-10", "1990-05-15", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AgeAt(tt.date, tt.birth)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeFromDays_MatchesCalendar(t *testing.T) {
	birth := "1990-05-15"
	day30, err := DaysFromAge(30, birth)
	require.NoError(t, err)

	age, err := AgeFromDays(day30, birth)
	require.NoError(t, err)
	assert.Equal(t, 30, age)

	age, err = AgeFromDays(day30-1, birth)
	require.NoError(t, err)
	assert.Equal(t, 29, age, "day before the 30th birthday is still 29")
}

func TestDaysFromAge_NotAFixedConstant(t *testing.T) {
	// The first year of life spans Feb 29 1992, the second does not.
	birth := "1991-06-01"
	d1, err := DaysFromAge(1, birth)
	require.NoError(t, err)
	d2, err := DaysFromAge(2, birth)
	require.NoError(t, err)
	assert.Equal(t, 366, d1)
	assert.Equal(t, 365, d2-d1)
}

func TestParse_LocalMidnight(t *testing.T) {
	parsed, err := Parse("2021-03-14")
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, time.Local, parsed.Location())
}
