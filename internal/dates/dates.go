// Package dates converts between ISO calendar date strings and integer
// "days since birth" offsets. All inputs are calendar dates with no
// time-of-day; arithmetic relies on the calendar, never on a fixed
// day-length constant.
package dates

import (
	"fmt"
	"math"
	"time"
)

// Layout is the calendar date format used throughout plan documents.
const Layout = "2006-01-02"

// Parse parses an ISO calendar date string at local midnight.
func Parse(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string %q: %w", dateStr, err)
	}
	return t, nil
}

// DaysSinceBirth returns the signed difference in whole days between
// dateStr and birthDate. The result is rounded to the nearest integer
// to absorb daylight-saving transitions. Dates before birth yield a
// negative offset.
func DaysSinceBirth(dateStr, birthDate string) (int, error) {
	target, err := Parse(dateStr)
	if err != nil {
		return 0, err
	}
	birth, err := Parse(birthDate)
	if err != nil {
		return 0, err
	}
	return int(math.Round(target.Sub(birth).Hours() / 24)), nil
}

// DateFromDays adds days whole days to birthDate and formats the result
// as YYYY-MM-DD using local calendar fields, so that DaysSinceBirth
// inverts it exactly for any integer days.
func DateFromDays(days int, birthDate string) (string, error) {
	birth, err := Parse(birthDate)
	if err != nil {
		return "", err
	}
	return birth.AddDate(0, 0, days).Format(Layout), nil
}

// AgeFromDays returns the age in completed years at the given day
// offset from birth.
func AgeFromDays(days int, birthDate string) (int, error) {
	dateStr, err := DateFromDays(days, birthDate)
	if err != nil {
		return 0, err
	}
	return AgeAt(dateStr, birthDate)
}

// AgeAt returns the age in completed years on dateStr for someone born
// on birthDate. The year difference is decremented when the month/day
// of dateStr precedes the month/day of the birth date, so the displayed
// age never flips early around birthdays.
func AgeAt(dateStr, birthDate string) (int, error) {
	target, err := Parse(dateStr)
	if err != nil {
		return 0, err
	}
	birth, err := Parse(birthDate)
	if err != nil {
		return 0, err
	}
	years := target.Year() - birth.Year()
	beforeBirthday := target.Month() < birth.Month() ||
		(target.Month() == birth.Month() && target.Day() < birth.Day())
	if beforeBirthday {
		years--
	}
	return years, nil
}

// DaysFromAge returns the day offset of the birthday on which the given
// age in completed years is reached.
func DaysFromAge(age int, birthDate string) (int, error) {
	birth, err := Parse(birthDate)
	if err != nil {
		return 0, err
	}
	target := birth.AddDate(age, 0, 0)
	return int(math.Round(target.Sub(birth).Hours() / 24)), nil
}
