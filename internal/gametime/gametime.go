// Package gametime advances the in-game clock and calendar.
package gametime

import (
	"fmt"
	"math/rand"

	"valley-farm/assets"
)

const (
	MinutesPerHour = 60
	StartHour      = 6
	CutoffHour     = 26 // 2 AM; the player passes out at this hour
	DaysPerSeason  = 28
	DaysPerWeek    = 7

	// RealSecondsPerMinute is 7 real seconds per 10 game minutes.
	RealSecondsPerMinute = 0.7
)

// Time is the in-game clock. Hour runs from 6 to 26 so that the hours after
// midnight still belong to the current day.
type Time struct {
	Hour    int            `json:"hour" validate:"gte=6,lte=27"`
	Minute  float64        `json:"minute" validate:"gte=0,lt=60"`
	Day     int            `json:"day" validate:"gte=1,lte=28"`
	Season  assets.Season  `json:"season" validate:"oneof=spring summer fall winter"`
	Year    int            `json:"year" validate:"gte=1"`
	Weather assets.Weather `json:"weather" validate:"oneof=sunny rainy stormy"`
}

// New returns 6:00 AM on spring 1 of year 1, sunny.
func New() Time {
	return Time{
		Hour:    StartHour,
		Day:     1,
		Season:  assets.Spring,
		Year:    1,
		Weather: assets.Sunny,
	}
}

// Advance converts elapsed real seconds into game minutes, carrying whole
// hours. It never rolls the day over.
func Advance(t Time, seconds float64) Time {
	t.Minute += seconds / RealSecondsPerMinute
	for t.Minute >= MinutesPerHour {
		t.Minute -= MinutesPerHour
		t.Hour++
	}
	return t
}

// AdvanceDay moves to 6:00 AM of the next day, rolling season and year as
// needed, and rolls the new day's weather.
func AdvanceDay(t Time, rng *rand.Rand) Time {
	t.Day++
	t.Hour = StartHour
	t.Minute = 0
	if t.Day > DaysPerSeason {
		t.Day = 1
		t.Season = t.Season.Next()
		if t.Season == assets.Spring {
			t.Year++
		}
	}
	t.Weather = RollWeather(t.Season, rng)
	return t
}

// RollWeather draws a day's weather from the season's rain chance.
func RollWeather(s assets.Season, rng *rand.Rand) assets.Weather {
	if rng.Float64() < assets.RainChance[s] {
		return assets.Rainy
	}
	return assets.Sunny
}

// PastCutoff reports whether the day is over and the player must sleep.
func PastCutoff(t Time) bool { return t.Hour >= CutoffHour }

// SleepRecovery returns the fraction of max energy restored by going to bed
// at t: full before midnight, 75% before 1 AM, half after.
func SleepRecovery(t Time) float64 {
	switch {
	case t.Hour < 24:
		return 1.0
	case t.Hour < 25:
		return 0.75
	default:
		return 0.5
	}
}

// ShopOpen reports whether shops trade at t.
func ShopOpen(t Time) bool { return t.Hour >= 9 && t.Hour < 17 }

// IsNight reports whether it is dark outside.
func IsNight(t Time) bool { return t.Hour >= 20 || t.Hour < StartHour }

// IsLateNight reports whether it is past midnight.
func IsLateNight(t Time) bool { return t.Hour >= 24 }

// DayOfWeek returns 1..7 for a day of the season.
func DayOfWeek(day int) int { return (day-1)%DaysPerWeek + 1 }

// IsNewWeek reports whether day starts a week.
func IsNewWeek(day int) bool { return DayOfWeek(day) == 1 }

// IsFestival reports whether t falls on a festival day.
func IsFestival(t Time) bool {
	for _, d := range assets.Festivals[t.Season] {
		if d == t.Day {
			return true
		}
	}
	return false
}

// MinutesUntil returns the game minutes from t until targetHour, wrapping
// to the next day when the hour has already passed.
func MinutesUntil(t Time, targetHour int) float64 {
	now := float64(t.Hour*MinutesPerHour) + t.Minute
	target := float64(targetHour * MinutesPerHour)
	if target > now {
		return target - now
	}
	return float64(24*MinutesPerHour) - now + target
}

// Format renders the clock as "6:00 AM". Hours past midnight read as AM.
func Format(t Time) string {
	h := t.Hour
	if h > 24 {
		h -= 24
	}
	suffix := "AM"
	if t.Hour >= 12 && t.Hour < 24 {
		suffix = "PM"
	}
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, int(t.Minute), suffix)
}

// Period buckets the hour for lighting and flavour text.
type Period uint8

const (
	Dawn Period = iota
	Morning
	Afternoon
	Evening
	Night
)

// PeriodOf returns the part of the day for t.
func PeriodOf(t Time) Period {
	switch h := t.Hour; {
	case h >= 5 && h < 7:
		return Dawn
	case h >= 7 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 20:
		return Evening
	}
	return Night
}
