package domain

import (
	"fmt"
	"math"
	"time"
)

// FormatCoordinates renders a lon/lat pair for display: absolute value to
// four decimal places plus a hemisphere letter, latitude first.
// FormatCoordinates(-122.4, 37.8) -> "37.8000°N, 122.4000°W".
func FormatCoordinates(lon, lat float64) string {
	latHemi := "N"
	if lat < 0 {
		latHemi = "S"
	}
	lonHemi := "E"
	if lon < 0 {
		lonHemi = "W"
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", math.Abs(lat), latHemi, math.Abs(lon), lonHemi)
}

// FormatDepth renders a depth in kilometers with one decimal place.
func FormatDepth(depthKm float64) string {
	return fmt.Sprintf("%.1f km", depthKm)
}

// FormatAbsoluteDate renders a timestamp as "02 Jan 2006" in UTC.
func FormatAbsoluteDate(t time.Time) string {
	return t.UTC().Format("02 Jan 2006")
}

// FormatAbsoluteTime renders a timestamp as 24-hour "15:04" in UTC.
func FormatAbsoluteTime(t time.Time) string {
	return t.UTC().Format("15:04")
}

// RelativeAge renders how long ago t was, against the package clock:
// whole minutes under an hour, whole hours under a day, else whole days,
// with singular/plural agreement ("1 minute ago", "2 hours ago").
func RelativeAge(t time.Time) string {
	age := clock.Now().Sub(t)
	if age < 0 {
		age = 0
	}

	switch {
	case age < time.Hour:
		return pluralizeAge(int(age.Minutes()), "minute")
	case age < 24*time.Hour:
		return pluralizeAge(int(age.Hours()), "hour")
	default:
		return pluralizeAge(int(age.Hours()/24), "day")
	}
}

func pluralizeAge(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
