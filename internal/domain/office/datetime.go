package office

import (
	"strings"
	"time"
)

// DisplayLayout is the input and display format of a hearing date/time
// (DD/MM/AAAA HH:MM).
const DisplayLayout = "02/01/2006 15:04"

// ParseHearingTime parses s in DisplayLayout, interpreted in loc, and
// returns the normalized (UTC) instant.
func ParseHearingTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(DisplayLayout, s, loc)
	if err != nil {
		return time.Time{}, invalid(KeyDateTime, "formato de data/hora inválido. Use DD/MM/AAAA HH:MM")
	}
	// Wall-clock times skipped by a DST change are normalized by time.Date
	// to a different hour; UTC has no gaps, so compare against it.
	wall, _ := time.Parse(DisplayLayout, s)
	if t.Format(DisplayLayout) != wall.Format(DisplayLayout) {
		return time.Time{}, invalid(KeyDateTime, "horário inexistente no fuso do escritório")
	}
	return t.UTC(), nil
}

// FormatHearingTime renders a stored instant back in DisplayLayout.
func FormatHearingTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}

func checkHearingTime(raw string) error {
	_, err := ParseHearingTime(raw, time.UTC)
	return err
}
