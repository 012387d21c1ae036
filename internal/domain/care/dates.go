package care

import "time"

// DayFormat es la clave de bucket de calendario (día local, ISO).
const DayFormat = "2006-01-02"

// DayKey trunca un instante al día calendario en la zona de loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayFormat)
}

// ParseDay interpreta YYYY-MM-DD en la zona local (inicio del día).
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DayFormat, s, loc)
}
