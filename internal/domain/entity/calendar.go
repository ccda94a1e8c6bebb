package entity

import "time"

// DayBounds devuelve los límites del día calendario local que contiene t:
// inicio inclusivo (medianoche) y fin exclusivo (la medianoche siguiente).
// Las consultas por día usan date >= start AND date < end.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
