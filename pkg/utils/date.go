package utils

import "time"

// StartOfDay retorna a meia-noite do dia de t no fuso informado (UTC se nil)
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
