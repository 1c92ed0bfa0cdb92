package suggest_slots

import (
	"fmt"
	"time"
)

var weekdayAbbr = map[time.Weekday]string{
	time.Sunday:    "Dom",
	time.Monday:    "Seg",
	time.Tuesday:   "Ter",
	time.Wednesday: "Qua",
	time.Thursday:  "Qui",
	time.Friday:    "Sex",
	time.Saturday:  "Sáb",
}

var monthAbbr = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// dayLabel renders the pt-BR label shown next to a suggestion: "Hoje" and
// "Amanhã" for the first two calendar days, then "Seg, 2 Set".
func dayLabel(daysAhead int, date time.Time) string {
	switch daysAhead {
	case 0:
		return "Hoje"
	case 1:
		return "Amanhã"
	default:
		return fmt.Sprintf("%s, %d %s", weekdayAbbr[date.Weekday()], date.Day(), monthAbbr[date.Month()])
	}
}
