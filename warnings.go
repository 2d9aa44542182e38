package scramble

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// WarningKind is the kind of problem a Warning describes.
type WarningKind int

const (
	// Duplicate means more than one puzzle has the date.
	Duplicate WarningKind = iota
	// Gap means no puzzle has the date but a puzzle exists the day before
	// and the day after.
	Gap
)

func (k WarningKind) String() string {
	switch k {
	case Duplicate:
		return "duplicate"
	case Gap:
		return "gap"
	default:
		return "unknown"
	}
}

// Warning is a problem with the dates of a set of puzzles.
type Warning struct {
	Kind WarningKind
	Date string
}

// Warnings returns warnings about duplicated dates and single day gaps,
// sorted by date. Dates that are not formatted as YYYY-MM-DD are ignored.
func Warnings(dates []string) []Warning {
	counts := make(map[string]int)
	for _, date := range dates {
		if _, err := time.Parse(dateLayout, date); err == nil {
			counts[date]++
		}
	}

	var warnings []Warning
	for date, count := range counts {
		if count > 1 {
			warnings = append(warnings, Warning{Kind: Duplicate, Date: date})
		}

		day, _ := time.Parse(dateLayout, date)
		next := day.AddDate(0, 0, 1).Format(dateLayout)
		after := day.AddDate(0, 0, 2).Format(dateLayout)
		if counts[next] == 0 && counts[after] > 0 {
			warnings = append(warnings, Warning{Kind: Gap, Date: next})
		}
	}

	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].Date != warnings[j].Date {
			return warnings[i].Date < warnings[j].Date
		}
		return warnings[i].Kind < warnings[j].Kind
	})

	return warnings
}
