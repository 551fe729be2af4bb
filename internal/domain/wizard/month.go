package wizard

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// weekdayLabels is Monday-first regardless of any runtime locale.
var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Month is the calendar cursor shown in the date/time step.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Add moves the cursor by delta months, wrapping years in both directions.
func (m Month) Add(delta int) Month {
	idx := m.Year*12 + int(m.Month-1) + delta
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return Month{Year: year, Month: time.Month(month + 1)}
}

func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}

func (m Month) first(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// DaysIn returns the number of days in the month.
func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks is the number of empty cells before day 1 in a Monday-first week.
func (m Month) LeadingBlanks() int {
	wd := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

type DayCell struct {
	Blank    bool   `json:"blank"`
	Date     string `json:"date,omitempty"`
	Day      int    `json:"day,omitempty"`
	Today    bool   `json:"today"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected"`
}

type MonthGrid struct {
	Title    string    `json:"title"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	Weekdays []string  `json:"weekdays"`
	Cells    []DayCell `json:"cells"`
}

// Grid renders the month. today must be local midnight in loc; days strictly
// before it are disabled.
func (m Month) Grid(today time.Time, selected *time.Time, loc *time.Location) MonthGrid {
	blanks := m.LeadingBlanks()
	days := m.DaysIn()
	cells := make([]DayCell, 0, blanks+days)
	for range blanks {
		cells = append(cells, DayCell{Blank: true})
	}

	first := m.first(loc)
	for day := 1; day <= days; day++ {
		date := first.AddDate(0, 0, day-1)
		cells = append(cells, DayCell{
			Date:     date.Format(DateLayout),
			Day:      day,
			Today:    date.Equal(today),
			Disabled: date.Before(today),
			Selected: selected != nil && sameDay(*selected, date),
		})
	}

	return MonthGrid{
		Title:    m.Title(),
		Year:     m.Year,
		Month:    int(m.Month),
		Weekdays: append([]string(nil), weekdayLabels...),
		Cells:    cells,
	}
}

// ParseDate reads an ISO calendar date as local midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
