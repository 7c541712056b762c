package domain

import (
	"sort"
	"time"
)

// YearFilter selects rides by the calendar year of their timestamp.
// The zero value selects nothing; construct filters with AllYears, Years,
// or CurrentYear.
type YearFilter struct {
	all   bool
	years map[int]bool
}

// AllYears returns a filter that matches every ride.
func AllYears() YearFilter {
	return YearFilter{all: true}
}

// Years returns a filter matching rides whose timestamp falls in any of the
// given calendar years.
func Years(years ...int) YearFilter {
	set := make(map[int]bool, len(years))
	for _, y := range years {
		set[y] = true
	}
	return YearFilter{years: set}
}

// CurrentYear returns the default filter: the current calendar year.
func CurrentYear() YearFilter {
	return Years(time.Now().Year())
}

// All reports whether the filter matches every year.
func (f YearFilter) All() bool {
	return f.all
}

// Match reports whether the given timestamp passes the filter.
func (f YearFilter) Match(t time.Time) bool {
	return f.all || f.years[t.Year()]
}

// List returns the selected years in ascending order, or nil for an
// all-years filter. Useful for "no rides for year(s): …" messages.
func (f YearFilter) List() []int {
	if f.all {
		return nil
	}
	out := make([]int, 0, len(f.years))
	for y := range f.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}
