// Package month handles the "YYYY-MM" keys budgets and objective plans are
// stored under. Keys compare correctly as plain strings, which the store
// relies on for range queries.
package month

import (
	"fmt"
	"time"
)

// Layout is the time layout of a month key.
const Layout = "2006-01"

// Parse validates s and returns the first instant of that month in UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil || t.Format(Layout) != s {
		return time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t, nil
}

// Valid reports whether s is a well-formed month key.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
