package models

import "time"

// FilterSet carries the user's current sidebar selection. An empty
// inclusion list means "no restriction on that column", not "match
// nothing". Start and End are inclusive calendar-date bounds.
type FilterSet struct {
	Start        time.Time
	End          time.Time
	ProductLines []string
	Countries    []string
	Statuses     []string
}

// FilterOptions describes the values the sidebar controls can offer:
// the dataset's date bounds and the distinct categorical values, sorted.
type FilterOptions struct {
	MinDate      time.Time `json:"min_date"`
	MaxDate      time.Time `json:"max_date"`
	ProductLines []string  `json:"product_lines"`
	Countries    []string  `json:"countries"`
	Statuses     []string  `json:"statuses"`
}
