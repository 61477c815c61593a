package summary

import (
	"github.com/daywheel/daywheel/pkg/activity"
	"github.com/daywheel/daywheel/pkg/category"
)

// HoursPerDay is the number of hour slots on the timeline.
const HoursPerDay = 24

// Occupancy maps each hour of the day to the activity occupying it, or nil
// when the hour is free. Index i covers the interval [i, i+1).
type Occupancy [HoursPerDay]*activity.Activity

// CategorySummary is a category with its aggregated hours for one date and
// the share of the 24-hour day those hours cover. It is derived on every
// request and never persisted.
type CategorySummary struct {
	category.Category
	Hours      int
	Percentage int
}
