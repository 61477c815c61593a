package summary

import (
	"math"

	"github.com/daywheel/daywheel/pkg/activity"
	"github.com/daywheel/daywheel/pkg/category"
)

// ComputeSummary aggregates the total hours and percentage-of-day per
// category for one day's activities. The result contains exactly one entry
// per supplied category, in the supplied order, including categories with no
// activities that day (0 hours, 0 percent).
//
// Activities referencing a category that is not in the list are skipped
// silently: category deletion is guarded, not cascaded, so a dangling
// reference can only come from data outside this user's category list and
// must not produce a phantom row.
//
// Percentages are each category's share of the full 24-hour day, rounded
// independently. They are not normalized against the total occupied time, so
// with overlapping activities the column can sum to more than 100.
func ComputeSummary(activities []activity.Activity, categories []category.Category) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(categories))
	indexById := make(map[int]int, len(categories))
	for i, c := range categories {
		indexById[c.ID] = i
		summaries = append(summaries, CategorySummary{Category: c})
	}

	for _, a := range activities {
		duration := a.EndHour - a.StartHour
		if duration < 0 {
			// tolerate midnight-crossing intervals even though the edit form
			// forbids them; data written through other paths may contain them
			duration += HoursPerDay
		}
		if idx, ok := indexById[a.CategoryID]; ok {
			summaries[idx].Hours += duration
		}
	}

	for i := range summaries {
		summaries[i].Percentage = int(math.Round(float64(summaries[i].Hours) / HoursPerDay * 100))
	}

	return summaries
}
