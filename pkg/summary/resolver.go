package summary

import "github.com/daywheel/daywheel/pkg/activity"

// ResolveHourOccupancy determines which activity occupies each hour of the
// day. Activities may overlap; for every hour the first activity in slice
// order with StartHour <= hour < EndHour wins. Callers pass activities in
// storage order (ordered by id), so on overlap the earliest-created activity
// takes the hour.
//
// The input is never mutated. Hours covered by no activity stay nil.
func ResolveHourOccupancy(activities []activity.Activity) Occupancy {
	var occupancy Occupancy
	for hour := 0; hour < HoursPerDay; hour++ {
		for i := range activities {
			if activities[i].StartHour <= hour && hour < activities[i].EndHour {
				occupancy[hour] = &activities[i]
				break
			}
		}
	}
	return occupancy
}
