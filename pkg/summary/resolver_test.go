package summary

import (
	"testing"

	"github.com/daywheel/daywheel/pkg/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHourOccupancy_EmptySet(t *testing.T) {
	occupancy := ResolveHourOccupancy(nil)

	assert.Len(t, occupancy, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		assert.Nil(t, occupancy[hour], "hour %d should be unoccupied", hour)
	}
}

func TestResolveHourOccupancy_SingleActivity(t *testing.T) {
	activities := []activity.Activity{
		{ID: 1, CategoryID: 1, StartHour: 9, EndHour: 17},
	}

	occupancy := ResolveHourOccupancy(activities)

	for hour := 0; hour < HoursPerDay; hour++ {
		if hour >= 9 && hour < 17 {
			require.NotNil(t, occupancy[hour], "hour %d should be occupied", hour)
			assert.Equal(t, 1, occupancy[hour].ID)
		} else {
			assert.Nil(t, occupancy[hour], "hour %d should be unoccupied", hour)
		}
	}
}

func TestResolveHourOccupancy_FullDayActivity(t *testing.T) {
	activities := []activity.Activity{
		{ID: 1, CategoryID: 1, StartHour: 0, EndHour: 24},
	}

	occupancy := ResolveHourOccupancy(activities)

	for hour := 0; hour < HoursPerDay; hour++ {
		require.NotNil(t, occupancy[hour], "hour %d should be occupied", hour)
		assert.Equal(t, 1, occupancy[hour].ID)
	}
}

func TestResolveHourOccupancy_OverlapFirstInInputOrderWins(t *testing.T) {
	// given two overlapping activities, 0-12 listed before 6-18
	activities := []activity.Activity{
		{ID: 1, CategoryID: 1, StartHour: 0, EndHour: 12},
		{ID: 2, CategoryID: 2, StartHour: 6, EndHour: 18},
	}

	// when
	occupancy := ResolveHourOccupancy(activities)

	// then the overlapping hours 6..11 belong to the first activity
	for hour := 6; hour < 12; hour++ {
		require.NotNil(t, occupancy[hour])
		assert.Equal(t, 1, occupancy[hour].CategoryID, "hour %d should resolve to the first activity", hour)
	}
	// and the second activity owns the remainder of its interval
	for hour := 12; hour < 18; hour++ {
		require.NotNil(t, occupancy[hour])
		assert.Equal(t, 2, occupancy[hour].CategoryID)
	}
}

func TestResolveHourOccupancy_DoesNotMutateInput(t *testing.T) {
	activities := []activity.Activity{
		{ID: 1, CategoryID: 1, StartHour: 0, EndHour: 12},
		{ID: 2, CategoryID: 2, StartHour: 6, EndHour: 18},
	}
	original := make([]activity.Activity, len(activities))
	copy(original, activities)

	ResolveHourOccupancy(activities)

	assert.Equal(t, original, activities)
}

func TestResolveHourOccupancy_Idempotent(t *testing.T) {
	activities := []activity.Activity{
		{ID: 1, CategoryID: 1, StartHour: 8, EndHour: 16},
		{ID: 2, CategoryID: 2, StartHour: 4, EndHour: 10},
	}

	first := ResolveHourOccupancy(activities)
	second := ResolveHourOccupancy(activities)

	assert.Equal(t, first, second)
}
