package summary

import (
	"context"
	"testing"

	"github.com/daywheel/daywheel/internal/event_bus"
	"github.com/daywheel/daywheel/pkg/activity"
	"github.com/daywheel/daywheel/pkg/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityProviderStub struct {
	activities []activity.Activity
	calls      int
}

func (s *activityProviderStub) List(ctx context.Context, userId int, date string) ([]activity.Activity, error) {
	s.calls++
	return s.activities, nil
}

type categoryProviderStub struct {
	categories []category.Category
}

func (s *categoryProviderStub) GetAll(ctx context.Context, userId int) ([]category.Category, error) {
	return s.categories, nil
}

func setupService() (*ServiceImpl, *activityProviderStub, *categoryProviderStub, *event_bus.EventBus) {
	activities := &activityProviderStub{}
	categories := &categoryProviderStub{}
	bus := event_bus.NewEventBus()
	service := NewService(activities, categories, bus)
	return service, activities, categories, bus
}

func TestServiceImpl_GetSummary(t *testing.T) {
	service, activities, categories, _ := setupService()
	categories.categories = []category.Category{
		{ID: 1, UserID: 1, Name: "Work"},
		{ID: 2, UserID: 1, Name: "Sleep"},
	}
	activities.activities = []activity.Activity{
		{ID: 1, UserID: 1, CategoryID: 1, Date: "2025-03-10", StartHour: 9, EndHour: 17},
	}

	summaries, err := service.GetSummary(context.Background(), 1, "2025-03-10")

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 8, summaries[0].Hours)
	assert.Equal(t, 0, summaries[1].Hours)
}

func TestServiceImpl_GetSummaryIsCachedUntilActivityChanges(t *testing.T) {
	service, activities, categories, bus := setupService()
	categories.categories = []category.Category{{ID: 1, UserID: 1, Name: "Work"}}

	// first call computes, second is served from cache
	_, err := service.GetSummary(context.Background(), 1, "2025-03-10")
	require.NoError(t, err)
	_, err = service.GetSummary(context.Background(), 1, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1, activities.calls)

	// a change on the same date invalidates
	err = bus.Publish(event_bus.NewEvent(context.Background(), event_bus.ActivityChangedEvent,
		event_bus.ActivityChanged{UserID: 1, Date: "2025-03-10"}))
	require.NoError(t, err)

	_, err = service.GetSummary(context.Background(), 1, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2, activities.calls)
}

func TestServiceImpl_CategoryChangeInvalidatesAllDatesOfUser(t *testing.T) {
	service, activities, categories, bus := setupService()
	categories.categories = []category.Category{{ID: 1, UserID: 1, Name: "Work"}}

	_, err := service.GetSummary(context.Background(), 1, "2025-03-10")
	require.NoError(t, err)
	_, err = service.GetSummary(context.Background(), 1, "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, 2, activities.calls)

	err = bus.Publish(event_bus.NewEvent(context.Background(), event_bus.CategoryChangedEvent,
		event_bus.CategoryChanged{UserID: 1}))
	require.NoError(t, err)

	_, err = service.GetSummary(context.Background(), 1, "2025-03-10")
	require.NoError(t, err)
	_, err = service.GetSummary(context.Background(), 1, "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, 4, activities.calls)
}

func TestServiceImpl_GetTimeline(t *testing.T) {
	service, activities, _, _ := setupService()
	activities.activities = []activity.Activity{
		{ID: 1, UserID: 1, CategoryID: 1, Date: "2025-03-10", StartHour: 6, EndHour: 12},
	}

	occupancy, err := service.GetTimeline(context.Background(), 1, "2025-03-10")

	require.NoError(t, err)
	assert.Nil(t, occupancy[5])
	require.NotNil(t, occupancy[6])
	assert.Equal(t, 1, occupancy[6].ID)
	assert.Nil(t, occupancy[12])
}
