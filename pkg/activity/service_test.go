package activity

import (
	"context"
	"testing"

	"github.com/daywheel/daywheel/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest() (*ServiceImpl, *StubRepository, *[]event_bus.ActivityChanged) {
	repo := NewStubRepository()
	bus := event_bus.NewEventBus()

	var published []event_bus.ActivityChanged
	event_bus.SubscribeTyped(bus, event_bus.ActivityChangedEvent,
		func(e event_bus.EventT[event_bus.ActivityChanged]) error {
			published = append(published, e.Data)
			return nil
		})

	return NewService(repo, bus), repo, &published
}

func validActivity() Activity {
	return Activity{
		UserID:     1,
		CategoryID: 2,
		Date:       "2025-03-10",
		StartHour:  9,
		EndHour:    17,
		Title:      "Office",
	}
}

func TestServiceImpl_CreatePublishesChange(t *testing.T) {
	service, _, published := setupServiceTest()

	created, err := service.Create(context.Background(), validActivity())

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	require.Len(t, *published, 1)
	assert.Equal(t, event_bus.ActivityChanged{UserID: 1, Date: "2025-03-10"}, (*published)[0])
}

func TestServiceImpl_CreateRejectsInvalidIntervals(t *testing.T) {
	service, _, published := setupServiceTest()

	tests := []struct {
		name      string
		startHour int
		endHour   int
	}{
		{"negative start", -1, 8},
		{"start beyond 23", 24, 24},
		{"zero end", 5, 0},
		{"end beyond 24", 5, 25},
		{"start equals end", 8, 8},
		{"start after end (wraparound rejected at input)", 22, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validActivity()
			a.StartHour = tt.startHour
			a.EndHour = tt.endHour

			_, err := service.Create(context.Background(), a)

			assert.ErrorIs(t, err, ErrInvalidInterval)
		})
	}
	assert.Empty(t, *published)
}

func TestServiceImpl_CreateRejectsInvalidDate(t *testing.T) {
	service, _, _ := setupServiceTest()

	a := validActivity()
	a.Date = "10/03/2025"

	_, err := service.Create(context.Background(), a)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestServiceImpl_UpdateAcrossDatesPublishesBothDates(t *testing.T) {
	service, _, published := setupServiceTest()
	created, err := service.Create(context.Background(), validActivity())
	require.NoError(t, err)

	moved := created
	moved.Date = "2025-03-11"
	_, err = service.Update(context.Background(), moved)
	require.NoError(t, err)

	// create + new date + old date
	require.Len(t, *published, 3)
	assert.Equal(t, "2025-03-11", (*published)[1].Date)
	assert.Equal(t, "2025-03-10", (*published)[2].Date)
}

func TestServiceImpl_UpdateKeepsOwner(t *testing.T) {
	service, repo, _ := setupServiceTest()
	created, err := service.Create(context.Background(), validActivity())
	require.NoError(t, err)

	hijacked := created
	hijacked.UserID = 99
	updated, err := service.Update(context.Background(), hijacked)

	require.NoError(t, err)
	assert.Equal(t, 1, updated.UserID)
	stored, err := repo.GetById(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UserID)
}

func TestServiceImpl_UpdateUnknownActivity(t *testing.T) {
	service, _, _ := setupServiceTest()

	a := validActivity()
	a.ID = 42
	_, err := service.Update(context.Background(), a)

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestServiceImpl_DeletePublishesChangeForStoredDate(t *testing.T) {
	service, _, published := setupServiceTest()
	created, err := service.Create(context.Background(), validActivity())
	require.NoError(t, err)

	err = service.Delete(context.Background(), created.ID)

	require.NoError(t, err)
	require.Len(t, *published, 2)
	assert.Equal(t, event_bus.ActivityChanged{UserID: 1, Date: "2025-03-10"}, (*published)[1])
}

func TestServiceImpl_DeleteUnknownActivity(t *testing.T) {
	service, _, _ := setupServiceTest()

	err := service.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestServiceImpl_ListValidatesDate(t *testing.T) {
	service, _, _ := setupServiceTest()

	_, err := service.List(context.Background(), 1, "not-a-date")

	assert.ErrorIs(t, err, ErrInvalidDate)
}
