package summary

import (
	"context"

	"github.com/daywheel/daywheel/internal/event_bus"
	"github.com/daywheel/daywheel/pkg/activity"
	"github.com/daywheel/daywheel/pkg/category"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetSummary returns one CategorySummary per category of the user, in
	// category order, aggregated over the activities of the given date.
	GetSummary(ctx context.Context, userId int, date string) ([]CategorySummary, error)
	// GetTimeline resolves which activity occupies each hour of the date.
	GetTimeline(ctx context.Context, userId int, date string) (Occupancy, error)
}

// ActivityProvider is the part of the activity service the summary needs.
type ActivityProvider interface {
	List(ctx context.Context, userId int, date string) ([]activity.Activity, error)
}

// CategoryProvider is the part of the category service the summary needs.
type CategoryProvider interface {
	GetAll(ctx context.Context, userId int) ([]category.Category, error)
}

type ServiceImpl struct {
	activities ActivityProvider
	categories CategoryProvider
	cache      *summaryCache
}

// NewService builds the summary service and subscribes it to activity and
// category change events for cache invalidation.
func NewService(activities ActivityProvider, categories CategoryProvider, bus *event_bus.EventBus) *ServiceImpl {
	s := &ServiceImpl{
		activities: activities,
		categories: categories,
		cache:      newSummaryCache(),
	}

	event_bus.SubscribeTyped(bus, event_bus.ActivityChangedEvent,
		func(e event_bus.EventT[event_bus.ActivityChanged]) error {
			log.Tracef("invalidating summary cache for user %d on %s", e.Data.UserID, e.Data.Date)
			s.cache.invalidate(e.Data.UserID, e.Data.Date)
			return nil
		})
	event_bus.SubscribeTyped(bus, event_bus.CategoryChangedEvent,
		func(e event_bus.EventT[event_bus.CategoryChanged]) error {
			log.Tracef("invalidating summary cache for user %d", e.Data.UserID)
			s.cache.invalidateUser(e.Data.UserID)
			return nil
		})

	return s
}

func (s *ServiceImpl) GetSummary(ctx context.Context, userId int, date string) ([]CategorySummary, error) {
	if cached, ok := s.cache.get(userId, date); ok {
		return cached, nil
	}

	activities, err := s.activities.List(ctx, userId, date)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}

	summaries := ComputeSummary(activities, categories)
	s.cache.put(userId, date, summaries)
	return summaries, nil
}

func (s *ServiceImpl) GetTimeline(ctx context.Context, userId int, date string) (Occupancy, error) {
	activities, err := s.activities.List(ctx, userId, date)
	if err != nil {
		return Occupancy{}, err
	}
	return ResolveHourOccupancy(activities), nil
}
