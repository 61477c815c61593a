package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/daywheel/daywheel/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	List(ctx context.Context, userId int, date string) ([]Activity, error)
	Create(ctx context.Context, activity Activity) (Activity, error)
	Update(ctx context.Context, activity Activity) (Activity, error)
	Delete(ctx context.Context, activityId int) error
}

type ServiceImpl struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) List(ctx context.Context, userId int, date string) ([]Activity, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.repo.FindByDate(ctx, userId, date)
}

func (s *ServiceImpl) Create(ctx context.Context, activity Activity) (Activity, error) {
	if err := validate(activity); err != nil {
		return Activity{}, err
	}

	id, err := s.repo.Store(ctx, activity)
	if err != nil {
		return Activity{}, err
	}
	activity.ID = id

	s.publishChanged(ctx, activity.UserID, activity.Date)
	return activity, nil
}

func (s *ServiceImpl) Update(ctx context.Context, activity Activity) (Activity, error) {
	if err := validate(activity); err != nil {
		return Activity{}, err
	}

	existing, err := s.repo.GetById(ctx, activity.ID)
	if err != nil {
		return Activity{}, err
	}
	// ownership never changes on update
	activity.UserID = existing.UserID

	updated, err := s.repo.Update(ctx, activity)
	if err != nil {
		return Activity{}, err
	}
	if !updated {
		return Activity{}, ErrActivityNotFound
	}

	s.publishChanged(ctx, activity.UserID, activity.Date)
	if existing.Date != activity.Date {
		// the activity moved between days; both summaries are stale
		s.publishChanged(ctx, activity.UserID, existing.Date)
	}
	return activity, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, activityId int) error {
	existing, err := s.repo.GetById(ctx, activityId)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, activityId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrActivityNotFound
	}

	s.publishChanged(ctx, existing.UserID, existing.Date)
	return nil
}

// validate enforces the edit-form interval contract: whole hours within one
// day and a start strictly before the end. Midnight-crossing intervals are
// rejected here; the summary aggregation still tolerates them in case data
// arrives through another path.
func validate(activity Activity) error {
	if activity.StartHour < 0 || activity.StartHour > 23 {
		return fmt.Errorf("%w: start hour %d out of range 0..23", ErrInvalidInterval, activity.StartHour)
	}
	if activity.EndHour < 1 || activity.EndHour > 24 {
		return fmt.Errorf("%w: end hour %d out of range 1..24", ErrInvalidInterval, activity.EndHour)
	}
	if activity.StartHour >= activity.EndHour {
		return fmt.Errorf("%w: start hour %d must be before end hour %d", ErrInvalidInterval, activity.StartHour, activity.EndHour)
	}
	return validateDate(activity.Date)
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, date)
	}
	return nil
}

func (s *ServiceImpl) publishChanged(ctx context.Context, userId int, date string) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ActivityChangedEvent, event_bus.ActivityChanged{
		UserID: userId,
		Date:   date,
	}))
	if err != nil {
		log.Warnf("failed to publish activity change for user %d on %s: %v", userId, date, err)
	}
}
