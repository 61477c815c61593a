package activity

import "context"

// StubRepository is an in-memory Repository for tests. FindByDate preserves
// insertion order the same way the SQL implementation orders by id.
type StubRepository struct {
	nextId int
	data   []Activity
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Store(ctx context.Context, activity Activity) (int, error) {
	s.nextId++
	activity.ID = s.nextId
	s.data = append(s.data, activity)
	return activity.ID, nil
}

func (s *StubRepository) FindByDate(ctx context.Context, userId int, date string) ([]Activity, error) {
	var activities []Activity
	for _, activity := range s.data {
		if activity.UserID == userId && activity.Date == date {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

func (s *StubRepository) GetById(ctx context.Context, activityId int) (Activity, error) {
	for _, activity := range s.data {
		if activity.ID == activityId {
			return activity, nil
		}
	}
	return Activity{}, ErrActivityNotFound
}

func (s *StubRepository) Update(ctx context.Context, activity Activity) (bool, error) {
	for i, existing := range s.data {
		if existing.ID == activity.ID {
			activity.UserID = existing.UserID
			s.data[i] = activity
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Delete(ctx context.Context, activityId int) (bool, error) {
	for i, existing := range s.data {
		if existing.ID == activityId {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
