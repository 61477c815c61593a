package category

import (
	"context"

	"github.com/daywheel/daywheel/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

type CategoryService interface {
	GetAll(ctx context.Context, userId int) ([]Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, categoryId int) error
}

type CategoryServiceImpl struct {
	repo CategoryRepo
	bus  *event_bus.EventBus
}

func NewCategoryService(repo CategoryRepo, bus *event_bus.EventBus) *CategoryServiceImpl {
	return &CategoryServiceImpl{repo: repo, bus: bus}
}

func (s *CategoryServiceImpl) GetAll(ctx context.Context, userId int) ([]Category, error) {
	return s.repo.GetAll(ctx, userId)
}

func (s *CategoryServiceImpl) Create(ctx context.Context, category Category) (Category, error) {
	id, err := s.repo.Store(ctx, category)
	if err != nil {
		return Category{}, err
	}
	category.ID = id
	s.publishChanged(ctx, category.UserID)
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, category Category) (Category, error) {
	existing, err := s.repo.GetById(ctx, category.ID)
	if err != nil {
		return Category{}, err
	}
	// ownership never changes on update
	category.UserID = existing.UserID

	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return Category{}, err
	}
	if !updated {
		return Category{}, ErrCategoryNotFound
	}
	s.publishChanged(ctx, category.UserID)
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, categoryId int) error {
	existing, err := s.repo.GetById(ctx, categoryId)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, categoryId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	s.publishChanged(ctx, existing.UserID)
	return nil
}

func (s *CategoryServiceImpl) publishChanged(ctx context.Context, userId int) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.CategoryChangedEvent, event_bus.CategoryChanged{
		UserID: userId,
	}))
	if err != nil {
		log.Warnf("failed to publish category change for user %d: %v", userId, err)
	}
}
