package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/daywheel/daywheel/pkg/category"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// defaultCategories are seeded for every new user so the timeline is usable
// right after registration.
var defaultCategories = []struct {
	name        string
	color       string
	description string
}{
	{"Work", "#4A90E2", "Work-related activities"},
	{"Sleep", "#9B59B6", "Sleep time"},
	{"Meals", "#FF9500", "Meals and breaks"},
	{"Exercise", "#34C759", "Sports and exercise"},
	{"Other", "#95A5A6", "Everything else"},
}

type Service interface {
	CreateUser(ctx context.Context, user User) (User, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByNickname(ctx context.Context, nickname string) (User, error)
}

// CategoryCreator is the part of the category service needed to seed the
// default categories on registration.
type CategoryCreator interface {
	Create(ctx context.Context, category category.Category) (category.Category, error)
}

type UserServiceImpl struct {
	repo       Repo
	categories CategoryCreator
}

func NewUserService(repo Repo, categories CategoryCreator) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, categories: categories}
}

func (u *UserServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	_, err := u.repo.GetUserByNickname(ctx, user.Nickname)
	if err == nil {
		return User{}, ErrNicknameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return User{}, fmt.Errorf("failed to check nickname availability: %w", err)
	}

	user.Uid = uuid.NewString()
	userId, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.Id = userId

	for _, c := range defaultCategories {
		description := c.description
		_, err := u.categories.Create(ctx, category.Category{
			UserID:      userId,
			Name:        c.name,
			Color:       c.color,
			Description: &description,
		})
		if err != nil {
			// the user exists at this point; a missing default category is not fatal
			log.Warnf("failed to create default category %q for user %d: %v", c.name, userId, err)
		}
	}

	return user, nil
}

func (u *UserServiceImpl) GetUser(ctx context.Context, id int) (User, error) {
	return u.repo.GetUser(ctx, id)
}

func (u *UserServiceImpl) GetUserByNickname(ctx context.Context, nickname string) (User, error) {
	return u.repo.GetUserByNickname(ctx, nickname)
}
