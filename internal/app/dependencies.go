package app

import (
	"github.com/daywheel/daywheel/internal/config"
	"github.com/daywheel/daywheel/internal/event_bus"
	"github.com/daywheel/daywheel/internal/utils"
	"github.com/daywheel/daywheel/pkg/activity"
	"github.com/daywheel/daywheel/pkg/category"
	"github.com/daywheel/daywheel/pkg/summary"
	"github.com/daywheel/daywheel/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	CategoryRepo    category.CategoryRepo
	CategoryService *category.CategoryServiceImpl
	CategoryHandler *category.CategoryHandler

	UserService user.Service
	UserHandler *user.Handler

	ActivityRepo    activity.Repository
	ActivityService *activity.ServiceImpl
	ActivityHandler *activity.Handler

	SummaryService *summary.ServiceImpl
	SummaryHandler *summary.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.CategoryRepo = category.NewCategoryRepo(db)
	deps.CategoryService = category.NewCategoryService(deps.CategoryRepo, deps.Bus)
	deps.CategoryHandler = category.NewCategoryHandler(deps.CategoryService)

	deps.UserService = user.NewUserService(user.NewUserRepo(db), deps.CategoryService)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.ActivityRepo = activity.NewRepository(db)
	deps.ActivityService = activity.NewService(deps.ActivityRepo, deps.Bus)
	deps.ActivityHandler = activity.NewHandler(deps.ActivityService, deps.Clock)

	deps.SummaryService = summary.NewService(deps.ActivityService, deps.CategoryService, deps.Bus)
	deps.SummaryHandler = summary.NewHandler(deps.SummaryService, deps.Clock)

	return deps
}
