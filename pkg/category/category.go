package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse is returned when a delete is attempted while activities
	// still reference the category. References guard deletion; they are never
	// cascaded.
	ErrCategoryInUse = errors.New("category is referenced by activities")
)

type Category struct {
	ID          int
	UserID      int
	Name        string
	Color       string
	Description *string
}
