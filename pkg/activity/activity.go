package activity

import (
	"errors"

	"github.com/daywheel/daywheel/pkg/category"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidInterval rejects out-of-contract intervals before they reach
	// the timeline and summary computations.
	ErrInvalidInterval = errors.New("invalid activity interval")
	ErrInvalidDate     = errors.New("invalid activity date")
)

// Activity is one block of time on a user's day: [StartHour, EndHour) on
// Date, tagged with a category. Hours are whole hours of the day; StartHour
// is 0..23 and EndHour is 1..24 with StartHour < EndHour. Overlapping
// activities on the same day are allowed.
type Activity struct {
	ID         int
	UserID     int
	CategoryID int
	Date       string // YYYY-MM-DD
	StartHour  int
	EndHour    int
	Title      string
	Notes      *string
	// Category is populated on reads that join the category table.
	Category category.Category
}
