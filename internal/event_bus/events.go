package event_bus

const (
	// ActivityChangedEvent is published after an activity is created, updated,
	// or deleted.
	ActivityChangedEvent EventType = "activity.changed"
	// CategoryChangedEvent is published after a category is created, updated,
	// or deleted.
	CategoryChangedEvent EventType = "category.changed"
)

// ActivityChanged identifies the (user, date) whose activity set changed.
type ActivityChanged struct {
	UserID int
	Date   string
}

// CategoryChanged identifies the user whose category list changed.
type CategoryChanged struct {
	UserID int
}
