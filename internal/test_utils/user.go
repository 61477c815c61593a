package test_utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsertTestUser creates a user row directly and returns its id, so
// repository tests can satisfy the foreign keys on category and activity.
func InsertTestUser(t *testing.T, db *pgxpool.Pool, nickname string) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (uid, nickname, display_name) VALUES ($1, $2, $3) RETURNING id`,
		uuid.NewString(), nickname, "Test User",
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert test user: %v", err)
	}
	return id
}
