package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, activity Activity) (int, error)
	// FindByDate returns all activities of a user on a date, with the
	// category joined, ordered by id. Consumers rely on that order: the
	// timeline resolver gives the first-stored activity priority on
	// overlapping hours.
	FindByDate(ctx context.Context, userId int, date string) ([]Activity, error)
	GetById(ctx context.Context, activityId int) (Activity, error)
	Update(ctx context.Context, activity Activity) (bool, error)
	Delete(ctx context.Context, activityId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, activity Activity) (int, error) {
	query := `INSERT INTO activity (user_id, category_id, date, start_hour, end_hour, title, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		activity.UserID,
		activity.CategoryID,
		activity.Date,
		activity.StartHour,
		activity.EndHour,
		activity.Title,
		activity.Notes,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store activity: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) FindByDate(ctx context.Context, userId int, date string) ([]Activity, error) {
	query := `SELECT a.id, a.user_id, a.category_id, a.date, a.start_hour, a.end_hour, a.title, a.notes,
					 c.id, c.user_id, c.name, c.color, c.description
				FROM activity a
				JOIN category c ON a.category_id = c.id
				WHERE a.user_id = $1 AND a.date = $2
				ORDER BY a.id`

	rows, err := r.db.Query(ctx, query, userId, date)
	if err != nil {
		err := fmt.Errorf("could not query activities: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return activities, nil
}

func (r *RepositoryImpl) GetById(ctx context.Context, activityId int) (Activity, error) {
	query := `SELECT a.id, a.user_id, a.category_id, a.date, a.start_hour, a.end_hour, a.title, a.notes,
					 c.id, c.user_id, c.name, c.color, c.description
				FROM activity a
				JOIN category c ON a.category_id = c.id
				WHERE a.id = $1`

	rows, err := r.db.Query(ctx, query, activityId)
	if err != nil {
		err := fmt.Errorf("could not query activity: %w", err)
		log.Error(err)
		return Activity{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			log.Error(err)
			return Activity{}, err
		}
		return Activity{}, ErrActivityNotFound
	}
	activity, err := scanActivity(rows)
	if err != nil {
		log.Error(err)
		return Activity{}, err
	}
	return activity, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, activity Activity) (bool, error) {
	query := `UPDATE activity SET category_id = $1, date = $2, start_hour = $3, end_hour = $4, title = $5, notes = $6
				WHERE id = $7`

	result, err := r.db.Exec(ctx, query,
		activity.CategoryID,
		activity.Date,
		activity.StartHour,
		activity.EndHour,
		activity.Title,
		activity.Notes,
		activity.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update activity: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, activityId int) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM activity WHERE id = $1`, activityId)
	if err != nil {
		err := fmt.Errorf("could not delete activity: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func scanActivity(rows pgx.Rows) (Activity, error) {
	var activity Activity
	var notes, description sql.NullString
	if err := rows.Scan(
		&activity.ID,
		&activity.UserID,
		&activity.CategoryID,
		&activity.Date,
		&activity.StartHour,
		&activity.EndHour,
		&activity.Title,
		&notes,
		&activity.Category.ID,
		&activity.Category.UserID,
		&activity.Category.Name,
		&activity.Category.Color,
		&description,
	); err != nil {
		return Activity{}, fmt.Errorf("could not scan activity: %w", err)
	}
	if notes.Valid {
		activity.Notes = &notes.String
	}
	if description.Valid {
		activity.Category.Description = &description.String
	}
	return activity, nil
}
