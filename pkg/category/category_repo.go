package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type CategoryRepo interface {
	// Store stores a new Category to the database and returns its id.
	Store(ctx context.Context, category Category) (int, error)
	GetAll(ctx context.Context, userId int) ([]Category, error)
	GetById(ctx context.Context, categoryId int) (Category, error)
	Update(ctx context.Context, category Category) (bool, error)
	Delete(ctx context.Context, categoryId int) (bool, error)
}

type CategoryRepoImpl struct {
	db *pgxpool.Pool
}

func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepoImpl {
	return &CategoryRepoImpl{db: db}
}

func (r *CategoryRepoImpl) Store(ctx context.Context, category Category) (int, error) {
	query := `INSERT INTO category (user_id, name, color, description) VALUES ($1, $2, $3, $4) RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		category.UserID,
		category.Name,
		category.Color,
		category.Description,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store category: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *CategoryRepoImpl) GetAll(ctx context.Context, userId int) ([]Category, error) {
	query := `SELECT id, user_id, name, color, description FROM category WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		var description sql.NullString
		if err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Color,
			&description,
		); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		if description.Valid {
			category.Description = &description.String
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepoImpl) GetById(ctx context.Context, categoryId int) (Category, error) {
	query := `SELECT id, user_id, name, color, description FROM category WHERE id = $1`

	var category Category
	var description sql.NullString
	err := r.db.QueryRow(ctx, query, categoryId).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Color,
		&description,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, ErrCategoryNotFound
	} else if err != nil {
		err := fmt.Errorf("could not get category: %w", err)
		log.Error(err)
		return Category{}, err
	}
	if description.Valid {
		category.Description = &description.String
	}
	return category, nil
}

func (r *CategoryRepoImpl) Update(ctx context.Context, category Category) (bool, error) {
	query := `UPDATE category SET name = $1, color = $2, description = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, query,
		category.Name,
		category.Color,
		category.Description,
		category.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update category: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

// Delete removes a category unless any activity still references it.
// The same rule is enforced by the foreign key on activity.category_id; the
// explicit count keeps the error condition distinguishable from other
// constraint failures.
func (r *CategoryRepoImpl) Delete(ctx context.Context, categoryId int) (bool, error) {
	var referencing int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activity WHERE category_id = $1`, categoryId).Scan(&referencing)
	if err != nil {
		err := fmt.Errorf("could not count referencing activities: %w", err)
		log.Error(err)
		return false, err
	}
	if referencing > 0 {
		log.Debugf("category %d is referenced by %d activities, refusing to delete", categoryId, referencing)
		return false, ErrCategoryInUse
	}

	result, err := r.db.Exec(ctx, `DELETE FROM category WHERE id = $1`, categoryId)
	if err != nil {
		err := fmt.Errorf("could not delete category: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
