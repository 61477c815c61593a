package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByNickname(ctx context.Context, nickname string) (User, error)
}

type UserRepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

func (u *UserRepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO users (uid, nickname, display_name) VALUES ($1, $2, $3) RETURNING id`
	var id int
	err := u.db.QueryRow(ctx, query,
		user.Uid,
		user.Nickname,
		user.DisplayName,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	return id, nil
}

func (u *UserRepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := `SELECT id, uid, nickname, display_name FROM users WHERE id = $1`
	var user User
	err := u.db.QueryRow(ctx, query, id).
		Scan(
			&user.Id,
			&user.Uid,
			&user.Nickname,
			&user.DisplayName,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (u *UserRepoImpl) GetUserByNickname(ctx context.Context, nickname string) (User, error) {
	query := `SELECT id, uid, nickname, display_name FROM users WHERE nickname = $1`
	var user User
	err := u.db.QueryRow(ctx, query, nickname).
		Scan(
			&user.Id,
			&user.Uid,
			&user.Nickname,
			&user.DisplayName,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Debugf("user with nickname %s not found", nickname)
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user by nickname: %v", err)
		return User{}, err
	}
	return user, nil
}
