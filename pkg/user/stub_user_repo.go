package user

import "context"

// StubUserRepo is an in-memory Repo for tests.
type StubUserRepo struct {
	nextId int
	data   map[int]User
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{data: map[int]User{}}
}

func (s *StubUserRepo) CreateUser(ctx context.Context, user User) (int, error) {
	s.nextId++
	user.Id = s.nextId
	s.data[user.Id] = user
	return user.Id, nil
}

func (s *StubUserRepo) GetUser(ctx context.Context, id int) (User, error) {
	user, ok := s.data[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *StubUserRepo) GetUserByNickname(ctx context.Context, nickname string) (User, error) {
	for _, user := range s.data {
		if user.Nickname == nickname {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}
