package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNicknameTaken = errors.New("nickname is already taken")
)

type User struct {
	Id          int
	Uid         string
	Nickname    string
	DisplayName string
}
