package db

import (
	"context"

	"github.com/The-Yester/Pickem/model"
)

type DB interface {
	// GetUser returns ErrUserNotFound when no user has the username.
	GetUser(ctx context.Context, username string) (*model.User, error)
	// SaveUser inserts a new user. Usernames and emails are unique,
	// case-insensitively; a duplicate returns ErrUserExists.
	SaveUser(ctx context.Context, u *model.User) error
	ListUsers(ctx context.Context) ([]model.User, error)

	// GetPicks returns all of a user's stored picks, ordered by week
	// then game id.
	GetPicks(ctx context.Context, username string) ([]model.Pick, error)
	// ReplaceWeekPicks deletes every stored pick the user has for the
	// week and inserts the given set, all in one transaction.
	ReplaceWeekPicks(ctx context.Context, username string, week int, picks []model.Pick) error
}
