package mockdb

import (
	"context"

	"github.com/The-Yester/Pickem/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetUser(ctx context.Context, username string) (*model.User, error) {
	args := db.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}

	return u, args.Error(1)
}

func (db *DB) SaveUser(ctx context.Context, u *model.User) error {
	args := db.Called(ctx, u)
	return args.Error(0)
}

func (db *DB) ListUsers(ctx context.Context) ([]model.User, error) {
	args := db.Called(ctx)

	var users []model.User
	if args.Get(0) != nil {
		users = args.Get(0).([]model.User)
	}
	return users, args.Error(1)
}

func (db *DB) GetPicks(ctx context.Context, username string) ([]model.Pick, error) {
	args := db.Called(ctx, username)

	var picks []model.Pick
	if args.Get(0) != nil {
		picks = args.Get(0).([]model.Pick)
	}
	return picks, args.Error(1)
}

func (db *DB) ReplaceWeekPicks(ctx context.Context, username string, week int, picks []model.Pick) error {
	args := db.Called(ctx, username, week, picks)
	return args.Error(0)
}
