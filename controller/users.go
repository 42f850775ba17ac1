package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/The-Yester/Pickem/db"
	"github.com/The-Yester/Pickem/model"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

const minPasswordLength = 6

func (c *controller) RegisterUser(ctx context.Context, username, name, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, errors.New("username must be provided")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%q is not a valid email address", email)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u := &model.User{
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := c.db.SaveUser(ctx, u); err != nil {
		return nil, err
	}

	// Read back so the caller sees the stored timestamps.
	return c.db.GetUser(ctx, username)
}

func (c *controller) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := c.db.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (c *controller) GetUser(ctx context.Context, username string) (*model.User, error) {
	return c.db.GetUser(ctx, username)
}
