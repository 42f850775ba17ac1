package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/The-Yester/Pickem/db"
	"github.com/The-Yester/Pickem/db/mockdb"
	"github.com/The-Yester/Pickem/model"
	"github.com/The-Yester/Pickem/sheets/mocksheets"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUser(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := newTestController(t, mockDB, &mocksheets.Client{})

	stored := &model.User{Username: "alice", Name: "Alice Almeida", Email: "alice@example.com"}

	mockDB.On("SaveUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		if u.Username != "alice" || u.Name != "Alice Almeida" || u.Email != "alice@example.com" {
			return false
		}
		// The password is stored as a bcrypt hash, never in the clear.
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret99")) == nil
	})).Return(nil)
	mockDB.On("GetUser", mock.Anything, "alice").Return(stored, nil)

	u, err := ctrl.RegisterUser(context.Background(), " alice ", " Alice Almeida ", " alice@example.com ", "secret99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != stored {
		t.Errorf("expected the stored user to be returned, got: %+v", u)
	}
	mockDB.AssertExpectations(t)
}

func TestRegisterUser_validation(t *testing.T) {
	tests := map[string]struct {
		username string
		email    string
		password string
	}{
		"empty username":      {username: "", email: "a@example.com", password: "secret99"},
		"whitespace username": {username: "   ", email: "a@example.com", password: "secret99"},
		"empty email":         {username: "alice", email: "", password: "secret99"},
		"email without @":     {username: "alice", email: "not-an-email", password: "secret99"},
		"short password":      {username: "alice", email: "a@example.com", password: "12345"},
	}

	for name, tc := range tests {
		mockDB := &mockdb.DB{}
		ctrl := newTestController(t, mockDB, &mocksheets.Client{})

		if _, err := ctrl.RegisterUser(context.Background(), tc.username, "", tc.email, tc.password); err == nil {
			t.Errorf("%s - expected an error, got nil", name)
		}
		mockDB.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	}
}

func TestRegisterUser_duplicate(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := newTestController(t, mockDB, &mocksheets.Client{})

	mockDB.On("SaveUser", mock.Anything, mock.Anything).Return(db.ErrUserExists)

	if _, err := ctrl.RegisterUser(context.Background(), "alice", "", "alice@example.com", "secret99"); !errors.Is(err, db.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret99"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing test password: %v", err)
	}
	alice := &model.User{Username: "alice", PasswordHash: string(hash)}

	mockDB := &mockdb.DB{}
	ctrl := newTestController(t, mockDB, &mocksheets.Client{})

	mockDB.On("GetUser", mock.Anything, "alice").Return(alice, nil)
	mockDB.On("GetUser", mock.Anything, "ghost").Return(nil, db.ErrUserNotFound)

	u, err := ctrl.Authenticate(context.Background(), "alice", "secret99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Username != "alice" {
		t.Errorf("expected alice, got: %s", u.Username)
	}

	// A wrong password and an unknown user look the same to the caller.
	if _, err := ctrl.Authenticate(context.Background(), "alice", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, err := ctrl.Authenticate(context.Background(), "ghost", "secret99"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}
