package testutils

import (
	"context"
	"log"
	"time"

	"github.com/The-Yester/Pickem/containers"
	"github.com/The-Yester/Pickem/db"
	"github.com/The-Yester/Pickem/model"
	"github.com/itbasis/go-clock"
	"golang.org/x/crypto/bcrypt"
)

// Password for every seeded test user.
const TestPassword = "hunter66"

var (
	Alice = &model.User{
		Username: "alice",
		Name:     "Alice Almeida",
		Email:    "alice@example.com",
	}
	Bob = &model.User{
		Username: "bob",
		Name:     "Bob Banks",
		Email:    "bob@example.com",
	}
	Carol = &model.User{
		Username: "carol",
		Name:     "", // DisplayName falls back to the username
		Email:    "carol@example.com",
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestUsers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestUsers(db db.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}

	users := []*model.User{
		Alice,
		Bob,
		Carol,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, u := range users {
		user := *u
		user.PasswordHash = string(hash)

		if err := db.SaveUser(ctx, &user); err != nil {
			return err
		}
	}

	return nil
}
