package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/The-Yester/Pickem/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound error = errors.New("user not found")
	ErrUserExists   error = errors.New("user already exists")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) GetUser(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT username, name, email, pass_hash, created
					FROM users WHERE LOWER(username)=LOWER(@username)`

	args := pgx.NamedArgs{
		"username": username,
	}
	row := db.pool.QueryRow(ctx, query, args)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user %s: %w", username, err)
	}
	return u, nil
}

func (db *postgresDB) SaveUser(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (
		username,
		name,
		email,
		pass_hash,
		created
	) VALUES (
		@username,
		@name,
		@email,
		@passHash,
		@created
	)`

	args := pgx.NamedArgs{
		"username": u.Username,
		"name":     u.Name,
		"email":    u.Email,
		"passHash": u.PasswordHash,
		"created": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("error inserting user(%s): %w", u.Username, err)
	}
	return nil
}

func (db *postgresDB) ListUsers(ctx context.Context) ([]model.User, error) {
	const query = `SELECT username, name, email, pass_hash, created
					FROM users ORDER BY username`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	results := make([]model.User, 0, 8)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *u)
	}

	return results, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var result model.User
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.Username,
		&result.Name,
		&result.Email,
		&result.PasswordHash,
		&created)

	if err != nil {
		return nil, err
	}

	result.Created = created.Time
	return &result, nil
}

// isUniqueViolation reports whether the error is a Postgres
// unique-constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
