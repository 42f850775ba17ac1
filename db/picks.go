package db

import (
	"context"
	"fmt"

	"github.com/The-Yester/Pickem/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetPicks(ctx context.Context, username string) ([]model.Pick, error) {
	const query = `SELECT game_id, week, picked_team, created
					FROM picks WHERE username=@username
					ORDER BY week, game_id`

	args := pgx.NamedArgs{
		"username": username,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying picks for %s: %w", username, err)
	}

	results := make([]model.Pick, 0, 16)
	for rows.Next() {
		var p model.Pick
		var created pgtype.Timestamptz
		if err := rows.Scan(&p.GameUniqueID, &p.Week, &p.PickedTeamAbbr, &created); err != nil {
			return nil, fmt.Errorf("error scanning pick: %w", err)
		}
		p.Created = created.Time
		results = append(results, p)
	}

	return results, nil
}

func (db *postgresDB) ReplaceWeekPicks(ctx context.Context, username string, week int, picks []model.Pick) error {
	const deleteWeek = `DELETE FROM picks WHERE username=@username AND week=@week`

	const insert = `INSERT INTO picks (
		username,
		game_id,
		week,
		picked_team,
		created
	) VALUES (
		@username,
		@gameID,
		@week,
		@pickedTeam,
		@created
	)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"username": username,
		"week":     week,
	}
	if _, err := tx.Exec(ctx, deleteWeek, args); err != nil {
		return fmt.Errorf("error deleting week %d picks for %s: %w", week, username, err)
	}

	for _, p := range picks {
		args := pgx.NamedArgs{
			"username":   username,
			"gameID":     p.GameUniqueID,
			"week":       week,
			"pickedTeam": p.PickedTeamAbbr,
			"created": pgtype.Timestamptz{
				Time:             db.clock.Now().UTC(),
				InfinityModifier: pgtype.Finite,
				Valid:            true,
			},
		}
		if _, err := tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting pick for game %s: %w", p.GameUniqueID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting picks transaction: %w", err)
	}

	return nil
}
