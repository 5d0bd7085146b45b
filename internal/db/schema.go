package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"strings"
)

//go:embed schema.sql
var Schema string

var ErrAlreadySetup = errors.New("results database already exists")

// Setup creates the tables and indexes, it returns ErrAlreadySetup if the
// students table is already present.
func Setup(ctx context.Context, database *sql.DB) error {
	var count int
	err := database.QueryRowContext(
		ctx,
		"select count(*) from sqlite_master where type = 'table' and name = 'students'",
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadySetup
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range strings.Split(Schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err = tx.ExecContext(ctx, stmt)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// IsUniqueViolation reports whether err came from a primary key or unique
// index conflict.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
