package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create checks for the username and inserts inside one transaction, so a
// rejected duplicate never touches the table.
func (r *SQLiteRepository) Create(ctx context.Context, user *User) (*User, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, user.UserName).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check username[%s]: %w", user.UserName, err)
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (username, name, surname, id_number, phone, password, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, user.UserName, user.Name, user.Surname, user.IDNumber, user.Phone, user.Password,
			user.CreatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to insert user[%s]: %w", user.UserName, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stored := *user
	return &stored, nil
}

func (r *SQLiteRepository) GetUserByLogin(ctx context.Context, userName string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT username, name, surname, id_number, phone, password, created_at
		FROM users WHERE username = ?
	`, userName)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get user[%s]: %w", userName, err)
	}
	return u, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT username, name, surname, id_number, phone, password, created_at
		FROM users ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	result := make([]*User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*User, error) {
	var (
		u         User
		createdAt string
	)
	if err := s.Scan(&u.UserName, &u.Name, &u.Surname, &u.IDNumber, &u.Phone, &u.Password, &createdAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	u.CreatedAt = t
	return &u, nil
}
