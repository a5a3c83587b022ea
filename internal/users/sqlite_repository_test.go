package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  username   TEXT PRIMARY KEY,
  name       TEXT NOT NULL,
  surname    TEXT NOT NULL,
  id_number  TEXT NOT NULL,
  phone      TEXT NOT NULL,
  password   TEXT NOT NULL,
  created_at TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func sampleUser(name string) *User {
	return &User{
		Name:      "Alice",
		Surname:   "Smith",
		IDNumber:  "9001015009087",
		Phone:     "0821234567",
		UserName:  name,
		Password:  "Abcde1!23",
		CreatedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
	}
}

func TestSQLiteRepository_CreateThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, sampleUser("alice"))
	require.NoError(t, err)

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, sampleUser("alice"), got)
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetUserByLogin(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_DuplicateRejectedWithoutChange(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, sampleUser("alice"))
	require.NoError(t, err)

	other := sampleUser("alice")
	other.Name = "Mallory"
	_, err = r.Create(ctx, other)
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLiteRepository_List(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, name := range []string{"bob", "alice"} {
		_, err := r.Create(ctx, sampleUser(name))
		require.NoError(t, err)
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].UserName)
	assert.Equal(t, "bob", list[1].UserName)
}

func TestSQLiteRepository_ClosedDBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.GetUserByLogin(ctx, "alice")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to get user[alice]")

	_, err = r.List(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list users")

	_, err = r.Create(ctx, sampleUser("alice"))
	require.Error(t, err)
}

func TestSQLiteRepository_InsertErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	r := NewSQLiteRepository(db)
	_, err = r.Create(context.Background(), sampleUser("alice"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to insert user[alice]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_ExistsCheckError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	r := NewSQLiteRepository(db)
	_, err = r.Create(context.Background(), sampleUser("alice"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to check username[alice]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_BadCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT username`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "surname", "id_number", "phone", "password", "created_at"}).
			AddRow("alice", "Alice", "Smith", "9001015009087", "0821234567", "Abcde1!23", "yesterday"))

	r := NewSQLiteRepository(db)
	_, err = r.GetUserByLogin(context.Background(), "alice")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad created_at")
}
