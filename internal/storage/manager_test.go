package storage

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_Backends(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{BackendMemory, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			m, err := NewManager(ctx, backend, logging.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = m.Close() })

			repo := m.Users()
			u := &users.User{
				Name: "Alice", Surname: "Smith", IDNumber: "9001015009087",
				Phone: "0821234567", UserName: "alice", Password: "Abcde1!23",
				CreatedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
			}
			_, err = repo.Create(ctx, u)
			require.NoError(t, err)

			_, err = repo.Create(ctx, &users.User{UserName: "alice", Name: "Other", CreatedAt: time.Now()})
			require.ErrorIs(t, err, common.ErrorAlreadyExists)

			got, err := repo.GetUserByLogin(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, "Alice", got.Name)
			assert.True(t, u.CreatedAt.Equal(got.CreatedAt))
		})
	}
}

func TestNewManager_UnknownBackend(t *testing.T) {
	_, err := NewManager(context.Background(), "postgres", logging.Nop())
	require.Error(t, err)
}

func TestSQLiteManager_SeparateInstancesDoNotShare(t *testing.T) {
	ctx := context.Background()

	a, err := NewSQLiteManager(ctx, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	b, err := NewSQLiteManager(ctx, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	_, err = a.Users().Create(ctx, &users.User{UserName: "alice", CreatedAt: time.Now()})
	require.NoError(t, err)

	_, err = b.Users().GetUserByLogin(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
