package users

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &User{UserName: "alice", Name: "Alice"})
	require.NoError(t, err)

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = r.GetUserByLogin(ctx, "bob")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_DuplicateLeavesOriginal(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &User{UserName: "alice", Name: "Alice", Phone: "0821234567"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &User{UserName: "alice", Name: "Mallory", Phone: "0999999999"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "0821234567", got.Phone)
}

func TestInMemoryRepository_ReturnedCopiesAreDetached(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	u := &User{UserName: "alice", Name: "Alice"}
	created, err := r.Create(ctx, u)
	require.NoError(t, err)

	u.Name = "changed after insert"
	created.Name = "changed via result"

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestInMemoryRepository_ListSorted(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := r.Create(ctx, &User{UserName: name})
		require.NoError(t, err)
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alice", list[0].UserName)
	assert.Equal(t, "bob", list[1].UserName)
	assert.Equal(t, "carol", list[2].UserName)
}

func TestInMemoryRepository_ConcurrentCreateSameName(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Create(ctx, &User{UserName: "alice", Name: fmt.Sprint(i)})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins, "exactly one insert may succeed")
}
