package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	ok, err := store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Insert(ctx, "tok"))
	ok, err = store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Remove(ctx, "tok"))
	ok, err = store.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok, "removed token must not resurrect")

	// removing an absent token is not an error
	require.NoError(t, store.Remove(ctx, "tok"))
}

func TestMemoryTokenStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok := fmt.Sprintf("tok-%d", i)
			_ = store.Insert(ctx, tok)
			if i%2 == 0 {
				_ = store.Remove(ctx, tok)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		ok, err := store.Contains(ctx, fmt.Sprintf("tok-%d", i))
		require.NoError(t, err)
		assert.Equal(t, i%2 != 0, ok)
	}
}
