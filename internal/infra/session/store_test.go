package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_InitializesEmptySession(t *testing.T) {
	store := NewStore()

	sess := store.Create()

	assert.NotEmpty(t, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero())
	assert.Equal(t, 0, sess.Cart.Len())
	assert.Equal(t, "empty", string(sess.Selection.State()))
}

func TestGet_ReturnsCreatedSession(t *testing.T) {
	store := NewStore()
	created := store.Create()

	got, err := store.Get(created.ID)
	require.NoError(t, err)

	assert.Same(t, created, got)
}

func TestGet_UnknownIDFails(t *testing.T) {
	store := NewStore()

	_, err := store.Get("missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDelete_RemovesSession(t *testing.T) {
	store := NewStore()
	sess := store.Create()

	store.Delete(sess.ID)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDelete_UnknownIDIsNoOp(t *testing.T) {
	store := NewStore()
	sess := store.Create()

	store.Delete("missing")

	_, err := store.Get(sess.ID)
	assert.NoError(t, err)
}

func TestDo_SerializesMutations(t *testing.T) {
	store := NewStore()
	sess := store.Create()

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_ = sess.Do(func(*Session) error {
					counter++
					return nil
				})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, counter)
}
