package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Unreachable server", func(t *testing.T) {
		// Given: an address nothing listens on
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// When: connecting
		storage, err := NewRedisStorage(ctx, "127.0.0.1:1")

		// Then: the ping fails and no storage is returned
		require.Error(t, err)
		require.Nil(t, storage)
	})
}
