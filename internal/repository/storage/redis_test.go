package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// When: connecting to a port nothing listens on
	client, err := New(ctx, "127.0.0.1:1")

	// Then: the error is returned and no client leaks out
	require.ErrorContains(t, err, "failed to connect to Redis")
	assert.Nil(t, client)
}
