package remote_test

import (
	"context"
	"testing"
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/remote"
	"github.com/stretchr/testify/require"
)

func TestMemoryTierRoundTrip(t *testing.T) {
	ctx := context.Background()
	tier := remote.NewMemoryTier()

	require.NoError(t, tier.Set(ctx, "k", []byte("v"), time.Minute))

	b, err := tier.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), b)

	require.NoError(t, tier.Delete(ctx, "k"))
	_, err = tier.Get(ctx, "k")
	require.ErrorIs(t, err, remote.ErrNotFound)
}

func TestMemoryTierExpires(t *testing.T) {
	ctx := context.Background()
	tier := remote.NewMemoryTier()

	require.NoError(t, tier.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	_, err := tier.Get(ctx, "k")
	require.ErrorIs(t, err, remote.ErrNotFound)
	require.Zero(t, tier.Len(), "expired read should evict the entry")
}
