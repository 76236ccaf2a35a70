package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`"dark"`)
	require.NoError(t, s.Save(ctx, "k", value))
	value[1] = 'X'

	got, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"dark"`, string(got), "saved value is copied")

	got[1] = 'Y'
	again, _, _ := s.Load(ctx, "k")
	assert.Equal(t, `"dark"`, string(again), "loaded value is copied")

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
