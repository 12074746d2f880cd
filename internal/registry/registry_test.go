package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wasm-arcade/internal/games/flappy"
	"github.com/vovakirdan/wasm-arcade/internal/host"
)

func nativeFlappy(context.Context) (host.Module, error) {
	return host.NewNativeModule(flappy.DefaultParams()), nil
}

func TestAddAndList(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("zeta", "Zeta", nativeFlappy))
	require.NoError(t, r.Add("alpha", "", nativeFlappy))

	assert.Equal(t, []GuestInfo{
		{ID: "alpha", Title: "alpha"},
		{ID: "zeta", Title: "Zeta"},
	}, r.List())
	assert.True(t, r.Exists("zeta"))
	assert.False(t, r.Exists("missing"))
	assert.Equal(t, "Zeta", r.Title("zeta"))
}

func TestAddDuplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("flappy", "Flappy", nativeFlappy))

	err := r.Add("flappy", "Again", nativeFlappy)
	assert.ErrorIs(t, err, ErrDuplicateGuest)
	assert.Equal(t, "Flappy", r.Title("flappy"))
}

func TestCreate(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("flappy", "Flappy", nativeFlappy))

	mod, err := r.Create(context.Background(), "flappy")
	require.NoError(t, err)
	defer mod.Close(context.Background())

	addr, err := mod.Init(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, addr)
}

func TestCreateUnknown(t *testing.T) {
	_, err := New().Create(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnknownGuest)
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	r := New()
	require.NoError(t, r.Add("broken", "", func(context.Context) (host.Module, error) {
		return nil, boom
	}))

	_, err := r.Create(context.Background(), "broken")
	assert.ErrorIs(t, err, boom)
}
