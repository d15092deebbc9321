package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elgato/elgato-app/storage"
)

func TestFavoritesAddRemove(t *testing.T) {
	store := storage.NewMemoryStore()
	favs, err := NewFavoriteService(store, nil)
	assert.NoError(t, err)

	assert.NoError(t, favs.Add(1))
	assert.NoError(t, favs.Add(3))
	assert.NoError(t, favs.Add(1)) // duplicate, no-op

	assert.Equal(t, []int64{1, 3}, favs.List())
	assert.True(t, favs.IsFavorite(1))
	assert.False(t, favs.IsFavorite(2))

	assert.NoError(t, favs.Remove(1))
	assert.Equal(t, []int64{3}, favs.List())
	assert.NoError(t, favs.Remove(42)) // absent, no-op
}

func TestFavoritesPersistAcrossRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	favs, err := NewFavoriteService(store, nil)
	assert.NoError(t, err)
	assert.NoError(t, favs.Add(2))
	assert.NoError(t, favs.Add(5))

	reloaded, err := NewFavoriteService(store, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int64{2, 5}, reloaded.List())
}
