package services

import (
	"sync"

	"github.com/elgato/elgato-app/events"
	"github.com/elgato/elgato-app/storage"
)

// FavoriteService keeps the set of favorited food ids. The set belongs
// to the store, not to a user. Every change is broadcast so connected
// views resynchronize, like the favoritesUpdated browser event did.
type FavoriteService struct {
	store storage.Adapter
	hub   *events.Hub

	mu  sync.RWMutex
	ids []int64
}

func NewFavoriteService(store storage.Adapter, hub *events.Hub) (*FavoriteService, error) {
	fs := &FavoriteService{store: store, hub: hub}
	if _, err := storage.LoadJSON(store, storage.KeyFavorites, &fs.ids); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FavoriteService) Add(foodID int64) error {
	fs.mu.Lock()
	for _, id := range fs.ids {
		if id == foodID {
			fs.mu.Unlock()
			return nil
		}
	}
	fs.ids = append(fs.ids, foodID)
	err := fs.persist()
	fs.mu.Unlock()
	if err != nil {
		return err
	}

	fs.hub.Broadcast(events.EventFavoritesUpdated, fs.List())
	return nil
}

func (fs *FavoriteService) Remove(foodID int64) error {
	fs.mu.Lock()
	kept := fs.ids[:0]
	removed := false
	for _, id := range fs.ids {
		if id == foodID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	fs.ids = kept
	var err error
	if removed {
		err = fs.persist()
	}
	fs.mu.Unlock()
	if err != nil {
		return err
	}

	if removed {
		fs.hub.Broadcast(events.EventFavoritesUpdated, fs.List())
	}
	return nil
}

func (fs *FavoriteService) IsFavorite(foodID int64) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	for _, id := range fs.ids {
		if id == foodID {
			return true
		}
	}
	return false
}

func (fs *FavoriteService) List() []int64 {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	out := make([]int64, len(fs.ids))
	copy(out, fs.ids)
	return out
}

// persist must be called with the lock held.
func (fs *FavoriteService) persist() error {
	return storage.SaveJSON(fs.store, storage.KeyFavorites, fs.ids)
}
