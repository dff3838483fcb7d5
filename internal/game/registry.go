package game

import (
	"sync"
)

// Registry owns the process-wide map of chat id to game instance. Instances
// are independent: the registry lock only guards the map itself, never the
// state inside an instance.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*Instance
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		games: make(map[string]*Instance),
	}
}

// Get returns the instance for a chat, or ErrGameNotFound
func (r *Registry) Get(chatID string) (*Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.games[chatID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return inst, nil
}

// Put registers a new instance, rejecting a duplicate chat
func (r *Registry) Put(inst *Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[inst.ChatID]; ok {
		return ErrGameAlreadyExists
	}
	r.games[inst.ChatID] = inst
	return nil
}

// Delete removes an instance. Deleting an unknown chat is a no-op.
func (r *Registry) Delete(chatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.games, chatID)
}

// Len returns the number of running games
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.games)
}

// PlayerActiveAnywhere reports whether the player is active in any running
// game. It walks a snapshot of the registry, so two join requests racing
// within the scan window can both pass; the product accepts that window
// rather than pay for cross-instance locking.
func (r *Registry) PlayerActiveAnywhere(playerID string) bool {
	r.mu.RLock()
	snapshot := make([]*Instance, 0, len(r.games))
	for _, inst := range r.games {
		snapshot = append(snapshot, inst)
	}
	r.mu.RUnlock()

	for _, inst := range snapshot {
		if inst.playerActive(playerID) {
			return true
		}
	}
	return false
}
