package game

import (
	"github.com/frostveil/frozenbridges/internal/models"
)

// Roster owns the set of known players in a game instance and the active
// turn-order queue. The queue is a logical ring: every id in it refers to an
// existing, active player, while the player map may also hold inactive
// entries kept around for their points.
type Roster struct {
	players map[string]*models.Player
	queue   []string
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{
		players: make(map[string]*models.Player),
	}
}

// Add inserts a new player or reactivates an existing one. Reactivation is
// idempotent: the player is appended to the queue only if absent.
func (r *Roster) Add(player *models.Player) {
	if existing, ok := r.players[player.ID]; ok {
		existing.IsActive = true
		if !r.queued(player.ID) {
			r.queue = append(r.queue, player.ID)
		}
		return
	}

	player.IsActive = true
	r.players[player.ID] = player
	r.queue = append(r.queue, player.ID)
}

// Remove deactivates a player and takes them out of the turn queue. The
// player record is retained for the final scoreboard. No-op for unknown ids.
func (r *Roster) Remove(id string) {
	player, ok := r.players[id]
	if !ok {
		return
	}

	player.IsActive = false
	for i, qid := range r.queue {
		if qid == id {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			break
		}
	}
}

// Get returns the player with the given id, or nil if unknown
func (r *Roster) Get(id string) *models.Player {
	return r.players[id]
}

// Active returns the active players in turn order
func (r *Roster) Active() []*models.Player {
	active := make([]*models.Player, 0, len(r.queue))
	for _, id := range r.queue {
		if p, ok := r.players[id]; ok {
			active = append(active, p)
		}
	}
	return active
}

// ActiveCount returns the number of players in the turn queue
func (r *Roster) ActiveCount() int {
	return len(r.queue)
}

// All returns every player ever added, active or not
func (r *Roster) All() []*models.Player {
	all := make([]*models.Player, 0, len(r.players))
	for _, p := range r.players {
		all = append(all, p)
	}
	return all
}

// Queue returns a copy of the active turn order
func (r *Roster) Queue() []string {
	out := make([]string, len(r.queue))
	copy(out, r.queue)
	return out
}

func (r *Roster) queued(id string) bool {
	for _, qid := range r.queue {
		if qid == id {
			return true
		}
	}
	return false
}
