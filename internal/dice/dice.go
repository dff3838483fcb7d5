package dice

import (
	"math/rand"
	"sync"
	"time"
)

// Roller provides dice rolling functionality. Safe for concurrent use;
// timeout auto-rolls happen on timer goroutines.
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *Roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// RollD6 rolls the standard six-sided die used for reveal contests
func (r *Roller) RollD6() int {
	return r.Roll(6)
}
