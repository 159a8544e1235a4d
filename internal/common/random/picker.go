package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/ArowuTest/raffle-backend/internal/common/random Picker

// Picker chooses a uniformly distributed index in [0, n)
type Picker interface {
	Intn(n int) int
}

// Config for the default picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// SeededPicker is a Picker backed by math/rand. It is not cryptographically secure.
type SeededPicker struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a picker seeded from cfg, or from the wall clock when no seed is set
func New(cfg *Config) *SeededPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &SeededPicker{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns an index in [0, n). It panics when n <= 0, like rand.Intn.
func (p *SeededPicker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.random.Intn(n)
}
