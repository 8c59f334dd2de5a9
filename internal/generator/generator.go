// Package generator picks phrases for typing rounds.
package generator

import (
	"math/rand"
	"time"
)

// Generator selects random phrases.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects a phrase uniformly from pool. When the pool has more than one
// distinct phrase, previous is never returned.
func (g *Generator) Pick(pool []string, previous string) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}
	candidates := pool
	if previous != "" {
		filtered := make([]string, 0, len(pool))
		for _, p := range pool {
			if p != previous {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	return candidates[g.rnd.Intn(len(candidates))], true
}
