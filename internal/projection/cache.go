package projection

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
)

// RunCache memoizes results by parameter fingerprint. Runs are pure functions
// of their parameter set, so the only invalidation policy is value identity:
// no TTL, no explicit eviction beyond Clear. Recomputation on a miss is cheap
// and idempotent, so the cache is a convenience, not a correctness concern.
type RunCache struct {
	mu    sync.RWMutex
	store map[string]*Result
}

func NewRunCache() *RunCache {
	return &RunCache{store: make(map[string]*Result)}
}

func (c *RunCache) Get(key string) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.store[key]
	return res, ok
}

func (c *RunCache) Set(key string, res *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = res
}

func (c *RunCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*Result)
}

// Run returns the cached result for p if one exists, running the engine
// otherwise. Errors are never cached.
func (c *RunCache) Run(e *Engine, p model.Params) (*Result, error) {
	key := Fingerprint(p)
	if res, ok := c.Get(key); ok {
		return res, nil
	}
	res, err := e.Run(p)
	if err != nil {
		return nil, err
	}
	c.Set(key, res)
	return res, nil
}

// Fingerprint derives a deterministic key from every parameter field. Params
// is a flat value struct, so its printed form covers all fields in declaration
// order; the hash keeps keys reasonably sized.
func Fingerprint(p model.Params) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%v", p)))
	return hex.EncodeToString(sum[:])
}
