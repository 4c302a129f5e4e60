package exchange

import (
	"go-money-exchange"
	"sync"
)

// rateCache caches exchange rates of one session.
// Entries are added lazily and never expire; reset drops all of them at once.
type rateCache struct {
	// rates maps a directional pair key to its rate
	rates map[string]money.Rate

	// lock synchronizes access to rates to make it concurrency safe
	lock sync.RWMutex
}

func newRateCache() *rateCache {
	return &rateCache{
		rates: map[string]money.Rate{},
	}
}

func (c *rateCache) get(key string) (money.Rate, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	rate, ok := c.rates[key]
	return rate, ok
}

// put stores a rate. Concurrent misses for the same pair may both reach the provider; the last one wins.
func (c *rateCache) put(key string, rate money.Rate) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.rates[key] = rate
}

func (c *rateCache) reset() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.rates = map[string]money.Rate{}
}

func (c *rateCache) len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.rates)
}
