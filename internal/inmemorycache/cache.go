package inmemorycache

import (
	"encoding/json"
	"sync"
	"time"

	"ulascansenturk/occupancy-service/internal/predictor"
)

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

// Cache keeps successful prediction results keyed by YYYY-MM-DD.
type Cache interface {
	Get(date string) (*predictor.Result, bool, error)
	Set(date string, result *predictor.Result, ttl time.Duration) error
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

func (m *InMemoryCache) Get(date string) (*predictor.Result, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[date]
	if !exists {
		return nil, false, nil
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, date)
		return nil, false, nil
	}

	var result predictor.Result
	if err := json.Unmarshal(entry.data, &result); err != nil {
		return nil, false, err
	}
	// OK is not serialized; only successful results are ever stored
	result.OK = true

	return &result, true, nil
}

func (m *InMemoryCache) Set(date string, result *predictor.Result, ttl time.Duration) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[date] = cacheEntry{
		data:       jsonData,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// Close stops the cleanup goroutine.
func (m *InMemoryCache) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *InMemoryCache) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.cache {
				if now.After(v.expiration) {
					delete(m.cache, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
