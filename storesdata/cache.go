package storesdata

import (
	"sync"
	"time"
)

// Cache mantém o dataset transformado em memória com expiração por tempo.
//
// O mutex fica preso durante o load inteiro: misses concorrentes no primeiro
// acesso (ou na virada do TTL) se enfileiram e só um deles lê o arquivo; os
// demais acordam com o cache já quente.
type Cache struct {
	mu       sync.Mutex
	path     string
	ttl      time.Duration
	data     []Store
	loadedAt time.Time

	now func() time.Time
}

func NewCache(path string, ttl time.Duration) *Cache {
	return &Cache{path: path, ttl: ttl, now: time.Now}
}

// Get devolve o dataset e se ele veio da memória (hit) ou precisou ser
// (re)carregado do arquivo (miss).
func (c *Cache) Get() ([]Store, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data != nil && c.now().Sub(c.loadedAt) < c.ttl {
		return c.data, true, nil
	}

	if err := c.loadLocked(); err != nil {
		return nil, false, err
	}
	return c.data, false, nil
}

// Refresh força a recarga do arquivo, ignorando o TTL.
func (c *Cache) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

func (c *Cache) loadLocked() error {
	data, err := Load(c.path)
	if err != nil {
		return err
	}
	c.data = data
	c.loadedAt = c.now()
	return nil
}
