package cache

import (
	"sync"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
)

// Cache keeps the live sessions and one lock per user. Every session
// operation, including timer callbacks, must run under that user's lock;
// the registry mutex only guards the maps themselves.
type Cache struct {
	mu       sync.Mutex
	locks    map[int64]*sync.Mutex
	sessions map[int64]*models.Session
}

func NewCache() *Cache {
	return &Cache{
		locks:    make(map[int64]*sync.Mutex),
		sessions: make(map[int64]*models.Session),
	}
}

// UserLock returns the mutex serializing all operations for one user,
// creating it on first use. The caller locks and unlocks it.
func (c *Cache) UserLock(userID int64) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, exists := c.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		c.locks[userID] = lock
	}
	return lock
}

func (c *Cache) Session(userID int64) (*models.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	return session, exists
}

func (c *Cache) SetSession(userID int64, session *models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = session
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

// UserIDs snapshots the users with a live session, for catalog-wide
// sweeps such as quiz deletion.
func (c *Cache) UserIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int64, 0, len(c.sessions))
	for id := range c.sessions {
		ids = append(ids, id)
	}
	return ids
}
