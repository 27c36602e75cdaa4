package service

import (
	"sync"
	"time"
)

// timerSet keeps at most one pending deadline per user. Arming always
// cancels the previous timer first so two deadlines can never race
// against the same cursor.
type timerSet struct {
	mu     sync.Mutex
	timers map[int64]*time.Timer
}

func newTimerSet() *timerSet {
	return &timerSet{timers: make(map[int64]*time.Timer)}
}

func (t *timerSet) arm(userID int64, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, exists := t.timers[userID]; exists {
		prev.Stop()
	}
	t.timers[userID] = time.AfterFunc(d, fn)
}

func (t *timerSet) cancel(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, exists := t.timers[userID]; exists {
		prev.Stop()
		delete(t.timers, userID)
	}
}
