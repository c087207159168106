package booking

import "sync"

// caregiverLocks serializes booking creation per caregiver. The Mongo
// transaction in the repository is the durable guard; this keeps two
// in-process requests for the same caregiver from racing the check.
type caregiverLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCaregiverLocks() *caregiverLocks {
	return &caregiverLocks{locks: make(map[string]*sync.Mutex)}
}

func (c *caregiverLocks) get(caregiverID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.locks[caregiverID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[caregiverID] = l
	}
	return l
}
