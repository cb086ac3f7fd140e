package engine

import (
	"sync"
	"time"
)

// IDs are wall-clock milliseconds with a monotonic bump, so entities created
// within the same millisecond still get distinct, strictly increasing ids.
var idMu sync.Mutex
var lastID int64

func nextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
