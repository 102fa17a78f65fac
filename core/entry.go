package core

import (
	"sync"
	"time"
)

// Entry represents a single accepted log call
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	return entryPool.Get().(*Entry)
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Time = time.Time{}
	e.Message = ""
	e.Level = InfoLevel
	entryPool.Put(e)
}
