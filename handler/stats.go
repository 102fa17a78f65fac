package handler

import (
	"sync/atomic"

	"github.com/philipp01105/pinelog/core"
)

// Stats tracks logger statistics
type Stats struct {
	// Separate atomic counters per accepted level
	AcceptedInfo  uint64
	AcceptedWarn  uint64
	AcceptedError uint64
	// FilteredTotal counts calls rejected by the minimum level
	FilteredTotal uint64
	// ConsoleErrors counts failed console writes
	ConsoleErrors uint64
	// FileErrors counts failed file writes
	FileErrors uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementAccepted atomically increments the accepted counter for a level
func (s *Stats) IncrementAccepted(level core.Level) {
	switch level {
	case core.InfoLevel:
		atomic.AddUint64(&s.AcceptedInfo, 1)
	case core.WarnLevel:
		atomic.AddUint64(&s.AcceptedWarn, 1)
	case core.ErrorLevel:
		atomic.AddUint64(&s.AcceptedError, 1)
	}
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// IncrementConsoleErrors atomically increments the console failure counter
func (s *Stats) IncrementConsoleErrors() {
	atomic.AddUint64(&s.ConsoleErrors, 1)
}

// IncrementFileErrors atomically increments the file failure counter
func (s *Stats) IncrementFileErrors() {
	atomic.AddUint64(&s.FileErrors, 1)
}

// GetAccepted returns the accepted count for a level
func (s *Stats) GetAccepted(level core.Level) uint64 {
	switch level {
	case core.InfoLevel:
		return atomic.LoadUint64(&s.AcceptedInfo)
	case core.WarnLevel:
		return atomic.LoadUint64(&s.AcceptedWarn)
	case core.ErrorLevel:
		return atomic.LoadUint64(&s.AcceptedError)
	default:
		return 0
	}
}

// GetTotalAccepted returns the accepted count across all levels
func (s *Stats) GetTotalAccepted() uint64 {
	return atomic.LoadUint64(&s.AcceptedInfo) +
		atomic.LoadUint64(&s.AcceptedWarn) +
		atomic.LoadUint64(&s.AcceptedError)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.AcceptedInfo, 0)
	atomic.StoreUint64(&s.AcceptedWarn, 0)
	atomic.StoreUint64(&s.AcceptedError, 0)
	atomic.StoreUint64(&s.FilteredTotal, 0)
	atomic.StoreUint64(&s.ConsoleErrors, 0)
	atomic.StoreUint64(&s.FileErrors, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Accepted      map[core.Level]uint64
	Filtered      uint64
	ConsoleErrors uint64
	FileErrors    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Accepted: map[core.Level]uint64{
			core.InfoLevel:  s.GetAccepted(core.InfoLevel),
			core.WarnLevel:  s.GetAccepted(core.WarnLevel),
			core.ErrorLevel: s.GetAccepted(core.ErrorLevel),
		},
		Filtered:      atomic.LoadUint64(&s.FilteredTotal),
		ConsoleErrors: atomic.LoadUint64(&s.ConsoleErrors),
		FileErrors:    atomic.LoadUint64(&s.FileErrors),
	}
}
