package logger

// Mode selects how a logger waits for its guard and its file.
type Mode uint8

const (
	// ModeSync blocks the calling goroutine on a mutex and on file writes.
	ModeSync Mode = iota
	// ModeNonBlocking parks callers on a context-aware guard and hands
	// file writes to a goroutine that owns the file.
	ModeNonBlocking
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSync:
		return "sync"
	case ModeNonBlocking:
		return "nonblocking"
	default:
		return "unknown"
	}
}
