package cmdlog

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// MaxCommandLogs bounds how many entries the store retains. Older entries are
// evicted first; TotalCommands keeps counting past the bound so the UI can say
// how many entries were dropped.
const MaxCommandLogs = 500

type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// Entry is one executed (or blocked) command. Entries are immutable once
// appended; eviction and the clear marker are the only ways they leave view.
type Entry struct {
	ID      uint64    `json:"id"`
	Command string    `json:"command"`
	Result  Outcome   `json:"result"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at"`
}

// Store is the single authoritative command log shared by every surface:
// terminal panel, package toggles, audit replays. Newest entry first. All
// mutation goes through Add under one mutex so interleaved completions never
// duplicate ids or lose ordering.
type Store struct {
	mu      sync.Mutex
	cap     int
	nextID  uint64
	total   uint64
	entries []Entry // newest first
	clearAt uint64  // entries with ID <= clearAt are hidden from Visible
	subs    map[chan Entry]struct{}
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = MaxCommandLogs
	}
	return &Store{cap: capacity, subs: map[chan Entry]struct{}{}}
}

// Add appends one classified entry and returns it. Evicts the oldest entry
// once the capacity bound is exceeded.
func (s *Store) Add(command string, result Outcome, message string) Entry {
	s.mu.Lock()
	s.nextID++
	e := Entry{ID: s.nextID, Command: command, Result: result, Message: message, At: time.Now()}
	s.entries = append([]Entry{e}, s.entries...)
	s.total++
	if len(s.entries) > s.cap {
		s.entries = s.entries[:s.cap]
	}
	subs := make([]chan Entry, 0, len(s.subs))
	for ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- e:
		default: // slow subscriber drops the notification, not the entry
		}
	}
	return e
}

// Visible returns retained entries newer than the clear marker, newest first.
func (s *Store) Visible() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID <= s.clearAt {
			break
		}
		out = append(out, e)
	}
	return out
}

// All returns every retained entry regardless of the clear marker.
func (s *Store) All() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// EstablishClearMarker hides everything currently in the log from Visible
// without deleting it, and returns the marker id. Clearing is a view
// operation; ExportAll still sees the full retained history.
func (s *Store) EstablishClearMarker() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearAt = s.nextID
	return s.clearAt
}

// Total is the historical number of commands ever logged, independent of what
// remains retained.
func (s *Store) Total() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Retained is the number of entries the store currently holds.
func (s *Store) Retained() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// ExportAll writes the full retained history (oldest first, one JSON object
// per line) to w. The clear marker and any render caps do not apply here.
func (s *Store) ExportAll(w io.Writer) error {
	entries := s.All()
	enc := json.NewEncoder(w)
	for i := len(entries) - 1; i >= 0; i-- {
		if err := enc.Encode(entries[i]); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe registers a channel that receives every appended entry. The
// channel is buffered; a full buffer drops notifications rather than blocking
// Add.
func (s *Store) Subscribe() chan Entry {
	ch := make(chan Entry, 64)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Store) Unsubscribe(ch chan Entry) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
	close(ch)
}
