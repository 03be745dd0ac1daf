package leave

import "sync"

type Store interface {
	Insert(l Leave) Leave
	Save(l Leave) bool
	FindByID(id int) (Leave, bool)
	FindAll() []Leave
}

// store keeps the ledger as an in-memory snapshot; same replace-on-write
// discipline as the employee store.
type store struct {
	mu      sync.RWMutex
	records []Leave
}

func NewStore(seed []Leave) Store {
	records := make([]Leave, len(seed))
	copy(records, seed)
	return &store{records: records}
}

// Insert assigns id = max(existing)+1, or 1 when the ledger is empty.
func (s *store) Insert(l Leave) Leave {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, r := range s.records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	l.ID = maxID + 1

	next := make([]Leave, len(s.records), len(s.records)+1)
	copy(next, s.records)
	s.records = append(next, l)
	return l
}

func (s *store) Save(l Leave) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == l.ID {
			next := make([]Leave, len(s.records))
			copy(next, s.records)
			next[i] = l
			s.records = next
			return true
		}
	}
	return false
}

func (s *store) FindByID(id int) (Leave, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Leave{}, false
}

func (s *store) FindAll() []Leave {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Leave, len(s.records))
	copy(out, s.records)
	return out
}
