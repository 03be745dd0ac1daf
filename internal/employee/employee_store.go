package employee

import "sync"

type Store interface {
	Insert(e Employee) Employee
	Save(e Employee) bool
	Remove(id int) bool
	FindByID(id int) (Employee, bool)
	FindAll() []Employee
}

// store holds the directory as an in-memory snapshot. Writers replace the
// slice, readers get a copy, so a returned snapshot never changes under
// the caller.
type store struct {
	mu      sync.RWMutex
	records []Employee
}

func NewStore(seed []Employee) Store {
	records := make([]Employee, len(seed))
	copy(records, seed)
	return &store{records: records}
}

// Insert assigns the next id as max(existing)+1, or 1 on an empty
// directory. Deleting the highest record therefore recycles its id.
func (s *store) Insert(e Employee) Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, r := range s.records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	e.ID = maxID + 1

	next := make([]Employee, len(s.records), len(s.records)+1)
	copy(next, s.records)
	s.records = append(next, e)
	return e
}

// Save replaces the record with a matching id. Returns false when the id
// is unknown, leaving the snapshot untouched.
func (s *store) Save(e Employee) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == e.ID {
			next := make([]Employee, len(s.records))
			copy(next, s.records)
			next[i] = e
			s.records = next
			return true
		}
	}
	return false
}

func (s *store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Employee, 0, len(s.records))
	removed := false
	for _, r := range s.records {
		if r.ID == id {
			removed = true
			continue
		}
		next = append(next, r)
	}
	s.records = next
	return removed
}

func (s *store) FindByID(id int) (Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Employee{}, false
}

func (s *store) FindAll() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Employee, len(s.records))
	copy(out, s.records)
	return out
}
