package attendance

import "sync"

type Store interface {
	Insert(a Attendance) Attendance
	Save(a Attendance) bool
	FindByEmployeeAndDate(employeeID int, date string) (Attendance, bool)
	FindAll() []Attendance
}

type store struct {
	mu      sync.RWMutex
	records []Attendance
}

func NewStore(seed []Attendance) Store {
	records := make([]Attendance, len(seed))
	copy(records, seed)
	return &store{records: records}
}

// Insert assigns id = max(existing)+1, or 1 when the log is empty.
func (s *store) Insert(a Attendance) Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, r := range s.records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	a.ID = maxID + 1

	next := make([]Attendance, len(s.records), len(s.records)+1)
	copy(next, s.records)
	s.records = append(next, a)
	return a
}

func (s *store) Save(a Attendance) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == a.ID {
			next := make([]Attendance, len(s.records))
			copy(next, s.records)
			next[i] = a
			s.records = next
			return true
		}
	}
	return false
}

func (s *store) FindByEmployeeAndDate(employeeID int, date string) (Attendance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.EmployeeID == employeeID && r.Date == date {
			return r, true
		}
	}
	return Attendance{}, false
}

func (s *store) FindAll() []Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Attendance, len(s.records))
	copy(out, s.records)
	return out
}
