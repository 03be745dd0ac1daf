package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_FindByEmployeeAndDate(t *testing.T) {
	s := NewStore(SeedData())

	a, ok := s.FindByEmployeeAndDate(1, "2024-01-02")
	assert.True(t, ok)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, "09:05:00", a.CheckIn)

	_, ok = s.FindByEmployeeAndDate(1, "2024-01-05")
	assert.False(t, ok)

	_, ok = s.FindByEmployeeAndDate(99, "2024-01-02")
	assert.False(t, ok)
}

func TestStore_InsertAssignsMaxPlusOne(t *testing.T) {
	s := NewStore(SeedData())

	created := s.Insert(Attendance{EmployeeID: 4, Date: "2024-01-05", Status: StatusPresent})
	assert.Equal(t, 10, created.ID)
}

func TestStore_SaveReplacesMatchingRecord(t *testing.T) {
	s := NewStore(SeedData())

	a, _ := s.FindByEmployeeAndDate(2, "2024-01-04")
	a.Status = StatusPresent
	a.CheckIn = "10:00:00"
	assert.True(t, s.Save(a))

	fresh, ok := s.FindByEmployeeAndDate(2, "2024-01-04")
	assert.True(t, ok)
	assert.Equal(t, StatusPresent, fresh.Status)
	assert.Equal(t, "10:00:00", fresh.CheckIn)

	assert.False(t, s.Save(Attendance{ID: 99}))
}
