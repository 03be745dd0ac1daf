package attendance

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// lateThreshold is the check-in cutoff; Present records checking in after
// it count as late. Times compare lexically because they are HH:MM:SS.
const lateThreshold = "09:00:00"

// Attendance is one employee-day of the log. (EmployeeID, Date) acts as
// the natural key: the mark operations upsert on it, so at most one record
// per employee per day exists. EmployeeName is a denormalized snapshot.
type Attendance struct {
	ID           int
	EmployeeID   int
	EmployeeName string
	Date         string // YYYY-MM-DD
	CheckIn      string // HH:MM:SS, empty when absent or not checked in
	CheckOut     string // HH:MM:SS, empty until checked out
	Status       string // Present | Absent
	WorkHours    float64
}
