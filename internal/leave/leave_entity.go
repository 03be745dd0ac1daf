package leave

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Types is the fixed leave-type vocabulary, in display order.
var Types = []string{
	"Vacation",
	"Sick Leave",
	"Personal Leave",
	"Maternity/Paternity",
	"Bereavement",
}

// Leave is a single request in the ledger. EmployeeName is a snapshot of
// the directory name at apply time and is never re-synced; EmployeeID is a
// soft reference the storage layer does not enforce.
type Leave struct {
	ID           int
	EmployeeID   int
	EmployeeName string
	Type         string
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	Reason       string
	Status       string // Pending -> Approved | Rejected
	AppliedOn    string
	ApprovedBy   string
	ApprovedOn   string
}
