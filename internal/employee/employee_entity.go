package employee

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Employee is a directory record. Department, role and manager are free
// text, not references; skills and projects keep their insertion order.
type Employee struct {
	ID         int
	Name       string
	Email      string
	Phone      string
	Department string
	Role       string
	Status     string
	JoinDate   string // YYYY-MM-DD
	Avatar     string
	Manager    string
	Address    string
	Skills     []string
	Projects   []string
	Salary     float64
}
