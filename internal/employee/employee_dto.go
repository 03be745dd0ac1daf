package employee

type CreateEmployeeRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone"`
	Department string   `json:"department" binding:"required"`
	Role       string   `json:"role" binding:"required"`
	JoinDate   string   `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
	Avatar     string   `json:"avatar"`
	Manager    string   `json:"manager"`
	Address    string   `json:"address"`
	Skills     []string `json:"skills"`
	Projects   []string `json:"projects"`
	Salary     float64  `json:"salary"`
}

// UpdateEmployeeRequest carries a partial-field merge: nil means "leave
// the stored value alone". Status is updatable here even though Create
// always writes Active.
type UpdateEmployeeRequest struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email" binding:"omitempty,email"`
	Phone      *string   `json:"phone"`
	Department *string   `json:"department"`
	Role       *string   `json:"role"`
	Status     *string   `json:"status" binding:"omitempty,oneof=Active Inactive"`
	JoinDate   *string   `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
	Avatar     *string   `json:"avatar"`
	Manager    *string   `json:"manager"`
	Address    *string   `json:"address"`
	Skills     *[]string `json:"skills"`
	Projects   *[]string `json:"projects"`
	Salary     *float64  `json:"salary"`
}

type EmployeeResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Department string   `json:"department"`
	Role       string   `json:"role"`
	Status     string   `json:"status"`
	JoinDate   string   `json:"joinDate,omitempty"`
	Avatar     string   `json:"avatar,omitempty"`
	Manager    string   `json:"manager,omitempty"`
	Address    string   `json:"address,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Projects   []string `json:"projects,omitempty"`
	Salary     float64  `json:"salary,omitempty"`
}
