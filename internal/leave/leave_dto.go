package leave

type CreateLeaveRequest struct {
	EmployeeID   int    `json:"employeeId" binding:"required"`
	EmployeeName string `json:"employeeName"`
	Type         string `json:"type" binding:"required,oneof='Vacation' 'Sick Leave' 'Personal Leave' 'Maternity/Paternity' 'Bereavement'"`
	StartDate    string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Reason       string `json:"reason"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}

type LeaveResponse struct {
	ID           int    `json:"id"`
	EmployeeID   int    `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Type         string `json:"type"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
	AppliedOn    string `json:"appliedOn"`
	ApprovedBy   string `json:"approvedBy,omitempty"`
	ApprovedOn   string `json:"approvedOn,omitempty"`
}
