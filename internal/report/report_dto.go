package report

// NameCount is one slice of a breakdown chart.
type NameCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardResponse struct {
	TotalEmployees  int     `json:"totalEmployees"`
	ActiveEmployees int     `json:"activeEmployees"`
	Departments     int     `json:"departments"`
	PendingLeaves   int     `json:"pendingLeaves"`
	AttendanceRate  float64 `json:"attendanceRate"`
}

type BreakdownsResponse struct {
	EmployeesByDepartment []NameCount `json:"employeesByDepartment"`
	LeavesByType          []NameCount `json:"leavesByType"`
	LeavesByStatus        []NameCount `json:"leavesByStatus"`
	AttendanceOverview    []NameCount `json:"attendanceOverview"`
}
