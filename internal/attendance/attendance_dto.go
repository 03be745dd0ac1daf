package attendance

type MarkPresentRequest struct {
	EmployeeID   int    `json:"employeeId" binding:"required"`
	EmployeeName string `json:"employeeName"`
	CheckIn      string `json:"checkIn" binding:"omitempty,datetime=15:04:05"`
	CheckOut     string `json:"checkOut" binding:"omitempty,datetime=15:04:05"`
}

type MarkAbsentRequest struct {
	EmployeeID   int    `json:"employeeId" binding:"required"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
}

type AttendanceResponse struct {
	ID           int     `json:"id"`
	EmployeeID   int     `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"checkIn,omitempty"`
	CheckOut     string  `json:"checkOut,omitempty"`
	Status       string  `json:"status"`
	WorkHours    float64 `json:"workHours"`
}

type StatsResponse struct {
	TotalRecords      int     `json:"totalRecords"`
	PresentCount      int     `json:"presentCount"`
	AbsentCount       int     `json:"absentCount"`
	LateCount         int     `json:"lateCount"`
	PresentPercentage float64 `json:"presentPercentage"`
	AbsentPercentage  float64 `json:"absentPercentage"`
	LatePercentage    float64 `json:"latePercentage"`
}
