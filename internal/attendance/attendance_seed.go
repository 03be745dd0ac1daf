package attendance

// SeedData returns the demo attendance log the dashboard ships with.
func SeedData() []Attendance {
	return []Attendance{
		{ID: 1, EmployeeID: 1, EmployeeName: "John Doe", Date: "2024-01-02", CheckIn: "09:05:00", CheckOut: "17:30:00", Status: StatusPresent, WorkHours: 8.42},
		{ID: 2, EmployeeID: 1, EmployeeName: "John Doe", Date: "2024-01-03", CheckIn: "08:55:00", CheckOut: "17:45:00", Status: StatusPresent, WorkHours: 8.83},
		{ID: 3, EmployeeID: 1, EmployeeName: "John Doe", Date: "2024-01-04", CheckIn: "09:10:00", CheckOut: "17:15:00", Status: StatusPresent, WorkHours: 8.08},
		{ID: 4, EmployeeID: 2, EmployeeName: "Jane Smith", Date: "2024-01-02", CheckIn: "08:45:00", CheckOut: "18:00:00", Status: StatusPresent, WorkHours: 9.25},
		{ID: 5, EmployeeID: 2, EmployeeName: "Jane Smith", Date: "2024-01-03", CheckIn: "08:50:00", CheckOut: "17:55:00", Status: StatusPresent, WorkHours: 9.08},
		{ID: 6, EmployeeID: 2, EmployeeName: "Jane Smith", Date: "2024-01-04", Status: StatusAbsent, WorkHours: 0},
		{ID: 7, EmployeeID: 3, EmployeeName: "Michael Johnson", Date: "2024-01-02", CheckIn: "09:30:00", CheckOut: "18:30:00", Status: StatusPresent, WorkHours: 9},
		{ID: 8, EmployeeID: 3, EmployeeName: "Michael Johnson", Date: "2024-01-03", CheckIn: "09:15:00", CheckOut: "18:15:00", Status: StatusPresent, WorkHours: 9},
		{ID: 9, EmployeeID: 3, EmployeeName: "Michael Johnson", Date: "2024-01-04", CheckIn: "09:00:00", CheckOut: "18:00:00", Status: StatusPresent, WorkHours: 9},
	}
}
