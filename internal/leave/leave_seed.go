package leave

// SeedData returns the demo ledger the dashboard ships with.
func SeedData() []Leave {
	return []Leave{
		{
			ID:           1,
			EmployeeID:   1,
			EmployeeName: "John Doe",
			Type:         "Vacation",
			StartDate:    "2023-12-20",
			EndDate:      "2023-12-25",
			Reason:       "Family vacation",
			Status:       StatusApproved,
			AppliedOn:    "2023-11-15",
			ApprovedBy:   "Jane Smith",
			ApprovedOn:   "2023-11-20",
		},
		{
			ID:           2,
			EmployeeID:   2,
			EmployeeName: "Jane Smith",
			Type:         "Sick Leave",
			StartDate:    "2023-11-10",
			EndDate:      "2023-11-12",
			Reason:       "Flu",
			Status:       StatusApproved,
			AppliedOn:    "2023-11-09",
			ApprovedBy:   "Michael Johnson",
			ApprovedOn:   "2023-11-09",
		},
		{
			ID:           3,
			EmployeeID:   3,
			EmployeeName: "Michael Johnson",
			Type:         "Personal Leave",
			StartDate:    "2023-12-05",
			EndDate:      "2023-12-07",
			Reason:       "Family matter",
			Status:       StatusApproved,
			AppliedOn:    "2023-11-25",
			ApprovedBy:   "CEO",
			ApprovedOn:   "2023-11-26",
		},
		{
			ID:           4,
			EmployeeID:   4,
			EmployeeName: "Emily Davis",
			Type:         "Vacation",
			StartDate:    "2024-01-15",
			EndDate:      "2024-01-20",
			Reason:       "Winter vacation",
			Status:       StatusPending,
			AppliedOn:    "2023-12-15",
		},
		{
			ID:           5,
			EmployeeID:   1,
			EmployeeName: "John Doe",
			Type:         "Sick Leave",
			StartDate:    "2024-01-05",
			EndDate:      "2024-01-06",
			Reason:       "Cold",
			Status:       StatusRejected,
			AppliedOn:    "2024-01-04",
			ApprovedBy:   "Jane Smith",
			ApprovedOn:   "2024-01-04",
		},
	}
}
