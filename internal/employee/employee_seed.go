package employee

// SeedData returns the demo directory the dashboard ships with.
func SeedData() []Employee {
	return []Employee{
		{
			ID:         1,
			Name:       "John Doe",
			Email:      "john.doe@example.com",
			Phone:      "(123) 456-7890",
			Department: "Engineering",
			Role:       "Senior Developer",
			Status:     StatusActive,
			JoinDate:   "2020-01-15",
			Avatar:     "/placeholder.svg?height=100&width=100",
			Manager:    "Jane Smith",
			Address:    "123 Main St, Anytown, USA",
			Skills:     []string{"JavaScript", "React", "Node.js"},
			Projects:   []string{"Project Alpha", "Project Beta"},
			Salary:     85000,
		},
		{
			ID:         2,
			Name:       "Jane Smith",
			Email:      "jane.smith@example.com",
			Phone:      "(234) 567-8901",
			Department: "Engineering",
			Role:       "Engineering Manager",
			Status:     StatusActive,
			JoinDate:   "2019-03-10",
			Avatar:     "/placeholder.svg?height=100&width=100",
			Manager:    "Michael Johnson",
			Address:    "456 Oak Ave, Somewhere, USA",
			Skills:     []string{"Leadership", "Project Management", "System Architecture"},
			Projects:   []string{"Project Alpha", "Project Gamma"},
			Salary:     110000,
		},
		{
			ID:         3,
			Name:       "Michael Johnson",
			Email:      "michael.johnson@example.com",
			Phone:      "(345) 678-9012",
			Department: "Executive",
			Role:       "CTO",
			Status:     StatusActive,
			JoinDate:   "2018-05-22",
			Avatar:     "/placeholder.svg?height=100&width=100",
			Manager:    "CEO",
			Address:    "789 Pine Blvd, Elsewhere, USA",
			Skills:     []string{"Strategic Planning", "Team Leadership", "Technology Vision"},
			Projects:   []string{"Company Strategy", "Technology Roadmap"},
			Salary:     160000,
		},
		{
			ID:         4,
			Name:       "Emily Davis",
			Email:      "emily.davis@example.com",
			Phone:      "(456) 789-0123",
			Department: "HR",
			Role:       "HR Manager",
			Status:     StatusActive,
			JoinDate:   "2019-08-15",
			Avatar:     "/placeholder.svg?height=100&width=100",
			Manager:    "Michael Johnson",
			Address:    "101 Maple Dr, Nowhere, USA",
			Skills:     []string{"Recruitment", "Employee Relations", "Policy Development"},
			Projects:   []string{"Employee Handbook", "Recruitment Drive"},
			Salary:     95000,
		},
		{
			ID:         5,
			Name:       "Robert Wilson",
			Email:      "robert.wilson@example.com",
			Phone:      "(567) 890-1234",
			Department: "Marketing",
			Role:       "Marketing Specialist",
			Status:     StatusActive,
			JoinDate:   "2021-02-10",
			Avatar:     "/placeholder.svg?height=100&width=100",
			Manager:    "Sarah Thompson",
			Address:    "202 Cedar St, Anywhere, USA",
			Skills:     []string{"Digital Marketing", "Content Creation", "SEO"},
			Projects:   []string{"Brand Refresh", "Social Media Campaign"},
			Salary:     75000,
		},
		{
			ID:         6,
			Name:       "Sarah Thompson",
			Email:      "sarah.thompson@example.com",
			Phone:      "(678) 901-2345",
			Department: "Marketing",
			Role:       "Marketing Director",
			Status:     StatusActive,
			JoinDate:   "2019-11-05",
			Avatar:     "/placeholder.svg?height=100&width=100",
			Manager:    "Michael Johnson",
			Address:    "303 Birch Ave, Someplace, USA",
			Skills:     []string{"Marketing Strategy", "Brand Management", "Team Leadership"},
			Projects:   []string{"Market Expansion", "Brand Refresh"},
			Salary:     105000,
		},
		{
			ID:         7,
			Name:       "David Brown",
			Email:      "david.brown@example.com",
			Phone:      "(789) 012-3456",
			Department: "Finance",
			Role:       "Financial Analyst",
			Status:     StatusActive,
			JoinDate:   "2020-07-20",
			Avatar:     "/placeholder.svg?height=100&width=100",
			Manager:    "Lisa Miller",
			Address:    "404 Elm St, Otherplace, USA",
			Skills:     []string{"Financial Analysis", "Budgeting", "Forecasting"},
			Projects:   []string{"Annual Budget", "Cost Reduction"},
			Salary:     80000,
		},
		{
			ID:         8,
			Name:       "Lisa Miller",
			Email:      "lisa.miller@example.com",
			Phone:      "(890) 123-4567",
			Department: "Finance",
			Role:       "Finance Director",
			Status:     StatusActive,
			JoinDate:   "2018-09-15",
			Avatar:     "/placeholder.svg?height=100&width=100",
			Manager:    "Michael Johnson",
			Address:    "505 Walnut Blvd, Lastplace, USA",
			Skills:     []string{"Financial Planning", "Risk Management", "Strategic Finance"},
			Projects:   []string{"Financial Strategy", "Investor Relations"},
			Salary:     115000,
		},
	}
}
