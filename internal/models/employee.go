package models

// Employee represents an individual employee in the system.
type Employee struct {
	ID         int64  `json:"id"`          // Storage-assigned identifier
	EmployeeID string `json:"employee_id"` // Unique business key of the employee
	FullName   string `json:"full_name"`   // Full name of the employee
	Email      string `json:"email"`       // Unique email address of the employee
	Department string `json:"department"`  // Department the employee belongs to
}
