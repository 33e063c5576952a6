package models

// Attendance represents one employee's Present/Absent status for one
// calendar date. EmployeeName is never stored; it is resolved from the
// employee record when a response is built and is null when the employee
// no longer exists.
type Attendance struct {
	ID           int64            `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	Date         Date             `json:"date"`
	Status       AttendanceStatus `json:"status"`
	EmployeeName *string          `json:"employee_name"`
}

// AttendanceStats holds derived per-employee attendance counts.
type AttendanceStats struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TotalPresent int    `json:"total_present"`
	TotalAbsent  int    `json:"total_absent"`
	TotalDays    int    `json:"total_days"`
}

// StatusCounts is the per-employee result of the attendance aggregation.
type StatusCounts struct {
	Present int
	Absent  int
}
