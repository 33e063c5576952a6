package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/hrms-api/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateEmployee inserts a new employee and returns it with the
// storage-assigned identifier. A unique-constraint violation on either
// employee_id or email is reported as ErrDuplicate.
func (r *Repository) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_employee").Observe(duration)
	}()
	query := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	err := r.db.QueryRow(ctx, query, employee.EmployeeID, employee.FullName, employee.Email, employee.Department).
		Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Employee{}, fmt.Errorf("%w: %w", ErrDuplicate, err)
		}
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// GetEmployeeByID retrieves an employee by their business key.
func (r *Repository) GetEmployeeByID(ctx context.Context, employeeID string) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()
	query := `SELECT id, employee_id, full_name, email, department FROM employees WHERE employee_id=$1`

	err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&result.ID, &result.EmployeeID, &result.FullName, &result.Email, &result.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// GetEmployeeByEmail retrieves an employee by their email address.
func (r *Repository) GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_email").Observe(duration)
	}()
	query := `SELECT id, employee_id, full_name, email, department FROM employees WHERE email=$1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&result.ID, &result.EmployeeID, &result.FullName, &result.Email, &result.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return result, nil
}

// ListEmployees returns every employee in primary-key order.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(duration)
	}()
	query := `SELECT id, employee_id, full_name, email, department FROM employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var emp models.Employee
		if err = rows.Scan(&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// DeleteEmployee removes an employee by their business key. Attendance
// records are removed by the cascading foreign key.
func (r *Repository) DeleteEmployee(ctx context.Context, employeeID string) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(duration)
	}()
	query := `DELETE FROM employees WHERE employee_id=$1`

	tag, err := r.db.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
