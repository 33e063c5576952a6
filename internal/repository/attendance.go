package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Houeta/hrms-api/internal/models"
)

// AttendanceFilter narrows an attendance listing. Zero-valued fields are
// not applied; the date bounds are inclusive.
type AttendanceFilter struct {
	EmployeeID string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// UpsertAttendance inserts an attendance record or, when one already
// exists for the (employee_id, date) pair, updates its status in place.
// The unique constraint on the pair makes this safe under concurrent
// writers without a pre-check.
func (r *Repository) UpsertAttendance(
	ctx context.Context, employeeID string, date models.Date, status models.AttendanceStatus,
) (models.Attendance, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("upsert_attendance").Observe(duration)
	}()
	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO UPDATE SET status = EXCLUDED.status
		RETURNING id;
	`

	record := models.Attendance{EmployeeID: employeeID, Date: date, Status: status}

	err := r.db.QueryRow(ctx, query, employeeID, date.Time, status.String()).Scan(&record.ID)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return record, nil
}

// ListAttendance returns attendance records matching the filter, newest
// date first. The employee name is resolved through a join and left null
// when the employee no longer exists.
func (r *Repository) ListAttendance(ctx context.Context, filter AttendanceFilter) ([]models.Attendance, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_attendance").Observe(duration)
	}()

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, e.full_name
		FROM attendance a
		LEFT JOIN employees e ON e.employee_id = a.employee_id`

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, a.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]models.Attendance, 0)
	for rows.Next() {
		var record models.Attendance
		var date time.Time
		var status string
		if err = rows.Scan(&record.ID, &record.EmployeeID, &date, &status, &record.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		record.Date = models.NewDate(date)
		record.Status = models.AttendanceStatus(status)
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// CountAttendanceByStatus aggregates attendance into per-employee
// Present/Absent counts in a single pass. Employees without attendance
// do not appear in the result.
func (r *Repository) CountAttendanceByStatus(ctx context.Context) (map[string]models.StatusCounts, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("count_attendance_by_status").Observe(duration)
	}()
	query := `
		SELECT employee_id,
			COUNT(*) FILTER (WHERE status = 'Present') AS total_present,
			COUNT(*) FILTER (WHERE status = 'Absent') AS total_absent
		FROM attendance
		GROUP BY employee_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]models.StatusCounts)
	for rows.Next() {
		var employeeID string
		var present, absent int
		if err = rows.Scan(&employeeID, &present, &absent); err != nil {
			return nil, fmt.Errorf("failed to scan attendance counts: %w", err)
		}
		counts[employeeID] = models.StatusCounts{Present: present, Absent: absent}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance counts: %w", err)
	}

	return counts, nil
}
