package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/hrms-api/internal/models"
	"github.com/Houeta/hrms-api/internal/repository"
)

// Error kinds the HTTP layer maps onto status codes.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Service composes validation and storage calls into the record-keeping
// operations. The storage unique indexes remain the source of truth for
// uniqueness; the service's existence pre-checks only produce friendlier
// error messages.
type Service struct {
	log        *slog.Logger
	employees  repository.EmployeeRepoIface
	attendance repository.AttendanceRepoIface
	now        func() time.Time
}

func NewService(
	log *slog.Logger,
	employees repository.EmployeeRepoIface,
	attendance repository.AttendanceRepoIface,
) *Service {
	return &Service{log: log, employees: employees, attendance: attendance, now: time.Now}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "records"),
	)
}

// CreateEmployee validates and persists a new employee. Both the advisory
// pre-checks and a unique-index violation at insert time surface as
// ErrConflict.
func (s *Service) CreateEmployee(ctx context.Context, req models.EmployeeRequest) (models.Employee, error) {
	const opn = "Records.CreateEmployee"
	log := s.initLogger(opn)

	if err := req.Validate(); err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if _, err := s.employees.GetEmployeeByID(ctx, req.EmployeeID); err == nil {
		return models.Employee{}, fmt.Errorf("%w: employee id %q already exists", ErrConflict, req.EmployeeID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return models.Employee{}, fmt.Errorf("failed to check employee id: %w", err)
	}

	if _, err := s.employees.GetEmployeeByEmail(ctx, req.Email); err == nil {
		return models.Employee{}, fmt.Errorf("%w: email %q already exists", ErrConflict, req.Email)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return models.Employee{}, fmt.Errorf("failed to check employee email: %w", err)
	}

	employee, err := s.employees.CreateEmployee(ctx, models.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race against a concurrent identical create.
			return models.Employee{}, fmt.Errorf("%w: employee id or email already exists", ErrConflict)
		}
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	log.InfoContext(ctx, "employee created", "employee_id", employee.EmployeeID, "id", employee.ID)

	return employee, nil
}

// ListEmployees returns every employee.
func (s *Service) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employees.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// GetEmployee returns the employee with the given business key.
func (s *Service) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	employee, err := s.employees.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Employee{}, fmt.Errorf("%w: employee %q", ErrNotFound, employeeID)
		}
		return models.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

// DeleteEmployee removes the employee and, through the cascading foreign
// key, their attendance records.
func (s *Service) DeleteEmployee(ctx context.Context, employeeID string) error {
	const opn = "Records.DeleteEmployee"
	log := s.initLogger(opn)

	if err := s.employees.DeleteEmployee(ctx, employeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: employee %q", ErrNotFound, employeeID)
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	log.InfoContext(ctx, "employee deleted", "employee_id", employeeID)

	return nil
}

// MarkAttendance records the status of one employee for one date. A second
// mark for the same (employee, date) pair updates the status in place.
func (s *Service) MarkAttendance(ctx context.Context, req models.AttendanceRequest) (models.Attendance, error) {
	const opn = "Records.MarkAttendance"
	log := s.initLogger(opn)

	if err := req.Validate(s.now()); err != nil {
		return models.Attendance{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	employee, err := s.employees.GetEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Attendance{}, fmt.Errorf("%w: employee %q", ErrNotFound, req.EmployeeID)
		}
		return models.Attendance{}, fmt.Errorf("failed to get employee: %w", err)
	}

	record, err := s.attendance.UpsertAttendance(ctx, req.EmployeeID, req.Date, req.Status)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	record.EmployeeName = &employee.FullName

	log.DebugContext(ctx, "attendance marked",
		"employee_id", req.EmployeeID, "date", req.Date.String(), "status", req.Status.String())

	return record, nil
}

// ListAttendance returns attendance records, optionally narrowed by
// employee and an inclusive date range given as YYYY-MM-DD strings.
func (s *Service) ListAttendance(
	ctx context.Context, employeeID, dateFrom, dateTo string,
) ([]models.Attendance, error) {
	filter := repository.AttendanceFilter{EmployeeID: employeeID}

	if dateFrom != "" {
		parsed, err := models.ParseDate(dateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		filter.DateFrom = &parsed.Time
	}
	if dateTo != "" {
		parsed, err := models.ParseDate(dateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		filter.DateTo = &parsed.Time
	}

	records, err := s.attendance.ListAttendance(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return records, nil
}

// Stats derives per-employee attendance counts. Every employee appears in
// the result, with zero counts when they have no attendance history.
func (s *Service) Stats(ctx context.Context) ([]models.AttendanceStats, error) {
	const opn = "Records.Stats"
	log := s.initLogger(opn)

	counts, err := s.attendance.CountAttendanceByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	employees, err := s.employees.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	stats := make([]models.AttendanceStats, 0, len(employees))
	for _, employee := range employees {
		count := counts[employee.EmployeeID]
		stats = append(stats, models.AttendanceStats{
			EmployeeID:   employee.EmployeeID,
			EmployeeName: employee.FullName,
			TotalPresent: count.Present,
			TotalAbsent:  count.Absent,
			TotalDays:    count.Present + count.Absent,
		})
	}

	log.DebugContext(ctx, "stats computed", "employees", len(employees))

	return stats, nil
}
