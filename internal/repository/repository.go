package repository

import (
	"context"
	"errors"

	"github.com/Houeta/hrms-api/internal/metrics"
	"github.com/Houeta/hrms-api/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write violates a unique constraint.
var ErrDuplicate = errors.New("record already exists")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (models.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// AttendanceRepoIface represents the interface for interacting with attendance data in the repository.
type AttendanceRepoIface interface {
	UpsertAttendance(
		ctx context.Context, employeeID string, date models.Date, status models.AttendanceStatus,
	) (models.Attendance, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]models.Attendance, error)
	CountAttendanceByStatus(ctx context.Context) (map[string]models.StatusCounts, error)
}

func NewAttendanceRepository(db Database, mtr *metrics.Metrics) AttendanceRepoIface {
	return &Repository{db: db, metrics: mtr}
}
