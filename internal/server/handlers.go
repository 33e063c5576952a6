package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Houeta/hrms-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RecordService is the surface of the record-keeping service the HTTP
// handlers depend on.
type RecordService interface {
	CreateEmployee(ctx context.Context, req models.EmployeeRequest) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
	MarkAttendance(ctx context.Context, req models.AttendanceRequest) (models.Attendance, error)
	ListAttendance(ctx context.Context, employeeID, dateFrom, dateTo string) ([]models.Attendance, error)
	Stats(ctx context.Context) ([]models.AttendanceStats, error)
}

type Endpoint struct {
	log     *slog.Logger
	service RecordService
}

// Register wires the record-keeping routes into the given router group.
func Register(r *gin.RouterGroup, log *slog.Logger, service RecordService) {
	endpoint := &Endpoint{log: log, service: service}
	r.POST("/employees", endpoint.CreateEmployee)
	r.GET("/employees", endpoint.ListEmployees)
	r.GET("/employees/:employee_id", endpoint.GetEmployee)
	r.DELETE("/employees/:employee_id", endpoint.DeleteEmployee)
	r.POST("/attendance", endpoint.MarkAttendance)
	r.GET("/attendance", endpoint.ListAttendance)
	r.GET("/attendance/stats", endpoint.Stats)
}

func (ep *Endpoint) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, NewErrorResponse(err.Error()))
		return
	}

	employee, err := ep.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		renderError(c, ep.log, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (ep *Endpoint) ListEmployees(c *gin.Context) {
	employees, err := ep.service.ListEmployees(c.Request.Context())
	if err != nil {
		renderError(c, ep.log, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (ep *Endpoint) GetEmployee(c *gin.Context) {
	employee, err := ep.service.GetEmployee(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		renderError(c, ep.log, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (ep *Endpoint) DeleteEmployee(c *gin.Context) {
	if err := ep.service.DeleteEmployee(c.Request.Context(), c.Param("employee_id")); err != nil {
		renderError(c, ep.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ep *Endpoint) MarkAttendance(c *gin.Context) {
	var req models.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, NewErrorResponse(err.Error()))
		return
	}

	record, err := ep.service.MarkAttendance(c.Request.Context(), req)
	if err != nil {
		renderError(c, ep.log, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (ep *Endpoint) ListAttendance(c *gin.Context) {
	records, err := ep.service.ListAttendance(
		c.Request.Context(),
		c.Query("employee_id"),
		c.Query("date_from"),
		c.Query("date_to"),
	)
	if err != nil {
		renderError(c, ep.log, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (ep *Endpoint) Stats(c *gin.Context) {
	stats, err := ep.service.Stats(c.Request.Context())
	if err != nil {
		renderError(c, ep.log, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
