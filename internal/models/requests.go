package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// EmployeeRequest is the payload for creating an employee.
type EmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1,max=50"`
	FullName   string `json:"full_name"   validate:"required,min=1,max=100"`
	Email      string `json:"email"       validate:"required,email"`
	Department string `json:"department"  validate:"required,min=1,max=100"`
}

// Normalize trims surrounding whitespace so that length and emptiness
// checks apply to the meaningful content.
func (r *EmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)
}

// Validate normalizes the payload and checks its shape.
func (r *EmployeeRequest) Validate() error {
	r.Normalize()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid employee payload: %w", err)
	}

	return nil
}

// AttendanceRequest is the payload for marking attendance.
type AttendanceRequest struct {
	EmployeeID string           `json:"employee_id" validate:"required,min=1,max=50"`
	Date       Date             `json:"date"`
	Status     AttendanceStatus `json:"status"`
}

// Validate checks the payload shape against the given current time. The
// attendance date may equal today but must not lie in the future.
func (r *AttendanceRequest) Validate(now time.Time) error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid attendance payload: %w", err)
	}

	if r.Date.IsZero() {
		return errors.New("date is required")
	}

	if !r.Status.Valid() {
		return fmt.Errorf("invalid status %q, expected %q or %q", r.Status, StatusPresent, StatusAbsent)
	}

	if r.Date.After(NewDate(now).Time) {
		return fmt.Errorf("attendance date %s cannot be in the future", r.Date)
	}

	return nil
}
