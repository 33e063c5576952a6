package models

import (
	"encoding/json"
	"fmt"
)

// AttendanceStatus is the closed set of attendance outcomes for one day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether the status is one of the enumerated values.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

func (s AttendanceStatus) String() string {
	return string(s)
}

func (s *AttendanceStatus) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}

	status := AttendanceStatus(value)
	if !status.Valid() {
		return fmt.Errorf("invalid status %q, expected %q or %q", value, StatusPresent, StatusAbsent)
	}

	*s = status

	return nil
}
