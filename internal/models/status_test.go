package models_test

import (
	"encoding/json"
	"testing"

	"github.com/Houeta/hrms-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceStatus_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, models.StatusPresent.Valid())
	assert.True(t, models.StatusAbsent.Valid())
	assert.False(t, models.AttendanceStatus("Late").Valid())
	assert.False(t, models.AttendanceStatus("").Valid())
	assert.False(t, models.AttendanceStatus("present").Valid())
}

func TestAttendanceStatus_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var status models.AttendanceStatus

	require.NoError(t, json.Unmarshal([]byte(`"Present"`), &status))
	assert.Equal(t, models.StatusPresent, status)

	require.NoError(t, json.Unmarshal([]byte(`"Absent"`), &status))
	assert.Equal(t, models.StatusAbsent, status)
}

func TestAttendanceStatus_UnmarshalJSON_Rejected(t *testing.T) {
	t.Parallel()

	var status models.AttendanceStatus

	require.Error(t, json.Unmarshal([]byte(`"Late"`), &status))
	require.Error(t, json.Unmarshal([]byte(`42`), &status))
}
