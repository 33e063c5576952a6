package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Houeta/hrms-api/internal/models"
	"github.com/Houeta/hrms-api/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upsertAttendanceQuery = `
	INSERT INTO attendance (employee_id, date, status)
	VALUES ($1, $2, $3)
	ON CONFLICT (employee_id, date) DO UPDATE SET status = EXCLUDED.status
	RETURNING id;
`

const listAttendanceBaseQuery = `
	SELECT a.id, a.employee_id, a.date, a.status, e.full_name
	FROM attendance a
	LEFT JOIN employees e ON e.employee_id = a.employee_id`

const countAttendanceQuery = `
	SELECT employee_id,
		COUNT(*) FILTER (WHERE status = 'Present') AS total_present,
		COUNT(*) FILTER (WHERE status = 'Absent') AS total_absent
	FROM attendance
	GROUP BY employee_id`

func TestUpsertAttendance_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	date := models.NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(regexp.QuoteMeta(upsertAttendanceQuery)).
		WithArgs("E1", date.Time, "Present").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

	repo := repository.NewAttendanceRepository(mock, newTestMetrics())
	record, err := repo.UpsertAttendance(context.Background(), "E1", date, models.StatusPresent)

	require.NoError(t, err)
	assert.Equal(t, int64(10), record.ID)
	assert.Equal(t, "E1", record.EmployeeID)
	assert.Equal(t, models.StatusPresent, record.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAttendance_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	date := models.NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(regexp.QuoteMeta(upsertAttendanceQuery)).
		WithArgs("E1", date.Time, "Absent").
		WillReturnError(assert.AnError)

	repo := repository.NewAttendanceRepository(mock, newTestMetrics())
	_, err = repo.UpsertAttendance(context.Background(), "E1", date, models.StatusAbsent)

	require.Error(t, err)
	assert.Equal(t, "failed to upsert attendance: "+assert.AnError.Error(), err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAttendance_NoFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	name := "Alice"
	expectedRows := pgxmock.NewRows([]string{"id", "employee_id", "date", "status", "full_name"}).
		AddRow(int64(2), "E1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Absent", &name).
		AddRow(int64(1), "E1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Present", &name)

	mock.ExpectQuery(regexp.QuoteMeta(listAttendanceBaseQuery + " ORDER BY a.date DESC, a.id DESC")).
		WillReturnRows(expectedRows)

	repo := repository.NewAttendanceRepository(mock, newTestMetrics())
	records, err := repo.ListAttendance(context.Background(), repository.AttendanceFilter{})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-02", records[0].Date.String())
	assert.Equal(t, models.StatusAbsent, records[0].Status)
	require.NotNil(t, records[0].EmployeeName)
	assert.Equal(t, "Alice", *records[0].EmployeeName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAttendance_AllFilters(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	query := listAttendanceBaseQuery +
		" WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3 ORDER BY a.date DESC, a.id DESC"

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("E1", from, to).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "date", "status", "full_name"}))

	repo := repository.NewAttendanceRepository(mock, newTestMetrics())
	records, err := repo.ListAttendance(context.Background(), repository.AttendanceFilter{
		EmployeeID: "E1",
		DateFrom:   &from,
		DateTo:     &to,
	})

	require.NoError(t, err)
	assert.Empty(t, records)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAttendance_MissingEmployeeName(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	expectedRows := pgxmock.NewRows([]string{"id", "employee_id", "date", "status", "full_name"}).
		AddRow(int64(1), "gone", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Present", (*string)(nil))

	mock.ExpectQuery(regexp.QuoteMeta(listAttendanceBaseQuery + " ORDER BY a.date DESC, a.id DESC")).
		WillReturnRows(expectedRows)

	repo := repository.NewAttendanceRepository(mock, newTestMetrics())
	records, err := repo.ListAttendance(context.Background(), repository.AttendanceFilter{})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].EmployeeName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAttendanceByStatus_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	expectedRows := pgxmock.NewRows([]string{"employee_id", "total_present", "total_absent"}).
		AddRow("E1", 3, 2).
		AddRow("E2", 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(countAttendanceQuery)).WillReturnRows(expectedRows)

	repo := repository.NewAttendanceRepository(mock, newTestMetrics())
	counts, err := repo.CountAttendanceByStatus(context.Background())

	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, models.StatusCounts{Present: 3, Absent: 2}, counts["E1"])
	assert.Equal(t, models.StatusCounts{Present: 1, Absent: 0}, counts["E2"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAttendanceByStatus_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(countAttendanceQuery)).WillReturnError(assert.AnError)

	repo := repository.NewAttendanceRepository(mock, newTestMetrics())
	_, err = repo.CountAttendanceByStatus(context.Background())

	require.Error(t, err)
	assert.Equal(t, "failed to count attendance by status: "+assert.AnError.Error(), err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
