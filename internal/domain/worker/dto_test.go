package worker

import (
	"errors"
	"testing"

	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateWorkerRequest() CreateWorkerRequest {
	return CreateWorkerRequest{
		Username:        "worker-one",
		Email:           "worker@example.com",
		Password:        "password123",
		Password2:       "password123",
		FirstName:       "Ann",
		LastName:        "Smith",
		QualificationID: "q-1",
		WorkingHours:    40,
		Salary:          1000,
		DayStart:        "09:00",
		DayEnd:          "17:00",
	}
}

func TestCreateWorkerRequestValidate_Valid(t *testing.T) {
	t.Parallel()
	r := validCreateWorkerRequest()
	assert.NoError(t, r.Validate())
}

func TestCreateWorkerRequestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()
	r := CreateWorkerRequest{
		Email:     "not-an-email",
		Password:  "short",
		Password2: "different",
		DayStart:  "9am",
		DayEnd:    "late",
	}

	err := r.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	fields := errs.ToMap()
	for _, field := range []string{
		"username", "email", "password", "password2", "first_name",
		"last_name", "qualification_id", "working_hours", "day_start", "day_end",
	} {
		assert.Contains(t, fields, field)
	}
}

func TestCreateWorkerRequestValidate_DayEndBeforeDayStart(t *testing.T) {
	t.Parallel()
	r := validCreateWorkerRequest()
	r.DayStart = "17:00"
	r.DayEnd = "09:00"

	err := r.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, "day_end must be after day_start", errs.ToMap()["day_end"])
}

func TestLogFilterValidate(t *testing.T) {
	t.Parallel()

	f := LogFilter{Type: "TD"}
	assert.NoError(t, f.Validate())

	f = LogFilter{}
	assert.NoError(t, f.Validate())

	f = LogFilter{Type: "XX"}
	assert.Error(t, f.Validate())
}

func TestScheduleWeek(t *testing.T) {
	t.Parallel()

	s := DefaultSchedule("w-1")
	assert.True(t, s.Week().HasWorkingDay())

	s.Saturday = false
	s.Sunday = false
	week := s.Week()
	assert.True(t, week[0])  // Monday
	assert.False(t, week[5]) // Saturday
	assert.False(t, week[6]) // Sunday
}