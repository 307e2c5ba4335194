package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/HuginnARaven/WorkerOnline-server/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func testInit(t *testing.T) {
	if testDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "connect to test database")
}

func truncateTables(t *testing.T, ctx context.Context) {
	testInit(t)
	for _, table := range []string{"task_appointments", "tasks", "workers", "qualifications", "companies", "users"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestCompany(t *testing.T, ctx context.Context) string {
	id := uuid.NewString()
	suffix := fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
	_, err := testDB.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, role)
		VALUES ($1, $2, $3, 'x', 'C')
	`, id, "company-"+suffix, "company-"+suffix+"@test.local")
	require.NoError(t, err)
	_, err = testDB.Exec(ctx, `
		INSERT INTO companies (id, name) VALUES ($1, 'Test Company')
	`, id)
	require.NoError(t, err)
	return id
}

func createTestQualification(t *testing.T, ctx context.Context, companyID string, modifier int) string {
	id := uuid.NewString()
	_, err := testDB.Exec(ctx, `
		INSERT INTO qualifications (id, company_id, name, modifier)
		VALUES ($1, $2, 'Tier', $3)
	`, id, companyID, modifier)
	require.NoError(t, err)
	return id
}

func createTestTask(t *testing.T, ctx context.Context, companyID, difficultyID string, estimate int) string {
	id := uuid.NewString()
	_, err := testDB.Exec(ctx, `
		INSERT INTO tasks (id, company_id, difficulty_id, title, estimate_hours)
		VALUES ($1, $2, $3, 'Test task', $4)
	`, id, companyID, difficultyID, estimate)
	require.NoError(t, err)
	return id
}

func createTestWorker(t *testing.T, ctx context.Context, companyID, qualificationID string) string {
	id := uuid.NewString()
	suffix := fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
	_, err := testDB.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, role)
		VALUES ($1, $2, $3, 'x', 'W')
	`, id, "worker-"+suffix, "worker-"+suffix+"@test.local")
	require.NoError(t, err)
	_, err = testDB.Exec(ctx, `
		INSERT INTO workers (id, employer_id, qualification_id, first_name, last_name, working_hours, day_start, day_end)
		VALUES ($1, $2, $3, 'Test', 'Worker', 40, '09:00', '17:00')
	`, id, companyID, qualificationID)
	require.NoError(t, err)
	return id
}

func newTestAppointment(taskID, workerID string) appointment.Appointment {
	return appointment.Appointment{
		TaskID:              taskID,
		WorkerID:            workerID,
		DifficultyForWorker: 1,
		TimeStart:           time.Now().UTC(),
		Deadline:            time.Now().UTC().Add(24 * time.Hour),
	}
}

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	companyID := createTestCompany(t, ctx)
	qualID := createTestQualification(t, ctx, companyID, 2)
	taskID := createTestTask(t, ctx, companyID, qualID, 8)
	workerID := createTestWorker(t, ctx, companyID, qualID)

	repo := postgresql.NewAppointmentRepository(testDB)

	created, err := repo.Create(ctx, newTestAppointment(taskID, workerID))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, taskID, created.TaskID)
	assert.Equal(t, workerID, created.WorkerID)
	assert.False(t, created.IsDone)
	assert.Nil(t, created.TimeEnd)
}

func TestAppointmentRepository_Create_TaskAlreadyAppointed(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	companyID := createTestCompany(t, ctx)
	qualID := createTestQualification(t, ctx, companyID, 2)
	taskID := createTestTask(t, ctx, companyID, qualID, 8)
	workerID := createTestWorker(t, ctx, companyID, qualID)
	otherWorkerID := createTestWorker(t, ctx, companyID, qualID)

	repo := postgresql.NewAppointmentRepository(testDB)

	_, err := repo.Create(ctx, newTestAppointment(taskID, workerID))
	require.NoError(t, err)

	// Second appointment for the same task, even by another worker.
	_, err = repo.Create(ctx, newTestAppointment(taskID, otherWorkerID))
	assert.ErrorIs(t, err, appointment.ErrTaskAlreadyAppointed)
}

func TestAppointmentRepository_Create_WorkerBusy(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	companyID := createTestCompany(t, ctx)
	qualID := createTestQualification(t, ctx, companyID, 2)
	taskID := createTestTask(t, ctx, companyID, qualID, 8)
	otherTaskID := createTestTask(t, ctx, companyID, qualID, 8)
	workerID := createTestWorker(t, ctx, companyID, qualID)

	repo := postgresql.NewAppointmentRepository(testDB)

	_, err := repo.Create(ctx, newTestAppointment(taskID, workerID))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestAppointment(otherTaskID, workerID))
	assert.ErrorIs(t, err, appointment.ErrWorkerBusy)
}

func TestAppointmentRepository_MarkDone(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	companyID := createTestCompany(t, ctx)
	qualID := createTestQualification(t, ctx, companyID, 2)
	taskID := createTestTask(t, ctx, companyID, qualID, 8)
	workerID := createTestWorker(t, ctx, companyID, qualID)

	repo := postgresql.NewAppointmentRepository(testDB)

	created, err := repo.Create(ctx, newTestAppointment(taskID, workerID))
	require.NoError(t, err)

	done, err := repo.MarkDone(ctx, created.ID, workerID)
	require.NoError(t, err)
	assert.True(t, done.IsDone)
	require.NotNil(t, done.TimeEnd)

	// The transition happens exactly once.
	_, err = repo.MarkDone(ctx, created.ID, workerID)
	assert.ErrorIs(t, err, appointment.ErrAlreadyDone)
}

func TestAppointmentRepository_MarkDone_WrongWorker(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	companyID := createTestCompany(t, ctx)
	qualID := createTestQualification(t, ctx, companyID, 2)
	taskID := createTestTask(t, ctx, companyID, qualID, 8)
	workerID := createTestWorker(t, ctx, companyID, qualID)
	otherWorkerID := createTestWorker(t, ctx, companyID, qualID)

	repo := postgresql.NewAppointmentRepository(testDB)

	created, err := repo.Create(ctx, newTestAppointment(taskID, workerID))
	require.NoError(t, err)

	_, err = repo.MarkDone(ctx, created.ID, otherWorkerID)
	assert.ErrorIs(t, err, appointment.ErrAppointmentNotFound)
}

func TestAppointmentRepository_DoneWorkerCanTakeNewTask(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	companyID := createTestCompany(t, ctx)
	qualID := createTestQualification(t, ctx, companyID, 2)
	taskID := createTestTask(t, ctx, companyID, qualID, 8)
	nextTaskID := createTestTask(t, ctx, companyID, qualID, 8)
	workerID := createTestWorker(t, ctx, companyID, qualID)

	repo := postgresql.NewAppointmentRepository(testDB)

	created, err := repo.Create(ctx, newTestAppointment(taskID, workerID))
	require.NoError(t, err)
	_, err = repo.MarkDone(ctx, created.ID, workerID)
	require.NoError(t, err)

	// The active-per-worker constraint only covers not-done rows.
	_, err = repo.Create(ctx, newTestAppointment(nextTaskID, workerID))
	assert.NoError(t, err)
}

func TestAppointmentRepository_ActiveWorkerIDs(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	companyID := createTestCompany(t, ctx)
	qualID := createTestQualification(t, ctx, companyID, 2)
	taskID := createTestTask(t, ctx, companyID, qualID, 8)
	busyWorkerID := createTestWorker(t, ctx, companyID, qualID)
	idleWorkerID := createTestWorker(t, ctx, companyID, qualID)

	repo := postgresql.NewAppointmentRepository(testDB)

	_, err := repo.Create(ctx, newTestAppointment(taskID, busyWorkerID))
	require.NoError(t, err)

	busy, err := repo.ActiveWorkerIDs(ctx, companyID)
	require.NoError(t, err)
	assert.True(t, busy[busyWorkerID])
	assert.False(t, busy[idleWorkerID])
}