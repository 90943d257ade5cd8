package dogs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dog-registry/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	dogs []Dog
}

func (r *testRepo) Create(ctx context.Context, d Dog) error {
	r.dogs = append(r.dogs, d)
	return nil
}

func (r *testRepo) All(ctx context.Context) ([]Dog, error) { return r.dogs, nil }

func (r *testRepo) First(ctx context.Context) (Dog, error) {
	if len(r.dogs) == 0 {
		return Dog{}, errors.New("repo: empty")
	}
	return r.dogs[0], nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) { return len(r.dogs), nil }

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, d Dog) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockRepo) All(ctx context.Context) ([]Dog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Dog), args.Error(1)
}

func (m *mockRepo) First(ctx context.Context) (Dog, error) {
	args := m.Called(ctx)
	return args.Get(0).(Dog), args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type logEntry struct {
	Level string
	Msg   string
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) With(map[string]any) logger.Logger { return l }
func (l *recordingLogger) Debug(msg string, _ map[string]any) { l.add("debug", msg) }
func (l *recordingLogger) Info(msg string, _ map[string]any)  { l.add("info", msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]any)  { l.add("warn", msg) }
func (l *recordingLogger) Error(msg string, _ map[string]any) { l.add("error", msg) }

func (l *recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{Level: level, Msg: msg})
}

func (l *recordingLogger) Entries() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

type countingRecorder struct {
	created, failed, rejected int
}

func (c *countingRecorder) Created()          { c.created++ }
func (c *countingRecorder) CreationFailed()   { c.failed++ }
func (c *countingRecorder) ValidationFailed() { c.rejected++ }

func validInput(exact bool) Input {
	return Input{
		FieldName:             "Rex",
		FieldBirthDate:        "2019-03-08",
		FieldIsBirthDateExact: exact,
	}
}

func newTestService(repo Repository, log logger.Logger, rec Recorder) *Service {
	svc := NewService(repo, log, rec)
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestService_Handle_CreatesDogWithExactBirthDate(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo, nil, nil)

	out := svc.Handle(context.Background(), validInput(true))
	require.True(t, out.Succeeded())

	n, _ := repo.Count(context.Background())
	assert.Equal(t, 1, n)

	d, err := repo.First(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Rex", d.Name)
	assert.Equal(t, "2019-03-08", d.BirthDate.Format(DateLayout))
	assert.True(t, d.IsBirthDateExact)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, d, out.Dog)
}

func TestService_Handle_CreatesDogWithNonExactBirthDate(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo, nil, nil)

	out := svc.Handle(context.Background(), validInput(false))
	require.True(t, out.Succeeded())

	d, err := repo.First(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Rex", d.Name)
	assert.Equal(t, "2019-03-08", d.BirthDate.Format(DateLayout))
	assert.False(t, d.IsBirthDateExact)
}

func TestService_Handle_SuccessRedirectsWithFlash(t *testing.T) {
	rec := &countingRecorder{}
	log := &recordingLogger{}
	svc := newTestService(&testRepo{}, log, rec)

	out := svc.Handle(context.Background(), validInput(true))

	assert.Equal(t, OutcomeCreated, out.Kind)
	assert.Equal(t, CreateFormPath, out.Redirect)
	assert.Equal(t, "Dog created successfully", out.Flash["success"])
	assert.Empty(t, out.Errors)
	assert.Empty(t, log.Entries())
	assert.Equal(t, 1, rec.created)
}

func TestService_Handle_EmptyInputFailsWithoutTouchingStore(t *testing.T) {
	repo := new(mockRepo)
	log := &recordingLogger{}
	rec := &countingRecorder{}
	svc := newTestService(repo, log, rec)

	out := svc.Handle(context.Background(), Input{})

	assert.Equal(t, OutcomeInvalid, out.Kind)
	assert.True(t, out.Errors.Has(FieldName))
	assert.True(t, out.Errors.Has(FieldBirthDate))
	assert.Empty(t, out.Flash)
	assert.Empty(t, log.Entries(), "validation errors are not logged")
	assert.Equal(t, 1, rec.rejected)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Handle_StoreFailureIsLoggedAndHidden(t *testing.T) {
	const exceptionMessage = "Forced Exception"

	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("dogs.Dog")).
		Return(errors.New(exceptionMessage)).Once()

	log := &recordingLogger{}
	rec := &countingRecorder{}
	svc := newTestService(repo, log, rec)

	out := svc.Handle(context.Background(), validInput(true))

	repo.AssertExpectations(t)
	assert.False(t, out.Succeeded())
	assert.Equal(t, OutcomeFailed, out.Kind)
	assert.Equal(t, CreateFormPath, out.Redirect)
	require.NotEmpty(t, out.Errors)
	for _, msg := range out.Errors {
		assert.NotContains(t, msg, exceptionMessage)
	}

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Level)
	assert.Equal(t, "Error during dog creation: "+exceptionMessage, entries[0].Msg)
	assert.Equal(t, 1, rec.failed)
	assert.Zero(t, rec.created)
}

func TestService_Handle_IdenticalSubmissionsCreateTwoRecords(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil, nil)

	first := svc.Handle(context.Background(), validInput(true))
	second := svc.Handle(context.Background(), validInput(true))

	require.True(t, first.Succeeded())
	require.True(t, second.Succeeded())
	assert.NotEqual(t, first.Dog.ID, second.Dog.ID)

	n, _ := repo.Count(context.Background())
	assert.Equal(t, 2, n)
}

func TestService_Create_SetsTimestamps(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo, nil, nil)
	svc.newID = func() string { return "dog-1" }

	d, err := svc.Create(context.Background(), CreateInput{
		Name:      "Luna",
		BirthDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "dog-1", d.ID)
	assert.Equal(t, time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC), d.CreatedAt)
	assert.Equal(t, d.CreatedAt, d.UpdatedAt)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "created", OutcomeCreated.String())
	assert.Equal(t, "invalid", OutcomeInvalid.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", OutcomeKind(0).String())
}
