package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/events"
)

// mockTx hands out sqlmock transactions. Each Begin arms one commit and one
// rollback so a scope may end either way.
type mockTx struct {
	db        *sqlx.DB
	mock      sqlmock.Sqlmock
	mu        sync.Mutex
	opts      []sql.TxOptions
	commitErr error
	armed     int
}

func newMockTx(t *testing.T) *mockTx {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)
	t.Cleanup(func() { _ = db.Close() })
	return &mockTx{db: sqlx.NewDb(db, "sqlmock"), mock: mock}
}

func (m *mockTx) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	m.mu.Lock()
	m.opts = append(m.opts, *opts)
	if m.armed > 0 {
		m.armed--
	} else {
		m.arm(m.commitErr)
	}
	m.mu.Unlock()
	return m.db.BeginTxx(ctx, opts)
}

func (m *mockTx) arm(commitErr error) {
	m.mock.ExpectBegin()
	if commitErr != nil {
		m.mock.ExpectCommit().WillReturnError(commitErr)
	} else {
		m.mock.ExpectCommit()
	}
	m.mock.ExpectRollback()
}

// prearm registers one scope per entry up front so concurrent scopes never
// add expectations while others are matching. Commits are matched in arming
// order, so the second committer gets the second entry.
func (m *mockTx) prearm(commitErrs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, err := range commitErrs {
		m.arm(err)
		m.armed++
	}
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingDispatcher) Dispatch(evs ...events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evs...)
}

func (r *recordingDispatcher) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Name)
	}
	return out
}

type recordingTxMetrics struct {
	mu       sync.Mutex
	outcomes map[string]string
	events   int
}

func (r *recordingTxMetrics) ObserveTransaction(operation, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcomes == nil {
		r.outcomes = make(map[string]string)
	}
	r.outcomes[operation] = outcome
}

func (r *recordingTxMetrics) ObserveEvents(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events += n
}

type recordingRedemptions struct {
	mu      sync.Mutex
	results []string
}

func (r *recordingRedemptions) ObserveRedemption(key, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, key+":"+result)
}

type stubUsers map[int64]bool

func (s stubUsers) Lookup(_ context.Context, userID int64) (*models.User, error) {
	if !s[userID] {
		return nil, appErrors.Clone(appErrors.ErrUserNonexistent, "")
	}
	return &models.User{UserID: userID}, nil
}

// harness wires every workflow service over one memStore.
type harness struct {
	t          *testing.T
	mem        *memStore
	tx         *mockTx
	dispatched *recordingDispatcher
	redeemed   *recordingRedemptions
	now        time.Time
	tokenSeq   int
	deps       Deps

	schools    *SchoolService
	locations  *LocationService
	courses    *CourseService
	sessions   *SessionService
	attendance *AttendanceService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:          t,
		mem:        newMemStore(),
		tx:         newMockTx(t),
		dispatched: &recordingDispatcher{},
		redeemed:   &recordingRedemptions{},
		now:        time.UnixMilli(1_700_000_000_000),
	}
	coord := NewCoordinator(h.tx, nil,
		WithDispatcher(h.dispatched),
		WithClock(func() time.Time { return h.now }))
	h.deps = Deps{
		Coordinator: coord,
		Stores:      h.mem.stores(),
		Metrics:     h.redeemed,
		Tokens: func() string {
			h.tokenSeq++
			return fmt.Sprintf("key-%d", h.tokenSeq)
		},
	}
	h.schools = NewSchoolService(h.deps, false)
	h.locations = NewLocationService(h.deps)
	h.courses = NewCourseService(h.deps)
	h.sessions = NewSessionService(h.deps)
	h.attendance = NewAttendanceService(h.deps)
	return h
}

func user(id int64) models.User {
	return models.User{UserID: id}
}

func (h *harness) millis() int64 {
	return h.now.UnixMilli()
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
}

func (h *harness) newSchool(admin int64) int64 {
	h.t.Helper()
	out, err := h.schools.NewSchool(context.Background(), user(admin), dto.SchoolNewRequest{Name: "North High"})
	require.NoError(h.t, err)
	return out.School.SchoolID
}

func (h *harness) newLocation(admin, schoolID int64) int64 {
	h.t.Helper()
	out, err := h.locations.NewLocation(context.Background(), user(admin), dto.LocationNewRequest{SchoolID: schoolID, Name: "Room 101"})
	require.NoError(h.t, err)
	return out.Location.LocationID
}

func (h *harness) newCourse(admin, schoolID, locationID int64) int64 {
	h.t.Helper()
	out, err := h.courses.NewCourse(context.Background(), user(admin), dto.CourseNewRequest{
		SchoolID:   schoolID,
		LocationID: locationID,
		Name:       "Algebra",
	})
	require.NoError(h.t, err)
	return out.Course.CourseID
}

// enroll issues a single-use key of kind and redeems it for userID.
func (h *harness) enroll(instructor, courseID, userID int64, kind models.CourseMembershipKind) {
	h.t.Helper()
	key := h.courseKey(instructor, courseID, 1, kind)
	_, err := h.courses.NewCourseMembershipKey(context.Background(), user(userID), dto.CourseMembershipNewKeyRequest{CourseKeyKey: key})
	require.NoError(h.t, err)
}

func (h *harness) courseKey(instructor, courseID, maxUses int64, kind models.CourseMembershipKind) string {
	h.t.Helper()
	out, err := h.courses.NewCourseKey(context.Background(), user(instructor), dto.CourseKeyNewRequest{
		CourseID:             courseID,
		MaxUses:              maxUses,
		CourseMembershipKind: kind,
		StartTime:            h.millis() - 1000,
		EndTime:              h.millis() + int64(time.Hour/time.Millisecond),
	})
	require.NoError(h.t, err)
	return out.CourseKey.CourseKeyKey
}

func (h *harness) newSession(instructor, courseID int64, start, end int64, attendees ...int64) int64 {
	h.t.Helper()
	out, err := h.sessions.NewSession(context.Background(), user(instructor), dto.SessionNewRequest{
		CourseID:        courseID,
		Name:            "Review",
		StartTime:       start,
		EndTime:         end,
		AttendeeUserIDs: attendees,
	})
	require.NoError(h.t, err)
	return out.Session.SessionID
}

// classroom builds a school, location and course all run by admin 1, with
// user 2 enrolled as a student.
func (h *harness) classroom() (schoolID, locationID, courseID int64) {
	h.t.Helper()
	schoolID = h.newSchool(1)
	locationID = h.newLocation(1, schoolID)
	courseID = h.newCourse(1, schoolID, locationID)
	h.enroll(1, courseID, 2, models.CourseMembershipKindStudent)
	return schoolID, locationID, courseID
}

func requireCode(t *testing.T, err error, want *appErrors.Error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want.Code, appErrors.FromError(err).Code, "unexpected error: %v", err)
}
