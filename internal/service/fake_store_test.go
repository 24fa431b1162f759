package service

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/hours-api/internal/models"
)

// memStore keeps every chain in append order so the last matching row is the
// head. It ignores the executor it is handed.
type memStore struct {
	mu     sync.Mutex
	nextID int64

	schools       []models.School
	schoolData    []models.SchoolData
	durations     []models.SchoolDuration
	durationData  []models.SchoolDurationData
	schoolKeys    []models.SchoolKey
	schoolKeyData []models.SchoolKeyData
	adminships    []models.Adminship
	subscriptions []models.Subscription
	locations     []models.Location
	locationData  []models.LocationData
	courses       []models.Course
	courseData    []models.CourseData
	courseKeys    []models.CourseKey
	courseKeyData []models.CourseKeyData
	memberships   []models.CourseMembership
	sessions      []models.Session
	sessionData   []models.SessionData
	requests      []models.SessionRequest
	responses     []models.SessionRequestResponse
	commitments   []models.Commitment
	encounters    []models.Encounter
	stays         []models.Stay
	stayData      []models.StayData
	failOn        map[string]error
}

func newMemStore() *memStore {
	return &memStore{failOn: make(map[string]error)}
}

func (m *memStore) stores() Stores {
	return Stores{Schools: m, Subscriptions: m, Locations: m, Courses: m, Sessions: m, Attendance: m}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) fail(op string) error {
	return m.failOn[op]
}

func contains[T comparable](set []T, v T) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func lastWhere[T any](rows []T, match func(T) bool) *T {
	for i := len(rows) - 1; i >= 0; i-- {
		if match(rows[i]) {
			row := rows[i]
			return &row
		}
	}
	return nil
}

func where[T any](rows []T, match func(T) bool) []T {
	out := make([]T, 0)
	for _, row := range rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}

// recent keeps only the last row per key.
func recent[T any, K comparable](rows []T, only bool, key func(T) K) []T {
	if !only {
		return rows
	}
	last := make(map[K]int)
	for i, row := range rows {
		last[key(row)] = i
	}
	out := make([]T, 0, len(last))
	for i, row := range rows {
		if last[key(row)] == i {
			out = append(out, row)
		}
	}
	return out
}

type pair struct{ a, b int64 }

// schools

func (m *memStore) CreateSchool(_ context.Context, _ sqlx.ExtContext, school *models.School) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateSchool"); err != nil {
		return err
	}
	school.SchoolID = m.id()
	m.schools = append(m.schools, *school)
	return nil
}

func (m *memStore) FindSchool(_ context.Context, _ sqlx.ExtContext, schoolID int64) (*models.School, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.schools, func(r models.School) bool { return r.SchoolID == schoolID }), nil
}

func (m *memStore) ListSchools(_ context.Context, _ sqlx.ExtContext, filter models.SchoolFilter) ([]models.School, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.schools, func(r models.School) bool { return contains(filter.SchoolID, r.SchoolID) }), nil
}

func (m *memStore) AppendSchoolData(_ context.Context, _ sqlx.ExtContext, data *models.SchoolData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.SchoolDataID = m.id()
	m.schoolData = append(m.schoolData, *data)
	return nil
}

func (m *memStore) SchoolDataHead(_ context.Context, _ sqlx.ExtContext, schoolID int64) (*models.SchoolData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.schoolData, func(r models.SchoolData) bool { return r.SchoolID == schoolID }), nil
}

func (m *memStore) ListSchoolData(_ context.Context, _ sqlx.ExtContext, filter models.SchoolDataFilter) ([]models.SchoolData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.schoolData, func(r models.SchoolData) bool { return contains(filter.SchoolID, r.SchoolID) })
	return recent(rows, filter.OnlyRecent, func(r models.SchoolData) int64 { return r.SchoolID }), nil
}

func (m *memStore) CreateSchoolDuration(_ context.Context, _ sqlx.ExtContext, duration *models.SchoolDuration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateSchoolDuration"); err != nil {
		return err
	}
	duration.SchoolDurationID = m.id()
	m.durations = append(m.durations, *duration)
	return nil
}

func (m *memStore) FindSchoolDuration(_ context.Context, _ sqlx.ExtContext, durationID int64) (*models.SchoolDuration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.durations, func(r models.SchoolDuration) bool { return r.SchoolDurationID == durationID }), nil
}

func (m *memStore) ListSchoolDurations(_ context.Context, _ sqlx.ExtContext, filter models.SchoolDurationFilter) ([]models.SchoolDuration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.durations, func(r models.SchoolDuration) bool {
		return contains(filter.SchoolDurationID, r.SchoolDurationID) && contains(filter.SchoolID, r.SchoolID)
	}), nil
}

func (m *memStore) AppendSchoolDurationData(_ context.Context, _ sqlx.ExtContext, data *models.SchoolDurationData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.SchoolDurationDataID = m.id()
	m.durationData = append(m.durationData, *data)
	return nil
}

func (m *memStore) SchoolDurationDataHead(_ context.Context, _ sqlx.ExtContext, durationID int64) (*models.SchoolDurationData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.durationData, func(r models.SchoolDurationData) bool { return r.SchoolDurationID == durationID }), nil
}

func (m *memStore) ListSchoolDurationData(_ context.Context, _ sqlx.ExtContext, filter models.SchoolDurationDataFilter) ([]models.SchoolDurationData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.durationData, func(r models.SchoolDurationData) bool {
		return contains(filter.SchoolDurationID, r.SchoolDurationID) && contains(filter.Day, r.Day)
	})
	return recent(rows, filter.OnlyRecent, func(r models.SchoolDurationData) int64 { return r.SchoolDurationID }), nil
}

func (m *memStore) CreateSchoolKey(_ context.Context, _ sqlx.ExtContext, key *models.SchoolKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schoolKeys = append(m.schoolKeys, *key)
	return nil
}

func (m *memStore) FindSchoolKey(_ context.Context, _ sqlx.ExtContext, token string) (*models.SchoolKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.schoolKeys, func(r models.SchoolKey) bool { return r.SchoolKeyKey == token }), nil
}

func (m *memStore) ListSchoolKeys(_ context.Context, _ sqlx.ExtContext, filter models.SchoolKeyFilter) ([]models.SchoolKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.schoolKeys, func(r models.SchoolKey) bool {
		return contains(filter.SchoolID, r.SchoolID) && contains(filter.SchoolKeyKey, r.SchoolKeyKey)
	}), nil
}

func (m *memStore) AppendSchoolKeyData(_ context.Context, _ sqlx.ExtContext, data *models.SchoolKeyData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.SchoolKeyDataID = m.id()
	m.schoolKeyData = append(m.schoolKeyData, *data)
	return nil
}

func (m *memStore) SchoolKeyDataHead(_ context.Context, _ sqlx.ExtContext, token string) (*models.SchoolKeyData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.schoolKeyData, func(r models.SchoolKeyData) bool { return r.SchoolKeyKey == token }), nil
}

func (m *memStore) ListSchoolKeyData(_ context.Context, _ sqlx.ExtContext, filter models.SchoolKeyDataFilter) ([]models.SchoolKeyData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.schoolKeyData, func(r models.SchoolKeyData) bool { return contains(filter.SchoolKeyKey, r.SchoolKeyKey) })
	return recent(rows, filter.OnlyRecent, func(r models.SchoolKeyData) string { return r.SchoolKeyKey }), nil
}

func (m *memStore) AppendAdminship(_ context.Context, _ sqlx.ExtContext, adminship *models.Adminship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	adminship.AdminshipID = m.id()
	m.adminships = append(m.adminships, *adminship)
	return nil
}

func (m *memStore) AdminshipHead(_ context.Context, _ sqlx.ExtContext, userID, schoolID int64) (*models.Adminship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.adminships, func(r models.Adminship) bool { return r.UserID == userID && r.SchoolID == schoolID }), nil
}

func (m *memStore) CountAdminshipsByKey(_ context.Context, _ sqlx.ExtContext, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.adminships, func(r models.Adminship) bool { return r.SchoolKeyKey != nil && *r.SchoolKeyKey == token })
	return int64(len(rows)), nil
}

func (m *memStore) adminHeads() []models.Adminship {
	return recent(m.adminships, true, func(r models.Adminship) pair { return pair{r.UserID, r.SchoolID} })
}

func (m *memStore) CountAdmins(_ context.Context, _ sqlx.ExtContext, schoolID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.adminHeads(), func(r models.Adminship) bool {
		return r.SchoolID == schoolID && r.AdminshipKind == models.AdminshipKindAdmin
	})
	return int64(len(rows)), nil
}

func (m *memStore) CountAdministeredSchools(_ context.Context, _ sqlx.ExtContext, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.adminHeads(), func(r models.Adminship) bool {
		return r.UserID == userID && r.AdminshipKind == models.AdminshipKindAdmin
	})
	return int64(len(rows)), nil
}

func (m *memStore) ListAdminships(_ context.Context, _ sqlx.ExtContext, filter models.AdminshipFilter) ([]models.Adminship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.adminships, func(r models.Adminship) bool {
		return contains(filter.SchoolID, r.SchoolID) && contains(filter.UserID, r.UserID)
	})
	return recent(rows, filter.OnlyRecent, func(r models.Adminship) pair { return pair{r.UserID, r.SchoolID} }), nil
}

// subscriptions

func (m *memStore) AppendSubscription(_ context.Context, _ sqlx.ExtContext, subscription *models.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	subscription.SubscriptionID = m.id()
	m.subscriptions = append(m.subscriptions, *subscription)
	return nil
}

func (m *memStore) SubscriptionHead(_ context.Context, _ sqlx.ExtContext, userID int64) (*models.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.subscriptions, func(r models.Subscription) bool { return r.CreatorUserID == userID }), nil
}

func (m *memStore) ListSubscriptions(_ context.Context, _ sqlx.ExtContext, filter models.SubscriptionFilter) ([]models.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.subscriptions, func(r models.Subscription) bool { return contains(filter.CreatorUserID, r.CreatorUserID) })
	return recent(rows, filter.OnlyRecent, func(r models.Subscription) int64 { return r.CreatorUserID }), nil
}

// locations

func (m *memStore) CreateLocation(_ context.Context, _ sqlx.ExtContext, location *models.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	location.LocationID = m.id()
	m.locations = append(m.locations, *location)
	return nil
}

func (m *memStore) FindLocation(_ context.Context, _ sqlx.ExtContext, locationID int64) (*models.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.locations, func(r models.Location) bool { return r.LocationID == locationID }), nil
}

func (m *memStore) ListLocations(_ context.Context, _ sqlx.ExtContext, filter models.LocationFilter) ([]models.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.locations, func(r models.Location) bool {
		return contains(filter.LocationID, r.LocationID) && contains(filter.SchoolID, r.SchoolID)
	}), nil
}

func (m *memStore) AppendLocationData(_ context.Context, _ sqlx.ExtContext, data *models.LocationData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.LocationDataID = m.id()
	m.locationData = append(m.locationData, *data)
	return nil
}

func (m *memStore) LocationDataHead(_ context.Context, _ sqlx.ExtContext, locationID int64) (*models.LocationData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.locationData, func(r models.LocationData) bool { return r.LocationID == locationID }), nil
}

func (m *memStore) ListLocationData(_ context.Context, _ sqlx.ExtContext, filter models.LocationDataFilter) ([]models.LocationData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.locationData, func(r models.LocationData) bool { return contains(filter.LocationID, r.LocationID) })
	return recent(rows, filter.OnlyRecent, func(r models.LocationData) int64 { return r.LocationID }), nil
}

// courses

func (m *memStore) CreateCourse(_ context.Context, _ sqlx.ExtContext, course *models.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	course.CourseID = m.id()
	m.courses = append(m.courses, *course)
	return nil
}

func (m *memStore) FindCourse(_ context.Context, _ sqlx.ExtContext, courseID int64) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.courses, func(r models.Course) bool { return r.CourseID == courseID }), nil
}

func (m *memStore) ListCourses(_ context.Context, _ sqlx.ExtContext, filter models.CourseFilter) ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.courses, func(r models.Course) bool {
		return contains(filter.CourseID, r.CourseID) && contains(filter.SchoolID, r.SchoolID)
	}), nil
}

func (m *memStore) AppendCourseData(_ context.Context, _ sqlx.ExtContext, data *models.CourseData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.CourseDataID = m.id()
	m.courseData = append(m.courseData, *data)
	return nil
}

func (m *memStore) CourseDataHead(_ context.Context, _ sqlx.ExtContext, courseID int64) (*models.CourseData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.courseData, func(r models.CourseData) bool { return r.CourseID == courseID }), nil
}

func (m *memStore) ListCourseData(_ context.Context, _ sqlx.ExtContext, filter models.CourseDataFilter) ([]models.CourseData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.courseData, func(r models.CourseData) bool { return contains(filter.CourseID, r.CourseID) })
	return recent(rows, filter.OnlyRecent, func(r models.CourseData) int64 { return r.CourseID }), nil
}

func (m *memStore) CreateCourseKey(_ context.Context, _ sqlx.ExtContext, key *models.CourseKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courseKeys = append(m.courseKeys, *key)
	return nil
}

func (m *memStore) FindCourseKey(_ context.Context, _ sqlx.ExtContext, token string) (*models.CourseKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.courseKeys, func(r models.CourseKey) bool { return r.CourseKeyKey == token }), nil
}

func (m *memStore) ListCourseKeys(_ context.Context, _ sqlx.ExtContext, filter models.CourseKeyFilter) ([]models.CourseKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.courseKeys, func(r models.CourseKey) bool {
		return contains(filter.CourseID, r.CourseID) && contains(filter.CourseKeyKey, r.CourseKeyKey)
	}), nil
}

func (m *memStore) AppendCourseKeyData(_ context.Context, _ sqlx.ExtContext, data *models.CourseKeyData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.CourseKeyDataID = m.id()
	m.courseKeyData = append(m.courseKeyData, *data)
	return nil
}

func (m *memStore) CourseKeyDataHead(_ context.Context, _ sqlx.ExtContext, token string) (*models.CourseKeyData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.courseKeyData, func(r models.CourseKeyData) bool { return r.CourseKeyKey == token }), nil
}

func (m *memStore) ListCourseKeyData(_ context.Context, _ sqlx.ExtContext, filter models.CourseKeyDataFilter) ([]models.CourseKeyData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.courseKeyData, func(r models.CourseKeyData) bool { return contains(filter.CourseKeyKey, r.CourseKeyKey) })
	return recent(rows, filter.OnlyRecent, func(r models.CourseKeyData) string { return r.CourseKeyKey }), nil
}

func (m *memStore) AppendMembership(_ context.Context, _ sqlx.ExtContext, membership *models.CourseMembership) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	membership.CourseMembershipID = m.id()
	m.memberships = append(m.memberships, *membership)
	return nil
}

func (m *memStore) MembershipHead(_ context.Context, _ sqlx.ExtContext, userID, courseID int64) (*models.CourseMembership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.memberships, func(r models.CourseMembership) bool { return r.UserID == userID && r.CourseID == courseID }), nil
}

func (m *memStore) CountMembershipsByKey(_ context.Context, _ sqlx.ExtContext, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.memberships, func(r models.CourseMembership) bool { return r.CourseKeyKey != nil && *r.CourseKeyKey == token })
	return int64(len(rows)), nil
}

func (m *memStore) membershipHeads() []models.CourseMembership {
	return recent(m.memberships, true, func(r models.CourseMembership) pair { return pair{r.UserID, r.CourseID} })
}

func (m *memStore) CountMembers(_ context.Context, _ sqlx.ExtContext, courseID int64, kind models.CourseMembershipKind) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.membershipHeads(), func(r models.CourseMembership) bool {
		return r.CourseID == courseID && r.CourseMembershipKind == kind
	})
	return int64(len(rows)), nil
}

func (m *memStore) IsInstructorAt(_ context.Context, _ sqlx.ExtContext, userID, locationID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, head := range m.membershipHeads() {
		if head.UserID != userID || head.CourseMembershipKind != models.CourseMembershipKindInstructor {
			continue
		}
		data := lastWhere(m.courseData, func(r models.CourseData) bool { return r.CourseID == head.CourseID })
		if data != nil && data.Active && data.LocationID == locationID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListMemberships(_ context.Context, _ sqlx.ExtContext, filter models.CourseMembershipFilter) ([]models.CourseMembership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.memberships, func(r models.CourseMembership) bool {
		return contains(filter.CourseID, r.CourseID) && contains(filter.UserID, r.UserID)
	})
	return recent(rows, filter.OnlyRecent, func(r models.CourseMembership) pair { return pair{r.UserID, r.CourseID} }), nil
}

// sessions

func (m *memStore) CreateSession(_ context.Context, _ sqlx.ExtContext, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session.SessionID = m.id()
	m.sessions = append(m.sessions, *session)
	return nil
}

func (m *memStore) FindSession(_ context.Context, _ sqlx.ExtContext, sessionID int64) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.sessions, func(r models.Session) bool { return r.SessionID == sessionID }), nil
}

func (m *memStore) ListSessions(_ context.Context, _ sqlx.ExtContext, filter models.SessionFilter) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.sessions, func(r models.Session) bool {
		return contains(filter.SessionID, r.SessionID) && contains(filter.CourseID, r.CourseID)
	}), nil
}

func (m *memStore) AppendSessionData(_ context.Context, _ sqlx.ExtContext, data *models.SessionData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.SessionDataID = m.id()
	m.sessionData = append(m.sessionData, *data)
	return nil
}

func (m *memStore) SessionDataHead(_ context.Context, _ sqlx.ExtContext, sessionID int64) (*models.SessionData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.sessionData, func(r models.SessionData) bool { return r.SessionID == sessionID }), nil
}

func (m *memStore) ListSessionData(_ context.Context, _ sqlx.ExtContext, filter models.SessionDataFilter) ([]models.SessionData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.sessionData, func(r models.SessionData) bool { return contains(filter.SessionID, r.SessionID) })
	return recent(rows, filter.OnlyRecent, func(r models.SessionData) int64 { return r.SessionID }), nil
}

func (m *memStore) CreateSessionRequest(_ context.Context, _ sqlx.ExtContext, request *models.SessionRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request.SessionRequestID = m.id()
	m.requests = append(m.requests, *request)
	return nil
}

func (m *memStore) FindSessionRequest(_ context.Context, _ sqlx.ExtContext, requestID int64) (*models.SessionRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.requests, func(r models.SessionRequest) bool { return r.SessionRequestID == requestID }), nil
}

func (m *memStore) ListSessionRequests(_ context.Context, _ sqlx.ExtContext, filter models.SessionRequestFilter) ([]models.SessionRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.requests, func(r models.SessionRequest) bool {
		return contains(filter.SessionRequestID, r.SessionRequestID) && contains(filter.CourseID, r.CourseID)
	}), nil
}

// CreateSessionRequestResponse enforces the one-response-per-request key.
func (m *memStore) CreateSessionRequestResponse(_ context.Context, _ sqlx.ExtContext, response *models.SessionRequestResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateSessionRequestResponse"); err != nil {
		return err
	}
	for _, r := range m.responses {
		if r.SessionRequestID == response.SessionRequestID {
			return &pq.Error{Code: pqUniqueViolation, Constraint: "session_request_response_pkey"}
		}
	}
	m.responses = append(m.responses, *response)
	return nil
}

func (m *memStore) FindSessionRequestResponse(_ context.Context, _ sqlx.ExtContext, requestID int64) (*models.SessionRequestResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.responses, func(r models.SessionRequestResponse) bool { return r.SessionRequestID == requestID }), nil
}

func (m *memStore) ListSessionRequestResponses(_ context.Context, _ sqlx.ExtContext, filter models.SessionRequestResponseFilter) ([]models.SessionRequestResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.responses, func(r models.SessionRequestResponse) bool {
		return contains(filter.SessionRequestID, r.SessionRequestID)
	}), nil
}

func (m *memStore) AppendCommitment(_ context.Context, _ sqlx.ExtContext, commitment *models.Commitment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	commitment.CommitmentID = m.id()
	m.commitments = append(m.commitments, *commitment)
	return nil
}

func (m *memStore) FindCommitment(_ context.Context, _ sqlx.ExtContext, commitmentID int64) (*models.Commitment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.commitments, func(r models.Commitment) bool { return r.CommitmentID == commitmentID }), nil
}

func (m *memStore) CommitmentHead(_ context.Context, _ sqlx.ExtContext, attendeeUserID, sessionID int64) (*models.Commitment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.commitments, func(r models.Commitment) bool {
		return r.AttendeeUserID == attendeeUserID && r.SessionID == sessionID
	}), nil
}

func (m *memStore) ListCommitments(_ context.Context, _ sqlx.ExtContext, filter models.CommitmentFilter) ([]models.Commitment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.commitments, func(r models.Commitment) bool {
		return contains(filter.SessionID, r.SessionID) && contains(filter.AttendeeUserID, r.AttendeeUserID)
	})
	return recent(rows, filter.OnlyRecent, func(r models.Commitment) pair { return pair{r.AttendeeUserID, r.SessionID} }), nil
}

// attendance

func (m *memStore) CreateEncounter(_ context.Context, _ sqlx.ExtContext, encounter *models.Encounter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	encounter.EncounterID = m.id()
	m.encounters = append(m.encounters, *encounter)
	return nil
}

func (m *memStore) FindEncounter(_ context.Context, _ sqlx.ExtContext, encounterID int64) (*models.Encounter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.encounters, func(r models.Encounter) bool { return r.EncounterID == encounterID }), nil
}

func (m *memStore) ListEncounters(_ context.Context, _ sqlx.ExtContext, filter models.EncounterFilter) ([]models.Encounter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.encounters, func(r models.Encounter) bool {
		return contains(filter.LocationID, r.LocationID) && contains(filter.AttendeeUserID, r.AttendeeUserID)
	}), nil
}

func (m *memStore) CreateStay(_ context.Context, _ sqlx.ExtContext, stay *models.Stay) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stay.StayID = m.id()
	m.stays = append(m.stays, *stay)
	return nil
}

func (m *memStore) FindStay(_ context.Context, _ sqlx.ExtContext, stayID int64) (*models.Stay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.stays, func(r models.Stay) bool { return r.StayID == stayID }), nil
}

func (m *memStore) ListStays(_ context.Context, _ sqlx.ExtContext, filter models.StayFilter) ([]models.Stay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return where(m.stays, func(r models.Stay) bool {
		return contains(filter.LocationID, r.LocationID) && contains(filter.AttendeeUserID, r.AttendeeUserID)
	}), nil
}

func (m *memStore) AppendStayData(_ context.Context, _ sqlx.ExtContext, data *models.StayData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.StayDataID = m.id()
	m.stayData = append(m.stayData, *data)
	return nil
}

func (m *memStore) StayDataHead(_ context.Context, _ sqlx.ExtContext, stayID int64) (*models.StayData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastWhere(m.stayData, func(r models.StayData) bool { return r.StayID == stayID }), nil
}

func (m *memStore) ListStayData(_ context.Context, _ sqlx.ExtContext, filter models.StayDataFilter) ([]models.StayData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := where(m.stayData, func(r models.StayData) bool { return contains(filter.StayID, r.StayID) })
	return recent(rows, filter.OnlyRecent, func(r models.StayData) int64 { return r.StayID }), nil
}
