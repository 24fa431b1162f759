package service

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
)

type schoolStore interface {
	CreateSchool(ctx context.Context, exec sqlx.ExtContext, school *models.School) error
	FindSchool(ctx context.Context, exec sqlx.ExtContext, schoolID int64) (*models.School, error)
	ListSchools(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolFilter) ([]models.School, error)
	AppendSchoolData(ctx context.Context, exec sqlx.ExtContext, data *models.SchoolData) error
	SchoolDataHead(ctx context.Context, exec sqlx.ExtContext, schoolID int64) (*models.SchoolData, error)
	ListSchoolData(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolDataFilter) ([]models.SchoolData, error)
	CreateSchoolDuration(ctx context.Context, exec sqlx.ExtContext, duration *models.SchoolDuration) error
	FindSchoolDuration(ctx context.Context, exec sqlx.ExtContext, durationID int64) (*models.SchoolDuration, error)
	ListSchoolDurations(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolDurationFilter) ([]models.SchoolDuration, error)
	AppendSchoolDurationData(ctx context.Context, exec sqlx.ExtContext, data *models.SchoolDurationData) error
	SchoolDurationDataHead(ctx context.Context, exec sqlx.ExtContext, durationID int64) (*models.SchoolDurationData, error)
	ListSchoolDurationData(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolDurationDataFilter) ([]models.SchoolDurationData, error)
	CreateSchoolKey(ctx context.Context, exec sqlx.ExtContext, key *models.SchoolKey) error
	FindSchoolKey(ctx context.Context, exec sqlx.ExtContext, token string) (*models.SchoolKey, error)
	ListSchoolKeys(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolKeyFilter) ([]models.SchoolKey, error)
	AppendSchoolKeyData(ctx context.Context, exec sqlx.ExtContext, data *models.SchoolKeyData) error
	SchoolKeyDataHead(ctx context.Context, exec sqlx.ExtContext, token string) (*models.SchoolKeyData, error)
	ListSchoolKeyData(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolKeyDataFilter) ([]models.SchoolKeyData, error)
	AppendAdminship(ctx context.Context, exec sqlx.ExtContext, adminship *models.Adminship) error
	AdminshipHead(ctx context.Context, exec sqlx.ExtContext, userID, schoolID int64) (*models.Adminship, error)
	CountAdminshipsByKey(ctx context.Context, exec sqlx.ExtContext, token string) (int64, error)
	CountAdmins(ctx context.Context, exec sqlx.ExtContext, schoolID int64) (int64, error)
	CountAdministeredSchools(ctx context.Context, exec sqlx.ExtContext, userID int64) (int64, error)
	ListAdminships(ctx context.Context, exec sqlx.ExtContext, filter models.AdminshipFilter) ([]models.Adminship, error)
}

type subscriptionStore interface {
	AppendSubscription(ctx context.Context, exec sqlx.ExtContext, subscription *models.Subscription) error
	SubscriptionHead(ctx context.Context, exec sqlx.ExtContext, userID int64) (*models.Subscription, error)
	ListSubscriptions(ctx context.Context, exec sqlx.ExtContext, filter models.SubscriptionFilter) ([]models.Subscription, error)
}

type locationStore interface {
	CreateLocation(ctx context.Context, exec sqlx.ExtContext, location *models.Location) error
	FindLocation(ctx context.Context, exec sqlx.ExtContext, locationID int64) (*models.Location, error)
	ListLocations(ctx context.Context, exec sqlx.ExtContext, filter models.LocationFilter) ([]models.Location, error)
	AppendLocationData(ctx context.Context, exec sqlx.ExtContext, data *models.LocationData) error
	LocationDataHead(ctx context.Context, exec sqlx.ExtContext, locationID int64) (*models.LocationData, error)
	ListLocationData(ctx context.Context, exec sqlx.ExtContext, filter models.LocationDataFilter) ([]models.LocationData, error)
}

type courseStore interface {
	CreateCourse(ctx context.Context, exec sqlx.ExtContext, course *models.Course) error
	FindCourse(ctx context.Context, exec sqlx.ExtContext, courseID int64) (*models.Course, error)
	ListCourses(ctx context.Context, exec sqlx.ExtContext, filter models.CourseFilter) ([]models.Course, error)
	AppendCourseData(ctx context.Context, exec sqlx.ExtContext, data *models.CourseData) error
	CourseDataHead(ctx context.Context, exec sqlx.ExtContext, courseID int64) (*models.CourseData, error)
	ListCourseData(ctx context.Context, exec sqlx.ExtContext, filter models.CourseDataFilter) ([]models.CourseData, error)
	CreateCourseKey(ctx context.Context, exec sqlx.ExtContext, key *models.CourseKey) error
	FindCourseKey(ctx context.Context, exec sqlx.ExtContext, token string) (*models.CourseKey, error)
	ListCourseKeys(ctx context.Context, exec sqlx.ExtContext, filter models.CourseKeyFilter) ([]models.CourseKey, error)
	AppendCourseKeyData(ctx context.Context, exec sqlx.ExtContext, data *models.CourseKeyData) error
	CourseKeyDataHead(ctx context.Context, exec sqlx.ExtContext, token string) (*models.CourseKeyData, error)
	ListCourseKeyData(ctx context.Context, exec sqlx.ExtContext, filter models.CourseKeyDataFilter) ([]models.CourseKeyData, error)
	AppendMembership(ctx context.Context, exec sqlx.ExtContext, membership *models.CourseMembership) error
	MembershipHead(ctx context.Context, exec sqlx.ExtContext, userID, courseID int64) (*models.CourseMembership, error)
	CountMembershipsByKey(ctx context.Context, exec sqlx.ExtContext, token string) (int64, error)
	CountMembers(ctx context.Context, exec sqlx.ExtContext, courseID int64, kind models.CourseMembershipKind) (int64, error)
	IsInstructorAt(ctx context.Context, exec sqlx.ExtContext, userID, locationID int64) (bool, error)
	ListMemberships(ctx context.Context, exec sqlx.ExtContext, filter models.CourseMembershipFilter) ([]models.CourseMembership, error)
}

type sessionStore interface {
	CreateSession(ctx context.Context, exec sqlx.ExtContext, session *models.Session) error
	FindSession(ctx context.Context, exec sqlx.ExtContext, sessionID int64) (*models.Session, error)
	ListSessions(ctx context.Context, exec sqlx.ExtContext, filter models.SessionFilter) ([]models.Session, error)
	AppendSessionData(ctx context.Context, exec sqlx.ExtContext, data *models.SessionData) error
	SessionDataHead(ctx context.Context, exec sqlx.ExtContext, sessionID int64) (*models.SessionData, error)
	ListSessionData(ctx context.Context, exec sqlx.ExtContext, filter models.SessionDataFilter) ([]models.SessionData, error)
	CreateSessionRequest(ctx context.Context, exec sqlx.ExtContext, request *models.SessionRequest) error
	FindSessionRequest(ctx context.Context, exec sqlx.ExtContext, requestID int64) (*models.SessionRequest, error)
	ListSessionRequests(ctx context.Context, exec sqlx.ExtContext, filter models.SessionRequestFilter) ([]models.SessionRequest, error)
	CreateSessionRequestResponse(ctx context.Context, exec sqlx.ExtContext, response *models.SessionRequestResponse) error
	FindSessionRequestResponse(ctx context.Context, exec sqlx.ExtContext, requestID int64) (*models.SessionRequestResponse, error)
	ListSessionRequestResponses(ctx context.Context, exec sqlx.ExtContext, filter models.SessionRequestResponseFilter) ([]models.SessionRequestResponse, error)
	AppendCommitment(ctx context.Context, exec sqlx.ExtContext, commitment *models.Commitment) error
	FindCommitment(ctx context.Context, exec sqlx.ExtContext, commitmentID int64) (*models.Commitment, error)
	CommitmentHead(ctx context.Context, exec sqlx.ExtContext, attendeeUserID, sessionID int64) (*models.Commitment, error)
	ListCommitments(ctx context.Context, exec sqlx.ExtContext, filter models.CommitmentFilter) ([]models.Commitment, error)
}

type attendanceStore interface {
	CreateEncounter(ctx context.Context, exec sqlx.ExtContext, encounter *models.Encounter) error
	FindEncounter(ctx context.Context, exec sqlx.ExtContext, encounterID int64) (*models.Encounter, error)
	ListEncounters(ctx context.Context, exec sqlx.ExtContext, filter models.EncounterFilter) ([]models.Encounter, error)
	CreateStay(ctx context.Context, exec sqlx.ExtContext, stay *models.Stay) error
	FindStay(ctx context.Context, exec sqlx.ExtContext, stayID int64) (*models.Stay, error)
	ListStays(ctx context.Context, exec sqlx.ExtContext, filter models.StayFilter) ([]models.Stay, error)
	AppendStayData(ctx context.Context, exec sqlx.ExtContext, data *models.StayData) error
	StayDataHead(ctx context.Context, exec sqlx.ExtContext, stayID int64) (*models.StayData, error)
	ListStayData(ctx context.Context, exec sqlx.ExtContext, filter models.StayDataFilter) ([]models.StayData, error)
}

// Stores groups the repositories workflows read and append through. Every
// call receives the scope's transaction.
type Stores struct {
	Schools       schoolStore
	Subscriptions subscriptionStore
	Locations     locationStore
	Courses       courseStore
	Sessions      sessionStore
	Attendance    attendanceStore
}

// userDirectory confirms that a referenced user exists.
type userDirectory interface {
	Lookup(ctx context.Context, userID int64) (*models.User, error)
}
