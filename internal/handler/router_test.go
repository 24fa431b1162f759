package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/middleware"
	"github.com/noah-isme/hours-api/internal/models"
	"github.com/noah-isme/hours-api/internal/service"
	"github.com/noah-isme/hours-api/pkg/config"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
)

type stubDirectory struct{}

func (stubDirectory) Verify(_ context.Context, credential string) (*models.User, error) {
	if credential == "token-5" {
		return &models.User{UserID: 5, Name: "Ada"}, nil
	}
	return nil, appErrors.ErrAPIKeyUnauthorized
}

func (stubDirectory) Lookup(_ context.Context, userID int64) (*models.User, error) {
	return &models.User{UserID: userID}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

type closedBucket struct{}

func (closedBucket) Take(context.Context, string, time.Time) (middleware.Decision, error) {
	return middleware.Decision{Allowed: false, RetryAfter: time.Second}, nil
}

func newTestRouter(t *testing.T, svc *stubServices, mutators ...func(*RouterDeps)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	deps := RouterDeps{
		Config:     &config.Config{Env: config.EnvProduction, APIPrefix: "/api/v1"},
		Metrics:    service.NewMetricsService(),
		Directory:  stubDirectory{},
		DB:         stubPinger{},
		Schools:    svc,
		Locations:  svc,
		Courses:    svc,
		Sessions:   svc,
		Attendance: svc,
		Exports:    svc,
	}
	for _, mutate := range mutators {
		mutate(&deps)
	}
	return NewRouter(deps)
}

func call(r *gin.Engine, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer token-5")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRoutesRequireCredential(t *testing.T) {
	svc := &stubServices{}
	r := newTestRouter(t, svc)

	w := call(r, http.MethodPost, "/api/v1/school/new", `{"name":"North"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.calls, "no operation runs for an unverified caller")
}

func TestMutationBindsPayloadAndCaller(t *testing.T) {
	svc := &stubServices{}
	r := newTestRouter(t, svc)

	w := call(r, http.MethodPost, "/api/v1/school/new", `{"name":"North","description":"d","whole":true}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"NewSchool"}, svc.calls)
	assert.Equal(t, int64(5), svc.actor.UserID)
	req := svc.last.(dto.SchoolNewRequest)
	assert.Equal(t, "North", req.Name)
	assert.True(t, req.Whole)
}

func TestMutationRejectsMalformedJSON(t *testing.T) {
	svc := &stubServices{}
	r := newTestRouter(t, svc)

	w := call(r, http.MethodPost, "/api/v1/course_membership/new_key", `{"course_key_key":`, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), appErrors.ErrValidation.Code)
	assert.Empty(t, svc.calls)
}

func TestServiceErrorsKeepTheirStatus(t *testing.T) {
	svc := &stubServices{err: appErrors.ErrCourseKeyUsed}
	r := newTestRouter(t, svc)

	w := call(r, http.MethodPost, "/api/v1/course_membership/new_key", `{"course_key_key":"abc"}`, true)
	assert.Equal(t, appErrors.ErrCourseKeyUsed.Status, w.Code)
	assert.Contains(t, w.Body.String(), appErrors.ErrCourseKeyUsed.Code)

	svc.err = errors.New("pq: relation does not exist")
	w = call(r, http.MethodPost, "/api/v1/session/view", "", true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestViewAcceptsEmptyBody(t *testing.T) {
	svc := &stubServices{}
	r := newTestRouter(t, svc)

	w := call(r, http.MethodPost, "/api/v1/stay_data/view", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["data"], 1)
	assert.Equal(t, float64(1), body["pagination"].(map[string]interface{})["count"])
	assert.Equal(t, models.StayDataFilter{}, svc.last)
}

func TestViewBindsFilter(t *testing.T) {
	svc := &stubServices{}
	r := newTestRouter(t, svc)

	w := call(r, http.MethodPost, "/api/v1/course_membership/view", `{"course_id":[3],"only_recent":true,"limit":10}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	filter := svc.last.(models.CourseMembershipFilter)
	assert.Equal(t, []int64{3}, filter.CourseID)
	assert.True(t, filter.OnlyRecent)

	w = call(r, http.MethodPost, "/api/v1/course_membership/view", `{"limit":5000}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEveryOperationIsRouted(t *testing.T) {
	svc := &stubServices{exported: &dto.AttendanceExport{}}
	r := newTestRouter(t, svc)

	routes := map[string]string{
		"/subscription/new":              "NewSubscription",
		"/subscription/view":             "Subscriptions",
		"/school/new":                    "NewSchool",
		"/school/view":                   "Schools",
		"/school_data/new":               "NewSchoolData",
		"/school_data/view":              "SchoolData",
		"/school_duration/new":           "NewSchoolDuration",
		"/school_duration/view":          "SchoolDurations",
		"/school_duration_data/new":      "NewSchoolDurationData",
		"/school_duration_data/view":     "SchoolDurationData",
		"/school_key/new":                "NewSchoolKey",
		"/school_key/view":               "SchoolKeys",
		"/school_key_data/new":           "NewSchoolKeyData",
		"/school_key_data/view":          "SchoolKeyData",
		"/adminship/new_key":             "NewAdminshipKey",
		"/adminship/new_cancel":          "NewAdminshipCancel",
		"/adminship/view":                "Adminships",
		"/location/new":                  "NewLocation",
		"/location/view":                 "Locations",
		"/location_data/new":             "NewLocationData",
		"/location_data/view":            "LocationData",
		"/course/new":                    "NewCourse",
		"/course/view":                   "Courses",
		"/course_data/new":               "NewCourseData",
		"/course_data/view":              "CourseData",
		"/course_key/new":                "NewCourseKey",
		"/course_key/view":               "CourseKeys",
		"/course_key_data/new":           "NewCourseKeyData",
		"/course_key_data/view":          "CourseKeyData",
		"/course_membership/new_key":     "NewCourseMembershipKey",
		"/course_membership/new_cancel":  "NewCourseMembershipCancel",
		"/course_membership/view":        "CourseMemberships",
		"/session/new":                   "NewSession",
		"/session/view":                  "Sessions",
		"/session_data/new":              "NewSessionData",
		"/session_data/view":             "SessionData",
		"/session_request/new":           "NewSessionRequest",
		"/session_request/view":          "SessionRequests",
		"/session_request_response/new":  "NewSessionRequestResponse",
		"/session_request_response/view": "SessionRequestResponses",
		"/commitment/new":                "NewCommitments",
		"/commitment/view":               "Commitments",
		"/encounter/new":                 "NewEncounter",
		"/encounter/view":                "Encounters",
		"/stay/new":                      "NewStay",
		"/stay/view":                     "Stays",
		"/stay_data/new":                 "NewStayData",
		"/stay_data/view":                "StayData",
		"/attendance_export/new":         "SessionAttendance",
	}
	for path, op := range routes {
		t.Run(path, func(t *testing.T) {
			svc.calls = nil
			w := call(r, http.MethodPost, "/api/v1"+path, "{}", true)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, []string{op}, svc.calls)
		})
	}
}

func TestDownloadServesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session_1.csv")
	require.NoError(t, os.WriteFile(path, []byte("Attendee\n2\n"), 0o600))
	svc := &stubServices{file: path}
	r := newTestRouter(t, svc)

	w := call(r, http.MethodGet, "/api/v1/export/signed-token", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="session_1.csv"`)
	assert.Equal(t, "Attendee\n2\n", w.Body.String())
	assert.Equal(t, "signed-token", svc.last)

	svc.err = appErrors.Clone(appErrors.ErrUnauthorized, "invalid download link")
	w = call(r, http.MethodGet, "/api/v1/export/forged", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitedRoutes(t *testing.T) {
	svc := &stubServices{}
	r := newTestRouter(t, svc, func(d *RouterDeps) {
		d.Config.RateLimit = config.RateLimitConfig{Enabled: true, Capacity: 1}
		d.Bucket = closedBucket{}
	})

	w := call(r, http.MethodPost, "/api/v1/school/view", "", true)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Empty(t, svc.calls)
}

func TestOperationalEndpoints(t *testing.T) {
	r := newTestRouter(t, &stubServices{})

	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/health", "", false).Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/ready", "", false).Code)

	w := call(r, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "goroutines_total")

	assert.Equal(t, http.StatusNotFound, call(r, http.MethodGet, "/docs/index.html", "", false).Code, "docs are hidden in production")
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodGet, "/api/v1/nowhere", "", false).Code)

	down := newTestRouter(t, &stubServices{}, func(d *RouterDeps) { d.DB = stubPinger{err: errors.New("refused")} })
	assert.Equal(t, http.StatusServiceUnavailable, call(down, http.MethodGet, "/ready", "", false).Code)
}
