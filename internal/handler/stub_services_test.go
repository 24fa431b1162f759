package handler

import (
	"context"
	"os"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
)

// stubServices implements every service interface the handlers consume.
type stubServices struct {
	err      error
	actor    models.User
	calls    []string
	last     interface{}
	file     string
	exported *dto.AttendanceExport
}

func (s *stubServices) record(name string, arg interface{}) {
	s.calls = append(s.calls, name)
	s.last = arg
}

func (s *stubServices) SessionAttendance(_ context.Context, actor models.User, req dto.AttendanceExportRequest) (*dto.AttendanceExport, error) {
	s.actor = actor
	s.record("SessionAttendance", req)
	if s.err != nil {
		return nil, s.err
	}
	return s.exported, nil
}

func (s *stubServices) Download(token string) (*os.File, string, error) {
	s.record("Download", token)
	if s.err != nil {
		return nil, "", s.err
	}
	file, err := os.Open(s.file)
	return file, s.file, err
}

func (s *stubServices) NewSubscription(_ context.Context, actor models.User, req dto.SubscriptionNewRequest) (*dto.Subscription, error) {
	s.actor = actor
	s.record("NewSubscription", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.Subscription{}, nil
}

func (s *stubServices) NewSchool(_ context.Context, actor models.User, req dto.SchoolNewRequest) (*dto.SchoolData, error) {
	s.actor = actor
	s.record("NewSchool", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SchoolData{}, nil
}

func (s *stubServices) NewSchoolData(_ context.Context, actor models.User, req dto.SchoolDataNewRequest) (*dto.SchoolData, error) {
	s.actor = actor
	s.record("NewSchoolData", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SchoolData{}, nil
}

func (s *stubServices) NewSchoolDuration(_ context.Context, actor models.User, req dto.SchoolDurationNewRequest) (*dto.SchoolDuration, error) {
	s.actor = actor
	s.record("NewSchoolDuration", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SchoolDuration{}, nil
}

func (s *stubServices) NewSchoolDurationData(_ context.Context, actor models.User, req dto.SchoolDurationDataNewRequest) (*dto.SchoolDurationData, error) {
	s.actor = actor
	s.record("NewSchoolDurationData", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SchoolDurationData{}, nil
}

func (s *stubServices) NewSchoolKey(_ context.Context, actor models.User, req dto.SchoolKeyNewRequest) (*dto.SchoolKeyData, error) {
	s.actor = actor
	s.record("NewSchoolKey", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SchoolKeyData{}, nil
}

func (s *stubServices) NewSchoolKeyData(_ context.Context, actor models.User, req dto.SchoolKeyDataNewRequest) (*dto.SchoolKeyData, error) {
	s.actor = actor
	s.record("NewSchoolKeyData", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SchoolKeyData{}, nil
}

func (s *stubServices) NewAdminshipKey(_ context.Context, actor models.User, req dto.AdminshipNewKeyRequest) (*dto.Adminship, error) {
	s.actor = actor
	s.record("NewAdminshipKey", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.Adminship{}, nil
}

func (s *stubServices) NewAdminshipCancel(_ context.Context, actor models.User, req dto.AdminshipNewCancelRequest) (*dto.Adminship, error) {
	s.actor = actor
	s.record("NewAdminshipCancel", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.Adminship{}, nil
}

func (s *stubServices) Subscriptions(_ context.Context, actor models.User, filter models.SubscriptionFilter) ([]dto.Subscription, error) {
	s.actor = actor
	s.record("Subscriptions", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Subscription{{}}, nil
}

func (s *stubServices) Schools(_ context.Context, actor models.User, filter models.SchoolFilter) ([]dto.School, error) {
	s.actor = actor
	s.record("Schools", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.School{{}}, nil
}

func (s *stubServices) SchoolData(_ context.Context, actor models.User, filter models.SchoolDataFilter) ([]dto.SchoolData, error) {
	s.actor = actor
	s.record("SchoolData", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.SchoolData{{}}, nil
}

func (s *stubServices) SchoolDurations(_ context.Context, actor models.User, filter models.SchoolDurationFilter) ([]dto.SchoolDuration, error) {
	s.actor = actor
	s.record("SchoolDurations", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.SchoolDuration{{}}, nil
}

func (s *stubServices) SchoolDurationData(_ context.Context, actor models.User, filter models.SchoolDurationDataFilter) ([]dto.SchoolDurationData, error) {
	s.actor = actor
	s.record("SchoolDurationData", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.SchoolDurationData{{}}, nil
}

func (s *stubServices) SchoolKeys(_ context.Context, actor models.User, filter models.SchoolKeyFilter) ([]dto.SchoolKey, error) {
	s.actor = actor
	s.record("SchoolKeys", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.SchoolKey{{}}, nil
}

func (s *stubServices) SchoolKeyData(_ context.Context, actor models.User, filter models.SchoolKeyDataFilter) ([]dto.SchoolKeyData, error) {
	s.actor = actor
	s.record("SchoolKeyData", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.SchoolKeyData{{}}, nil
}

func (s *stubServices) Adminships(_ context.Context, actor models.User, filter models.AdminshipFilter) ([]dto.Adminship, error) {
	s.actor = actor
	s.record("Adminships", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Adminship{{}}, nil
}

func (s *stubServices) NewLocation(_ context.Context, actor models.User, req dto.LocationNewRequest) (*dto.LocationData, error) {
	s.actor = actor
	s.record("NewLocation", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.LocationData{}, nil
}

func (s *stubServices) NewLocationData(_ context.Context, actor models.User, req dto.LocationDataNewRequest) (*dto.LocationData, error) {
	s.actor = actor
	s.record("NewLocationData", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.LocationData{}, nil
}

func (s *stubServices) Locations(_ context.Context, actor models.User, filter models.LocationFilter) ([]dto.Location, error) {
	s.actor = actor
	s.record("Locations", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Location{{}}, nil
}

func (s *stubServices) LocationData(_ context.Context, actor models.User, filter models.LocationDataFilter) ([]dto.LocationData, error) {
	s.actor = actor
	s.record("LocationData", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.LocationData{{}}, nil
}

func (s *stubServices) NewCourse(_ context.Context, actor models.User, req dto.CourseNewRequest) (*dto.CourseData, error) {
	s.actor = actor
	s.record("NewCourse", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CourseData{}, nil
}

func (s *stubServices) NewCourseData(_ context.Context, actor models.User, req dto.CourseDataNewRequest) (*dto.CourseData, error) {
	s.actor = actor
	s.record("NewCourseData", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CourseData{}, nil
}

func (s *stubServices) NewCourseKey(_ context.Context, actor models.User, req dto.CourseKeyNewRequest) (*dto.CourseKeyData, error) {
	s.actor = actor
	s.record("NewCourseKey", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CourseKeyData{}, nil
}

func (s *stubServices) NewCourseKeyData(_ context.Context, actor models.User, req dto.CourseKeyDataNewRequest) (*dto.CourseKeyData, error) {
	s.actor = actor
	s.record("NewCourseKeyData", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CourseKeyData{}, nil
}

func (s *stubServices) NewCourseMembershipKey(_ context.Context, actor models.User, req dto.CourseMembershipNewKeyRequest) (*dto.CourseMembership, error) {
	s.actor = actor
	s.record("NewCourseMembershipKey", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CourseMembership{}, nil
}

func (s *stubServices) NewCourseMembershipCancel(_ context.Context, actor models.User, req dto.CourseMembershipNewCancelRequest) (*dto.CourseMembership, error) {
	s.actor = actor
	s.record("NewCourseMembershipCancel", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CourseMembership{}, nil
}

func (s *stubServices) Courses(_ context.Context, actor models.User, filter models.CourseFilter) ([]dto.Course, error) {
	s.actor = actor
	s.record("Courses", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Course{{}}, nil
}

func (s *stubServices) CourseData(_ context.Context, actor models.User, filter models.CourseDataFilter) ([]dto.CourseData, error) {
	s.actor = actor
	s.record("CourseData", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.CourseData{{}}, nil
}

func (s *stubServices) CourseKeys(_ context.Context, actor models.User, filter models.CourseKeyFilter) ([]dto.CourseKey, error) {
	s.actor = actor
	s.record("CourseKeys", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.CourseKey{{}}, nil
}

func (s *stubServices) CourseKeyData(_ context.Context, actor models.User, filter models.CourseKeyDataFilter) ([]dto.CourseKeyData, error) {
	s.actor = actor
	s.record("CourseKeyData", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.CourseKeyData{{}}, nil
}

func (s *stubServices) CourseMemberships(_ context.Context, actor models.User, filter models.CourseMembershipFilter) ([]dto.CourseMembership, error) {
	s.actor = actor
	s.record("CourseMemberships", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.CourseMembership{{}}, nil
}

func (s *stubServices) NewSession(_ context.Context, actor models.User, req dto.SessionNewRequest) (*dto.SessionData, error) {
	s.actor = actor
	s.record("NewSession", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SessionData{}, nil
}

func (s *stubServices) NewSessionData(_ context.Context, actor models.User, req dto.SessionDataNewRequest) (*dto.SessionData, error) {
	s.actor = actor
	s.record("NewSessionData", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SessionData{}, nil
}

func (s *stubServices) NewSessionRequest(_ context.Context, actor models.User, req dto.SessionRequestNewRequest) (*dto.SessionRequest, error) {
	s.actor = actor
	s.record("NewSessionRequest", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SessionRequest{}, nil
}

func (s *stubServices) NewSessionRequestResponse(_ context.Context, actor models.User, req dto.SessionRequestResponseNewRequest) (*dto.SessionRequestResponse, error) {
	s.actor = actor
	s.record("NewSessionRequestResponse", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SessionRequestResponse{}, nil
}

func (s *stubServices) NewCommitments(_ context.Context, actor models.User, req dto.CommitmentNewRequest) ([]dto.Commitment, error) {
	s.actor = actor
	s.record("NewCommitments", req)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Commitment{{}}, nil
}

func (s *stubServices) Sessions(_ context.Context, actor models.User, filter models.SessionFilter) ([]dto.Session, error) {
	s.actor = actor
	s.record("Sessions", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Session{{}}, nil
}

func (s *stubServices) SessionData(_ context.Context, actor models.User, filter models.SessionDataFilter) ([]dto.SessionData, error) {
	s.actor = actor
	s.record("SessionData", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.SessionData{{}}, nil
}

func (s *stubServices) SessionRequests(_ context.Context, actor models.User, filter models.SessionRequestFilter) ([]dto.SessionRequest, error) {
	s.actor = actor
	s.record("SessionRequests", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.SessionRequest{{}}, nil
}

func (s *stubServices) SessionRequestResponses(_ context.Context, actor models.User, filter models.SessionRequestResponseFilter) ([]dto.SessionRequestResponse, error) {
	s.actor = actor
	s.record("SessionRequestResponses", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.SessionRequestResponse{{}}, nil
}

func (s *stubServices) Commitments(_ context.Context, actor models.User, filter models.CommitmentFilter) ([]dto.Commitment, error) {
	s.actor = actor
	s.record("Commitments", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Commitment{{}}, nil
}

func (s *stubServices) NewEncounter(_ context.Context, actor models.User, req dto.EncounterNewRequest) (*dto.Encounter, error) {
	s.actor = actor
	s.record("NewEncounter", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.Encounter{}, nil
}

func (s *stubServices) NewStay(_ context.Context, actor models.User, req dto.StayNewRequest) (*dto.StayData, error) {
	s.actor = actor
	s.record("NewStay", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.StayData{}, nil
}

func (s *stubServices) NewStayData(_ context.Context, actor models.User, req dto.StayDataNewRequest) (*dto.StayData, error) {
	s.actor = actor
	s.record("NewStayData", req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.StayData{}, nil
}

func (s *stubServices) Encounters(_ context.Context, actor models.User, filter models.EncounterFilter) ([]dto.Encounter, error) {
	s.actor = actor
	s.record("Encounters", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Encounter{{}}, nil
}

func (s *stubServices) Stays(_ context.Context, actor models.User, filter models.StayFilter) ([]dto.Stay, error) {
	s.actor = actor
	s.record("Stays", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.Stay{{}}, nil
}

func (s *stubServices) StayData(_ context.Context, actor models.User, filter models.StayDataFilter) ([]dto.StayData, error) {
	s.actor = actor
	s.record("StayData", filter)
	if s.err != nil {
		return nil, s.err
	}
	return []dto.StayData{{}}, nil
}
