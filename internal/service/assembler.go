package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
)

type refKind uint8

const (
	refSchool refKind = iota + 1
	refSchoolKey
	refSchoolDuration
	refLocation
	refCourse
	refCourseKey
	refSession
	refSessionRequest
	refCommitment
	refEncounter
	refStay
)

// ref tags an entity reference. Token-keyed entities use key, the rest use id.
type ref struct {
	kind refKind
	id   int64
	key  string
}

var missingRef = map[refKind]*appErrors.Error{
	refSchool:         appErrors.ErrSchoolNonexistent,
	refSchoolKey:      appErrors.ErrSchoolKeyNonexistent,
	refSchoolDuration: appErrors.ErrSchoolDurationNonexistent,
	refLocation:       appErrors.ErrLocationNonexistent,
	refCourse:         appErrors.ErrCourseNonexistent,
	refCourseKey:      appErrors.ErrCourseKeyNonexistent,
	refSession:        appErrors.ErrSessionNonexistent,
	refSessionRequest: appErrors.ErrSessionRequestNonexistent,
	refCommitment:     appErrors.ErrCommitmentNonexistent,
	refEncounter:      appErrors.ErrEncounterNonexistent,
	refStay:           appErrors.ErrStayNonexistent,
}

// Assembler expands stored records into nested responses.
type Assembler struct {
	stores Stores
}

// NewAssembler constructs an Assembler.
func NewAssembler(stores Stores) *Assembler {
	return &Assembler{stores: stores}
}

// Bind starts an assembly over exec. Each referenced entity is loaded at most
// once per assembly.
func (a *Assembler) Bind(ctx context.Context, exec sqlx.ExtContext) *Assembly {
	return &Assembly{ctx: ctx, exec: exec, stores: a.stores, memo: make(map[ref]interface{})}
}

// Assembly is a memoized traversal bound to one transaction.
type Assembly struct {
	ctx    context.Context
	exec   sqlx.ExtContext
	stores Stores
	memo   map[ref]interface{}
}

func (a *Assembly) resolve(r ref) (interface{}, error) {
	if v, ok := a.memo[r]; ok {
		return v, nil
	}
	v, found, err := a.load(r)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, storage(err, "failed to assemble response")
	}
	if !found {
		return nil, missing(missingRef[r.kind])
	}
	a.memo[r] = v
	return v, nil
}

func (a *Assembly) load(r ref) (interface{}, bool, error) {
	ctx, exec := a.ctx, a.exec
	switch r.kind {
	case refSchool:
		row, err := a.stores.Schools.FindSchool(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		return a.buildSchool(*row), true, nil
	case refSchoolKey:
		row, err := a.stores.Schools.FindSchoolKey(ctx, exec, r.key)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildSchoolKey(*row)
		return v, err == nil, err
	case refSchoolDuration:
		row, err := a.stores.Schools.FindSchoolDuration(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildSchoolDuration(*row)
		return v, err == nil, err
	case refLocation:
		row, err := a.stores.Locations.FindLocation(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildLocation(*row)
		return v, err == nil, err
	case refCourse:
		row, err := a.stores.Courses.FindCourse(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildCourse(*row)
		return v, err == nil, err
	case refCourseKey:
		row, err := a.stores.Courses.FindCourseKey(ctx, exec, r.key)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildCourseKey(*row)
		return v, err == nil, err
	case refSession:
		row, err := a.stores.Sessions.FindSession(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildSession(*row)
		return v, err == nil, err
	case refSessionRequest:
		row, err := a.stores.Sessions.FindSessionRequest(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildSessionRequest(*row)
		return v, err == nil, err
	case refCommitment:
		row, err := a.stores.Sessions.FindCommitment(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildCommitment(*row)
		return v, err == nil, err
	case refEncounter:
		row, err := a.stores.Attendance.FindEncounter(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		return a.buildEncounter(*row), true, nil
	case refStay:
		row, err := a.stores.Attendance.FindStay(ctx, exec, r.id)
		if err != nil || row == nil {
			return nil, false, err
		}
		v, err := a.buildStay(*row)
		return v, err == nil, err
	default:
		return nil, false, fmt.Errorf("unknown reference kind %d", r.kind)
	}
}

func (a *Assembly) school(id int64) (dto.School, error) {
	v, err := a.resolve(ref{kind: refSchool, id: id})
	if err != nil {
		return dto.School{}, err
	}
	return v.(dto.School), nil
}

func (a *Assembly) schoolKey(token string) (dto.SchoolKey, error) {
	v, err := a.resolve(ref{kind: refSchoolKey, key: token})
	if err != nil {
		return dto.SchoolKey{}, err
	}
	return v.(dto.SchoolKey), nil
}

func (a *Assembly) schoolDuration(id int64) (dto.SchoolDuration, error) {
	v, err := a.resolve(ref{kind: refSchoolDuration, id: id})
	if err != nil {
		return dto.SchoolDuration{}, err
	}
	return v.(dto.SchoolDuration), nil
}

func (a *Assembly) location(id int64) (dto.Location, error) {
	v, err := a.resolve(ref{kind: refLocation, id: id})
	if err != nil {
		return dto.Location{}, err
	}
	return v.(dto.Location), nil
}

func (a *Assembly) course(id int64) (dto.Course, error) {
	v, err := a.resolve(ref{kind: refCourse, id: id})
	if err != nil {
		return dto.Course{}, err
	}
	return v.(dto.Course), nil
}

func (a *Assembly) courseKey(token string) (dto.CourseKey, error) {
	v, err := a.resolve(ref{kind: refCourseKey, key: token})
	if err != nil {
		return dto.CourseKey{}, err
	}
	return v.(dto.CourseKey), nil
}

func (a *Assembly) session(id int64) (dto.Session, error) {
	v, err := a.resolve(ref{kind: refSession, id: id})
	if err != nil {
		return dto.Session{}, err
	}
	return v.(dto.Session), nil
}

func (a *Assembly) sessionRequest(id int64) (dto.SessionRequest, error) {
	v, err := a.resolve(ref{kind: refSessionRequest, id: id})
	if err != nil {
		return dto.SessionRequest{}, err
	}
	return v.(dto.SessionRequest), nil
}

func (a *Assembly) commitment(id int64) (dto.Commitment, error) {
	v, err := a.resolve(ref{kind: refCommitment, id: id})
	if err != nil {
		return dto.Commitment{}, err
	}
	return v.(dto.Commitment), nil
}

func (a *Assembly) encounter(id int64) (dto.Encounter, error) {
	v, err := a.resolve(ref{kind: refEncounter, id: id})
	if err != nil {
		return dto.Encounter{}, err
	}
	return v.(dto.Encounter), nil
}

func (a *Assembly) stay(id int64) (dto.Stay, error) {
	v, err := a.resolve(ref{kind: refStay, id: id})
	if err != nil {
		return dto.Stay{}, err
	}
	return v.(dto.Stay), nil
}

func (a *Assembly) buildSchool(row models.School) dto.School {
	return dto.School{SchoolID: row.SchoolID, CreationTime: row.CreationTime, CreatorUserID: row.CreatorUserID, Whole: row.Whole}
}

func (a *Assembly) buildSchoolKey(row models.SchoolKey) (dto.SchoolKey, error) {
	school, err := a.school(row.SchoolID)
	if err != nil {
		return dto.SchoolKey{}, err
	}
	return dto.SchoolKey{
		SchoolKeyKey:  row.SchoolKeyKey,
		CreationTime:  row.CreationTime,
		CreatorUserID: row.CreatorUserID,
		School:        school,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
	}, nil
}

func (a *Assembly) buildSchoolDuration(row models.SchoolDuration) (dto.SchoolDuration, error) {
	school, err := a.school(row.SchoolID)
	if err != nil {
		return dto.SchoolDuration{}, err
	}
	return dto.SchoolDuration{SchoolDurationID: row.SchoolDurationID, CreationTime: row.CreationTime, CreatorUserID: row.CreatorUserID, School: school}, nil
}

func (a *Assembly) buildLocation(row models.Location) (dto.Location, error) {
	school, err := a.school(row.SchoolID)
	if err != nil {
		return dto.Location{}, err
	}
	return dto.Location{LocationID: row.LocationID, CreationTime: row.CreationTime, CreatorUserID: row.CreatorUserID, School: school}, nil
}

func (a *Assembly) buildCourse(row models.Course) (dto.Course, error) {
	school, err := a.school(row.SchoolID)
	if err != nil {
		return dto.Course{}, err
	}
	return dto.Course{CourseID: row.CourseID, CreationTime: row.CreationTime, CreatorUserID: row.CreatorUserID, School: school}, nil
}

func (a *Assembly) buildCourseKey(row models.CourseKey) (dto.CourseKey, error) {
	course, err := a.course(row.CourseID)
	if err != nil {
		return dto.CourseKey{}, err
	}
	return dto.CourseKey{
		CourseKeyKey:         row.CourseKeyKey,
		CreationTime:         row.CreationTime,
		CreatorUserID:        row.CreatorUserID,
		Course:               course,
		MaxUses:              row.MaxUses,
		CourseMembershipKind: row.CourseMembershipKind,
		StartTime:            row.StartTime,
		EndTime:              row.EndTime,
	}, nil
}

func (a *Assembly) buildSession(row models.Session) (dto.Session, error) {
	course, err := a.course(row.CourseID)
	if err != nil {
		return dto.Session{}, err
	}
	return dto.Session{SessionID: row.SessionID, CreationTime: row.CreationTime, CreatorUserID: row.CreatorUserID, Course: course}, nil
}

func (a *Assembly) buildSessionRequest(row models.SessionRequest) (dto.SessionRequest, error) {
	course, err := a.course(row.CourseID)
	if err != nil {
		return dto.SessionRequest{}, err
	}
	return dto.SessionRequest{
		SessionRequestID: row.SessionRequestID,
		CreationTime:     row.CreationTime,
		CreatorUserID:    row.CreatorUserID,
		Course:           course,
		Message:          row.Message,
		StartTime:        row.StartTime,
		EndTime:          row.EndTime,
	}, nil
}

func (a *Assembly) buildCommitment(row models.Commitment) (dto.Commitment, error) {
	session, err := a.session(row.SessionID)
	if err != nil {
		return dto.Commitment{}, err
	}
	return dto.Commitment{
		CommitmentID:   row.CommitmentID,
		CreationTime:   row.CreationTime,
		CreatorUserID:  row.CreatorUserID,
		AttendeeUserID: row.AttendeeUserID,
		Session:        session,
		Active:         row.Active,
	}, nil
}

func (a *Assembly) buildEncounter(row models.Encounter) dto.Encounter {
	return dto.Encounter{
		EncounterID:    row.EncounterID,
		CreationTime:   row.CreationTime,
		CreatorUserID:  row.CreatorUserID,
		LocationID:     row.LocationID,
		AttendeeUserID: row.AttendeeUserID,
		EncounterKind:  row.EncounterKind,
	}
}

func (a *Assembly) buildStay(row models.Stay) (dto.Stay, error) {
	location, err := a.location(row.LocationID)
	if err != nil {
		return dto.Stay{}, err
	}
	return dto.Stay{
		StayID:         row.StayID,
		CreationTime:   row.CreationTime,
		CreatorUserID:  row.CreatorUserID,
		AttendeeUserID: row.AttendeeUserID,
		Location:       location,
	}, nil
}

// Exported builders turn view rows into responses, sharing the memo with
// every nested reference.

// School assembles a school row.
func (a *Assembly) School(row models.School) (dto.School, error) {
	return a.school(row.SchoolID)
}

// SchoolData assembles a school data version.
func (a *Assembly) SchoolData(row models.SchoolData) (dto.SchoolData, error) {
	school, err := a.school(row.SchoolID)
	if err != nil {
		return dto.SchoolData{}, err
	}
	return dto.SchoolData{
		SchoolDataID:  row.SchoolDataID,
		CreationTime:  row.CreationTime,
		CreatorUserID: row.CreatorUserID,
		School:        school,
		Name:          row.Name,
		Description:   row.Description,
		Active:        row.Active,
	}, nil
}

// SchoolDuration assembles a timetable block.
func (a *Assembly) SchoolDuration(row models.SchoolDuration) (dto.SchoolDuration, error) {
	return a.schoolDuration(row.SchoolDurationID)
}

// SchoolDurationData assembles a timetable block version.
func (a *Assembly) SchoolDurationData(row models.SchoolDurationData) (dto.SchoolDurationData, error) {
	duration, err := a.schoolDuration(row.SchoolDurationID)
	if err != nil {
		return dto.SchoolDurationData{}, err
	}
	return dto.SchoolDurationData{
		SchoolDurationDataID: row.SchoolDurationDataID,
		CreationTime:         row.CreationTime,
		CreatorUserID:        row.CreatorUserID,
		SchoolDuration:       duration,
		Day:                  row.Day,
		MinuteStart:          row.MinuteStart,
		MinuteEnd:            row.MinuteEnd,
		Active:               row.Active,
	}, nil
}

// SchoolKey assembles a school key.
func (a *Assembly) SchoolKey(row models.SchoolKey) (dto.SchoolKey, error) {
	return a.schoolKey(row.SchoolKeyKey)
}

// SchoolKeyData assembles a school key data version.
func (a *Assembly) SchoolKeyData(row models.SchoolKeyData) (dto.SchoolKeyData, error) {
	key, err := a.schoolKey(row.SchoolKeyKey)
	if err != nil {
		return dto.SchoolKeyData{}, err
	}
	return dto.SchoolKeyData{
		SchoolKeyDataID: row.SchoolKeyDataID,
		CreationTime:    row.CreationTime,
		CreatorUserID:   row.CreatorUserID,
		SchoolKey:       key,
		Active:          row.Active,
	}, nil
}

// Adminship assembles an adminship version.
func (a *Assembly) Adminship(row models.Adminship) (dto.Adminship, error) {
	school, err := a.school(row.SchoolID)
	if err != nil {
		return dto.Adminship{}, err
	}
	out := dto.Adminship{
		AdminshipID:   row.AdminshipID,
		CreationTime:  row.CreationTime,
		CreatorUserID: row.CreatorUserID,
		UserID:        row.UserID,
		School:        school,
		AdminshipKind: row.AdminshipKind,
	}
	if row.SchoolKeyKey != nil {
		key, err := a.schoolKey(*row.SchoolKeyKey)
		if err != nil {
			return dto.Adminship{}, err
		}
		out.SchoolKey = &key
	}
	return out, nil
}

// Subscription assembles a subscription version.
func (a *Assembly) Subscription(row models.Subscription) dto.Subscription {
	return dto.Subscription{
		SubscriptionID:   row.SubscriptionID,
		CreationTime:     row.CreationTime,
		CreatorUserID:    row.CreatorUserID,
		SubscriptionKind: row.SubscriptionKind,
		MaxUses:          row.MaxUses,
	}
}

// Location assembles a location.
func (a *Assembly) Location(row models.Location) (dto.Location, error) {
	return a.location(row.LocationID)
}

// LocationData assembles a location data version.
func (a *Assembly) LocationData(row models.LocationData) (dto.LocationData, error) {
	location, err := a.location(row.LocationID)
	if err != nil {
		return dto.LocationData{}, err
	}
	return dto.LocationData{
		LocationDataID: row.LocationDataID,
		CreationTime:   row.CreationTime,
		CreatorUserID:  row.CreatorUserID,
		Location:       location,
		Name:           row.Name,
		Address:        row.Address,
		Phone:          row.Phone,
		Active:         row.Active,
	}, nil
}

// Course assembles a course.
func (a *Assembly) Course(row models.Course) (dto.Course, error) {
	return a.course(row.CourseID)
}

// CourseData assembles a course data version.
func (a *Assembly) CourseData(row models.CourseData) (dto.CourseData, error) {
	course, err := a.course(row.CourseID)
	if err != nil {
		return dto.CourseData{}, err
	}
	location, err := a.location(row.LocationID)
	if err != nil {
		return dto.CourseData{}, err
	}
	return dto.CourseData{
		CourseDataID:  row.CourseDataID,
		CreationTime:  row.CreationTime,
		CreatorUserID: row.CreatorUserID,
		Course:        course,
		Location:      location,
		Name:          row.Name,
		Description:   row.Description,
		Homeroom:      row.Homeroom,
		Active:        row.Active,
	}, nil
}

// CourseKey assembles a course key.
func (a *Assembly) CourseKey(row models.CourseKey) (dto.CourseKey, error) {
	return a.courseKey(row.CourseKeyKey)
}

// CourseKeyData assembles a course key data version.
func (a *Assembly) CourseKeyData(row models.CourseKeyData) (dto.CourseKeyData, error) {
	key, err := a.courseKey(row.CourseKeyKey)
	if err != nil {
		return dto.CourseKeyData{}, err
	}
	return dto.CourseKeyData{
		CourseKeyDataID: row.CourseKeyDataID,
		CreationTime:    row.CreationTime,
		CreatorUserID:   row.CreatorUserID,
		CourseKey:       key,
		Active:          row.Active,
	}, nil
}

// CourseMembership assembles a membership version.
func (a *Assembly) CourseMembership(row models.CourseMembership) (dto.CourseMembership, error) {
	course, err := a.course(row.CourseID)
	if err != nil {
		return dto.CourseMembership{}, err
	}
	out := dto.CourseMembership{
		CourseMembershipID:   row.CourseMembershipID,
		CreationTime:         row.CreationTime,
		CreatorUserID:        row.CreatorUserID,
		UserID:               row.UserID,
		Course:               course,
		CourseMembershipKind: row.CourseMembershipKind,
	}
	if row.CourseKeyKey != nil {
		key, err := a.courseKey(*row.CourseKeyKey)
		if err != nil {
			return dto.CourseMembership{}, err
		}
		out.CourseKey = &key
	}
	return out, nil
}

// Session assembles a session.
func (a *Assembly) Session(row models.Session) (dto.Session, error) {
	return a.session(row.SessionID)
}

// SessionData assembles a session data version.
func (a *Assembly) SessionData(row models.SessionData) (dto.SessionData, error) {
	session, err := a.session(row.SessionID)
	if err != nil {
		return dto.SessionData{}, err
	}
	return dto.SessionData{
		SessionDataID: row.SessionDataID,
		CreationTime:  row.CreationTime,
		CreatorUserID: row.CreatorUserID,
		Session:       session,
		Name:          row.Name,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Active:        row.Active,
	}, nil
}

// SessionRequest assembles a session request.
func (a *Assembly) SessionRequest(row models.SessionRequest) (dto.SessionRequest, error) {
	return a.sessionRequest(row.SessionRequestID)
}

// SessionRequestResponse assembles a response with its request and commitment.
func (a *Assembly) SessionRequestResponse(row models.SessionRequestResponse) (dto.SessionRequestResponse, error) {
	request, err := a.sessionRequest(row.SessionRequestID)
	if err != nil {
		return dto.SessionRequestResponse{}, err
	}
	out := dto.SessionRequestResponse{
		SessionRequest: request,
		CreationTime:   row.CreationTime,
		CreatorUserID:  row.CreatorUserID,
		Message:        row.Message,
	}
	if row.CommitmentID != nil {
		commitment, err := a.commitment(*row.CommitmentID)
		if err != nil {
			return dto.SessionRequestResponse{}, err
		}
		out.Commitment = &commitment
	}
	return out, nil
}

// Commitment assembles a commitment version.
func (a *Assembly) Commitment(row models.Commitment) (dto.Commitment, error) {
	return a.commitment(row.CommitmentID)
}

// Encounter assembles an encounter.
func (a *Assembly) Encounter(row models.Encounter) (dto.Encounter, error) {
	return a.encounter(row.EncounterID)
}

// Stay assembles a stay.
func (a *Assembly) Stay(row models.Stay) (dto.Stay, error) {
	return a.stay(row.StayID)
}

// StayData assembles a stay data version with both endpoints expanded.
func (a *Assembly) StayData(row models.StayData) (dto.StayData, error) {
	stay, err := a.stay(row.StayID)
	if err != nil {
		return dto.StayData{}, err
	}
	fst, err := a.endpoint(row.FstEncounterID, row.FstTime)
	if err != nil {
		return dto.StayData{}, err
	}
	snd, err := a.endpoint(row.SndEncounterID, row.SndTime)
	if err != nil {
		return dto.StayData{}, err
	}
	return dto.StayData{
		StayDataID:    row.StayDataID,
		CreationTime:  row.CreationTime,
		CreatorUserID: row.CreatorUserID,
		Stay:          stay,
		Fst:           fst,
		Snd:           snd,
		Active:        row.Active,
	}, nil
}

func (a *Assembly) endpoint(encounterID, at *int64) (dto.StayEndpoint, error) {
	if encounterID == nil {
		return dto.StayEndpoint{Time: at}, nil
	}
	encounter, err := a.encounter(*encounterID)
	if err != nil {
		return dto.StayEndpoint{}, err
	}
	return dto.StayEndpoint{Encounter: &encounter}, nil
}
