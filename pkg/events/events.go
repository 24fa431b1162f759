// Package events publishes domain events after a transaction commits.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event names emitted by the workflow layer.
const (
	SchoolCreated                 = "school.created"
	SchoolDurationCreated         = "school_duration.created"
	AdminshipCreated              = "adminship.created"
	AdminshipCancelled            = "adminship.cancelled"
	CourseCreated                 = "course.created"
	CourseMembershipCreated       = "course_membership.created"
	CourseMembershipCancelled     = "course_membership.cancelled"
	SessionCreated                = "session.created"
	SessionRequestCreated         = "session_request.created"
	SessionRequestResponseCreated = "session_request_response.created"
	CommitmentCreated             = "commitment.created"
	EncounterCreated              = "encounter.created"
	StayCreated                   = "stay.created"
)

// Event is a committed domain fact.
type Event struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	OccurredAt time.Time   `json:"occurred_at"`
	ActorID    int64       `json:"actor_id"`
	Payload    interface{} `json:"payload"`
}

// New stamps an event with a fresh id.
func New(name string, actorID int64, at time.Time, payload interface{}) Event {
	return Event{ID: uuid.NewString(), Name: name, OccurredAt: at.UTC(), ActorID: actorID, Payload: payload}
}

// Publisher delivers a single event to a broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Dispatcher accepts committed events for asynchronous delivery.
type Dispatcher interface {
	Dispatch(events ...Event)
}

// Nop discards events.
type Nop struct{}

// Dispatch implements Dispatcher.
func (Nop) Dispatch(...Event) {}
