package events

import (
	"context"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kumpulapp/kumpul/services/events EventUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kumpulapp/kumpul/services/events StateStore

// EventUC represents the event and group management usecase interface
type EventUC interface {
	// ListState returns the full state of a scope
	ListState(ctx context.Context, scope string) (*models.AppState, error)

	// GetEventByID returns one event from a scope
	GetEventByID(ctx context.Context, scope, eventID string) (*models.Event, error)

	// CreateEvent creates an event with its invitation material
	CreateEvent(ctx context.Context, scope string, req *models.CreateEventRequest) (*models.Event, error)

	// RespondToInvitation records or updates one participant's RSVP
	RespondToInvitation(ctx context.Context, scope, eventID string, req *models.RespondRequest) (*models.Event, error)

	// CreateGroup creates a group with deduplicated members
	CreateGroup(ctx context.Context, scope string, req *models.CreateGroupRequest) (*models.Group, error)

	// AddMembersToGroup merges new members into an existing group
	AddMembersToGroup(ctx context.Context, scope, groupID string, members []models.Friend) (*models.Group, error)

	// ToggleEventReminder enables or disables reminders for an event
	ToggleEventReminder(ctx context.Context, scope, eventID string, enabled bool) (*models.Event, error)

	// SendRSVPNudge marks a nudge and reports the pending participant count
	SendRSVPNudge(ctx context.Context, scope, eventID string) (*models.NudgeResponse, error)

	// ValidateInvite checks an invitation link's code and optional token.
	// Every failure mode is reported as NOT_FOUND so public routes never
	// leak whether an event exists.
	ValidateInvite(ctx context.Context, scope, eventID, code, token string) (*models.Event, error)
}

// StateStore provides the scope-locked read-modify-write primitive backing
// all event and group mutations. Concurrent Mutate calls for the same scope
// never interleave their read-modify-write sequence. Read returns a
// consistent snapshot without taking the write lock.
type StateStore interface {
	Mutate(ctx context.Context, scope string, fn func(*models.AppState) (interface{}, error)) (interface{}, error)
	Read(ctx context.Context, scope string) (*models.AppState, error)
}
