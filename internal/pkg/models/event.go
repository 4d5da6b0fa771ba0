package models

import (
	"time"
)

// Participant status values
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Participant represents one invitee on an event. Participants are unique
// per event by normalized phone number.
type Participant struct {
	UserID         string     `json:"userId,omitempty"`
	Name           string     `json:"name"`
	PhoneNumber    string     `json:"phoneNumber"`
	Status         string     `json:"status"`
	RespondedAt    *time.Time `json:"respondedAt,omitempty"`
	IsLateResponse bool       `json:"isLateResponse"`
}

// Event represents a planned gathering with its invitation material.
type Event struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Date            time.Time     `json:"date"`
	Time            string        `json:"time"`
	Location        string        `json:"location,omitempty"`
	CreatedBy       string        `json:"createdBy"`
	Participants    []Participant `json:"participants"`
	Groups          []string      `json:"groups,omitempty"`
	InvitationLink  string        `json:"invitationLink"`
	InvitationCode  string        `json:"invitationCode"`
	LinkExpiresAt   time.Time     `json:"linkExpiresAt"`
	RSVPDeadline    *time.Time    `json:"rsvpDeadline,omitempty"`
	LastNudgeAt     *time.Time    `json:"lastNudgeAt,omitempty"`
	ReminderEnabled bool          `json:"reminderEnabled"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Friend represents a contact that can be added to groups.
type Friend struct {
	UserID      string `json:"userId,omitempty"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// Group represents a named set of friends for bulk invitations.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	Members     []Friend  `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AppState is the full state of one scope (multi-tenancy partition).
// It is read, mutated and written as a unit under the scope lock.
type AppState struct {
	Events  []Event  `json:"events"`
	Groups  []Group  `json:"groups"`
	Friends []Friend `json:"friends"`
}

// InviteClaims is the signed invitation token payload binding an invitation
// link to one event and its short shareable code.
type InviteClaims struct {
	EventID string `json:"eventId"`
	Code    string `json:"code"`
	Exp     int64  `json:"exp"`
}

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Date         time.Time     `json:"date"`
	Time         string        `json:"time"`
	Location     string        `json:"location,omitempty"`
	CreatedBy    string        `json:"createdBy"`
	Participants []Participant `json:"participants,omitempty"`
	Groups       []string      `json:"groups,omitempty"`
	RSVPDeadline *time.Time    `json:"rsvpDeadline,omitempty"`
}

// RespondRequest represents an RSVP to an event invitation
type RespondRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Status      string `json:"status"`
}

// CreateGroupRequest represents a request to create a group
type CreateGroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	CreatedBy   string   `json:"createdBy"`
	Members     []Friend `json:"members,omitempty"`
}

// AddMembersRequest represents a request to add members to a group
type AddMembersRequest struct {
	Members []Friend `json:"members"`
}

// ToggleReminderRequest represents a request to enable or disable reminders
type ToggleReminderRequest struct {
	Enabled bool `json:"enabled"`
}

// NudgeResponse reports how many pending participants a nudge addressed
type NudgeResponse struct {
	PendingCount int       `json:"pendingCount"`
	NudgedAt     time.Time `json:"nudgedAt"`
}
