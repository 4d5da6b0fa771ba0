package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/pkg/signing"
	"github.com/kumpulapp/kumpul/internal/utils"
)

const inviteCodeLength = 8

// ListState returns the full state snapshot for a scope
func (u *EventUsecase) ListState(ctx context.Context, scope string) (*models.AppState, error) {
	return u.store.Read(ctx, scope)
}

// GetEventByID returns one event from the scope snapshot
func (u *EventUsecase) GetEventByID(ctx context.Context, scope, eventID string) (*models.Event, error) {
	state, err := u.store.Read(ctx, scope)
	if err != nil {
		return nil, err
	}
	event := findEvent(state, eventID)
	if event == nil {
		return nil, apperr.NotFound("event not found")
	}
	return event, nil
}

// CreateEvent validates the request, mints the invitation material and
// inserts the event at the front of the scope's event list.
func (u *EventUsecase) CreateEvent(ctx context.Context, scope string, req *models.CreateEventRequest) (*models.Event, error) {
	title := utils.SanitizeString(req.Title)
	if title == "" {
		return nil, apperr.Validation("title is required")
	}
	if strings.TrimSpace(req.Time) == "" {
		return nil, apperr.Validation("time is required")
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return nil, apperr.Validation("createdBy is required")
	}
	if req.Date.IsZero() {
		return nil, apperr.Validation("date is required")
	}

	now := u.now()
	eventID := uuid.New().String()

	code, err := utils.GenerateInviteCode(inviteCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation code: %w", err)
	}

	linkTTL := time.Duration(u.cfg.Invite.LinkTTLDays) * 24 * time.Hour
	token, err := signing.Encode([]byte(u.cfg.Invite.Secret), models.InviteClaims{
		EventID: eventID,
		Code:    code,
		Exp:     now.Add(linkTTL).Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign invitation token: %w", err)
	}

	event := models.Event{
		ID:              eventID,
		Title:           title,
		Description:     utils.SanitizeString(req.Description),
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		CreatedBy:       req.CreatedBy,
		Participants:    u.dedupeParticipants(req.Participants),
		Groups:          req.Groups,
		InvitationCode:  code,
		InvitationLink:  u.buildInviteLink(eventID, code, token),
		LinkExpiresAt:   now.Add(linkTTL),
		RSVPDeadline:    req.RSVPDeadline,
		ReminderEnabled: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	result, err := u.store.Mutate(ctx, scope, func(state *models.AppState) (interface{}, error) {
		state.Events = append([]models.Event{event}, state.Events...)
		return &state.Events[0], nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Event created",
		logger.String("event_id", eventID),
		logger.String("scope", scope))

	return result.(*models.Event), nil
}

// RespondToInvitation records one participant's RSVP. Responses are keyed by
// normalized phone number so a repeat response updates the existing entry
// instead of adding a second one. A blank phone number is a no-op.
func (u *EventUsecase) RespondToInvitation(ctx context.Context, scope, eventID string, req *models.RespondRequest) (*models.Event, error) {
	if !validStatus(req.Status) {
		return nil, apperr.Validation("status must be pending, accepted or declined")
	}

	phone, ok := utils.NormalizePhoneNumber(req.PhoneNumber, u.cfg.Auth.DefaultCountryCode)
	name := utils.SanitizeString(req.Name)
	now := u.now()

	result, err := u.store.Mutate(ctx, scope, func(state *models.AppState) (interface{}, error) {
		event := findEvent(state, eventID)
		if event == nil {
			return nil, apperr.NotFound("event not found")
		}
		if !ok {
			return event, nil
		}

		isLate := event.RSVPDeadline != nil && now.After(*event.RSVPDeadline)
		respondedAt := now

		for i := range event.Participants {
			existing, eok := utils.NormalizePhoneNumber(event.Participants[i].PhoneNumber, u.cfg.Auth.DefaultCountryCode)
			if eok && existing == phone {
				event.Participants[i].Status = req.Status
				event.Participants[i].RespondedAt = &respondedAt
				event.Participants[i].IsLateResponse = isLate
				if name != "" {
					event.Participants[i].Name = name
				}
				event.UpdatedAt = now
				return event, nil
			}
		}

		event.Participants = append(event.Participants, models.Participant{
			Name:           name,
			PhoneNumber:    phone,
			Status:         req.Status,
			RespondedAt:    &respondedAt,
			IsLateResponse: isLate,
		})
		event.UpdatedAt = now
		return event, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Event), nil
}

// CreateGroup creates a group with members deduplicated by phone number
func (u *EventUsecase) CreateGroup(ctx context.Context, scope string, req *models.CreateGroupRequest) (*models.Group, error) {
	groupName := utils.SanitizeString(req.Name)
	if groupName == "" {
		return nil, apperr.Validation("name is required")
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return nil, apperr.Validation("createdBy is required")
	}

	now := u.now()
	group := models.Group{
		ID:          uuid.New().String(),
		Name:        groupName,
		Description: utils.SanitizeString(req.Description),
		CreatedBy:   req.CreatedBy,
		Members:     u.dedupeFriends(nil, req.Members),
		CreatedAt:   now,
	}

	result, err := u.store.Mutate(ctx, scope, func(state *models.AppState) (interface{}, error) {
		state.Groups = append(state.Groups, group)
		return &state.Groups[len(state.Groups)-1], nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Group), nil
}

// AddMembersToGroup merges new members into an existing group. Existing
// members keep their position, new phone numbers are appended in request
// order.
func (u *EventUsecase) AddMembersToGroup(ctx context.Context, scope, groupID string, members []models.Friend) (*models.Group, error) {
	result, err := u.store.Mutate(ctx, scope, func(state *models.AppState) (interface{}, error) {
		for i := range state.Groups {
			if state.Groups[i].ID == groupID {
				state.Groups[i].Members = u.dedupeFriends(state.Groups[i].Members, members)
				return &state.Groups[i], nil
			}
		}
		return nil, apperr.NotFound("group not found")
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Group), nil
}

// ToggleEventReminder enables or disables reminders for an event
func (u *EventUsecase) ToggleEventReminder(ctx context.Context, scope, eventID string, enabled bool) (*models.Event, error) {
	now := u.now()
	result, err := u.store.Mutate(ctx, scope, func(state *models.AppState) (interface{}, error) {
		event := findEvent(state, eventID)
		if event == nil {
			return nil, apperr.NotFound("event not found")
		}
		event.ReminderEnabled = enabled
		event.UpdatedAt = now
		return event, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Event), nil
}

// SendRSVPNudge marks the nudge time and reports how many participants are
// still pending. Participant state is untouched.
func (u *EventUsecase) SendRSVPNudge(ctx context.Context, scope, eventID string) (*models.NudgeResponse, error) {
	now := u.now()
	result, err := u.store.Mutate(ctx, scope, func(state *models.AppState) (interface{}, error) {
		event := findEvent(state, eventID)
		if event == nil {
			return nil, apperr.NotFound("event not found")
		}

		pending := 0
		for _, p := range event.Participants {
			if p.Status == models.StatusPending {
				pending++
			}
		}

		event.LastNudgeAt = &now
		return &models.NudgeResponse{PendingCount: pending, NudgedAt: now}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.NudgeResponse), nil
}

// buildInviteLink assembles the shareable invitation URL
func (u *EventUsecase) buildInviteLink(eventID, code, token string) string {
	return fmt.Sprintf("%s/invite/%s?code=%s&token=%s",
		strings.TrimRight(u.cfg.App.BaseURL, "/"), eventID, code, url.QueryEscape(token))
}

// dedupeParticipants keeps the first participant per normalized phone number
func (u *EventUsecase) dedupeParticipants(participants []models.Participant) []models.Participant {
	result := make([]models.Participant, 0, len(participants))
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		phone, ok := utils.NormalizePhoneNumber(p.PhoneNumber, u.cfg.Auth.DefaultCountryCode)
		if !ok || seen[phone] {
			continue
		}
		seen[phone] = true
		p.PhoneNumber = phone
		if p.Status == "" {
			p.Status = models.StatusPending
		}
		result = append(result, p)
	}
	return result
}

// dedupeFriends merges extra friends into base, keeping the first entry per
// normalized phone number
func (u *EventUsecase) dedupeFriends(base, extra []models.Friend) []models.Friend {
	result := make([]models.Friend, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, f := range append(append([]models.Friend{}, base...), extra...) {
		phone, ok := utils.NormalizePhoneNumber(f.PhoneNumber, u.cfg.Auth.DefaultCountryCode)
		if !ok || seen[phone] {
			continue
		}
		seen[phone] = true
		f.PhoneNumber = phone
		result = append(result, f)
	}
	return result
}

// findEvent returns a pointer into the state's event slice, or nil
func findEvent(state *models.AppState, eventID string) *models.Event {
	for i := range state.Events {
		if state.Events[i].ID == eventID {
			return &state.Events[i]
		}
	}
	return nil
}

func validStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusAccepted, models.StatusDeclined:
		return true
	}
	return false
}
