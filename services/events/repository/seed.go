package repository

import (
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

// seedAppState builds the deterministic starter state for a scope that has
// never been written. The demo event carries a code-only invitation link so
// pre-tokenization links stay exercised end to end.
func seedAppState(now time.Time) *models.AppState {
	eventDate := now.Add(7 * 24 * time.Hour).Truncate(time.Hour)

	demoFriend := models.Friend{
		UserID:      "seed-user-1",
		Name:        "Alex Demo",
		PhoneNumber: "+6281200000001",
	}

	demoEvent := models.Event{
		ID:        "seed-event-1",
		Title:     "Welcome Dinner",
		Date:      eventDate,
		Time:      "19:00",
		Location:  "Warung Kita",
		CreatedBy: "seed-user-1",
		Participants: []models.Participant{
			{
				UserID:      demoFriend.UserID,
				Name:        demoFriend.Name,
				PhoneNumber: demoFriend.PhoneNumber,
				Status:      models.StatusPending,
			},
		},
		InvitationCode:  "WELCOME1",
		InvitationLink:  "/invite/seed-event-1?code=WELCOME1",
		LinkExpiresAt:   now.Add(14 * 24 * time.Hour),
		ReminderEnabled: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	demoGroup := models.Group{
		ID:        "seed-group-1",
		Name:      "Close Friends",
		CreatedBy: "seed-user-1",
		Members:   []models.Friend{demoFriend},
		CreatedAt: now,
	}

	return &models.AppState{
		Events:  []models.Event{demoEvent},
		Groups:  []models.Group{demoGroup},
		Friends: []models.Friend{demoFriend},
	}
}
