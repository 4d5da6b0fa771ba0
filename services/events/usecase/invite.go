package usecase

import (
	"context"

	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/pkg/signing"
)

// ValidateInvite checks an invitation against the stored event. The link
// must not be expired and the code must match. A token, when supplied, must
// verify under the invite secret and bind the same event and code. Links
// minted before tokenization carry no token and stay valid on code match
// alone. Every failure is NOT_FOUND so callers cannot probe for events.
func (u *EventUsecase) ValidateInvite(ctx context.Context, scope, eventID, code, token string) (*models.Event, error) {
	state, err := u.store.Read(ctx, scope)
	if err != nil {
		return nil, err
	}

	event := findEvent(state, eventID)
	if event == nil {
		return nil, apperr.NotFound("invitation not found")
	}

	now := u.now()
	if now.After(event.LinkExpiresAt) {
		logger.Debug("Invitation link expired",
			logger.String("event_id", eventID))
		return nil, apperr.NotFound("invitation not found")
	}
	if code == "" || code != event.InvitationCode {
		return nil, apperr.NotFound("invitation not found")
	}

	if token != "" {
		var claims models.InviteClaims
		if !signing.Decode([]byte(u.cfg.Invite.Secret), token, &claims) {
			return nil, apperr.NotFound("invitation not found")
		}
		if claims.EventID != eventID || claims.Code != code {
			return nil, apperr.NotFound("invitation not found")
		}
		if now.Unix() > claims.Exp {
			return nil, apperr.NotFound("invitation not found")
		}
	}

	return event, nil
}
