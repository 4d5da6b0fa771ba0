package usecase

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/pkg/signing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createInvitedEvent creates an event and returns it with its invite token
func createInvitedEvent(t *testing.T, uc *EventUsecase) (*models.Event, string) {
	t.Helper()
	event, err := uc.CreateEvent(context.Background(), testScope, validEventRequest())
	require.NoError(t, err)

	linkURL, err := url.Parse(event.InvitationLink)
	require.NoError(t, err)
	token := linkURL.Query().Get("token")
	require.NotEmpty(t, token)
	return event, token
}

func TestValidateInvite_ValidCodeAndToken(t *testing.T) {
	uc, _ := newTestUsecase()
	event, token := createInvitedEvent(t, uc)

	got, err := uc.ValidateInvite(context.Background(), testScope, event.ID, event.InvitationCode, token)

	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
}

func TestValidateInvite_CodeOnlyLegacyLink(t *testing.T) {
	// Links minted before tokenization carry no token and stay valid
	uc, _ := newTestUsecase()
	event, _ := createInvitedEvent(t, uc)

	got, err := uc.ValidateInvite(context.Background(), testScope, event.ID, event.InvitationCode, "")

	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
}

func TestValidateInvite_WrongCode(t *testing.T) {
	uc, _ := newTestUsecase()
	event, _ := createInvitedEvent(t, uc)

	_, err := uc.ValidateInvite(context.Background(), testScope, event.ID, "WRONGCODE", "")

	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestValidateInvite_EmptyCode(t *testing.T) {
	uc, _ := newTestUsecase()
	event, _ := createInvitedEvent(t, uc)

	_, err := uc.ValidateInvite(context.Background(), testScope, event.ID, "", "")

	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestValidateInvite_ExpiredLink(t *testing.T) {
	// Arrange
	uc, now := newTestUsecase()
	event, token := createInvitedEvent(t, uc)

	// Act: validate after the 14-day link lifetime
	*now = now.Add(15 * 24 * time.Hour)
	_, err := uc.ValidateInvite(context.Background(), testScope, event.ID, event.InvitationCode, token)

	// Assert
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestValidateInvite_ForgedToken(t *testing.T) {
	// Arrange: a token signed with the wrong secret
	uc, _ := newTestUsecase()
	event, _ := createInvitedEvent(t, uc)

	forged, err := signing.Encode([]byte("attacker-secret"), models.InviteClaims{
		EventID: event.ID,
		Code:    event.InvitationCode,
		Exp:     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	// Act
	_, err = uc.ValidateInvite(context.Background(), testScope, event.ID, event.InvitationCode, forged)

	// Assert
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestValidateInvite_TokenForDifferentEvent(t *testing.T) {
	// Arrange: a genuine token from another event
	uc, _ := newTestUsecase()
	first, _ := createInvitedEvent(t, uc)
	second, secondToken := createInvitedEvent(t, uc)
	require.NotEqual(t, first.ID, second.ID)

	// Act
	_, err := uc.ValidateInvite(context.Background(), testScope, first.ID, first.InvitationCode, secondToken)

	// Assert
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestValidateInvite_UnknownEvent(t *testing.T) {
	uc, _ := newTestUsecase()

	_, err := uc.ValidateInvite(context.Background(), testScope, "missing", "ANYCODE1", "")

	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}
