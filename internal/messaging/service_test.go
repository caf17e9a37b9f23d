package messaging_test

import (
	"encoding/json"
	"errors"
	"testing"

	"pairgogo/backend/internal/config"
	"pairgogo/backend/internal/messaging"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"
	"pairgogo/backend/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// recordingBroadcaster captures every event the ledger fans out.
type recordingBroadcaster struct {
	matchIDs []uint
	events   []models.Event
}

func (b *recordingBroadcaster) BroadcastToMatch(matchID uint, event models.Event) {
	b.matchIDs = append(b.matchIDs, matchID)
	b.events = append(b.events, event)
}

func TestSend_MissingMatch(t *testing.T) {
	storageMock := new(mocks.Storage)
	hub := &recordingBroadcaster{}
	svc := messaging.NewService(storageMock, hub)

	storageMock.On("GetMatchByID", uint(99)).Return(nil, storage.ErrNotFound)

	msg, err := svc.Send(99, 1, "hello?")

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, msg)
	assert.Empty(t, hub.events)
	storageMock.AssertNotCalled(t, "CreateMessage", mock.Anything)
}

func TestSend_PersistsThenBroadcastsOnce(t *testing.T) {
	storageMock := new(mocks.Storage)
	hub := &recordingBroadcaster{}
	svc := messaging.NewService(storageMock, hub)

	match := &models.Match{ID: 5, UserAID: 1, UserBID: 2, IsActive: true}
	storageMock.On("GetMatchByID", uint(5)).Return(match, nil)
	storageMock.On("CreateMessage", mock.AnythingOfType("*models.Message")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Message).ID = 301
	}).Return(nil)

	msg, err := svc.Send(5, 1, "hey there")

	assert.NoError(t, err)
	assert.Equal(t, uint(301), msg.ID)
	assert.Equal(t, uint(5), msg.MatchID)
	assert.Equal(t, uint(1), msg.SenderID)
	assert.Equal(t, "hey there", msg.Content)
	assert.False(t, msg.SentAt.IsZero())
	assert.False(t, msg.IsRead)

	if assert.Len(t, hub.events, 1) {
		assert.Equal(t, uint(5), hub.matchIDs[0])
		assert.Equal(t, models.EventTypeMessage, hub.events[0].Type)

		var wrapped models.Message
		assert.NoError(t, json.Unmarshal(hub.events[0].Data, &wrapped))
		assert.Equal(t, uint(301), wrapped.ID)
		assert.Equal(t, "hey there", wrapped.Content)
	}
}

func TestSend_NoBroadcastWhenPersistFails(t *testing.T) {
	storageMock := new(mocks.Storage)
	hub := &recordingBroadcaster{}
	svc := messaging.NewService(storageMock, hub)

	match := &models.Match{ID: 5, UserAID: 1, UserBID: 2}
	storageMock.On("GetMatchByID", uint(5)).Return(match, nil)
	storageMock.On("CreateMessage", mock.Anything).Return(errors.New("insert failed"))

	msg, err := svc.Send(5, 1, "lost")

	assert.Error(t, err)
	assert.Nil(t, msg)
	assert.Empty(t, hub.events, "a message that was never committed must not reach listeners")
}

func TestSend_MembershipGuard(t *testing.T) {
	storageMock := new(mocks.Storage)
	svc := messaging.NewService(storageMock, &recordingBroadcaster{})
	svc.EnforceMembership = true

	match := &models.Match{ID: 5, UserAID: 1, UserBID: 2}
	storageMock.On("GetMatchByID", uint(5)).Return(match, nil)

	msg, err := svc.Send(5, 3, "stranger danger")

	assert.ErrorIs(t, err, messaging.ErrNotParticipant)
	assert.Nil(t, msg)
	storageMock.AssertNotCalled(t, "CreateMessage", mock.Anything)
}

func TestSend_GuardDisabledAcceptsAnySender(t *testing.T) {
	storageMock := new(mocks.Storage)
	svc := messaging.NewService(storageMock, &recordingBroadcaster{})

	match := &models.Match{ID: 5, UserAID: 1, UserBID: 2}
	storageMock.On("GetMatchByID", uint(5)).Return(match, nil)
	storageMock.On("CreateMessage", mock.Anything).Return(nil)

	_, err := svc.Send(5, 3, "any sender id passes by default")

	assert.NoError(t, err)
}

func TestSend_NilBroadcaster(t *testing.T) {
	storageMock := new(mocks.Storage)
	svc := messaging.NewService(storageMock, nil)

	match := &models.Match{ID: 5, UserAID: 1, UserBID: 2}
	storageMock.On("GetMatchByID", uint(5)).Return(match, nil)
	storageMock.On("CreateMessage", mock.Anything).Return(nil)

	msg, err := svc.Send(5, 1, "still persisted")

	assert.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestList_UsesFixedPageLimit(t *testing.T) {
	storageMock := new(mocks.Storage)
	svc := messaging.NewService(storageMock, nil)

	expected := []models.Message{{ID: 1}, {ID: 2}}
	storageMock.On("ListMessages", uint(5), config.MessagePageLimit).Return(expected, nil)

	msgs, err := svc.List(5)

	assert.NoError(t, err)
	assert.Equal(t, expected, msgs)
	storageMock.AssertExpectations(t)
}

func TestMarkRead(t *testing.T) {
	storageMock := new(mocks.Storage)
	svc := messaging.NewService(storageMock, nil)

	storageMock.On("MarkMessageRead", uint(301)).Return(nil)

	assert.NoError(t, svc.MarkRead(301))
	storageMock.AssertExpectations(t)
}
