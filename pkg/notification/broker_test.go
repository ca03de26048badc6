package notification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestBroker_Subscribe(t *testing.T) {
	broker := NewBroker()
	id := uuid.New()

	channel := broker.Subscribe(model.User{ID: id})

	assert.NotNil(t, channel)
	assert.Len(t, broker.subscribers, 1)
	assert.Equal(t, id, broker.subscribers[id].user.ID)
}

func TestBroker_Subscribe_MultipleSubscribers(t *testing.T) {
	broker := NewBroker()
	first := uuid.New()
	second := uuid.New()

	broker.Subscribe(model.User{ID: first})
	broker.Subscribe(model.User{ID: second})

	assert.Len(t, broker.subscribers, 2)
}

func TestBroker_Subscribe_ReplacesAndClosesPrevious(t *testing.T) {
	broker := NewBroker()
	id := uuid.New()

	first := broker.Subscribe(model.User{ID: id})
	second := broker.Subscribe(model.User{ID: id})

	_, open := <-first
	assert.False(t, open)
	assert.NotEqual(t, first, second)
	assert.Len(t, broker.subscribers, 1)
}

func TestBroker_Unsubscribe(t *testing.T) {
	broker := NewBroker()
	id := uuid.New()
	channel := broker.Subscribe(model.User{ID: id})

	broker.Unsubscribe(id, channel)

	assert.Len(t, broker.subscribers, 0)
	_, open := <-channel
	assert.False(t, open)
}

func TestBroker_Unsubscribe_UnknownIDIsANoop(t *testing.T) {
	broker := NewBroker()

	broker.Unsubscribe(uuid.New(), make(chan model.Notification))

	assert.Len(t, broker.subscribers, 0)
}

func TestBroker_Unsubscribe_StaleChannelKeepsReplacement(t *testing.T) {
	broker := NewBroker()
	id := uuid.New()
	stale := broker.Subscribe(model.User{ID: id})
	replacement := broker.Subscribe(model.User{ID: id})

	broker.Unsubscribe(id, stale)

	assert.Len(t, broker.subscribers, 1)
	sent := broker.Send(id, model.Notification{Title: "still delivered"})
	assert.True(t, sent)
	notification := <-replacement
	assert.Equal(t, "still delivered", notification.Title)
}

func TestBroker_SendAndReceive(t *testing.T) {
	broker := NewBroker()
	id := uuid.New()
	channel := broker.Subscribe(model.User{ID: id})

	sent := broker.Send(id, model.Notification{Title: "Deployment Successful", Type: model.NotificationTypeSuccess})
	assert.True(t, sent)

	notification := <-channel
	assert.Equal(t, "Deployment Successful", notification.Title)
	assert.Equal(t, model.NotificationTypeSuccess, notification.Type)
}

func TestBroker_Send_NoSubscriber(t *testing.T) {
	broker := NewBroker()

	sent := broker.Send(uuid.New(), model.Notification{Title: "title"})

	assert.False(t, sent)
}

func TestBroker_Send_FullChannelDoesNotBlock(t *testing.T) {
	broker := NewBroker()
	id := uuid.New()
	broker.Subscribe(model.User{ID: id})

	first := broker.Send(id, model.Notification{Title: "first"})
	second := broker.Send(id, model.Notification{Title: "second"})

	assert.True(t, first)
	assert.False(t, second)
}

func TestBroker_Subscribers(t *testing.T) {
	broker := NewBroker()
	first := uuid.New()
	second := uuid.New()
	broker.Subscribe(model.User{ID: first})
	broker.Subscribe(model.User{ID: second})

	subscribers := broker.Subscribers()

	assert.Len(t, subscribers, 2)
}
