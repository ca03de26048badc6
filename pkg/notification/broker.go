package notification

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"golang.org/x/exp/maps"
)

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[uuid.UUID]subscriber),
	}
}

type subscriber struct {
	user    model.User
	channel chan model.Notification
}

// Broker fans notifications out to connected users. A user has at most one
// live subscription; subscribing again replaces the previous channel.
type Broker struct {
	subscribers map[uuid.UUID]subscriber
	lock        sync.Mutex
}

func (b *Broker) Subscribe(user model.User) chan model.Notification {
	b.lock.Lock()
	defer b.lock.Unlock()
	if existing, ok := b.subscribers[user.ID]; ok {
		close(existing.channel)
	}
	channel := make(chan model.Notification, 1)
	b.subscribers[user.ID] = subscriber{
		user:    user,
		channel: channel,
	}
	return channel
}

// Unsubscribe removes the subscription only if channel is still the user's
// live one. A stale connection draining late must not tear down the
// subscription that replaced it.
func (b *Broker) Unsubscribe(id uuid.UUID, channel chan model.Notification) {
	b.lock.Lock()
	defer b.lock.Unlock()
	existing, ok := b.subscribers[id]
	if !ok || existing.channel != channel {
		return
	}
	close(existing.channel)
	delete(b.subscribers, id)
}

func (b *Broker) Subscribers() []model.User {
	b.lock.Lock()
	defer b.lock.Unlock()
	keys := maps.Keys(b.subscribers)
	subscribers := make([]model.User, len(keys))
	for i, key := range keys {
		subscribers[i] = b.subscribers[key].user
	}
	return subscribers
}

// Send delivers to the user's live subscription if one exists. Delivery is
// best effort; users without an open stream read the notification from the
// persisted list instead.
func (b *Broker) Send(id uuid.UUID, notification model.Notification) bool {
	b.lock.Lock()
	sub, ok := b.subscribers[id]
	b.lock.Unlock()
	if !ok {
		return false
	}
	select {
	case sub.channel <- notification:
		return true
	default:
		return false
	}
}

