// Package events carries the signals windows send to the orchestrator.
//
// Dispatch is synchronous on the publisher's goroutine, which in the running
// shell is always the UI goroutine. One-shot subscriptions record whether they
// have been consumed so repeated signals are observably ignored.
package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"office97/internal/logger"
)

const (
	InstallerComplete = "installer-complete"
	SetupFinish       = "setup:finish"
	SetupExit         = "setup:exit"
	LaunchApp         = "launch-app"
	SendToMail        = "send-to-mail"
	MailReady         = "mail:ready"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type Handler func(Event)

type Subscription struct {
	id        string
	eventType string
	handler   Handler
	once      bool
	consumed  bool
	cancelled bool
}

func (s *Subscription) ID() string {
	return s.id
}

// Consumed reports whether a one-shot subscription has fired.
func (s *Subscription) Consumed() bool {
	return s.consumed
}

type Bus struct {
	subscribers map[string][]*Subscription
	mu          sync.Mutex
	logger      logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Bus{
		subscribers: make(map[string][]*Subscription),
		logger:      log,
	}
}

// Subscribe registers a persistent handler.
func (b *Bus) Subscribe(eventType string, handler Handler) *Subscription {
	return b.add(eventType, handler, false)
}

// SubscribeOnce registers a handler that runs for the first matching event only.
func (b *Bus) SubscribeOnce(eventType string, handler Handler) *Subscription {
	return b.add(eventType, handler, true)
}

func (b *Bus) add(eventType string, handler Handler, once bool) *Subscription {
	sub := &Subscription{
		id:        uuid.NewString(),
		eventType: eventType,
		handler:   handler,
		once:      once,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], sub)
	return sub
}

func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	sub.cancelled = true
	b.removeLocked(sub)
}

func (b *Bus) removeLocked(sub *Subscription) {
	subs := b.subscribers[sub.eventType]
	for i, s := range subs {
		if s.id == sub.id {
			b.subscribers[sub.eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers event to every live subscriber and returns how many
// handlers ran. An event nobody is waiting for is dropped.
func (b *Bus) Publish(event Event) int {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.Lock()
	var due []*Subscription
	for _, sub := range b.subscribers[event.Type] {
		if sub.cancelled || (sub.once && sub.consumed) {
			continue
		}
		if sub.once {
			sub.consumed = true
			b.removeLocked(sub)
		}
		due = append(due, sub)
	}
	b.mu.Unlock()

	if len(due) == 0 {
		b.logger.Debug("EventBus", "event ignored", map[string]interface{}{
			"event": event.Type,
		})
		return 0
	}

	for _, sub := range due {
		b.dispatch(sub, event)
	}
	return len(due)
}

func (b *Bus) dispatch(sub *Subscription, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"event":        event.Type,
				"subscription": sub.id,
			})
		}
	}()
	sub.handler(event)
}

// Subscribers counts live subscriptions for eventType.
func (b *Bus) Subscribers(eventType string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers[eventType])
}
