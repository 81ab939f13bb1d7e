// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bus implements the typed publish/subscribe channel between the
// auth controller and its collaborators.
//
// Subscriptions are keyed by the Go type of the message, so a handler
// registered with [Subscribe] only ever sees values of its own type.
//
// Two delivery paths exist:
//   - [Bus.Publish] fans a message out synchronously on the caller's
//     goroutine. The UI goroutine is the only caller.
//   - [Bus.Post] is safe from any goroutine. It enqueues the message into the
//     inbox; the UI loop receives it from [Bus.Inbox] and publishes it, so
//     handlers for inbound responses always run on the UI goroutine.
package bus

import (
	"errors"
	"reflect"
	"sync"

	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
)

// DefaultInboxSize is used when a non-positive inbox size is requested.
const DefaultInboxSize = 16

// ErrClosed is returned by [Bus.Post] after [Bus.Close].
var ErrClosed = errors.New("bus is closed")

// Publisher is the outbound half of the bus.
type Publisher interface {
	Publish(msg models.Message)
}

// Poster enqueues messages from goroutines other than the UI goroutine.
type Poster interface {
	Post(msg models.Message) error
}

type subscription struct {
	id      uint64
	handler func(models.Message)
}

// Bus is a typed event bus with a buffered inbox for inbound messages.
type Bus struct {
	mu     sync.RWMutex
	subs   map[reflect.Type][]subscription
	nextID uint64

	inbox     chan models.Message
	done      chan struct{}
	closeOnce sync.Once

	logger *logger.Logger
}

// New creates a bus whose inbox holds up to inboxSize pending messages.
func New(inboxSize int, log *logger.Logger) *Bus {
	if inboxSize <= 0 {
		inboxSize = DefaultInboxSize
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Bus{
		subs:   make(map[reflect.Type][]subscription),
		inbox:  make(chan models.Message, inboxSize),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Subscribe registers handler for messages of type T and returns a function
// that removes the registration.
func Subscribe[T models.Message](b *Bus, handler func(T)) (unsubscribe func()) {
	key := reflect.TypeFor[T]()

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[key] = append(b.subs[key], subscription{
		id: id,
		handler: func(msg models.Message) {
			handler(msg.(T))
		},
	})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(key, id) })
	}
}

// Publish delivers msg to every handler subscribed to its type, in
// subscription order. Handlers may publish further messages.
func (b *Bus) Publish(msg models.Message) {
	if msg == nil {
		return
	}

	key := reflect.TypeOf(msg)

	b.mu.RLock()
	subs := append([]subscription(nil), b.subs[key]...)
	b.mu.RUnlock()

	b.logger.Debug().Str("message", key.Name()).Int("subscribers", len(subs)).Msg("publish")

	for _, sub := range subs {
		sub.handler(msg)
	}
}

// Post enqueues msg into the inbox. It blocks while the inbox is full and
// fails with [ErrClosed] once the bus is closed.
func (b *Bus) Post(msg models.Message) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}

	select {
	case b.inbox <- msg:
		return nil
	case <-b.done:
		return ErrClosed
	}
}

// Inbox returns the channel of posted messages.
func (b *Bus) Inbox() <-chan models.Message {
	return b.inbox
}

// Done is closed when the bus is closed.
func (b *Bus) Done() <-chan struct{} {
	return b.done
}

// Close stops accepting posted messages. Pending inbox messages are dropped
// by the reader. Close is idempotent.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}

func (b *Bus) remove(key reflect.Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[key]
	for i, sub := range subs {
		if sub.id == id {
			b.subs[key] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[key]) == 0 {
		delete(b.subs, key)
	}
}
