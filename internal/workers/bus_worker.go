// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
)

// DefaultQueueSize is used when a non-positive queue size is configured.
const DefaultQueueSize = 4

// BusWorker serves messages of type T one at a time and posts the reply of
// each to the bus inbox.
type BusWorker[T models.Message] struct {
	bus *bus.Bus

	// handle produces the reply for msg. A nil reply posts nothing.
	handle func(ctx context.Context, msg T) models.Message
	// overflow produces the reply for a message dropped on a full queue.
	overflow func(msg T) models.Message

	jobs        chan T
	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
	runOnce     sync.Once
	stopOnce    sync.Once

	logger *logger.Logger
}

func newBusWorker[T models.Message](
	b *bus.Bus,
	queueSize int,
	handle func(ctx context.Context, msg T) models.Message,
	overflow func(msg T) models.Message,
	log *logger.Logger,
) *BusWorker[T] {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if log == nil {
		log = logger.Nop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	child := log.GetChildLogger()
	child.Logger = child.With().Str("worker", reflect.TypeFor[T]().Name()).Logger()

	return &BusWorker[T]{
		bus:      b,
		handle:   handle,
		overflow: overflow,
		jobs:     make(chan T, queueSize),
		ctx:      ctx,
		cancel:   cancel,
		logger:   child,
	}
}

// Run implements [Worker].
func (w *BusWorker[T]) Run() {
	w.runOnce.Do(func() {
		w.unsubscribe = bus.Subscribe(w.bus, w.enqueue)

		w.wg.Add(1)
		go w.loop()
	})
}

// Stop implements [Worker]. Jobs still queued are discarded.
func (w *BusWorker[T]) Stop() {
	w.stopOnce.Do(func() {
		if w.unsubscribe != nil {
			w.unsubscribe()
		}
		w.cancel()
		w.wg.Wait()
	})
}

// enqueue runs on the publishing goroutine and never blocks.
func (w *BusWorker[T]) enqueue(msg T) {
	select {
	case w.jobs <- msg:
	default:
		w.logger.Warn().Msg("queue is full, dropping message")
		if w.overflow != nil {
			w.post(w.overflow(msg))
		}
	}
}

func (w *BusWorker[T]) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case msg := <-w.jobs:
			w.post(w.handle(w.ctx, msg))
		}
	}
}

func (w *BusWorker[T]) post(reply models.Message) {
	if reply == nil {
		return
	}
	if err := w.bus.Post(reply); err != nil && !errors.Is(err, bus.ErrClosed) {
		w.logger.Error().Err(err).Msg("post reply")
	}
}
