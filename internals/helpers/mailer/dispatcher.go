package mailer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize = 64
	sendTimeout      = 30 * time.Second
)

// Dispatcher mengirim email di background worker. Kegagalan kirim hanya
// di-log; pemanggil tidak pernah menunggu hasil pengiriman.
type Dispatcher struct {
	mailer Mailer
	log    logrus.FieldLogger
	queue  chan Message

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(m Mailer, size int, log logrus.FieldLogger) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	d := &Dispatcher{
		mailer: m,
		log:    log,
		queue:  make(chan Message, size),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue menaruh pesan ke antrean tanpa blocking; false bila penuh/tertutup.
func (d *Dispatcher) Enqueue(msg Message) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.log.WithField("subject", msg.Subject).Warn("mail dispatcher closed, message dropped")
		return false
	}
	select {
	case d.queue <- msg:
		return true
	default:
		d.log.WithField("subject", msg.Subject).Error("mail queue full, message dropped")
		return false
	}
}

// Close menghentikan antrean lalu menunggu sisa pesan terkirim (atau ctx habis).
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	entry := d.log.WithFields(logrus.Fields{"to": msg.To, "subject": msg.Subject})
	defer func() {
		if r := recover(); r != nil {
			entry.WithField("panic", fmt.Sprint(r)).Error("mail delivery panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := d.mailer.Send(ctx, msg); err != nil {
		entry.WithError(err).Error("mail delivery failed")
		return
	}
	entry.Info("mail delivered")
}
