package mailer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []Message
	err  error
	gate chan struct{}
}

func (m *recordingMailer) Send(ctx context.Context, msg Message) error {
	if m.gate != nil {
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func closeWithin(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
}

func TestDispatcher_DrainsOnClose(t *testing.T) {
	m := &recordingMailer{}
	logger, _ := test.NewNullLogger()
	d := NewDispatcher(m, 8, logger)

	for i := 0; i < 5; i++ {
		assert.True(t, d.Enqueue(Message{Subject: "hello"}))
	}
	closeWithin(t, d)

	assert.Equal(t, 5, m.count())
	assert.False(t, d.Enqueue(Message{Subject: "late"}))
}

func TestDispatcher_FailureIsLoggedOnly(t *testing.T) {
	m := &recordingMailer{err: errors.New("smtp down")}
	logger, hook := test.NewNullLogger()
	d := NewDispatcher(m, 1, logger)

	assert.True(t, d.Enqueue(Message{Subject: "New Student Registration: A B"}))
	closeWithin(t, d)

	assert.Equal(t, 1, m.count())
	var failed bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Message == "mail delivery failed" {
			failed = true
		}
	}
	assert.True(t, failed)
}

func TestDispatcher_FullQueueDrops(t *testing.T) {
	m := &recordingMailer{gate: make(chan struct{})}
	logger, _ := test.NewNullLogger()
	d := NewDispatcher(m, 1, logger)

	// worker picks the first message and blocks on the gate, second fills the buffer
	require.True(t, d.Enqueue(Message{Subject: "1"}))
	require.Eventually(t, func() bool { return len(d.queue) == 0 }, time.Second, 5*time.Millisecond)
	require.True(t, d.Enqueue(Message{Subject: "2"}))
	assert.False(t, d.Enqueue(Message{Subject: "3"}))

	close(m.gate)
	closeWithin(t, d)
	assert.Equal(t, 2, m.count())
}

func TestLogMailer(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := &LogMailer{Log: logger}
	require.NoError(t, m.Send(context.Background(), Message{From: "a@x", To: []string{"b@x"}, Subject: "s", Body: "body"}))
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "s", hook.LastEntry().Data["subject"])
}
