package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records deliveries and can be told to fail
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("relay unavailable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) all() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestRender_KnownKinds(t *testing.T) {
	subject, body := render(notification.JoinJob("leader@kirwa.rw", "Alice Uwase", "Kirwa"))
	assert.Contains(t, subject, "Kirwa")
	assert.Contains(t, body, "Alice Uwase")

	subject, body = render(notification.MigrationJob("Alice Uwase", "Kirwa", "old@kirwa.rw", "Bungwe", "new@bungwe.rw"))
	assert.Contains(t, subject, "Alice Uwase")
	assert.Contains(t, body, "Kirwa")
	assert.Contains(t, body, "Bungwe")

	subject, _ = render(notification.VisitorJob("leader@kirwa.rw", "Bob", "Alice", "Kirwa"))
	assert.Contains(t, subject, "Kirwa")

	_, body = render(notification.OTPJob("user@example.com", "123456", "verification"))
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "verification")

	// No placeholder may survive rendering
	assert.NotContains(t, body, "{{")
}

func TestRender_UnknownKindFallsBack(t *testing.T) {
	job := notification.Job{Kind: notification.JobKind("carrier_pigeon")}

	subject, body := render(job)
	assert.Equal(t, "SmartVillage notification", subject)
	assert.Contains(t, body, "carrier_pigeon")
}

func TestRecipients(t *testing.T) {
	t.Run("single recipient", func(t *testing.T) {
		job := notification.JoinJob("leader@kirwa.rw", "Alice", "Kirwa")
		assert.Equal(t, []string{"leader@kirwa.rw"}, recipients(job))
	})

	t.Run("empty recipient is skipped", func(t *testing.T) {
		job := notification.JoinJob("", "Alice", "Kirwa")
		assert.Empty(t, recipients(job))
	})

	t.Run("migration fans out to both leaders", func(t *testing.T) {
		job := notification.MigrationJob("Alice", "Kirwa", "old@kirwa.rw", "Bungwe", "new@bungwe.rw")
		assert.Equal(t, []string{"old@kirwa.rw", "new@bungwe.rw"}, recipients(job))
	})

	t.Run("migration without leaders delivers nowhere", func(t *testing.T) {
		job := notification.MigrationJob("Alice", "Kirwa", "", "Bungwe", "")
		assert.Empty(t, recipients(job))
	})

	t.Run("migration with one leader delivers once", func(t *testing.T) {
		job := notification.MigrationJob("Alice", "Kirwa", "", "Bungwe", "new@bungwe.rw")
		assert.Equal(t, []string{"new@bungwe.rw"}, recipients(job))
	})
}

func TestDeliver_EachRecipientIndependently(t *testing.T) {
	mailer := &fakeMailer{}
	job := notification.MigrationJob("Alice", "Kirwa", "old@kirwa.rw", "Bungwe", "new@bungwe.rw")

	deliver(context.Background(), mailer, job, zap.NewNop())

	sent := mailer.all()
	require.Len(t, sent, 2)
	assert.Equal(t, "old@kirwa.rw", sent[0].To)
	assert.Equal(t, "new@bungwe.rw", sent[1].To)
	assert.Equal(t, sent[0].Body, sent[1].Body)
}

func TestDeliver_FailureIsSwallowed(t *testing.T) {
	mailer := &fakeMailer{fail: true}
	job := notification.OTPJob("user@example.com", "123456", "verification")

	// Must not panic or propagate
	deliver(context.Background(), mailer, job, zap.NewNop())
	assert.Empty(t, mailer.all())
}

func TestChannelDispatcher_Delivers(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewChannelDispatcher(mailer, 2, 16, zap.NewNop())

	d.Dispatch(context.Background(), notification.JoinJob("leader@kirwa.rw", "Alice", "Kirwa"))
	d.Dispatch(context.Background(), notification.OTPJob("user@example.com", "654321", "reset"))

	waitFor(t, func() bool { return len(mailer.all()) == 2 })
	d.Close()

	tos := map[string]bool{}
	for _, m := range mailer.all() {
		tos[m.To] = true
	}
	assert.True(t, tos["leader@kirwa.rw"])
	assert.True(t, tos["user@example.com"])
}

func TestChannelDispatcher_DispatchAfterCloseDropsJob(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewChannelDispatcher(mailer, 1, 4, zap.NewNop())
	d.Close()

	// Must not panic, the job is dropped
	d.Dispatch(context.Background(), notification.JoinJob("leader@kirwa.rw", "Alice", "Kirwa"))
	assert.Empty(t, mailer.all())

	// Close is idempotent
	d.Close()
}

func TestChannelDispatcher_ConcurrentDispatchAndClose(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewChannelDispatcher(mailer, 2, 8, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(context.Background(), notification.OTPJob("user@example.com", "000000", "reset"))
			}
		}()
	}
	d.Close()
	wg.Wait()
}

func TestChannelDispatcher_SkipsEmptyRecipient(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewChannelDispatcher(mailer, 1, 4, zap.NewNop())

	d.Dispatch(context.Background(), notification.JoinJob("", "Alice", "Kirwa"))
	d.Close()

	assert.Empty(t, mailer.all())
}
