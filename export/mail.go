package export

import (
	"bytes"
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/photobooth"
)

// DefaultSentHold is how long a SimulatedMailer reports Sent after a send.
const DefaultSentHold = 3 * time.Second

// Receipt describes one e-mail send.
type Receipt struct {
	ID         uuid.UUID
	To         string
	SentAt     time.Time
	Attachment string // file name of the attached PNG
	Size       int    // attachment size in bytes
}

// Mailer sends a composition to an e-mail address.
type Mailer interface {
	Send(ctx context.Context, to string, comp *photobooth.Composition) (Receipt, error)
}

// SimulatedMailer validates the address and prepares the attachment but
// delivers nothing; the send is only logged. After a send it reports Sent
// for the hold duration, mirroring a "sent" indicator in a UI.
type SimulatedMailer struct {
	hold time.Duration
	now  func() time.Time

	mu        sync.Mutex
	sentUntil time.Time
	last      Receipt
}

// MailerOption configures a SimulatedMailer.
type MailerOption func(*SimulatedMailer)

// WithSentHold sets how long Sent stays true after a send.
func WithSentHold(d time.Duration) MailerOption {
	return func(m *SimulatedMailer) {
		if d >= 0 {
			m.hold = d
		}
	}
}

// WithClock sets the time source. Tests use it to step time.
func WithClock(now func() time.Time) MailerOption {
	return func(m *SimulatedMailer) {
		if now != nil {
			m.now = now
		}
	}
}

// NewSimulatedMailer creates a SimulatedMailer.
func NewSimulatedMailer(opts ...MailerOption) *SimulatedMailer {
	m := &SimulatedMailer{hold: DefaultSentHold, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send pretends to e-mail comp to the given address. An empty address
// yields ErrEmailRequired and a malformed one ErrInvalidEmail.
func (m *SimulatedMailer) Send(ctx context.Context, to string, comp *photobooth.Composition) (Receipt, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return Receipt{}, ErrEmailRequired
	}
	addr, err := mail.ParseAddress(to)
	if err != nil || !strings.Contains(addr.Address, ".") {
		return Receipt{}, fmt.Errorf("%w: %q", ErrInvalidEmail, to)
	}
	if comp == nil || comp.Image == nil {
		return Receipt{}, ErrNoComposition
	}
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, comp.Image); err != nil {
		return Receipt{}, err
	}

	now := m.now()
	r := Receipt{
		ID:         uuid.New(),
		To:         addr.Address,
		SentAt:     now,
		Attachment: Filename(comp.Request.Mode, now),
		Size:       buf.Len(),
	}

	m.mu.Lock()
	m.sentUntil = now.Add(m.hold)
	m.last = r
	m.mu.Unlock()

	photobooth.Logger().Info("export: simulated email send",
		"id", r.ID.String(), "to", r.To, "attachment", r.Attachment, "bytes", r.Size)
	return r, nil
}

// Sent reports whether a send happened within the hold duration.
func (m *SimulatedMailer) Sent() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now().Before(m.sentUntil)
}

// Last returns the receipt of the most recent send.
func (m *SimulatedMailer) Last() (Receipt, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.last.ID != uuid.Nil
}
