package mailer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/smtpbridge/hook"
)

// Mailer delivers outgoing messages. It owns a base Transport record (local
// delivery by default) and exposes the extension points that let an
// embedding host rewire delivery per message:
//
//   - BeforeSend receives the per-message Transport clone immediately
//     before dispatch and may mutate any of its fields.
//   - From and FromName filter the message's from address and display name
//     during composition, before BeforeSend fires.
//
// Hook registration is a startup-time concern; Send itself keeps no state
// between messages beyond the read-only base transport.
type Mailer struct {
	BeforeSend *hook.Action[*Transport]
	From       *hook.Filter[string]
	FromName   *hook.Filter[string]

	base     Transport
	logger   *slog.Logger
	localDir string
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for dispatch diagnostics. Defaults to a
// discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mailer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLocalDir sets the directory local-mode messages are written to.
func WithLocalDir(dir string) Option {
	return func(m *Mailer) {
		if dir != "" {
			m.localDir = dir
		}
	}
}

// New creates a Mailer with local delivery as the default mechanism.
func New(opts ...Option) *Mailer {
	m := &Mailer{
		BeforeSend: &hook.Action[*Transport]{},
		From:       &hook.Filter[string]{},
		FromName:   &hook.Filter[string]{},
		base: Transport{
			Mode:    ModeLocal,
			Timeout: 10 * time.Second,
		},
		logger:   slog.New(slog.DiscardHandler),
		localDir: "outbox",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send dispatches a single message. The from filters run first so the
// resolved display name is visible to BeforeSend callbacks through the
// transport record, then the per-message transport clone is configured and
// the message goes out over SMTP or into the local outbox.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	// Empty filter results leave the message's own values in place.
	if v := m.From.Apply(msg.From.Email); v != "" {
		msg.From.Email = v
	}
	if v := m.FromName.Apply(msg.From.Name); v != "" {
		msg.From.Name = v
	}

	if err := msg.Validate(); err != nil {
		return err
	}

	t := m.base.clone()
	t.FromName = msg.From.Name
	m.BeforeSend.Fire(t)

	if t.Mode == ModeSMTP {
		m.logger.Debug("dispatching over smtp",
			slog.String("host", t.Host),
			slog.Int("port", t.Port),
			slog.String("encryption", t.Encryption))
		return m.sendSMTP(ctx, t, msg)
	}

	m.logger.Debug("dispatching to local outbox", slog.String("dir", m.localDir))
	return m.sendLocal(t, msg)
}
