package smtpbridge

import (
	"log/slog"

	"github.com/dmitrymomot/smtpbridge/hook"
	"github.com/dmitrymomot/smtpbridge/mailer"
	"github.com/dmitrymomot/smtpbridge/settings"
	"github.com/dmitrymomot/smtpbridge/validate"
)

// mailRuleset is the fixed constraint set for the mail settings table.
func mailRuleset() validate.Ruleset {
	return validate.Ruleset{
		Required:  []string{settings.Host, settings.User, settings.Password},
		IsEmail:   []string{settings.ReturnPath, settings.ReplyTo},
		IsInteger: []string{settings.Port, settings.Timeout},
		Enumerated: []validate.Enum{
			{Setting: settings.Secure, Allowed: []string{settings.SecureSSL, settings.SecureTLS, settings.SecureNone}},
			{Setting: settings.AuthType, Allowed: []string{settings.AuthLogin, settings.AuthPlain, settings.AuthNTLM}},
		},
	}
}

// Bridge holds a resolved settings table and applies it to outgoing mail.
// It is constructed once at startup and read-only afterwards.
type Bridge struct {
	raw          settings.Table // as defined by the operator, pre-defaulting
	resolved     settings.Table
	logger       *slog.Logger
	isAdmin      func() bool
	isBackground func() bool
	valid        bool
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger used as the warning sink for non-fatal
// startup failures. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithAdminContext supplies the host's "is this an administrative or
// interactive context" query, consulted before enabling transport debug
// output. Defaults to false.
func WithAdminContext(fn func() bool) Option {
	return func(b *Bridge) {
		if fn != nil {
			b.isAdmin = fn
		}
	}
}

// WithBackgroundCheck supplies the host's "is this an asynchronous
// background request" query. Transport debug output is suppressed for
// background work. Defaults to false.
func WithBackgroundCheck(fn func() bool) Option {
	return func(b *Bridge) {
		if fn != nil {
			b.isBackground = fn
		}
	}
}

// New builds a Bridge from an operator-supplied settings table: defaults
// are applied to absent keys, then the resolved table is validated against
// the mail ruleset.
//
// On validation failure New returns the bridge together with the
// *validate.Error. The bridge is still usable: the from-address and
// from-name overrides have their own defaulting and stay active regardless
// of SMTP validity, only the transport configurator stays unregistered.
func New(tbl settings.Table, opts ...Option) (*Bridge, error) {
	b := &Bridge{
		raw:          tbl.Clone(),
		resolved:     settings.WithDefaults(tbl),
		logger:       slog.New(slog.DiscardHandler),
		isAdmin:      func() bool { return false },
		isBackground: func() bool { return false },
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := validate.Validate(b.resolved, mailRuleset()); err != nil {
		return b, err
	}
	b.valid = true
	return b, nil
}

// Valid reports whether the last validation pass succeeded.
func (b *Bridge) Valid() bool { return b.valid }

// Settings returns a copy of the resolved (post-defaulting) table.
func (b *Bridge) Settings() settings.Table { return b.resolved.Clone() }

// FromAddress returns the from setting verbatim.
func (b *Bridge) FromAddress() string {
	v, _ := b.resolved.String(settings.From)
	return v
}

// FromName returns the from_name setting verbatim.
func (b *Bridge) FromName() string {
	v, _ := b.resolved.String(settings.FromName)
	return v
}

// Attach registers the bridge against the mailer's extension points.
//
// The transport configurator is registered only when validation passed;
// otherwise the mailer's default local mechanism stays in place. The from
// overrides are opt-in: each is registered only when its backing setting
// was explicitly defined by the operator, and both claim the floor
// priority so normal-priority registrations can still override them.
func (b *Bridge) Attach(m *mailer.Mailer) {
	if b.valid {
		m.BeforeSend.Register(b.ConfigureTransport, hook.PriorityDefault)
	}
	if b.raw.Has(settings.From) {
		m.From.Register(func(string) string { return b.FromAddress() }, hook.PriorityLowest)
	}
	if b.raw.Has(settings.FromName) {
		m.FromName.Register(func(string) string { return b.FromName() }, hook.PriorityLowest)
	}
}

// Bootstrap is the top-level entry point: it resolves settings from the
// environment and, unless disabled via SMTP_DISABLE, attaches a bridge to
// the mailer. When disabled it registers nothing, runs no validation, and
// returns (nil, nil).
//
// A validation failure is reported once through the warning sink and
// returned for inspection; it is not fatal. The returned bridge still
// carries active from overrides, while mail keeps flowing through the
// mailer's default mechanism.
func Bootstrap(m *mailer.Mailer, opts ...Option) (*Bridge, error) {
	tbl, err := settings.Load()
	if err != nil {
		return nil, err
	}

	if disabled, _ := settings.WithDefaults(tbl).Bool(settings.Disable); disabled {
		return nil, nil
	}

	b, verr := New(tbl, opts...)
	if verr != nil {
		b.logger.Warn("smtp settings rejected, keeping default mail delivery",
			slog.Any("error", verr))
	}
	b.Attach(m)
	return b, verr
}
