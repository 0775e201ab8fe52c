package smtpbridge

import (
	"time"

	"github.com/dmitrymomot/smtpbridge/mailer"
	"github.com/dmitrymomot/smtpbridge/settings"
)

// ConfigureTransport applies the validated settings to a per-message
// transport record. The mailer invokes it immediately before each dispatch;
// it is only ever registered after a successful validation pass, so every
// lookup below is guaranteed to find a value of the right type.
//
// It never fails: fields not covered by the settings table keep the
// mailer's own defaults.
func (b *Bridge) ConfigureTransport(t *mailer.Transport) {
	if debug, _ := b.resolved.Bool(settings.Debug); debug && b.isAdmin() && !b.isBackground() {
		t.Debug = true
	}

	// The bridge's entire purpose: force SMTP over the local default.
	t.Mode = mailer.ModeSMTP

	secure, _ := b.resolved.String(settings.Secure)

	// The one piece of derived logic: an explicit "none" disables
	// authentication even when credentials are present.
	t.Auth = secure != settings.SecureNone

	t.Host, _ = b.resolved.String(settings.Host)
	t.Username, _ = b.resolved.String(settings.User)
	t.Password, _ = b.resolved.String(settings.Password)

	t.Port, _ = b.resolved.Int(settings.Port)
	t.Encryption = secure
	t.AuthType, _ = b.resolved.String(settings.AuthType)

	if sec, ok := b.resolved.Int(settings.Timeout); ok {
		t.Timeout = time.Duration(sec) * time.Second
	}

	// Unset return path keeps the transport library's own envelope
	// default, the message's From header.
	if rp, ok := b.resolved.String(settings.ReturnPath); ok {
		t.Sender = rp
	}

	if addr, ok := b.resolved.String(settings.ReplyTo); ok {
		name, _ := b.resolved.String(settings.ReplyToName)
		t.AddReplyTo(addr, name)
	}
}
