// Package smtpbridge validates operator-supplied SMTP settings and wires
// them into an outbound mail transport in place of the default local
// delivery mechanism.
//
// The package reads a fixed set of named settings (host, credentials,
// port, security mode, auth type, optional reply-to / return-path / from
// overrides), validates them against type and enumeration constraints,
// applies documented defaults for anything unset, and registers a
// transport configurator against the mailer's extension points. The from
// address and display-name overrides are independent of SMTP validation
// and apply even when it fails.
//
// Basic usage:
//
//	m := mailer.New(mailer.WithLogger(log))
//
//	bridge, err := smtpbridge.Bootstrap(m,
//		smtpbridge.WithLogger(log),
//		smtpbridge.WithAdminContext(isAdminSession),
//	)
//	if err != nil {
//		// Non-fatal: the mailer keeps its default delivery and any
//		// from overrides stay active. Correct the settings and
//		// restart to enable SMTP.
//		log.Warn("smtp bridge inactive", "error", err)
//	}
//	_ = bridge
//
//	// Later, anywhere in the application:
//	_ = m.Send(ctx, mailer.Message{
//		To:      []string{"user@example.com"},
//		From:    mailer.Address{Email: "app@example.com"},
//		Subject: "Hello",
//		Body:    "Delivered over SMTP when the settings validate.",
//	})
//
// # Settings
//
// Settings are resolved once from the environment (see the settings
// package for the SMTP_* variable names). SMTP_HOST, SMTP_USER and
// SMTP_PASSWORD are required; everything else has a documented default.
// Setting SMTP_DISABLE=true turns the whole bridge off without touching
// the rest of the configuration.
//
// # Validation
//
// Validation is fail-fast and reports the first violated constraint as a
// structured *validate.Error carrying the setting name and, for enum
// violations, the allowed values. A failed pass is reported once through
// the configured logger and leaves the mailer untouched; there is no
// retry until the process is re-initialized with corrected settings.
package smtpbridge
