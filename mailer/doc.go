// Package mailer provides the outbound mail facility the bridge wires
// into: a Mailer with a per-message Transport record, priority-ordered
// extension points, SMTP dispatch through wneessen/go-mail, and a local
// on-disk outbox as the default delivery mechanism.
//
// Basic usage:
//
//	m := mailer.New(mailer.WithLocalDir("./outbox"))
//
//	// Rewire delivery for every message:
//	m.BeforeSend.Register(func(t *mailer.Transport) {
//		t.Mode = mailer.ModeSMTP
//		t.Host = "smtp.example.com"
//		t.Port = 465
//		t.Encryption = "ssl"
//	}, hook.PriorityDefault)
//
//	err := m.Send(ctx, mailer.Message{
//		From:    mailer.Address{Email: "noreply@example.com"},
//		To:      []string{"user@example.com"},
//		Subject: "Welcome!",
//		Body:    "Thanks for joining us.",
//	})
//
// Without a hook switching the mode, messages land in the outbox directory
// as .eml files, which keeps development and misconfigured deployments
// observable instead of silently losing mail.
package mailer
