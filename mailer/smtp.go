package mailer

import (
	"context"
	"errors"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

// sendSMTP maps the transport record onto a go-mail client and dispatches
// the message. Encryption values follow the settings enum: "ssl" is an
// implicit TLS connection, "tls" is mandatory STARTTLS, "none" disables
// transport encryption entirely.
func (m *Mailer) sendSMTP(ctx context.Context, t *Transport, msg Message) error {
	opts := []mail.Option{
		mail.WithPort(t.Port),
		mail.WithTimeout(t.Timeout),
	}

	switch t.Encryption {
	case "ssl":
		opts = append(opts, mail.WithSSLPort(false))
	case "tls":
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if t.Auth {
		switch t.AuthType {
		case "LOGIN":
			opts = append(opts, mail.WithSMTPAuth(mail.SMTPAuthLogin))
		case "PLAIN":
			opts = append(opts, mail.WithSMTPAuth(mail.SMTPAuthPlain))
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedAuthType, t.AuthType)
		}
		opts = append(opts, mail.WithUsername(t.Username), mail.WithPassword(t.Password))
	}

	if t.Debug {
		opts = append(opts, mail.WithDebugLog(), mail.WithLogger(smtpLogger{logger: m.logger}))
	}

	client, err := mail.NewClient(t.Host, opts...)
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	mm, err := buildMsg(t, msg)
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	return nil
}

func buildMsg(t *Transport, msg Message) (*mail.Msg, error) {
	mm := mail.NewMsg()

	if msg.From.Name != "" {
		if err := mm.FromFormat(msg.From.Name, msg.From.Email); err != nil {
			return nil, err
		}
	} else if err := mm.From(msg.From.Email); err != nil {
		return nil, err
	}

	if err := mm.To(msg.To...); err != nil {
		return nil, err
	}

	// Empty Sender keeps go-mail's own envelope default: the From header.
	if t.Sender != "" {
		if err := mm.EnvelopeFrom(t.Sender); err != nil {
			return nil, err
		}
	}

	for _, rt := range t.ReplyTo {
		var err error
		if rt.Name != "" {
			err = mm.ReplyToFormat(rt.Name, rt.Email)
		} else {
			err = mm.ReplyTo(rt.Email)
		}
		if err != nil {
			return nil, err
		}
	}

	mm.Subject(msg.Subject)
	if msg.Body != "" {
		mm.SetBodyString(mail.TypeTextPlain, msg.Body)
	}
	if msg.HTML != "" {
		if msg.Body != "" {
			mm.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
		} else {
			mm.SetBodyString(mail.TypeTextHTML, msg.HTML)
		}
	}
	return mm, nil
}
