package mailer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// sendLocal is the default mail mechanism: the message is written to the
// outbox directory as an .eml file instead of going over the network. It
// stands in for local delivery in development and remains active whenever
// no hook switched the transport to SMTP mode.
func (m *Mailer) sendLocal(t *Transport, msg Message) error {
	if err := os.MkdirAll(m.localDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create outbox: %v", ErrFailedToSend, err)
	}

	id := uuid.NewString()

	var b strings.Builder
	writeHeader := func(key, value string) {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	from := msg.From.Email
	if msg.From.Name != "" {
		from = fmt.Sprintf("%s <%s>", msg.From.Name, msg.From.Email)
	}
	writeHeader("From", from)
	writeHeader("To", strings.Join(msg.To, ", "))
	if t.Sender != "" {
		writeHeader("Return-Path", t.Sender)
	}
	for _, rt := range t.ReplyTo {
		addr := rt.Email
		if rt.Name != "" {
			addr = fmt.Sprintf("%s <%s>", rt.Name, rt.Email)
		}
		writeHeader("Reply-To", addr)
	}
	writeHeader("Subject", msg.Subject)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%s@%s>", id, localHostname()))
	b.WriteString("\r\n")
	if msg.Body != "" {
		b.WriteString(msg.Body)
	} else {
		b.WriteString(msg.HTML)
	}

	// Timestamp prefix keeps the outbox chronologically sorted.
	filename := fmt.Sprintf("%s_%s.eml", time.Now().Format("20060102_150405"), id[:8])
	path := filepath.Join(m.localDir, filename)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("%w: failed to write message: %v", ErrFailedToSend, err)
	}
	return nil
}

func localHostname() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "localhost"
	}
	return host
}
