package mailer

import (
	"slices"
	"time"
)

// Transport modes. ModeLocal is the default delivery mechanism; hooks may
// switch a message to ModeSMTP before dispatch.
const (
	ModeLocal = "local"
	ModeSMTP  = "smtp"
)

// Address is an email address with an optional display name.
type Address struct {
	Email string
	Name  string
}

// Transport is the per-message delivery configuration record. The mailer
// clones its base transport for every outgoing message and hands the clone
// to the BeforeSend hook, so callbacks may mutate any field without
// affecting later messages.
type Transport struct {
	Mode       string
	Host       string
	Port       int
	Username   string
	Password   string
	Encryption string // ssl, tls or none
	AuthType   string // LOGIN or PLAIN; NTLM is rejected at dispatch
	Auth       bool
	Sender     string // envelope sender (return path); empty uses the From address
	FromName   string // display-name default for reply-to entries without one
	ReplyTo    []Address
	Timeout    time.Duration
	Debug      bool
}

// AddReplyTo appends a reply-to entry. An empty name falls back to the
// transport's current display-name default.
func (t *Transport) AddReplyTo(email, name string) {
	if name == "" {
		name = t.FromName
	}
	t.ReplyTo = append(t.ReplyTo, Address{Email: email, Name: name})
}

func (t *Transport) clone() *Transport {
	c := *t
	c.ReplyTo = slices.Clone(t.ReplyTo)
	return &c
}

// Message is an outgoing mail message. Body carries the plain-text part;
// HTML, when set, is added as the preferred alternative part.
type Message struct {
	From    Address
	To      []string
	Subject string
	Body    string
	HTML    string
}

// Validate checks that the message is complete enough to dispatch.
func (m Message) Validate() error {
	if m.From.Email == "" {
		return ErrNoSender
	}
	if len(m.To) == 0 {
		return ErrNoRecipient
	}
	if m.Body == "" && m.HTML == "" {
		return ErrNoContent
	}
	return nil
}
