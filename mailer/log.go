package mailer

import (
	"fmt"
	"log/slog"

	maillog "github.com/wneessen/go-mail/log"
)

// smtpLogger bridges go-mail's transport debug output into the mailer's
// own logger, so the SMTP conversation lands in the same sink as the rest
// of the dispatch diagnostics.
type smtpLogger struct {
	logger *slog.Logger
}

func (l smtpLogger) Debugf(entry maillog.Log) {
	l.logger.Debug(render(entry), direction(entry))
}

func (l smtpLogger) Infof(entry maillog.Log) {
	l.logger.Info(render(entry), direction(entry))
}

func (l smtpLogger) Warnf(entry maillog.Log) {
	l.logger.Warn(render(entry), direction(entry))
}

func (l smtpLogger) Errorf(entry maillog.Log) {
	l.logger.Error(render(entry), direction(entry))
}

func render(entry maillog.Log) string {
	return fmt.Sprintf(entry.Format, entry.Messages...)
}

func direction(entry maillog.Log) slog.Attr {
	if entry.Direction == maillog.DirServerToClient {
		return slog.String("direction", "server_to_client")
	}
	return slog.String("direction", "client_to_server")
}
