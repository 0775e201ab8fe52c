package settings

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envSettings mirrors the recognized settings as environment variables.
// Pointer fields keep "unset" distinguishable from zero values, which the
// default policy and the opt-in from-override registration both rely on.
type envSettings struct {
	Host        *string `env:"SMTP_HOST"`
	User        *string `env:"SMTP_USER"`
	Password    *string `env:"SMTP_PASSWORD"`
	Port        *int    `env:"SMTP_PORT"`
	Secure      *string `env:"SMTP_SECURE"`
	AuthType    *string `env:"SMTP_AUTH_TYPE"`
	Timeout     *int    `env:"SMTP_TIMEOUT"`
	From        *string `env:"SMTP_FROM"`
	FromName    *string `env:"SMTP_FROM_NAME"`
	ReturnPath  *string `env:"SMTP_RETURN_PATH"`
	ReplyTo     *string `env:"SMTP_REPLYTO_FROM"`
	ReplyToName *string `env:"SMTP_REPLYTO_FROM_NAME"`
	Debug       *bool   `env:"SMTP_DEBUG"`
	Disable     *bool   `env:"SMTP_DISABLE"`
}

// dotenvOnce guards the optional .env autoload. A missing .env file is not
// an error.
var dotenvOnce sync.Once

// Load resolves the settings table from the process environment. Only
// variables that are actually set produce table entries; defaults are
// applied later by WithDefaults. Load may be called repeatedly within one
// process and yields equal tables for an unchanged environment.
func Load() (Table, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var es envSettings
	if err := env.Parse(&es); err != nil {
		return nil, fmt.Errorf("settings: parse environment: %w", err)
	}

	t := Table{}
	put(t, Host, es.Host)
	put(t, User, es.User)
	put(t, Password, es.Password)
	put(t, Port, es.Port)
	put(t, Secure, es.Secure)
	put(t, AuthType, es.AuthType)
	put(t, Timeout, es.Timeout)
	put(t, From, es.From)
	put(t, FromName, es.FromName)
	put(t, ReturnPath, es.ReturnPath)
	put(t, ReplyTo, es.ReplyTo)
	put(t, ReplyToName, es.ReplyToName)
	put(t, Debug, es.Debug)
	put(t, Disable, es.Disable)
	return t, nil
}

// MustLoad is the panicking variant of Load for startup sequences that
// cannot proceed with a malformed environment.
func MustLoad() Table {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

func put[T any](t Table, name string, v *T) {
	if v != nil {
		t[name] = *v
	}
}
