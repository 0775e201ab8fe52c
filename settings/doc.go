// Package settings defines the mail settings table, its recognized names,
// and the default policy applied to optional settings.
//
// A Table is resolved exactly once per process, either from the environment
// via Load or programmatically by the embedding host, and is treated as
// read-only afterwards. Values are dynamically typed (string, int or bool)
// so that the validation layer can report type mismatches instead of
// silently coercing them.
//
// Basic usage:
//
//	tbl, err := settings.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	tbl = settings.WithDefaults(tbl)
//
//	port, _ := tbl.Int(settings.Port) // 465 unless SMTP_PORT is set
//
// # Defaults
//
// WithDefaults fills absent keys only: port=465, secure="ssl",
// auth_type="LOGIN", timeout=10, from="", from_name="", debug=false,
// disable=false. The required settings host, user and password have no
// defaults and must be supplied by the deploying operator.
//
// # Environment mapping
//
// Load reads SMTP_HOST, SMTP_USER, SMTP_PASSWORD, SMTP_PORT, SMTP_SECURE,
// SMTP_AUTH_TYPE, SMTP_TIMEOUT, SMTP_FROM, SMTP_FROM_NAME,
// SMTP_RETURN_PATH, SMTP_REPLYTO_FROM, SMTP_REPLYTO_FROM_NAME, SMTP_DEBUG
// and SMTP_DISABLE. An optional .env file is loaded once before parsing.
package settings
