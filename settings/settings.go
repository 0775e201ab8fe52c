package settings

import "maps"

// Setting names recognized by the bridge. They key both the Table and the
// validation ruleset built on top of it.
const (
	Host        = "host"
	User        = "user"
	Password    = "password"
	Port        = "port"
	Secure      = "secure"
	AuthType    = "auth_type"
	Timeout     = "timeout"
	From        = "from"
	FromName    = "from_name"
	ReturnPath  = "return_path"
	ReplyTo     = "replyto_from"
	ReplyToName = "replyto_from_name"
	Debug       = "debug"
	Disable     = "disable"
)

// Values accepted by the enumerated settings.
const (
	SecureSSL  = "ssl"
	SecureTLS  = "tls"
	SecureNone = "none"

	AuthLogin = "LOGIN"
	AuthPlain = "PLAIN"
	AuthNTLM  = "NTLM"
)

// Table maps setting names to values. A value holds one of string, int or
// bool; a key absent from the table means the setting was never defined.
// Tables are resolved once at startup and treated as read-only afterwards.
type Table map[string]any

// Has reports whether the setting is defined, regardless of its type.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// String returns the setting value if it is defined and string-typed.
func (t Table) String(name string) (string, bool) {
	v, ok := t[name].(string)
	return v, ok
}

// Int returns the setting value if it is defined and integer-typed.
// A numeric string does not qualify; the check is on the dynamic type.
func (t Table) Int(name string) (int, bool) {
	v, ok := t[name].(int)
	return v, ok
}

// Bool returns the setting value if it is defined and bool-typed.
func (t Table) Bool(name string) (bool, bool) {
	v, ok := t[name].(bool)
	return v, ok
}

// Clone returns a shallow copy of the table. Values are scalars, so the
// copy is fully independent.
func (t Table) Clone() Table {
	return maps.Clone(t)
}

// defaults is the assumption policy for optional settings. Required
// settings (host, user, password) deliberately have no entry here.
var defaults = Table{
	Port:     465,
	Secure:   SecureSSL,
	AuthType: AuthLogin,
	Timeout:  10,
	From:     "",
	FromName: "",
	Debug:    false,
	Disable:  false,
}

// WithDefaults returns a copy of t with the default policy applied to keys
// absent from t. Keys already defined are never overwritten, so resolving
// an already-resolved table is a no-op and repeated resolution yields
// identical results.
func WithDefaults(t Table) Table {
	out := t.Clone()
	if out == nil {
		out = Table{}
	}
	for name, v := range defaults {
		if _, ok := out[name]; !ok {
			out[name] = v
		}
	}
	return out
}
