package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/smtpbridge/settings"
)

// Kind classifies the constraint a setting violated.
type Kind uint8

const (
	KindMissingRequired Kind = iota + 1
	KindInvalidEmail
	KindInvalidInteger
	KindInvalidEnum
)

// String returns a short machine-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindMissingRequired:
		return "missing_required"
	case KindInvalidEmail:
		return "invalid_email"
	case KindInvalidInteger:
		return "invalid_integer"
	case KindInvalidEnum:
		return "invalid_enum"
	}
	return "unknown"
}

// Error is the first violated constraint of a validation pass. It carries
// the offending setting name and, for enum violations, the allowed values,
// so callers can format their own messages.
type Error struct {
	Kind    Kind
	Setting string
	Allowed []string // populated for KindInvalidEnum only
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingRequired:
		return fmt.Sprintf("required setting %q is not defined", e.Setting)
	case KindInvalidEmail:
		return fmt.Sprintf("setting %q must be a valid email address", e.Setting)
	case KindInvalidInteger:
		return fmt.Sprintf("setting %q must be an integer", e.Setting)
	case KindInvalidEnum:
		return fmt.Sprintf("setting %q must be one of: %s", e.Setting, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("setting %q is invalid", e.Setting)
}

// Enum constrains a setting to an ordered list of allowed string values.
// Comparison is exact and case-sensitive.
type Enum struct {
	Setting string
	Allowed []string
}

// Ruleset is the four-category constraint set applied to a settings table.
// Categories are evaluated in struct order, list order within a category,
// and the first failing rule is the only one reported.
type Ruleset struct {
	Required   []string
	IsEmail    []string
	IsInteger  []string
	Enumerated []Enum
}

// emailRx is a deliberately simple syntax check; deliverability is the
// mail server's problem, not ours.
var emailRx = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks the table against the ruleset and returns nil or the
// first violated constraint as an *Error. It is a pure function: no side
// effects, and identical inputs always report the same first failure.
//
// A setting absent from the table is never an error unless it is listed in
// Required; absent-and-unvalidated is how optional settings fall through
// to their defaults.
func Validate(t settings.Table, rs Ruleset) error {
	for _, name := range rs.Required {
		if !t.Has(name) {
			return &Error{Kind: KindMissingRequired, Setting: name}
		}
	}

	for _, name := range rs.IsEmail {
		if !t.Has(name) {
			continue
		}
		if v, ok := t.String(name); !ok || !emailRx.MatchString(v) {
			return &Error{Kind: KindInvalidEmail, Setting: name}
		}
	}

	// Type-based on purpose: a numeric string is not an integer value.
	for _, name := range rs.IsInteger {
		if !t.Has(name) {
			continue
		}
		if _, ok := t.Int(name); !ok {
			return &Error{Kind: KindInvalidInteger, Setting: name}
		}
	}

	for _, e := range rs.Enumerated {
		if !t.Has(e.Setting) {
			continue
		}
		if v, ok := t.String(e.Setting); !ok || !slices.Contains(e.Allowed, v) {
			return &Error{Kind: KindInvalidEnum, Setting: e.Setting, Allowed: slices.Clone(e.Allowed)}
		}
	}

	return nil
}
