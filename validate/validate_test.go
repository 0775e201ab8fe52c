package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smtpbridge/settings"
	"github.com/dmitrymomot/smtpbridge/validate"
)

func mailRuleset() validate.Ruleset {
	return validate.Ruleset{
		Required:  []string{settings.Host, settings.User, settings.Password},
		IsEmail:   []string{settings.ReturnPath, settings.ReplyTo},
		IsInteger: []string{settings.Port, settings.Timeout},
		Enumerated: []validate.Enum{
			{Setting: settings.Secure, Allowed: []string{"ssl", "tls", "none"}},
			{Setting: settings.AuthType, Allowed: []string{"LOGIN", "PLAIN", "NTLM"}},
		},
	}
}

func validTable() settings.Table {
	return settings.Table{
		settings.Host:     "smtp.example.com",
		settings.User:     "user@example.com",
		settings.Password: "secret",
	}
}

func TestValidate_RequiredOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tbl     settings.Table
		missing string
	}{
		{
			name:    "all required missing reports host first",
			tbl:     settings.Table{},
			missing: settings.Host,
		},
		{
			name: "host present reports user",
			tbl: settings.Table{
				settings.Host: "smtp.example.com",
			},
			missing: settings.User,
		},
		{
			name: "host and user present reports password",
			tbl: settings.Table{
				settings.Host: "smtp.example.com",
				settings.User: "user@example.com",
			},
			missing: settings.Password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Validate(tt.tbl, mailRuleset())
			require.Error(t, err)

			var verr *validate.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, validate.KindMissingRequired, verr.Kind)
			assert.Equal(t, tt.missing, verr.Setting)
		})
	}
}

func TestValidate_Email(t *testing.T) {
	t.Parallel()

	t.Run("rejects malformed address", func(t *testing.T) {
		t.Parallel()

		tbl := validTable()
		tbl[settings.ReturnPath] = "not-an-email"

		var verr *validate.Error
		require.ErrorAs(t, validate.Validate(tbl, mailRuleset()), &verr)
		assert.Equal(t, validate.KindInvalidEmail, verr.Kind)
		assert.Equal(t, settings.ReturnPath, verr.Setting)
	})

	t.Run("accepts valid address", func(t *testing.T) {
		t.Parallel()

		tbl := validTable()
		tbl[settings.ReturnPath] = "ops@example.com"
		require.NoError(t, validate.Validate(tbl, mailRuleset()))
	})

	t.Run("rejects non-string value", func(t *testing.T) {
		t.Parallel()

		tbl := validTable()
		tbl[settings.ReplyTo] = 42

		var verr *validate.Error
		require.ErrorAs(t, validate.Validate(tbl, mailRuleset()), &verr)
		assert.Equal(t, validate.KindInvalidEmail, verr.Kind)
	})
}

func TestValidate_IntegerIsTypeBased(t *testing.T) {
	t.Parallel()

	t.Run("numeric string fails", func(t *testing.T) {
		t.Parallel()

		tbl := validTable()
		tbl[settings.Port] = "465"

		var verr *validate.Error
		require.ErrorAs(t, validate.Validate(tbl, mailRuleset()), &verr)
		assert.Equal(t, validate.KindInvalidInteger, verr.Kind)
		assert.Equal(t, settings.Port, verr.Setting)
	})

	t.Run("integer value passes", func(t *testing.T) {
		t.Parallel()

		tbl := validTable()
		tbl[settings.Port] = 465
		require.NoError(t, validate.Validate(tbl, mailRuleset()))
	})
}

func TestValidate_Enum(t *testing.T) {
	t.Parallel()

	t.Run("reports allowed values", func(t *testing.T) {
		t.Parallel()

		tbl := validTable()
		tbl[settings.Secure] = "foo"

		var verr *validate.Error
		require.ErrorAs(t, validate.Validate(tbl, mailRuleset()), &verr)
		assert.Equal(t, validate.KindInvalidEnum, verr.Kind)
		assert.Equal(t, settings.Secure, verr.Setting)
		assert.Equal(t, []string{"ssl", "tls", "none"}, verr.Allowed)
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		t.Parallel()

		tbl := validTable()
		tbl[settings.AuthType] = "login"

		var verr *validate.Error
		require.ErrorAs(t, validate.Validate(tbl, mailRuleset()), &verr)
		assert.Equal(t, validate.KindInvalidEnum, verr.Kind)
		assert.Equal(t, settings.AuthType, verr.Setting)
	})

	t.Run("member value passes", func(t *testing.T) {
		t.Parallel()

		tbl := validTable()
		tbl[settings.Secure] = "tls"
		require.NoError(t, validate.Validate(tbl, mailRuleset()))
	})
}

func TestValidate_FailFastAcrossCategories(t *testing.T) {
	t.Parallel()

	// Several violations at once: the category order decides the report.
	tbl := settings.Table{
		settings.User:     "user@example.com",
		settings.Password: "secret",
		settings.Port:     "465",
		settings.Secure:   "foo",
	}

	var verr *validate.Error
	require.ErrorAs(t, validate.Validate(tbl, mailRuleset()), &verr)
	assert.Equal(t, validate.KindMissingRequired, verr.Kind)
	assert.Equal(t, settings.Host, verr.Setting)

	// With the required settings filled in, the email category is clean,
	// so the integer violation wins over the enum one.
	tbl[settings.Host] = "smtp.example.com"
	require.ErrorAs(t, validate.Validate(tbl, mailRuleset()), &verr)
	assert.Equal(t, validate.KindInvalidInteger, verr.Kind)
	assert.Equal(t, settings.Port, verr.Setting)
}

func TestValidate_AbsentOptionalIsNotAnError(t *testing.T) {
	t.Parallel()

	require.NoError(t, validate.Validate(validTable(), mailRuleset()))
}

func TestValidate_Deterministic(t *testing.T) {
	t.Parallel()

	tbl := validTable()
	tbl[settings.Port] = "465"

	first := validate.Validate(tbl, mailRuleset())
	second := validate.Validate(tbl, mailRuleset())
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestError_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *validate.Error
		want string
	}{
		{
			name: "missing required",
			err:  &validate.Error{Kind: validate.KindMissingRequired, Setting: "host"},
			want: `required setting "host" is not defined`,
		},
		{
			name: "invalid enum lists allowed values",
			err:  &validate.Error{Kind: validate.KindInvalidEnum, Setting: "secure", Allowed: []string{"ssl", "tls", "none"}},
			want: `setting "secure" must be one of: ssl, tls, none`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, errors.As(tt.err, new(*validate.Error)))
		})
	}
}
