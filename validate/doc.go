// Package validate implements the fail-fast constraint engine for settings
// tables. A Ruleset groups constraints into four categories evaluated in a
// fixed order (required, email, integer, enumerated); the first violated
// constraint is reported as a structured *Error and evaluation stops.
//
//	rs := validate.Ruleset{
//		Required:  []string{settings.Host},
//		IsInteger: []string{settings.Port},
//	}
//	if err := validate.Validate(tbl, rs); err != nil {
//		var verr *validate.Error
//		if errors.As(err, &verr) {
//			log.Warn("bad setting", "setting", verr.Setting, "kind", verr.Kind.String())
//		}
//	}
package validate
