// Package validation checks flat string inputs (query parameters, env
// values) against pipe-separated rules.
//
// # Basic Usage
//
//	v := validation.Make(map[string]string{
//	    "windows_price": "6666",
//	    "bluetooth":     "5.0",
//	}, validation.Rules{
//	    "windows_price": "nullable|integer|gte:0",
//	    "bluetooth":     "nullable|version",
//	})
//
//	if err := v.Validate(); err != nil {
//	    // err is *validation.Errors
//	    // JSON: {"errors": {"field": ["message1"]}}
//	}
//
// # Available Rules
//
//   - required          present and non-empty
//   - nullable          empty values skip the remaining rules
//   - sometimes         same as nullable
//   - min:n, max:n      length bounds in UTF-8 characters
//   - alpha             letters only
//   - alpha_dash        letters, numbers, dashes, underscores
//   - regex:pattern     must match pattern (no "|" inside)
//   - version           dotted number such as 5, 5.0 or 1.2.3
//   - numeric           parseable as float64
//   - integer           parseable as int
//   - boolean           parseable by strconv.ParseBool
//   - gt:n, gte:n, lt:n, lte:n   numeric comparison
//   - in:a,b,c          one of the listed values
//
// Fields are checked in sorted order and each field stops at its first
// failing rule.
package validation
