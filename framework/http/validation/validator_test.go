package validation_test

import (
	"errors"
	"testing"

	"github.com/km-arc/learn-di/framework/http/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// pass asserts the validator passes for the given data/rules.
func pass(t *testing.T, label string, data map[string]string, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		v := validation.Make(data, rules)
		if v.Fails() {
			t.Errorf("expected PASS, got FAIL, errors: %+v", v.Errors().Bag)
		}
	})
}

// fail asserts the validator fails with an error on the given field.
func fail(t *testing.T, label, field string, data map[string]string, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		v := validation.Make(data, rules)
		if v.Passes() {
			t.Errorf("expected FAIL on field %q, but validator PASSED", field)
		}
		if v.Errors().First(field) == "" {
			t.Errorf("expected error on field %q, but none found. Errors: %+v", field, v.Errors().Bag)
		}
	})
}

// ── required / nullable ──────────────────────────────────────────────────────

func TestValidation_Required(t *testing.T) {
	r := validation.Rules{"name": "required"}

	pass(t, "non-empty value", map[string]string{"name": "Computer"}, r)
	fail(t, "empty string", "name", map[string]string{"name": ""}, r)
	fail(t, "whitespace only", "name", map[string]string{"name": "   "}, r)
	fail(t, "missing key", "name", map[string]string{}, r)
}

func TestValidation_Required_MessageFormat(t *testing.T) {
	v := validation.Make(map[string]string{"name": ""}, validation.Rules{"name": "required"})
	_ = v.Fails()
	if got, want := v.Errors().First("name"), "The name field is required."; got != want {
		t.Errorf("message: got %q want %q", got, want)
	}
}

func TestValidation_Nullable(t *testing.T) {
	r := validation.Rules{"price": "nullable|integer|gte:0"}

	pass(t, "absent", map[string]string{}, r)
	pass(t, "valid", map[string]string{"price": "6666"}, r)
	fail(t, "negative", "price", map[string]string{"price": "-1"}, r)
	fail(t, "not a number", "price", map[string]string{"price": "cheap"}, r)
}

// ── numeric ──────────────────────────────────────────────────────────────────

func TestValidation_Integer(t *testing.T) {
	r := validation.Rules{"count": "integer"}

	pass(t, "positive int", map[string]string{"count": "10"}, r)
	pass(t, "negative int", map[string]string{"count": "-3"}, r)
	fail(t, "float", "count", map[string]string{"count": "3.14"}, r)
	fail(t, "string", "count", map[string]string{"count": "abc"}, r)
}

func TestValidation_Numeric(t *testing.T) {
	r := validation.Rules{"amount": "numeric"}

	pass(t, "integer", map[string]string{"amount": "42"}, r)
	pass(t, "float", map[string]string{"amount": "3.14"}, r)
	fail(t, "mixed", "amount", map[string]string{"amount": "12abc"}, r)
}

func TestValidation_Comparisons(t *testing.T) {
	pass(t, "gte boundary", map[string]string{"size": "1"}, validation.Rules{"size": "gte:1"})
	fail(t, "gte below", "size", map[string]string{"size": "0"}, validation.Rules{"size": "gte:1"})
	pass(t, "lte boundary", map[string]string{"port": "65535"}, validation.Rules{"port": "lte:65535"})
	fail(t, "lte above", "port", map[string]string{"port": "70000"}, validation.Rules{"port": "lte:65535"})
	pass(t, "gt", map[string]string{"n": "2"}, validation.Rules{"n": "gt:1"})
	fail(t, "lt", "n", map[string]string{"n": "2"}, validation.Rules{"n": "lt:2"})
	fail(t, "not numeric", "n", map[string]string{"n": "x"}, validation.Rules{"n": "gt:1"})
}

func TestValidation_Boolean(t *testing.T) {
	r := validation.Rules{"strict": "boolean"}
	for _, v := range []string{"true", "false", "1", "0", "TRUE"} {
		pass(t, "boolean "+v, map[string]string{"strict": v}, r)
	}
	fail(t, "invalid bool", "strict", map[string]string{"strict": "maybe"}, r)
}

// ── strings ──────────────────────────────────────────────────────────────────

func TestValidation_MinMax_Unicode(t *testing.T) {
	pass(t, "rune count", map[string]string{"name": "日本語"}, validation.Rules{"name": "min:3|max:3"})
	fail(t, "too short", "name", map[string]string{"name": "日本"}, validation.Rules{"name": "min:3"})
	fail(t, "too long", "name", map[string]string{"name": "日本語!"}, validation.Rules{"name": "max:3"})
}

func TestValidation_In(t *testing.T) {
	r := validation.Rules{"format": "in:console,json"}

	pass(t, "console", map[string]string{"format": "console"}, r)
	pass(t, "json", map[string]string{"format": "json"}, r)
	fail(t, "xml", "format", map[string]string{"format": "xml"}, r)
	fail(t, "empty", "format", map[string]string{"format": ""}, r)
}

func TestValidation_Alpha(t *testing.T) {
	r := validation.Rules{"color": "alpha"}

	pass(t, "letters only", map[string]string{"color": "cyan"}, r)
	fail(t, "with numbers", "color", map[string]string{"color": "cyan2"}, r)
}

func TestValidation_AlphaDash(t *testing.T) {
	r := validation.Rules{"id": "alpha_dash"}

	pass(t, "dash and underscore", map[string]string{"id": "case_01-a"}, r)
	fail(t, "with dot", "id", map[string]string{"id": "case.01"}, r)
}

func TestValidation_Version(t *testing.T) {
	r := validation.Rules{"bluetooth": "version"}

	pass(t, "major", map[string]string{"bluetooth": "5"}, r)
	pass(t, "major.minor", map[string]string{"bluetooth": "2.3"}, r)
	pass(t, "three parts", map[string]string{"bluetooth": "1.2.3"}, r)
	fail(t, "letters", "bluetooth", map[string]string{"bluetooth": "v5"}, r)
	fail(t, "trailing dot", "bluetooth", map[string]string{"bluetooth": "5."}, r)
}

func TestValidation_Regex(t *testing.T) {
	r := validation.Rules{"zip": `regex:^\d{5}$`}

	pass(t, "5 digits", map[string]string{"zip": "12345"}, r)
	fail(t, "4 digits", "zip", map[string]string{"zip": "1234"}, r)
}

// ── bag behaviour ────────────────────────────────────────────────────────────

func TestValidation_BailsOnFirstFailure(t *testing.T) {
	v := validation.Make(map[string]string{"price": ""}, validation.Rules{"price": "required|integer"})
	_ = v.Fails()
	if n := len(v.Errors().Bag["price"]); n != 1 {
		t.Errorf("expected 1 message, got %d", n)
	}
}

func TestValidation_FailsIsIdempotent(t *testing.T) {
	v := validation.Make(map[string]string{"price": "x"}, validation.Rules{"price": "integer"})
	_ = v.Fails()
	_ = v.Fails()
	if n := len(v.Errors().Bag["price"]); n != 1 {
		t.Errorf("expected 1 message after repeated Fails, got %d", n)
	}
}

func TestValidation_ValidateReturnsErrors(t *testing.T) {
	v := validation.Make(map[string]string{"b": "x", "a": "y"}, validation.Rules{"a": "integer", "b": "integer"})
	err := v.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	var bag *validation.Errors
	if !errors.As(err, &bag) {
		t.Fatalf("expected *validation.Errors, got %T", err)
	}
	want := "validation failed: The a must be an integer. The b must be an integer."
	if err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
	if fields := bag.Fields(); len(fields) != 2 || fields[0] != "a" {
		t.Errorf("fields: %v", fields)
	}

	if err := validation.Make(map[string]string{"a": "1"}, validation.Rules{"a": "integer"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
