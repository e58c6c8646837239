// Package validation runs declarative field checks on request payloads.
// Rules live in `validate` struct tags; failures are reported as a list of
// FieldError values that can be returned to the caller as-is.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed check.
type FieldError struct {
	Type     string `json:"type"`
	Value    any    `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// UpdateProfileRequest is the body of PUT /update. Name is untyped so that a
// non-string value is reported as a field error rather than a decode error.
type UpdateProfileRequest struct {
	Name any `json:"name" validate:"required,nonblank"`
}

// TrimmedName returns Name with surrounding whitespace removed. Only
// meaningful after a successful Validate.
func (r UpdateProfileRequest) TrimmedName() string {
	s, _ := r.Name.(string)
	return strings.TrimSpace(s)
}

type Validator struct {
	v *validator.Validate
}

// rules are the custom tags available to `validate` struct tags.
var rules = map[string]validator.Func{
	// string, non-empty after trimming
	"nonblank": func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if !f.IsValid() || f.Kind() != reflect.String {
			return false
		}
		return strings.TrimSpace(f.String()) != ""
	},
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := registerRules(v, rules); err != nil {
		return nil, err
	}

	return &Validator{v: v}, nil
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q rule: %w", tag, err)
		}
	}
	return nil
}

// ValidateBody checks a decoded request body. An empty result means the body
// is valid.
func (v *Validator) ValidateBody(req any) []FieldError {
	err := v.v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Type: "field", Msg: "Invalid value", Location: "body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Type:     "field",
			Value:    fe.Value(),
			Msg:      "Invalid value",
			Path:     fe.Field(),
			Location: "body",
		})
	}
	return out
}
