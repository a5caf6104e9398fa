package wot

import (
	"fmt"
	"strings"
)

type validateOptions struct {
	requireForms          bool
	requireResponseDetail bool
}

// ValidateOption configures Validate.
type ValidateOption func(*validateOptions)

// WithRequireForms requires an interaction affordance to carry at least
// one form. By default an empty forms array is allowed.
func WithRequireForms() ValidateOption {
	return func(o *validateOptions) { o.requireForms = true }
}

// WithRequireResponseDetail requires response and additionalResponse
// records to declare a content type. By default an empty content type is
// allowed; the serializer emits whatever the record holds.
func WithRequireResponseDetail() ValidateOption {
	return func(o *validateOptions) { o.requireResponseDetail = true }
}

// ValidationError is a deterministic, multi-problem validation error.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid record"
	}
	return "invalid record: " + strings.Join(e.Problems, "; ")
}

// Validate performs shape-level checks on a built or deserialized form.
// It never runs implicitly; (de)serialization has its own error
// taxonomy.
func (f Form[T, E]) Validate(opts ...ValidateOption) error {
	var o validateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var errs []string
	validateForm(&errs, "", f, o)
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Problems: errs}
}

// Validate performs shape-level checks on an interaction affordance and
// every form it carries.
func (a InteractionAffordance[T, F, R]) Validate(opts ...ValidateOption) error {
	var o validateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var errs []string
	for idx, tag := range a.AtType {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, fmt.Sprintf("@type[%d]: must be non-empty", idx))
		}
	}
	if o.requireForms && len(a.Forms) == 0 {
		errs = append(errs, "forms: at least one form required")
	}
	for idx, f := range a.Forms {
		validateForm(&errs, fmt.Sprintf("forms[%d].", idx), f, o)
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Problems: errs}
}

func validateForm[T, E any](errs *[]string, prefix string, f Form[T, E], o validateOptions) {
	if strings.TrimSpace(f.Href) == "" {
		*errs = append(*errs, prefix+"href: required")
	}
	for idx, name := range f.Security {
		if strings.TrimSpace(name) == "" {
			*errs = append(*errs, fmt.Sprintf("%ssecurity[%d]: must be non-empty", prefix, idx))
		}
	}
	for idx, name := range f.Scopes {
		if strings.TrimSpace(name) == "" {
			*errs = append(*errs, fmt.Sprintf("%sscopes[%d]: must be non-empty", prefix, idx))
		}
	}
	if o.requireResponseDetail {
		if f.Response != nil && strings.TrimSpace(f.Response.ContentType) == "" {
			*errs = append(*errs, prefix+"response.contentType: required")
		}
		if f.AdditionalResponse != nil && strings.TrimSpace(f.AdditionalResponse.ContentType) == "" {
			*errs = append(*errs, prefix+"additionalResponse.contentType: required")
		}
	}
}
