package wot

import (
	"strings"
	"testing"
)

func TestFormValidate(t *testing.T) {
	ok := Form[None, None]{Href: "/things", ContentType: DefaultContentType}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	var bad Form[None, None]
	bad.Security = OneOrMany[string]{"basic_sc", " "}
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	ve, isVE := err.(*ValidationError)
	if !isVE {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", ve.Problems)
	}
	if ve.Problems[0] != "href: required" {
		t.Fatalf("unexpected first problem %q", ve.Problems[0])
	}
	if !strings.Contains(ve.Problems[1], "security[1]") {
		t.Fatalf("unexpected second problem %q", ve.Problems[1])
	}
}

func TestFormValidate_ResponseDetail(t *testing.T) {
	f := Form[None, None]{
		Href:     "/things",
		Response: &ExpectedResponse[None]{},
	}

	// Empty response content types are allowed by default.
	if err := f.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	err := f.Validate(WithRequireResponseDetail())
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "response.contentType") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestInteractionAffordanceValidate(t *testing.T) {
	a := InteractionAffordance[None, None, None]{Title: "Temperature"}

	// No forms is fine unless required.
	if err := a.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := a.Validate(WithRequireForms()); err == nil {
		t.Fatal("expected failure with WithRequireForms")
	}

	a.Forms = []Form[None, None]{{}}
	err := a.Validate()
	if err == nil {
		t.Fatal("expected nested form failure")
	}
	if !strings.Contains(err.Error(), "forms[0].href") {
		t.Fatalf("unexpected error %v", err)
	}

	a.AtType = OneOrMany[string]{""}
	a.Forms = nil
	err = a.Validate()
	if err == nil || !strings.Contains(err.Error(), "@type[0]") {
		t.Fatalf("expected @type problem, got %v", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	var empty *ValidationError
	if empty.Error() != "invalid record" {
		t.Fatalf("unexpected message %q", empty.Error())
	}

	e := &ValidationError{Problems: []string{"href: required", "scopes[0]: must be non-empty"}}
	want := "invalid record: href: required; scopes[0]: must be non-empty"
	if e.Error() != want {
		t.Fatalf("unexpected message %q", e.Error())
	}
}
