package domain

import "testing"

func TestNormalize_FirstValueWins(t *testing.T) {
	lead := Normalize([]Field{
		{Name: "email", Values: []string{"first@acme.test", "second@acme.test"}},
	})

	if got := lead.Value(FieldEmail); got != "first@acme.test" {
		t.Fatalf("expected first value to win, got %q", got)
	}
}

func TestNormalize_DuplicateFieldNamesKeepFirst(t *testing.T) {
	lead := Normalize([]Field{
		{Name: "email", Values: []string{"first@acme.test"}},
		{Name: "email", Values: []string{"second@acme.test"}},
	})

	if got := lead.Value(FieldEmail); got != "first@acme.test" {
		t.Fatalf("expected first occurrence to win, got %q", got)
	}
	if lead.Len() != 1 {
		t.Fatalf("expected 1 field, got %d", lead.Len())
	}
}

func TestNormalize_SkipsUnrecognizedFields(t *testing.T) {
	lead := Normalize([]Field{
		{Name: "favorite_color", Values: []string{"green"}},
		{Name: "company_name", Values: []string{"Acme"}},
	})

	if lead.Len() != 1 {
		t.Fatalf("expected only recognized fields to be kept, got %d", lead.Len())
	}
	if _, ok := lead.Get(FieldKey("favorite_color")); ok {
		t.Fatal("unrecognized field leaked into the normalized lead")
	}
}

func TestNormalize_AbsentVersusEmpty(t *testing.T) {
	lead := Normalize([]Field{
		{Name: "phone", Values: []string{""}},
		{Name: "email", Values: []string{}},
	})

	// An empty value list means the field is absent.
	if _, ok := lead.Get(FieldEmail); ok {
		t.Fatal("field with empty value list should be absent")
	}
	if lead.Ptr(FieldEmail) != nil {
		t.Fatal("absent field should map to nil pointer")
	}

	// An empty string value is present but empty.
	if v, ok := lead.Get(FieldPhone); !ok || v != "" {
		t.Fatalf("expected present empty phone, got (%q, %v)", v, ok)
	}
	if p := lead.Ptr(FieldPhone); p == nil || *p != "" {
		t.Fatal("present empty field should map to pointer to empty string")
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	lead := Normalize(nil)

	if lead.Len() != 0 {
		t.Fatalf("expected empty lead, got %d fields", lead.Len())
	}
	if lead.Value(FieldFullName) != "" {
		t.Fatal("expected zero value for absent field")
	}
}
