package utils

import "testing"

func TestFieldSetMissing(t *testing.T) {
	fields := new(FieldSet).
		Require("name", "Cakes").
		Require("description", "  ").
		Require("image", "").
		Require("link", "/products/cakes")

	missing := fields.Missing()
	if len(missing) != 2 {
		t.Fatalf("missing: got %v", missing)
	}
	if missing[0] != "description" || missing[1] != "image" {
		t.Errorf("missing fields out of order: %v", missing)
	}

	msg := MissingFieldsMessage(missing)
	if msg != "Please provide: description, image" {
		t.Errorf("message: got %q", msg)
	}
}

func TestMissingFieldsMessageEmpty(t *testing.T) {
	if msg := MissingFieldsMessage(nil); msg != "" {
		t.Errorf("expected empty message, got %q", msg)
	}
}
