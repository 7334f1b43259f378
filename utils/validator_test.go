package utils

import (
	"strings"
	"testing"
)

func TestValidateStruct_OK(t *testing.T) {
	input := struct {
		Email string `validate:"required,email"`
		Title string `validate:"required"`
	}{Email: "user@aurora.com", Title: "Standup notes"}

	if err := ValidateStruct(input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	input := struct {
		Email  string `validate:"required,email"`
		Title  string `validate:"required"`
		Status string `validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
	}{Email: "nope", Status: "Archived"}

	err := ValidateStruct(input)
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}
	msg := err.Error()
	for _, want := range []string{"email must be a valid email", "title is required", "status must be one of"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}
