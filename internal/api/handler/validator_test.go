package handler

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Name  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"tipo" validate:"omitempty,oneof=ADM RH"`
}

func TestValidator_MessagesUseJSONNames(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  sampleRequest
		want string
	}{
		{"required", sampleRequest{}, "nome is required"},
		{"email", sampleRequest{Name: "a", Email: "nope"}, "email must be a valid email"},
		{"oneof", sampleRequest{Name: "a", Role: "X"}, "tipo must be one of: ADM RH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want message containing %q", err, tt.want)
			}
		})
	}

	if err := v.Validate(&sampleRequest{Name: "a", Email: "a@x.com", Role: "RH"}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}
