package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, ValidateLogin(Credentials{Username: "alice", Password: "hunter22"}))

	errs := ValidateLogin(Credentials{})
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
}

func TestValidateRegistration(t *testing.T) {
	ok := Profile{Username: "alice", Email: "alice@example.com", Password: "hunter22"}
	assert.Nil(t, ValidateRegistration(ok, "hunter22"))

	tests := []struct {
		name    string
		profile Profile
		confirm string
		field   string
	}{
		{"short username", Profile{Username: "al", Email: "a@b.co", Password: "hunter22"}, "hunter22", "username"},
		{"bad email", Profile{Username: "alice", Email: "not-an-email", Password: "hunter22"}, "hunter22", "email"},
		{"short password", Profile{Username: "alice", Email: "a@b.co", Password: "abc"}, "abc", "password"},
		{"mismatched confirmation", Profile{Username: "alice", Email: "a@b.co", Password: "hunter22"}, "hunter23", "confirmPassword"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegistration(tt.profile, tt.confirm)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{"email": "Please enter a valid email address"}
	assert.Contains(t, errs.Error(), "email")
}

func TestValidateOriginalURL(t *testing.T) {
	assert.NoError(t, ValidateOriginalURL("https://example.com/some/path"))
	assert.NoError(t, ValidateOriginalURL("http://localhost:8080"))

	assert.Error(t, ValidateOriginalURL(""))
	assert.Error(t, ValidateOriginalURL("not a url"))
	assert.Error(t, ValidateOriginalURL("/relative/only"))
	assert.Error(t, ValidateOriginalURL("example.com/no-scheme"))
}
