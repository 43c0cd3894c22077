package domain

import (
	"errors"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Credentials is a login request.
type Credentials struct {
	Username string
	Password string
}

// Profile is a registration request.
type Profile struct {
	Username string
	Email    string
	Password string
}

// FieldErrors maps an input field name to its validation message, so forms
// can show errors inline next to the offending field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateLogin checks a login form. Validation failures never reach the
// network.
func ValidateLogin(c Credentials) FieldErrors {
	errs := FieldErrors{}
	if c.Username == "" {
		errs["username"] = "Username is required"
	}
	if c.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateRegistration checks a registration form, including the password
// confirmation the form collects but never sends.
func ValidateRegistration(p Profile, confirmPassword string) FieldErrors {
	errs := FieldErrors{}
	if len(p.Username) < 3 {
		errs["username"] = "Username must be at least 3 characters"
	}
	if !emailPattern.MatchString(p.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if len(p.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if p.Password != confirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateOriginalURL checks that raw parses as an absolute http(s) URL
// before it is submitted for shortening.
func ValidateOriginalURL(raw string) error {
	if raw == "" {
		return errors.New("please enter a URL")
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("please enter a valid URL")
	}
	return nil
}
