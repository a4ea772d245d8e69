package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinMessageLength = 10
	MaxMessageLength = 1000
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

const (
	ReasonRequired      = "All fields are required."
	ReasonEmail         = "Please provide a valid email address."
	ReasonName          = "Name should only contain letters and spaces."
	ReasonMessageLength = "Message should be between 10 and 1000 characters."
)

// Validate runs the server-side checks in order and returns the first
// failure.
func (s Submission) Validate() error {
	if blank(s.Name) || blank(s.Email) || blank(s.Subject) || blank(s.Message) {
		return &ValidationError{Reason: ReasonRequired}
	}
	if !emailPattern.MatchString(s.Email) {
		return &ValidationError{Field: FieldEmail, Reason: ReasonEmail}
	}
	if !namePattern.MatchString(s.Name) {
		return &ValidationError{Field: FieldName, Reason: ReasonName}
	}
	if n := utf8.RuneCountInString(s.Message); n < MinMessageLength || n > MaxMessageLength {
		return &ValidationError{Field: FieldMessage, Reason: ReasonMessageLength}
	}
	return nil
}

// FieldErrors runs every check independently and returns one message per
// offending field, for inline display next to the inputs.
func (s Submission) FieldErrors() map[string]string {
	errs := make(map[string]string)

	required := map[string]string{
		FieldName:    s.Name,
		FieldEmail:   s.Email,
		FieldSubject: s.Subject,
		FieldMessage: s.Message,
	}
	for field, v := range required {
		if blank(v) {
			errs[field] = "This field is required."
		}
	}

	if _, ok := errs[FieldEmail]; !ok && !emailPattern.MatchString(s.Email) {
		errs[FieldEmail] = ReasonEmail
	}
	if _, ok := errs[FieldName]; !ok && !namePattern.MatchString(s.Name) {
		errs[FieldName] = ReasonName
	}
	if _, ok := errs[FieldMessage]; !ok {
		if n := utf8.RuneCountInString(s.Message); n < MinMessageLength || n > MaxMessageLength {
			errs[FieldMessage] = ReasonMessageLength
		}
	}
	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
