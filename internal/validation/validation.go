// Package validation holds the input checks run before anything touches the ledger.
package validation

import "regexp"

// Kind classifies a ValidationError.
type Kind int

const (
	MissingField Kind = iota + 1
	InvalidEmail
)

// ContactFields are the fields a contact submission must carry.
var ContactFields = []string{"name", "email", "message"}

// local-part@domain.tld, no whitespace and a single "@".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError describes why a write request was rejected. Fields lists
// the required field names for MissingField errors.
type ValidationError struct {
	Kind   Kind
	Fields []string
	msg    string
}

func (e *ValidationError) Error() string { return e.msg }

// ValidateContact checks that name, email and message are present and that
// email looks like an address.
func ValidateContact(name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return &ValidationError{
			Kind:   MissingField,
			Fields: append([]string(nil), ContactFields...),
			msg:    "Missing required fields",
		}
	}
	if !IsEmail(email) {
		return &ValidationError{Kind: InvalidEmail, msg: "Invalid email format"}
	}
	return nil
}

// ValidatePageView checks that a page identifier was supplied.
func ValidatePageView(page string) error {
	if page == "" {
		return &ValidationError{
			Kind:   MissingField,
			Fields: []string{"page"},
			msg:    "Page name required",
		}
	}
	return nil
}

// IsEmail reports whether s has the local-part@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Missing returns which of the contact fields are empty, for logging.
func Missing(name, email, message string) []string {
	var out []string
	for i, v := range []string{name, email, message} {
		if v == "" {
			out = append(out, ContactFields[i])
		}
	}
	return out
}
