package wizard

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinNameLength  = 2
	MinPhoneDigits = 9
	MaxPhoneDigits = 12
)

const (
	FieldName  = "name"
	FieldPhone = "phone"
	FieldEmail = "email"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsOnly = regexp.MustCompile(`^[0-9]+$`)
)

// Contact is the customer block of a BookingDraft. Only validated contacts
// are ever stored on a draft.
type Contact struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// ContactInput is the raw form as typed by the customer.
type ContactInput struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// NormalizePhone strips whitespace and hyphens.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}

// ValidateContact checks every field and reports all failures together.
func ValidateContact(in ContactInput) (Contact, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	email := strings.TrimSpace(in.Email)

	var fields []FieldError

	if utf8.RuneCountInString(name) < MinNameLength {
		fields = append(fields, FieldError{Field: FieldName, Message: "name is required (at least 2 characters)"})
	}

	cleaned := NormalizePhone(phone)
	cleanedLen := utf8.RuneCountInString(cleaned)
	switch {
	case phone == "" || cleanedLen < MinPhoneDigits || cleanedLen > MaxPhoneDigits:
		fields = append(fields, FieldError{Field: FieldPhone, Message: "phone number is required (9-12 digits)"})
	case !digitsOnly.MatchString(cleaned):
		fields = append(fields, FieldError{Field: FieldPhone, Message: "phone number must contain digits only"})
	}

	if email != "" && !emailRegex.MatchString(email) {
		fields = append(fields, FieldError{Field: FieldEmail, Message: "email format is invalid"})
	}

	if len(fields) > 0 {
		return Contact{}, &ValidationError{Fields: fields}
	}

	return Contact{
		Name:  name,
		Phone: phone,
		Email: email,
		Notes: strings.TrimSpace(in.Notes),
	}, nil
}
