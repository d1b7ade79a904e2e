// Package forms defines the three HTML form shapes the application accepts
// and an explicit validation function per shape. Each Validate call returns
// a structured list of field errors instead of raising; an empty list means
// the submission is acceptable.
package forms

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Length and range limits enforced on submitted fields.
const (
	MinNameLen        = 2
	MinPasswordLen    = 6
	MaxTitleLen       = 140
	MaxDescriptionLen = 2000
)

// FieldError reports a single failed check on a named form field.
// Message holds the user-facing French text rendered next to the field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the result of validating one form submission.
type Errors []FieldError

// Has reports whether any check failed.
func (e Errors) Has() bool { return len(e) > 0 }

// RegisterForm carries a registration submission.
type RegisterForm struct {
	Name     string
	Email    string
	Password string
}

// Validate checks name length, email format and password length.
func (f RegisterForm) Validate() Errors {
	var errs Errors

	if utf8.RuneCountInString(strings.TrimSpace(f.Name)) < MinNameLen {
		errs = append(errs, FieldError{Field: "name", Message: "Le nom doit contenir au moins 2 caractères"})
	}

	if !isValidEmail(f.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Adresse email invalide"})
	}

	if utf8.RuneCountInString(f.Password) < MinPasswordLen {
		errs = append(errs, FieldError{Field: "password", Message: "Le mot de passe doit contenir au moins 6 caractères"})
	}

	return errs
}

// LoginForm carries a login submission.
type LoginForm struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present and the email is
// well-formed. It says nothing about whether the credentials match an
// account; that is the auth service's concern.
func (f LoginForm) Validate() Errors {
	var errs Errors

	if !isValidEmail(f.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Adresse email invalide"})
	}

	if f.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Le mot de passe est requis"})
	}

	return errs
}

// ItemForm carries a listing creation submission. Price arrives as the raw
// form string and is parsed during validation so that a non-numeric value
// surfaces as a field error rather than a handler-level failure.
type ItemForm struct {
	Title       string
	Description string
	Price       string
	ListingType string
	Condition   string
}

// Validate checks title presence and length, description length, listing
// type membership, and that the price parses as a non-negative number.
func (f ItemForm) Validate() Errors {
	var errs Errors

	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Le titre est requis"})
	} else if utf8.RuneCountInString(title) > MaxTitleLen {
		errs = append(errs, FieldError{Field: "title", Message: "Le titre est trop long"})
	}

	if utf8.RuneCountInString(f.Description) > MaxDescriptionLen {
		errs = append(errs, FieldError{Field: "description", Message: "La description est trop longue"})
	}

	if _, err := f.PriceValue(); err != nil {
		errs = append(errs, FieldError{Field: "price", Message: "Prix invalide"})
	}

	if f.ListingType != "sale" && f.ListingType != "rent" {
		errs = append(errs, FieldError{Field: "listing_type", Message: "Type d'annonce invalide"})
	}

	return errs
}

// PriceValue parses the submitted price. It returns ErrInvalidPrice when the
// value is missing, not a number, or negative.
func (f ItemForm) PriceValue() (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price < 0 {
		return 0, ErrInvalidPrice
	}

	return price, nil
}

func isValidEmail(s string) bool {
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	// reject the "Name <addr>" form; only a bare address is a valid input
	return err == nil && addr.Address == s
}
