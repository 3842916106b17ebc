package validator

import (
	"fmt"
	"net/mail"
)

// Field limits mirror the persisted schema: a request that passes here is
// storable as-is.
const (
	ScreenNameMin = 3
	ScreenNameMax = 256
	EmailMin      = 6
	EmailMax      = 256
	PasswordMin   = 6
	PasswordMax   = 1024
	TitleMin      = 3
	TitleMax      = 256
	BodyMin       = 3
	BodyMax       = 1024
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors keeps fields in the order they were checked; error
// responses surface the first failing field's message.
type ValidationErrors []FieldError

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

func (v ValidationErrors) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message
}

func ValidateRegister(screenName, email, password string) ValidationErrors {
	var errs ValidationErrors

	checkLength(&errs, "screen_name", screenName, ScreenNameMin, ScreenNameMax)
	validateEmail(&errs, email)
	checkLength(&errs, "password", password, PasswordMin, PasswordMax)

	return errs
}

func ValidateSignIn(email, password string) ValidationErrors {
	var errs ValidationErrors

	validateEmail(&errs, email)
	checkLength(&errs, "password", password, PasswordMin, PasswordMax)

	return errs
}

func ValidatePost(title, body string) ValidationErrors {
	var errs ValidationErrors

	checkLength(&errs, "title", title, TitleMin, TitleMax)
	checkLength(&errs, "body", body, BodyMin, BodyMax)

	return errs
}

// ValidatePostUpdate allows either field to be absent but requires at
// least one, and present fields still honor their limits.
func ValidatePostUpdate(title, body *string) ValidationErrors {
	var errs ValidationErrors

	if title == nil && body == nil {
		errs.Add("title", "At least one parameter must be set")
		return errs
	}

	if title != nil {
		checkLength(&errs, "title", *title, TitleMin, TitleMax)
	}
	if body != nil {
		checkLength(&errs, "body", *body, BodyMin, BodyMax)
	}

	return errs
}

func ValidateComment(body string) ValidationErrors {
	var errs ValidationErrors

	checkLength(&errs, "body", body, BodyMin, BodyMax)

	return errs
}

func validateEmail(errs *ValidationErrors, email string) {
	checkLength(errs, "email", email, EmailMin, EmailMax)
	if email == "" {
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Email must be a valid email address")
	}
}

func checkLength(errs *ValidationErrors, field, value string, min, max int) {
	switch {
	case value == "":
		errs.Add(field, fmt.Sprintf("Field %s is required", field))
	case len(value) < min:
		errs.Add(field, fmt.Sprintf("Field %s must be at least %d characters", field, min))
	case len(value) > max:
		errs.Add(field, fmt.Sprintf("Field %s must be at most %d characters", field, max))
	}
}
