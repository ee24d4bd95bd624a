// Package auth implements the simulated OTP sign-in and the bearer tokens
// that identify a signed-in phone number. No OTP is ever delivered; any
// well-formed code is accepted.
package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidRequest = errors.New("invalid auth request")
	ErrUnauthorized   = errors.New("unauthorized")
)

const (
	MsgInvalidPhone       = "Please enter a valid 10-digit phone number."
	MsgInvalidOTP         = "Please enter a valid 6-digit OTP."
	MsgInvalidBankAccount = "Please enter valid bank details."
	MsgInvalidName        = "Please enter a valid name."
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type OTPRequest struct {
	Phone string `json:"phone" validate:"required,len=10,number"`
}

type VerifyRequest struct {
	Phone       string `json:"phone" validate:"required,len=10,number"`
	OTP         string `json:"otp" validate:"required,len=6,number"`
	Name        string `json:"name" validate:"omitempty,max=100"`
	BankAccount string `json:"bank_account" validate:"required,min=4,max=34"`
}

// ValidationError names the first field of a request that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// RequestOTP checks the phone number an OTP would be sent to.
func RequestOTP(req OTPRequest) error {
	return check(req)
}

// VerifyOTP checks the OTP and the signup details that come with it.
func VerifyOTP(req VerifyRequest) error {
	return check(req)
}

func check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	field := fieldErrs[0].Field()

	return &ValidationError{Field: field, Message: message(field)}
}

func message(field string) string {
	switch field {
	case "Phone":
		return MsgInvalidPhone
	case "OTP":
		return MsgInvalidOTP
	case "BankAccount":
		return MsgInvalidBankAccount
	default:
		return MsgInvalidName
	}
}
