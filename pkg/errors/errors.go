package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeEmptyCart        Code = "EMPTY_CART"
	CodeInvalidEmail     Code = "INVALID_EMAIL"
	CodeInvalidPhone     Code = "INVALID_PHONE"
	CodeTermsNotAccepted Code = "TERMS_NOT_ACCEPTED"
	CodeUnknownProduct   Code = "UNKNOWN_PRODUCT"
	CodeNotFound         Code = "NOT_FOUND"
	CodePersistence      Code = "PERSISTENCE_FAILURE"
	CodeInternal         Code = "INTERNAL_ERROR"
)

type Metadata struct {
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Retryable:      false,
		PublicMessage:  "validation failed",
		DetailsAllowed: true,
	},
	CodeEmptyCart: {
		Retryable:      false,
		PublicMessage:  "your cart is empty",
		DetailsAllowed: false,
	},
	CodeInvalidEmail: {
		Retryable:      false,
		PublicMessage:  "please enter a valid email address",
		DetailsAllowed: true,
	},
	CodeInvalidPhone: {
		Retryable:      false,
		PublicMessage:  "please enter a valid 10-digit phone number",
		DetailsAllowed: true,
	},
	CodeTermsNotAccepted: {
		Retryable:      false,
		PublicMessage:  "please agree to the terms & conditions",
		DetailsAllowed: false,
	},
	CodeUnknownProduct: {
		Retryable:      false,
		PublicMessage:  "product not found",
		DetailsAllowed: true,
	},
	CodeNotFound: {
		Retryable:      false,
		PublicMessage:  "resource not found",
		DetailsAllowed: false,
	},
	CodePersistence: {
		Retryable:      true,
		PublicMessage:  "saving your changes failed",
		DetailsAllowed: true,
	},
	CodeInternal: {
		Retryable:      true,
		PublicMessage:  "internal error",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// HasCode reports whether err carries the given storefront error code,
// searching the whole error tree so aggregated errors match on any branch.
func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	if typed, ok := err.(*Error); ok && typed.Code() == code {
		return true
	}
	switch wrapped := err.(type) {
	case interface{ Unwrap() []error }:
		for _, child := range wrapped.Unwrap() {
			if HasCode(child, code) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return HasCode(wrapped.Unwrap(), code)
	}
	return false
}
