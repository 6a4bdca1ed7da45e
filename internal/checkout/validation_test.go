package checkout

import (
	"testing"

	"github.com/stylecart/storefront/pkg/enums"
	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/types"
)

func validInfo() types.CustomerInfo {
	return types.CustomerInfo{
		FirstName:     "Ayesha",
		LastName:      "Khan",
		Email:         "ayesha@example.com",
		Phone:         "300-123-4567",
		Address:       "12 Mall Road",
		City:          "Lahore",
		State:         "Punjab",
		Zip:           "54000",
		Country:       "Pakistan",
		PaymentMethod: enums.PaymentMethodCard,
		AgreeTerms:    true,
	}
}

func TestValidateAccepts(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(validInfo()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	v := NewValidator()
	info := validInfo()
	info.FirstName = ""
	info.City = "   "

	err := v.Validate(info)
	if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator()
	bad := []string{"plain", "a b@example.com", "a@b", "a@@b.com"}
	for _, email := range bad {
		info := validInfo()
		info.Email = email
		if err := v.Validate(info); !pkgerrors.HasCode(err, pkgerrors.CodeInvalidEmail) {
			t.Fatalf("email %q: expected INVALID_EMAIL, got %v", email, err)
		}
	}

	info := validInfo()
	info.Email = "x@y.co"
	if err := v.Validate(info); err != nil {
		t.Fatalf("email x@y.co rejected: %v", err)
	}
}

func TestValidatePhone(t *testing.T) {
	v := NewValidator()

	// Formatting characters are ignored; only the digit count matters.
	for _, phone := range []string{"3001234567", "(300) 123-4567", "300 123 4567"} {
		info := validInfo()
		info.Phone = phone
		if err := v.Validate(info); err != nil {
			t.Fatalf("phone %q rejected: %v", phone, err)
		}
	}

	for _, phone := range []string{"12345", "12345678901", "abc"} {
		info := validInfo()
		info.Phone = phone
		if err := v.Validate(info); !pkgerrors.HasCode(err, pkgerrors.CodeInvalidPhone) {
			t.Fatalf("phone %q: expected INVALID_PHONE, got %v", phone, err)
		}
	}
}

func TestValidateTermsAndPaymentMethod(t *testing.T) {
	v := NewValidator()

	info := validInfo()
	info.AgreeTerms = false
	if err := v.Validate(info); !pkgerrors.HasCode(err, pkgerrors.CodeTermsNotAccepted) {
		t.Fatalf("expected TERMS_NOT_ACCEPTED, got %v", err)
	}

	info = validInfo()
	info.PaymentMethod = "bitcoin"
	if err := v.Validate(info); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR for payment method, got %v", err)
	}
}

func TestValidateReportsAllFailures(t *testing.T) {
	v := NewValidator()
	info := validInfo()
	info.Email = "nope"
	info.Phone = "123"
	info.AgreeTerms = false

	err := v.Validate(info)
	for _, code := range []pkgerrors.Code{
		pkgerrors.CodeInvalidEmail,
		pkgerrors.CodeInvalidPhone,
		pkgerrors.CodeTermsNotAccepted,
	} {
		if !pkgerrors.HasCode(err, code) {
			t.Fatalf("missing %s in %v", code, err)
		}
	}
}
