package checkout

import (
	stderrors "errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var nonDigits = regexp.MustCompile(`\D`)

// Validator checks checkout form submissions. It reports every problem at
// once rather than stopping at the first, so a customer can fix the whole
// form in one pass.
type Validator struct {
	fields *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{fields: v}
}

// Validate checks the trimmed form for required fields, email and phone
// format, payment method, and terms acceptance. The returned error combines
// every failure; nil means the form is ready to submit.
func (v *Validator) Validate(info types.CustomerInfo) error {
	info = info.Trimmed()

	var errs error
	if err := v.fields.Struct(info); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeValidation, fe.Field()+" is required"))
			}
		} else {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "validating form")
		}
	}

	if info.Email != "" && !emailPattern.MatchString(info.Email) {
		errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeInvalidEmail, "email address is invalid"))
	}
	if info.Phone != "" {
		digits := nonDigits.ReplaceAllString(info.Phone, "")
		if len(digits) != 10 {
			errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeInvalidPhone, "phone number must have 10 digits"))
		}
	}
	if !info.PaymentMethod.IsValid() {
		errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeValidation, "payment method is invalid"))
	}
	if !info.AgreeTerms {
		errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeTermsNotAccepted, "terms and conditions must be accepted"))
	}
	return errs
}
