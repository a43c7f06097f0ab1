package order

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
)

// Sentinel errors for checkout form validation.
var (
	ErrIncompleteForm = errors.New("name, phone and address are required")
	ErrCardTooShort   = errors.New("card number must be at least 12 characters")
)

// Form holds the checkout input as entered by the customer.
type Form struct {
	Name       string `validate:"required"`
	Phone      string `validate:"required"`
	Address    string `validate:"required"`
	CardNumber string `validate:"min=12"`
}

var validate = validator.New()

// Normalize returns a copy of the form with every field trimmed of
// surrounding whitespace. Validation operates on the normalized form.
func (f Form) Normalize() Form {
	return Form{
		Name:       strings.TrimSpace(f.Name),
		Phone:      strings.TrimSpace(f.Phone),
		Address:    strings.TrimSpace(f.Address),
		CardNumber: strings.TrimSpace(f.CardNumber),
	}
}

// Validate checks the normalized form: name, phone and address must be
// non-empty and the card number must be at least 12 characters long. The card
// number is otherwise accepted as an opaque string.
func (f Form) Validate() error {
	err := validate.Struct(f.Normalize())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate form")
	}
	for _, fe := range fieldErrs {
		if fe.Field() != "CardNumber" {
			return ErrIncompleteForm
		}
	}
	return ErrCardTooShort
}
