package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/saladworks/cartctl/internal/domain/order"
)

// CheckoutForm is the terminal's checkout modal. Fields already present in
// Preset are kept; missing ones are prompted for interactively.
type CheckoutForm struct {
	in  *bufio.Reader
	out io.Writer

	// Preset carries form values provided up front (e.g. via flags).
	Preset order.Form
	// Interactive enables prompting for fields Preset leaves empty.
	Interactive bool
}

// NewCheckoutForm creates a CheckoutForm reading from in, prompting on out.
func NewCheckoutForm(in io.Reader, out io.Writer) *CheckoutForm {
	return &CheckoutForm{in: bufio.NewReader(in), out: out, Interactive: true}
}

// Collect gathers the checkout form. Returns ok=false when interactive input
// ends before the form is complete.
func (f *CheckoutForm) Collect() (order.Form, bool) {
	form := f.Preset
	if !f.Interactive {
		return form, true
	}

	fields := []struct {
		label string
		value *string
	}{
		{"Name", &form.Name},
		{"Phone", &form.Phone},
		{"Delivery address", &form.Address},
		{"Card number", &form.CardNumber},
	}
	for _, field := range fields {
		if strings.TrimSpace(*field.value) != "" {
			continue
		}
		fmt.Fprintf(f.out, "%s: ", field.label)
		line, err := f.in.ReadString('\n')
		if err != nil {
			return order.Form{}, false
		}
		*field.value = strings.TrimSpace(line)
	}
	return form, true
}

// SetSubmitting toggles the "processing" indicator that replaces the submit
// control while the order request is outstanding.
func (f *CheckoutForm) SetSubmitting(submitting bool) {
	if submitting {
		fmt.Fprintln(f.out, "Processing order...")
	}
}

// Close dismisses the form after a successful submission.
func (f *CheckoutForm) Close() {
	fmt.Fprintln(f.out, "Checkout complete.")
}
