package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saladworks/cartctl/internal/domain/order"
)

func TestCheckoutFormCollect(t *testing.T) {
	var out bytes.Buffer
	f := NewCheckoutForm(strings.NewReader("Ada Lovelace\n555-0175\n12 Analytical St\n411111111111\n"), &out)

	form, ok := f.Collect()

	require.True(t, ok)
	assert.Equal(t, order.Form{
		Name:       "Ada Lovelace",
		Phone:      "555-0175",
		Address:    "12 Analytical St",
		CardNumber: "411111111111",
	}, form)
	assert.Equal(t, "Name: Phone: Delivery address: Card number: ", out.String())
}

func TestCheckoutFormCollect_PresetSkipsPrompts(t *testing.T) {
	var out bytes.Buffer
	f := NewCheckoutForm(strings.NewReader("555-0175\n411111111111\n"), &out)
	f.Preset = order.Form{Name: "Ada Lovelace", Address: "12 Analytical St"}

	form, ok := f.Collect()

	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", form.Name)
	assert.Equal(t, "555-0175", form.Phone)
	assert.Equal(t, "12 Analytical St", form.Address)
	assert.Equal(t, "411111111111", form.CardNumber)
	assert.Equal(t, "Phone: Card number: ", out.String())
}

func TestCheckoutFormCollect_NonInteractive(t *testing.T) {
	var out bytes.Buffer
	f := NewCheckoutForm(strings.NewReader(""), &out)
	f.Preset = order.Form{Name: "Ada"}
	f.Interactive = false

	form, ok := f.Collect()

	require.True(t, ok)
	assert.Equal(t, "Ada", form.Name)
	assert.Empty(t, out.String())
}

func TestCheckoutFormCollect_Abandoned(t *testing.T) {
	var out bytes.Buffer
	f := NewCheckoutForm(strings.NewReader("Ada Lovelace\n"), &out)

	_, ok := f.Collect()
	assert.False(t, ok)
}

func TestCheckoutFormIndicators(t *testing.T) {
	var out bytes.Buffer
	f := NewCheckoutForm(strings.NewReader(""), &out)

	f.SetSubmitting(true)
	assert.Equal(t, "Processing order...\n", out.String())

	out.Reset()
	f.SetSubmitting(false)
	assert.Empty(t, out.String())

	f.Close()
	assert.Equal(t, "Checkout complete.\n", out.String())
}
