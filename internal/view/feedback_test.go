package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotices(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotices(&buf)

	n.Success("quantity updated")
	assert.Equal(t, "ok: quantity updated\n", buf.String())
	assert.False(t, n.Failed())

	buf.Reset()
	n.Error("could not update the quantity")
	assert.Equal(t, "error: could not update the quantity\n", buf.String())
	assert.True(t, n.Failed())

	// Failed stays latched after later successes.
	n.Success("item removed")
	assert.True(t, n.Failed())
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "yes\n", true},
		{"yes uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"garbage", "sure\n", false},
		{"eof", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConfirm(strings.NewReader(tt.input), &out)

			got := c.Confirm("Remove this item from your cart?")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Remove this item from your cart? [y/N] ", out.String())
		})
	}
}

func TestConfirm_Assume(t *testing.T) {
	var out bytes.Buffer
	c := NewConfirm(strings.NewReader(""), &out)

	yes := true
	c.Assume = &yes

	assert.True(t, c.Confirm("Remove this item from your cart?"))
	// No prompt is printed when the answer is forced.
	assert.Empty(t, out.String())
}

func TestLoginHint(t *testing.T) {
	var buf bytes.Buffer
	NewLoginHint(&buf).OpenLogin()
	assert.Equal(t, "Sign in with 'cartctl login', then run checkout again.\n", buf.String())
}
