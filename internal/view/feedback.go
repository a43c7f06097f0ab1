package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Notices prints transient success/error feedback, one line per notice. It
// also remembers whether any error was reported so the CLI can pick a
// matching exit code.
type Notices struct {
	w      io.Writer
	failed bool
}

// NewNotices creates a Notices writing to w.
func NewNotices(w io.Writer) *Notices {
	return &Notices{w: w}
}

// Success prints a success notice.
func (n *Notices) Success(message string) {
	fmt.Fprintf(n.w, "ok: %s\n", message)
}

// Error prints an error notice.
func (n *Notices) Error(message string) {
	n.failed = true
	fmt.Fprintf(n.w, "error: %s\n", message)
}

// Failed reports whether any error notice was emitted.
func (n *Notices) Failed() bool {
	return n.failed
}

// Confirm asks yes/no questions on the terminal. Anything but an explicit
// yes declines.
type Confirm struct {
	in  *bufio.Reader
	out io.Writer
	// Assume forces the answer without prompting; used by --yes flags.
	Assume *bool
}

// NewConfirm creates a Confirm reading from in and prompting on out.
func NewConfirm(in io.Reader, out io.Writer) *Confirm {
	return &Confirm{in: bufio.NewReader(in), out: out}
}

// Confirm prompts and reads a single line answer.
func (c *Confirm) Confirm(prompt string) bool {
	if c.Assume != nil {
		return *c.Assume
	}
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// LoginHint tells the user how to sign in; the terminal has no login page to
// navigate to.
type LoginHint struct {
	w io.Writer
}

// NewLoginHint creates a LoginHint writing to w.
func NewLoginHint(w io.Writer) *LoginHint {
	return &LoginHint{w: w}
}

// OpenLogin prints the sign-in instruction.
func (h *LoginHint) OpenLogin() {
	fmt.Fprintln(h.w, "Sign in with 'cartctl login', then run checkout again.")
}
