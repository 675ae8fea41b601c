// Package keypad models a calculator keypad: an edit buffer driven by
// button presses, independent of whatever renders the buttons.
package keypad

import (
	"strings"

	"github.com/ostrica/safeexpr"
)

// Button labels with behavior beyond appending their text.
const (
	KeyClear     = "C"
	KeyBackspace = "⌫"
	KeyEquals    = "="
)

// Layout is the button grid of the classic pocket-calculator face.
// Renderers may draw it however they like; every label is valid input to
// Press.
var Layout = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "%", "+"},
	{KeyClear, KeyBackspace, "^", KeyEquals},
}

// Pad is a calculator's edit buffer. The zero Pad is empty and ready to
// use. A Pad is not safe for concurrent use.
type Pad struct {
	buf string
}

// Press handles a button press. The clear, backspace and equals buttons
// dispatch to their methods; any other label is appended to the buffer.
func (p *Pad) Press(key string) {
	switch key {
	case KeyClear:
		p.Clear()
	case KeyBackspace:
		p.Backspace()
	case KeyEquals:
		p.Equals()
	default:
		p.buf += key
	}
}

// Clear empties the buffer.
func (p *Pad) Clear() {
	p.buf = ""
}

// Backspace removes the last rune from the buffer, if any.
func (p *Pad) Backspace() {
	if p.buf == "" {
		return
	}
	r := []rune(p.buf)
	p.buf = string(r[:len(r)-1])
}

// Equals evaluates the buffer and replaces it with the formatted result,
// or with the literal text "Error" when the buffer does not evaluate. The
// ^ button spells exponentiation on the pad, so it is translated to the
// ** operator before evaluating. A blank buffer is left alone.
func (p *Pad) Equals() {
	src := strings.ReplaceAll(p.buf, "^", "**")
	if strings.TrimSpace(src) == "" {
		return
	}
	n, err := safeexpr.EvalString(src)
	if err != nil {
		p.buf = "Error"
		return
	}
	p.buf = safeexpr.Format(n)
}

// Display returns the buffer as it should be shown.
func (p *Pad) Display() string {
	return p.buf
}
