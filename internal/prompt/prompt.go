// Package prompt reads operator input one line at a time and validates it
// field by field.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter writes prompts to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf writes to the prompt output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Out returns the prompt output.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Line prints label and returns the trimmed answer. It returns ErrExit for
// an exit sentinel and io.EOF once input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if IsExit(line) {
		return "", ErrExit
	}
	return line, nil
}

// Ask prompts until parse accepts the answer. Validation errors are shown
// to the operator and the same field is asked again; ErrExit and read
// errors are returned.
func Ask[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		raw, err := p.Line(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		var verr *ValidationError
		if errors.As(err, &verr) {
			p.Printf("❌ %s\n", verr.Reason)
			continue
		}
		if err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}

// Done reports whether err ends a session: an exit sentinel or closed input.
func Done(err error) bool {
	return errors.Is(err, ErrExit) || errors.Is(err, io.EOF)
}
