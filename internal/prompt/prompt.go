// Package prompt provides the yes/no confirmation capability used before any
// file is deleted or moved.
//
// The dedup logic depends only on [Confirmer], so tests drive it with a
// [Scripted] source and dry runs with [Decline].
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Errors returned by confirmers.
var (
	ErrNoInput         = errors.New("no answer: input closed")
	ErrScriptExhausted = errors.New("scripted confirmer has no answers left")
)

// Confirmer asks a yes/no question. def is the answer assumed when the user
// just presses enter.
type Confirmer interface {
	Confirm(question string, def bool) (bool, error)
}

// Console reads answers line by line from an input stream.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading from in and printing questions to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Confirm prints "question [y/N] " (or "[Y/n]" when def is true) and reads a
// line. Empty input returns def; y/yes and n/no are accepted in any case;
// anything else asks again. A closed or failing input is an error.
func (c *Console) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(c.out, "%s %s ", question, hint)
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return false, ErrNoInput
			}
			return false, fmt.Errorf("read answer: %w", err)
		}
		if answer, ok := parseAnswer(line, def); ok {
			return answer, nil
		}
		if err == io.EOF {
			return false, ErrNoInput
		}
	}
}

// parseAnswer interprets one line of user input.
func parseAnswer(line string, def bool) (answer, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// Scripted answers questions from a fixed list, in order. It records every
// question it was asked.
type Scripted struct {
	answers []bool
	Asked   []string
}

// NewScripted returns a Scripted confirmer that will give answers in order.
func NewScripted(answers ...bool) *Scripted {
	return &Scripted{answers: answers}
}

// Confirm returns the next scripted answer.
func (s *Scripted) Confirm(question string, def bool) (bool, error) {
	s.Asked = append(s.Asked, question)
	if len(s.answers) == 0 {
		return false, fmt.Errorf("%w (question: %s)", ErrScriptExhausted, strings.TrimSpace(question))
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// remaining reports how many scripted answers have not been used.
func (s *Scripted) remaining() int { return len(s.answers) }

// Decline answers every question with no, after reporting it through Notify
// when set. Dry runs use it so each candidate is still listed.
type Decline struct {
	Notify func(question string)
}

// Confirm always returns false.
func (d Decline) Confirm(question string, def bool) (bool, error) {
	if d.Notify != nil {
		d.Notify(question)
	}
	return false, nil
}

// DryRun returns a Decline that echoes each question to out, marked as
// skipped.
func DryRun(out io.Writer) Decline {
	return Decline{Notify: func(q string) {
		fmt.Fprintf(out, "%s [dry run: skipped]\n", q)
	}}
}
