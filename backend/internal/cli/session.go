// Package cli runs the interactive "Name: / Name: / Algorithm type:" session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"degrees/backend/internal/degrees"
	"degrees/backend/internal/resolver"
	"degrees/backend/internal/search"
	apperrors "degrees/backend/pkg/errors"
)

// User-facing messages
const (
	MsgPersonNotFound    = "Person not found."
	MsgUnknownDiscipline = "This Algo Type is not known. Please use 'breadth' or 'depth' instead."
)

// Session reads answers from in and writes prompts and results to out
type Session struct {
	svc *degrees.Service
	in  *bufio.Reader
	out io.Writer

	// Discipline skips the "Algorithm type" prompt when set
	Discipline string
}

// NewSession creates an interactive session over svc
func NewSession(svc *degrees.Service, in io.Reader, out io.Writer) *Session {
	return &Session{svc: svc, in: bufio.NewReader(in), out: out}
}

// Run asks for two people and a discipline, then prints how they are connected.
// The returned error carries the message to show the user before exiting.
func (s *Session) Run(ctx context.Context) error {
	source, err := s.askPerson()
	if err != nil {
		return err
	}
	target, err := s.askPerson()
	if err != nil {
		return err
	}

	raw := s.Discipline
	if raw == "" {
		if raw, err = s.ask("Algorithm type: "); err != nil {
			return err
		}
	}
	d, err := search.ParseDiscipline(raw)
	if err != nil {
		return userError(MsgUnknownDiscipline, err)
	}

	conn, err := s.svc.Connect(ctx, source, target, d)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, conn.Summary())
	for _, line := range conn.Lines() {
		fmt.Fprintln(s.out, line)
	}
	return nil
}

func (s *Session) askPerson() (string, error) {
	name, err := s.ask("Name: ")
	if err != nil {
		return "", err
	}
	id, err := s.ResolvePerson(name)
	if err != nil {
		return "", userError(MsgPersonNotFound, err)
	}
	return id, nil
}

// ResolvePerson resolves name, prompting for an id when several people share it
func (s *Session) ResolvePerson(name string) (string, error) {
	res := s.svc.Resolve(name)
	if res.Kind == resolver.Ambiguous {
		fmt.Fprintf(s.out, "Which '%s'?\n", name)
		for _, c := range res.Candidates {
			fmt.Fprintf(s.out, "ID: %s, Name: %s, Birth: %s\n", c.ID, c.Name, birthLabel(c.Birth))
		}
		picked, err := s.ask("Intended Person ID: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		res = res.Choose(picked)
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	return res.PersonID, nil
}

// ask prints label and returns the trimmed line typed in reply.
// A final line without a newline is accepted; an empty stream is io.EOF.
func (s *Session) ask(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func birthLabel(birth int) string {
	if birth == 0 {
		return ""
	}
	return strconv.Itoa(birth)
}

// UserError pairs a short message for the terminal with the underlying cause
type UserError struct {
	Message string
	Err     error
}

func userError(msg string, err error) *UserError {
	return &UserError{Message: msg, Err: err}
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// Message returns what to print for err: the user-facing text when there is
// one, otherwise the error itself.
func Message(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	if apperrors.IsErrorType(err, apperrors.ErrorTypeContext) {
		return "Search timed out."
	}
	return err.Error()
}
