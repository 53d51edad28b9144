// Package confirmations provides the blocking yes/no prompt used by
// interactive runs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Acknowledgements printed after an accepted answer
const (
	MsgContinuing = "continuing..."
	MsgSkipping   = "skipping..."
)

// Answers recognised by the console prompt
const (
	AnswerYes = "y"
	AnswerNo  = "n"
)

// Confirmer asks a yes/no question and blocks until it is answered
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConsoleConfirmer asks questions on a line-oriented console
type ConsoleConfirmer struct {
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

// NewConsoleConfirmer creates a confirmer reading answers from in and
// writing questions to out
func NewConsoleConfirmer(in io.Reader, out io.Writer) *ConsoleConfirmer {
	c := &ConsoleConfirmer{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logging.GetLogger("ui.confirmations"),
	}
	if f, ok := in.(*os.File); ok && !isTerminal(f) {
		c.logger.Warn().Str("input", f.Name()).Msg("Interactive mode is reading answers from a non-terminal input")
	}
	return c
}

// NewStdConfirmer creates a confirmer on the process standard streams
func NewStdConfirmer() *ConsoleConfirmer {
	return NewConsoleConfirmer(os.Stdin, os.Stdout)
}

// Confirm prints the question and reads answers until one is exactly "y" or
// "n". Any other answer repeats the same question. A closed input cannot
// answer and is reported as an error.
func (c *ConsoleConfirmer) Confirm(question string) (bool, error) {
	for attempt := 1; ; attempt++ {
		if _, err := fmt.Fprintln(c.out, question); err != nil {
			return false, errors.Wrap(err, errors.ErrInternal, "cannot write question")
		}

		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return false, errors.New(errors.ErrInvalidInput, "input closed before the question was answered").
					WithDetail("question", question)
			}
			return false, errors.Wrap(err, errors.ErrInternal, "cannot read answer")
		}

		answer := strings.TrimRight(line, "\r\n")
		switch answer {
		case AnswerYes:
			fmt.Fprintln(c.out, MsgContinuing)
			return true, nil
		case AnswerNo:
			fmt.Fprintln(c.out, MsgSkipping)
			return false, nil
		}

		c.logger.Debug().Int("attempt", attempt).Str("answer", answer).Msg("Unrecognised answer, asking again")
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
