package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// AnswerPrompt is printed before each answer is read.
const AnswerPrompt = "Your answer: "

type line struct {
	text string
	err  error
}

// Input reads answers line by line. The underlying reader is consumed by a
// single background goroutine so that a pending read can be abandoned when
// the context is cancelled.
type Input struct {
	in     io.Reader
	prompt io.Writer

	once  sync.Once
	lines chan line
}

// NewInput reads answers from in and writes the answer prompt to prompt.
// A nil prompt disables the prompt.
func NewInput(in io.Reader, prompt io.Writer) *Input {
	return &Input{in: in, prompt: prompt, lines: make(chan line)}
}

func (i *Input) start() {
	go func() {
		defer close(i.lines)
		scanner := bufio.NewScanner(i.in)
		for scanner.Scan() {
			i.lines <- line{text: strings.TrimSuffix(scanner.Text(), "\r")}
		}
		if err := scanner.Err(); err != nil {
			i.lines <- line{err: err}
		}
	}()
}

// ReadLine blocks until a line is available, input ends (io.EOF) or ctx is done.
func (i *Input) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	i.once.Do(i.start)

	if i.prompt != nil {
		fmt.Fprint(i.prompt, AnswerPrompt)
	}

	select {
	case <-ctx.Done():
		i.newline()
		return "", ctx.Err()
	case l, ok := <-i.lines:
		if !ok {
			i.newline()
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// newline ends the prompt line when no answer was typed.
func (i *Input) newline() {
	if i.prompt != nil {
		fmt.Fprintln(i.prompt)
	}
}
