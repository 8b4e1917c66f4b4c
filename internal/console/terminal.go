package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader reads one line of user input after showing a prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// LineWriter emits one line of output.
type LineWriter interface {
	WriteLine(text string)
}

// IO is what a session needs from its terminal.
type IO interface {
	LineReader
	LineWriter
}

// Terminal implements IO over a reader and a writer, typically stdin and stdout.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminal creates a terminal reading lines from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine prints the prompt and blocks for the next line, whatever its length.
// A final line without a newline is returned as is; io.EOF is returned once
// the input is exhausted.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WriteLine writes text followed by a newline.
func (t *Terminal) WriteLine(text string) {
	fmt.Fprintln(t.out, text)
}
