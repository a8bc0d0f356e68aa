package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var (
	// ErrNoInput is returned when the input ends before any text is read.
	ErrNoInput = errors.New("no input")
	// ErrCanceled is returned when the user leaves the prompt without submitting.
	ErrCanceled = errors.New("input canceled")
)

// Read obtains one line of text, using the interactive prompt when in is a
// terminal and a plain line read otherwise.
func Read(in io.Reader, out io.Writer, prompt string) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return Run(in, out, prompt)
	}
	return ReadLine(in)
}

// Run shows the interactive prompt and returns the submitted line.
func Run(in io.Reader, out io.Writer, prompt string) (string, error) {
	m := NewModel(prompt)
	program := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		return "", fmt.Errorf("failed to run prompt: %w", err)
	}
	if m.Canceled() {
		return "", ErrCanceled
	}
	return m.Value(), nil
}

// ReadLine reads up to the first newline and strips the line ending.
// An empty line is returned as "" without error; ErrNoInput is returned only
// when the stream ends before any byte is read.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
