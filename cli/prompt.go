package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrNoChoices is returned when there is nothing to select from.
var ErrNoChoices = errors.New("no choices available")

// IsInteractive reports whether f is a character device, i.e. a terminal.
func IsInteractive(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

// SelectColumn asks the user to pick one of headers, with prefix search.
func SelectColumn(label string, headers []string) (string, error) {
	return selectFrom(label, headers, os.Stdin, os.Stdout)
}

func selectFrom(label string, choices []string, in io.ReadCloser, out io.WriteCloser) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Size:     min(len(choices), 10), //nolint:mnd
		Searcher: prefixSearcher(choices),
		Stdin:    in,
		Stdout:   out,
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("selecting %s: %w", strings.ToLower(label), err)
	}

	return value, nil
}

func prefixSearcher(choices []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		return strings.HasPrefix(strings.ToLower(choices[index]), strings.ToLower(input))
	}
}
