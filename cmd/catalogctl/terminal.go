package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eduproject/catalog/admin"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// terminal prompts the operator and prints toasts.
type terminal struct {
	in  *bufio.Reader
	out io.Writer
	// assumeYes answers every confirmation with yes without asking.
	assumeYes bool
}

func newTerminal(in io.Reader, out io.Writer) *terminal {
	return &terminal{in: bufio.NewReader(in), out: out}
}

func (t *terminal) Notify(toast admin.Toast) {
	marker := "✓"
	switch toast.Level {
	case admin.ToastError:
		marker = "✗"
	case admin.ToastInfo:
		marker = "•"
	}
	fmt.Fprintf(t.out, "%s %s\n", marker, toast.Message)
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (t *terminal) Confirm(_ context.Context, prompt string) bool {
	if t.assumeYes {
		return true
	}
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		fmt.Fprintln(t.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "ya":
		return true
	}
	return false
}

// readAccessCode reads the code without echo when stdin is a terminal and
// as a plain line otherwise.
func (t *terminal) readAccessCode() (string, error) {
	fmt.Fprint(t.out, "Kode akses: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		code, err := readPassword(fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", err
		}
		return string(code), nil
	}

	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
