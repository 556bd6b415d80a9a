// Package terminal renders the note dialogs and the home view on a text terminal.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Dialog asks questions on w and reads answers line by line from r.
type Dialog struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

func NewDialog(r io.Reader, w io.Writer) *Dialog {
	return &Dialog{in: bufio.NewReader(r), out: w}
}

// Confirm accepts "y" or "yes" in any case. Anything else, EOF included, declines.
func (d *Dialog) Confirm(message string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintf(d.out, "%s [y/N]: ", message)

	line, ok := d.readLine()
	if !ok {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}

	return false
}

// Prompt returns the entered line; an empty line yields defaultValue.
// EOF before any input means the user cancelled.
func (d *Dialog) Prompt(message, defaultValue string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if defaultValue != "" {
		fmt.Fprintf(d.out, "%s [%s] ", message, defaultValue)
	} else {
		fmt.Fprintf(d.out, "%s ", message)
	}

	line, ok := d.readLine()
	if !ok {
		return "", false
	}

	if line == "" {
		return defaultValue, true
	}

	return line, true
}

func (d *Dialog) Alert(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintf(d.out, "! %s\n", message)
}

func (d *Dialog) readLine() (string, bool) {
	line, err := d.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		fmt.Fprintln(d.out)
		return "", false
	}

	return strings.TrimRight(line, "\r\n"), true
}
