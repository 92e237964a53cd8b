package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/spec-kit/notice-board/internal/client"
)

func (c *cli) readLine(prompt string) (string, error) {
	fmt.Fprint(c.errOut, prompt)
	line, err := c.lines.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readSecret disables echo when stdin is a terminal.
func (c *cli) readSecret(prompt string) (string, error) {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.readLine(prompt)
	}
	fmt.Fprint(c.errOut, prompt)
	raw, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(c.errOut)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func (c *cli) confirm(prompt string) (bool, error) {
	answer, err := c.readLine(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// describe expands API validation details into one line per field.
func describe(err error) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Details) == 0 {
		return err.Error()
	}
	fields := make([]string, 0, len(apiErr.Details))
	for field := range apiErr.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(err.Error())
	for _, field := range fields {
		fmt.Fprintf(&b, "\n  %s: %v", field, apiErr.Details[field])
	}
	return b.String()
}
