package credential

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Prompter asks the operator for a secret.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Request describes the password a workflow needs.
type Request struct {
	// User and Server only appear in the prompt.
	User   string
	Server string
	// Preset is the password already stored in configuration, if any.
	Preset string
	// Commit is false for dry runs, which never need a password.
	Commit bool
	// Force discards Preset and always prompts.
	Force bool
}

// Resolve returns the password to use for req.
// Dry runs return an empty password without prompting. Otherwise the preset
// password is used unless forced, and the prompt repeats until non-empty.
func Resolve(p Prompter, req Request) (string, error) {
	if !req.Commit {
		return "", nil
	}

	password := req.Preset
	if req.Force {
		password = ""
	}

	prompt := fmt.Sprintf("Enter Pulp password for %s@%s: ", req.User, req.Server)
	for password == "" {
		answer, err := p.Prompt(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		password = answer
	}

	return password, nil
}

// TerminalPrompter reads a password from a terminal without echoing it.
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalPrompter prompts on stderr and reads from stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

// ErrNotTerminal is returned when no terminal is available to prompt on.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Prompt implements Prompter.
func (t *TerminalPrompter) Prompt(prompt string) (string, error) {
	fd := int(t.In.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	fmt.Fprint(t.Out, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(t.Out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
