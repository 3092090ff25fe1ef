// Package terminal reads credentials from the user's terminal.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/bft-labs/signin/internal/domain"
	"github.com/bft-labs/signin/internal/ports"
)

// ErrEmptyCredentials is returned when the user enters an empty email or password.
var ErrEmptyCredentials = errors.New("terminal: email and password are required")

// Prompter implements ports.CredentialsPrompter.
// On a terminal the password is read without echo; otherwise it is read as a line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	fd         int
	isTerminal bool

	// preset values skip the matching question; the password only on attempt 1
	email    string
	password string

	readPassword func(fd int) ([]byte, error)
}

var _ ports.CredentialsPrompter = (*Prompter)(nil)

// NewPrompter creates a prompter reading from in and writing questions to out.
// Non-empty email or password are used instead of asking.
func NewPrompter(in *os.File, out io.Writer, email, password string) *Prompter {
	fd := int(in.Fd())
	return &Prompter{
		in:           bufio.NewReader(in),
		out:          out,
		fd:           fd,
		isTerminal:   term.IsTerminal(fd),
		email:        email,
		password:     password,
		readPassword: term.ReadPassword,
	}
}

// Prompt asks for whatever is not preset.
func (p *Prompter) Prompt(ctx context.Context, attempt int) (domain.AuthenticationParams, error) {
	if err := ctx.Err(); err != nil {
		return domain.AuthenticationParams{}, err
	}

	if attempt > 1 {
		fmt.Fprintf(p.out, "Invalid credentials, try again (attempt %d).\n", attempt)
	}

	email := p.email
	if email == "" {
		line, err := p.ask("Email: ")
		if err != nil {
			return domain.AuthenticationParams{}, err
		}
		email = line
	}

	password := ""
	if attempt == 1 {
		password = p.password
	}
	if password == "" {
		secret, err := p.askSecret("Password: ")
		if err != nil {
			return domain.AuthenticationParams{}, err
		}
		password = secret
	}

	if email == "" || password == "" {
		return domain.AuthenticationParams{}, ErrEmptyCredentials
	}
	return domain.AuthenticationParams{Email: email, Password: password}, nil
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) askSecret(question string) (string, error) {
	if !p.isTerminal {
		return p.ask(question)
	}
	fmt.Fprint(p.out, question)
	b, err := p.readPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
