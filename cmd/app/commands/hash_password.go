package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	adminService "github.com/allisson/enrollment/internal/admin/service"
)

// minPasswordLength is the shortest admin password hash-password accepts.
const minPasswordLength = 8

// RunHashPassword prints the Argon2id PHC hash for ADMIN_PASSWORD_HASH.
//
// When password is empty it is read from the terminal without echo and
// confirmed; a non-terminal reader supplies two lines instead.
func RunHashPassword(passwordService adminService.PasswordService, tuple IOTuple, password string) error {
	if password == "" {
		var err error
		password, err = promptNewPassword(tuple)
		if err != nil {
			return err
		}
	}

	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := passwordService.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = fmt.Fprintf(tuple.Writer, "ADMIN_PASSWORD_HASH='%s'\n", hash)
	return err
}

func promptNewPassword(tuple IOTuple) (string, error) {
	reader := newPasswordReader(tuple)

	password, err := reader.read("admin password: ")
	if err != nil {
		return "", err
	}
	confirm, err := reader.read("confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

// passwordReader reads passwords without echo from a terminal, or line by line
// from any other reader.
type passwordReader struct {
	prompt   io.Writer
	terminal int
	lines    *bufio.Reader
}

func newPasswordReader(tuple IOTuple) *passwordReader {
	if f, ok := tuple.Reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &passwordReader{prompt: os.Stderr, terminal: int(f.Fd())}
	}
	return &passwordReader{prompt: io.Discard, terminal: -1, lines: bufio.NewReader(tuple.Reader)}
}

func (p *passwordReader) read(prompt string) (string, error) {
	fmt.Fprint(p.prompt, prompt)

	if p.terminal >= 0 {
		b, err := term.ReadPassword(p.terminal)
		fmt.Fprintln(p.prompt)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := p.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
