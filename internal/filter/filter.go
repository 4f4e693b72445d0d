// Package filter runs package descriptions through an external text
// converter, pandoc by default.
package filter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/google/shlex"
	"github.com/ralt/toml2index/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultCommand converts Markdown to RTF
const DefaultCommand = "pandoc -f markdown -t rtf"

// Filter turns one text into another
type Filter interface {
	Render(ctx context.Context, input string) (string, error)
}

// Func adapts a plain function to the Filter interface
type Func func(ctx context.Context, input string) (string, error)

// Render calls f
func (f Func) Render(ctx context.Context, input string) (string, error) {
	return f(ctx, input)
}

// Command is a Filter backed by an external process reading the input on
// stdin and writing the result on stdout
type Command struct {
	argv []string
}

// NewCommand parses a shell-like command line into a Command
func NewCommand(cmdline string) (*Command, error) {
	argv, err := shlex.Split(cmdline)
	if err != nil {
		return nil, &models.IndexError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("failed to parse filter command %q: %w", cmdline, err),
		}
	}
	if len(argv) == 0 {
		return nil, &models.IndexError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("filter command is empty"),
		}
	}
	return &Command{argv: argv}, nil
}

// Args returns the parsed argument vector
func (c *Command) Args() []string {
	return append([]string(nil), c.argv...)
}

// Render runs the command to completion. A process that cannot start or
// exits non-zero is an error carrying its stderr.
func (c *Command) Render(ctx context.Context, input string) (string, error) {
	logrus.Debugf("Running filter: %s", shellescape.QuoteCommand(c.argv))

	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", &models.IndexError{
			Type: models.ErrFilter,
			Err:  fmt.Errorf("%s: %w", shellescape.QuoteCommand(c.argv), err),
		}
	}

	if stderr.Len() > 0 {
		logrus.Warnf("Filter %s wrote to stderr: %s", c.argv[0], strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
