package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// CommandResult holds what a command wrote and the error it returned.
type CommandResult struct {
	Stdout string
	Err    error
}

// RunCommand executes a command as the root of a test app, capturing its
// output. The command's flags and action are reused as-is.
func RunCommand(t *testing.T, command *cli.Command, args ...string) CommandResult {
	t.Helper()

	return RunCommandWithInput(context.Background(), t, command, "", args...)
}

// RunCommandWithInput executes a command with stdin set to input.
func RunCommandWithInput(ctx context.Context, t *testing.T, command *cli.Command, input string, args ...string) CommandResult {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Reader: strings.NewReader(input),
		Writer: &buf,
	}

	// Prepend app name to args
	fullArgs := append([]string{"test"}, args...)
	err := app.Run(ctx, fullArgs)

	return CommandResult{Stdout: buf.String(), Err: err}
}

// RunSubcommand executes a command nested under a test root so that
// Root() lookups behave as they do in the real application.
func RunSubcommand(t *testing.T, command *cli.Command, w io.Writer, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "test",
		Commands: []*cli.Command{command},
		Writer:   w,
	}

	fullArgs := append([]string{"test", command.Name}, args...)
	return app.Run(context.Background(), fullArgs)
}
