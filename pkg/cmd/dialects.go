package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/urfave/cli/v3"
)

// dialectsCmd lists the built-in dialect presets accepted by fmt --dialect.
//
// Example:
//
//	$ sqlfmt dialects
//	hiveql (default)
//	sparksql
func dialectsCmd() *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the built-in SQL dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range format.Dialects() {
				line := name
				if name == format.DialectHiveQL {
					line += " (default)"
				}

				if _, err := fmt.Fprintln(cmd.Root().Writer, line); err != nil {
					return errors.Wrap(err, "failed to write output")
				}
			}

			return nil
		},
	}
}
