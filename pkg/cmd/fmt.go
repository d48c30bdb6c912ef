package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/utils"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

type (
	fmtOptions struct {
		write bool
		list  bool
	}

	fileResult struct {
		path      string
		formatted string
		changed   bool
		err       error
	}
)

// fmtCmd creates a CLI command for formatting HiveQL and SparkSQL files. It
// works like gofmt: paths are formatted to stdout by default, rewritten in
// place with -w, or listed with -l when their formatting differs.
//
// Path handling:
//   - File paths: Format the specified file directly
//   - Directory paths: Recursively find and format all .sql and .hql files
//   - No paths: Read a query from stdin and write the result to stdout
//
// Files are formatted concurrently. Output is always written in argument
// order, and a file that fails to format is logged and skipped so the rest of
// the batch still completes.
//
// Flags:
//   - -w, -i: Write formatted results back to source files
//   - -l: List files whose formatting differs
//   - -c: Config file (YAML or INI) or inline dictionary, also read from SQLFMT_CONFIG
//   - -d: Dialect preset (hiveql or sparksql)
//
// Examples:
//
//	# Format a single file to stdout
//	sqlfmt fmt query.sql
//
//	# Format all queries in a directory tree in-place
//	sqlfmt fmt -w queries/
//
//	# Check which files need formatting using SparkSQL rules
//	sqlfmt fmt -l -d sparksql jobs/
//
//	# Format stdin with an inline config
//	echo "select a from t" | sqlfmt fmt -c "{'reservedKeywordUppercase': False}"
//
// The defaults come from .sqlfmt.yaml in the working directory when it
// exists; --config and --dialect override them.
func fmtCmd(defaults *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w", "i"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file or inline dictionary",
				Sources: cli.EnvVars(consts.EnvConfig),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "dialect",
				Aliases: []string{"d"},
				Usage:   fmt.Sprintf("SQL dialect (%s)", strings.Join(format.Dialects(), ", ")),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(defaults, cmd.String("config"), cmd.String("dialect"))
			if err != nil {
				return err
			}

			formatter, err := format.New(cfg)
			if err != nil {
				return err
			}

			opts := fmtOptions{write: cmd.Bool("write"), list: cmd.Bool("list")}

			if cmd.Args().Len() == 0 {
				if opts.write {
					return errors.New("cannot use --write when reading from stdin")
				}

				return formatStdin(formatter, cmd.Root().Reader, cmd.Root().Writer)
			}

			paths, err := collectFiles(cmd.Args().Slice())
			if err != nil {
				return err
			}

			return formatFiles(ctx, formatter, paths, opts, cmd.Root().Writer)
		},
	}
}

// resolveConfig layers the --config value and then --dialect over the
// defaults and resolves the result against the selected preset.
func resolveConfig(defaults *config.Config, configValue, dialect string) (format.Config, error) {
	cfg := defaults.Merge(nil)

	if configValue != "" {
		override, err := config.Parse(configValue)
		if err != nil {
			return format.Config{}, err
		}

		cfg = cfg.Merge(override)
	}

	if dialect != "" {
		cfg = cfg.Merge(&config.Config{Dialect: utils.Ptr(dialect)})
	}

	slog.Debug("Resolved formatter config", "config", cfg)
	return cfg.Resolve()
}

func formatStdin(formatter *format.Formatter, r io.Reader, w io.Writer) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	formatted, err := formatter.FormatString(string(content))
	if err != nil {
		return errors.Wrap(err, "failed to format stdin")
	}

	if _, err := fmt.Fprint(w, withNewline(formatted)); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}

// collectFiles expands directories into the SQL files they contain,
// recursively and in lexical order. Plain files are kept as given.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && slices.Contains(consts.SQLExtensions, strings.ToLower(filepath.Ext(d.Name()))) {
				found = append(found, p)
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
		}

		if len(found) == 0 {
			return nil, errors.Errorf("no SQL files found in directory: %s", path)
		}

		files = append(files, found...)
	}

	return files, nil
}

// formatFiles formats every file concurrently and then reports the results in
// the order the files were given.
func formatFiles(ctx context.Context, formatter *format.Formatter, paths []string, opts fmtOptions, w io.Writer) error {
	results := make([]fileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = formatFile(formatter, path, opts.write)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.err != nil {
			slog.Error("Failed to format file", "path", res.path, "err", res.err)
			failed++
			continue
		}

		switch {
		case opts.list:
			if res.changed {
				if _, err := fmt.Fprintln(w, res.path); err != nil {
					return errors.Wrap(err, "failed to write output")
				}
			}
		case !opts.write:
			if _, err := fmt.Fprint(w, res.formatted); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}
	}

	if failed > 0 {
		return errors.Errorf("failed to format %d of %d files", failed, len(paths))
	}

	return nil
}

// formatFile formats a single file and, when writeBack is set, rewrites it if
// the formatting changed.
func formatFile(formatter *format.Formatter, path string, writeBack bool) fileResult {
	res := fileResult{path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.err = errors.Wrapf(err, "failed to read file: %s", path)
		return res
	}

	formatted, err := formatter.FormatString(string(content))
	if err != nil {
		res.err = errors.Wrapf(err, "failed to format SQL in file: %s", path)
		return res
	}

	res.formatted = withNewline(formatted)
	res.changed = res.formatted != string(content)

	if writeBack && res.changed {
		if err := os.WriteFile(path, []byte(res.formatted), consts.ModeFile); err != nil {
			res.err = errors.Wrapf(err, "failed to write formatted content to file: %s", path)
			return res
		}

		slog.Info("Formatted file", "path", path)
	}

	return res
}

// withNewline terminates non-empty output with a single newline.
func withNewline(s string) string {
	if s == "" {
		return s
	}

	return s + "\n"
}
