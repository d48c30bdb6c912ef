// Package cmd provides CLI commands for the sqlfmt tool.
//
// # Available Commands
//
//   - fmt: Format SQL files, directories or stdin
//   - dialects: List the built-in dialect presets
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided to
// the fx application through the "commands" value group and assembled by Run.
//
// # Configuration
//
// The fmt command starts from .sqlfmt.yaml in the working directory (when
// present), then applies --config (or SQLFMT_CONFIG) and --dialect on top:
//
//	sqlfmt fmt query.sql                          # stdout
//	sqlfmt fmt -w queries/                        # rewrite in place
//	sqlfmt fmt -l -d sparksql jobs/               # list unformatted files
//	sqlfmt fmt -c sqlfmt.ini query.hql            # INI [sqlfmt] section
//	sqlfmt fmt -c "{'indent': '  '}" < query.sql  # inline dictionary
package cmd
