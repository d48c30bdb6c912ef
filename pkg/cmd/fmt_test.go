package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/cmd/testutil"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/stretchr/testify/require"
)

const (
	unformattedSQL = "select a, b from t"
	formattedSQL   = "SELECT\n    a,\n    b\nFROM\n    t\n"
)

func TestFmtCommand_Stdin(t *testing.T) {
	res := testutil.RunCommandWithInput(context.Background(), t, fmtCmd(&config.Config{}), unformattedSQL)
	require.NoError(t, res.Err)
	require.Equal(t, formattedSQL, res.Stdout)
}

func TestFmtCommand_StdinRejectsWrite(t *testing.T) {
	res := testutil.RunCommandWithInput(context.Background(), t, fmtCmd(&config.Config{}), unformattedSQL, "-w")
	testutil.RequireError(t, res.Err, "cannot use --write when reading from stdin")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	fixture := testutil.TestDir(t).WithFile("query.sql", unformattedSQL)

	res := testutil.RunCommand(t, fmtCmd(&config.Config{}), fixture.Path("query.sql"))
	require.NoError(t, res.Err)
	require.Equal(t, formattedSQL, res.Stdout)

	// stdout mode leaves the file alone
	testutil.RequireFileUnchanged(t, fixture.Path("query.sql"), unformattedSQL)
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	for _, flag := range []string{"-w", "-i", "--write"} {
		t.Run(flag, func(t *testing.T) {
			fixture := testutil.TestDir(t).WithFile("query.sql", unformattedSQL)

			res := testutil.RunCommand(t, fmtCmd(&config.Config{}), flag, fixture.Path("query.sql"))
			require.NoError(t, res.Err)
			require.Empty(t, res.Stdout)

			testutil.RequireFileExists(t, fixture.Path("query.sql"), testutil.RequireFileEquals(t, formattedSQL))
		})
	}
}

func TestFmtCommand_Directory(t *testing.T) {
	fixture := testutil.TestDir(t).WithFiles(map[string]string{
		"a.sql":        "select 1",
		"nested/b.hql": "select 2",
		"nested/c.txt": "not sql",
		"README.md":    "# queries",
	})

	res := testutil.RunCommand(t, fmtCmd(&config.Config{}), fixture.Dir)
	require.NoError(t, res.Err)
	require.Equal(t, "SELECT\n    1\nSELECT\n    2\n", res.Stdout)
}

func TestFmtCommand_MultiplePathsKeepOrder(t *testing.T) {
	fixture := testutil.TestDir(t)
	var args []string
	var expected strings.Builder

	for _, name := range []string{"z.sql", "m.sql", "a.sql", "q.sql", "b.sql", "k.sql"} {
		fixture.WithFile(name, "select "+strings.TrimSuffix(name, ".sql"))
		args = append(args, fixture.Path(name))
		expected.WriteString("SELECT\n    " + strings.TrimSuffix(name, ".sql") + "\n")
	}

	res := testutil.RunCommand(t, fmtCmd(&config.Config{}), args...)
	require.NoError(t, res.Err)
	require.Equal(t, expected.String(), res.Stdout)
}

func TestFmtCommand_List(t *testing.T) {
	fixture := testutil.TestDir(t).WithFiles(map[string]string{
		"clean.sql": formattedSQL,
		"dirty.sql": unformattedSQL,
	})

	res := testutil.RunCommand(t, fmtCmd(&config.Config{}), "-l", fixture.Dir)
	require.NoError(t, res.Err)
	require.Equal(t, fixture.Path("dirty.sql")+"\n", res.Stdout)

	// listing does not modify files
	testutil.RequireFileUnchanged(t, fixture.Path("dirty.sql"), unformattedSQL)

	// with -w the files are rewritten and still listed
	res = testutil.RunCommand(t, fmtCmd(&config.Config{}), "-l", "-w", fixture.Dir)
	require.NoError(t, res.Err)
	require.Equal(t, fixture.Path("dirty.sql")+"\n", res.Stdout)
	testutil.RequireFileUnchanged(t, fixture.Path("dirty.sql"), formattedSQL)

	res = testutil.RunCommand(t, fmtCmd(&config.Config{}), "-l", fixture.Dir)
	require.NoError(t, res.Err)
	require.Empty(t, res.Stdout)
}

func TestFmtCommand_Dialect(t *testing.T) {
	fixture := testutil.TestDir(t).WithFile("query.sql", "select arr[0] from t")

	res := testutil.RunCommand(t, fmtCmd(&config.Config{}), fixture.Path("query.sql"))
	require.NoError(t, res.Err)
	require.Equal(t, "SELECT\n    arr [ 0 ]\nFROM\n    t\n", res.Stdout)

	res = testutil.RunCommand(t, fmtCmd(&config.Config{}), "-d", "sparksql", fixture.Path("query.sql"))
	require.NoError(t, res.Err)
	require.Equal(t, "SELECT\n    arr[0]\nFROM\n    t\n", res.Stdout)

	res = testutil.RunCommand(t, fmtCmd(&config.Config{}), "--dialect", "mysql", fixture.Path("query.sql"))
	testutil.RequireError(t, res.Err, "unknown dialect")
}

func TestFmtCommand_Config(t *testing.T) {
	expected := "select\n  a,\n  b\nfrom\n  t\n"

	t.Run("inline dictionary", func(t *testing.T) {
		res := testutil.RunCommandWithInput(
			context.Background(), t, fmtCmd(&config.Config{}), unformattedSQL,
			"-c", "{'reservedKeywordUppercase': False, 'indent': '  '}",
		)
		require.NoError(t, res.Err)
		require.Equal(t, expected, res.Stdout)
	})

	t.Run("ini file", func(t *testing.T) {
		fixture := testutil.TestDir(t).WithFile("sqlfmt.ini", "[sqlfmt]\nreservedKeywordUppercase = False\nindent = '  '\n")

		res := testutil.RunCommandWithInput(
			context.Background(), t, fmtCmd(&config.Config{}), unformattedSQL,
			"--config", fixture.Path("sqlfmt.ini"),
		)
		require.NoError(t, res.Err)
		require.Equal(t, expected, res.Stdout)
	})

	t.Run("environment", func(t *testing.T) {
		fixture := testutil.TestDir(t).WithFile("sqlfmt.yaml", "reservedKeywordUppercase: false\nindent: '  '\n")
		t.Setenv(consts.EnvConfig, fixture.Path("sqlfmt.yaml"))

		res := testutil.RunCommandWithInput(context.Background(), t, fmtCmd(&config.Config{}), unformattedSQL)
		require.NoError(t, res.Err)
		require.Equal(t, expected, res.Stdout)
	})

	t.Run("defaults are overridden by flags", func(t *testing.T) {
		upper, indent := false, "\t"
		defaults := &config.Config{ReservedKeywordUppercase: &upper, Indent: &indent}

		res := testutil.RunCommandWithInput(context.Background(), t, fmtCmd(defaults), unformattedSQL, "-c", "{indent: '  '}")
		require.NoError(t, res.Err)
		require.Equal(t, expected, res.Stdout)

		// the provided defaults are not modified
		require.Equal(t, "\t", *defaults.Indent)
	})

	t.Run("invalid config", func(t *testing.T) {
		res := testutil.RunCommandWithInput(context.Background(), t, fmtCmd(&config.Config{}), unformattedSQL, "-c", "{inlineMaxLength: -5}")
		testutil.RequireError(t, res.Err, "inlineMaxLength must not be negative")

		res = testutil.RunCommandWithInput(context.Background(), t, fmtCmd(&config.Config{}), unformattedSQL, "-c", "missing.yaml")
		testutil.RequireError(t, res.Err, "failed to open file")
	})
}

func TestFmtCommand_FailuresDoNotStopTheBatch(t *testing.T) {
	fixture := testutil.TestDir(t).WithFiles(map[string]string{
		"bad.sql":  "select a) from t",
		"good.sql": unformattedSQL,
	})

	res := testutil.RunCommand(t, fmtCmd(&config.Config{}), "-w", fixture.Dir)
	testutil.RequireError(t, res.Err, "failed to format 1 of 2 files")

	testutil.RequireFileUnchanged(t, fixture.Path("bad.sql"), "select a) from t")
	testutil.RequireFileUnchanged(t, fixture.Path("good.sql"), formattedSQL)
}

func TestFmtCommand_PathErrors(t *testing.T) {
	res := testutil.RunCommand(t, fmtCmd(&config.Config{}), "does/not/exist.sql")
	testutil.RequireError(t, res.Err, "failed to access path")

	fixture := testutil.TestDir(t).WithFile("notes.txt", "hello")
	res = testutil.RunCommand(t, fmtCmd(&config.Config{}), fixture.Dir)
	testutil.RequireError(t, res.Err, "no SQL files found in directory")
}

func TestFmtCommand_EmptyFile(t *testing.T) {
	fixture := testutil.TestDir(t).WithFile("empty.sql", "")

	res := testutil.RunCommand(t, fmtCmd(&config.Config{}), "-l", fixture.Path("empty.sql"))
	require.NoError(t, res.Err)
	require.Empty(t, res.Stdout)
}
