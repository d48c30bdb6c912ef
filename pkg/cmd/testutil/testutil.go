package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/stretchr/testify/require"
)

// SQLFixture is an isolated temp directory holding query files for a test.
type SQLFixture struct {
	Dir string
	t   *testing.T
}

// TestDir creates an empty fixture directory that is removed with the test.
func TestDir(t *testing.T) *SQLFixture {
	t.Helper()

	return &SQLFixture{Dir: t.TempDir(), t: t}
}

// WithFile writes content to name (relative to the fixture directory),
// creating parent directories as needed.
func (f *SQLFixture) WithFile(name, content string) *SQLFixture {
	f.t.Helper()

	path := f.Path(name)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(f.t, os.WriteFile(path, []byte(content), consts.ModeFile))

	return f
}

// WithFiles writes every name/content pair.
func (f *SQLFixture) WithFiles(files map[string]string) *SQLFixture {
	f.t.Helper()

	for name, content := range files {
		f.WithFile(name, content)
	}

	return f
}

// Path returns the absolute path of name within the fixture.
func (f *SQLFixture) Path(name string) string {
	return filepath.Join(f.Dir, name)
}

// Read returns the current content of name.
func (f *SQLFixture) Read(name string) string {
	f.t.Helper()

	content, err := os.ReadFile(f.Path(name))
	require.NoError(f.t, err)

	return string(content)
}
