package cmd

import (
	"bytes"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/cmd/testutil"
	"github.com/stretchr/testify/require"
)

func TestDialectsCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testutil.RunSubcommand(t, dialectsCmd(), &buf))
	require.Equal(t, "hiveql (default)\nsparksql\n", buf.String())
}
