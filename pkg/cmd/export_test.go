package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vqltools/vqlkeeper/pkg/consts"
	"github.com/vqltools/vqlkeeper/pkg/parser"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

func TestExportCommand_RequiresConfig(t *testing.T) {
	_, err := runCommand(t, exportCmd(nil, nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "vqlkeeper.yaml not found")
}

func TestExportCommand_WritesScript(t *testing.T) {
	fixture := newFixture(t)
	fixture.Split(t)

	out, err := runCommand(t, exportCmd(fixture.Cfg, fixture.Repo))
	require.NoError(t, err)
	require.True(t, len(out) > 0)
	require.Contains(t, out, consts.PropertiesPreamble)
	require.Contains(t, out, "CREATE OR REPLACE VIEW order_totals")

	// The reassembled script parses back to the same objects.
	objects, err := parser.ParseString(out)
	require.NoError(t, err)

	cb, err := vql.NewCodebase("roundtrip", objects)
	require.NoError(t, err)

	original, err := fixture.Repo.Load("base")
	require.NoError(t, err)
	require.Equal(t, original.Identities(), cb.Identities())
}

func TestExportCommand_WritesFile(t *testing.T) {
	fixture := newFixture(t)
	fixture.Split(t)

	target := filepath.Join(fixture.Dir, "combined.vql")
	out, err := runCommand(t, exportCmd(fixture.Cfg, fixture.Repo), "--out", target)
	require.NoError(t, err)
	require.Empty(t, out, "script should go to the file, not stdout")

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(content), consts.PropertiesPreamble)
}

func TestExportCommand_EmptyRepository(t *testing.T) {
	fixture := newFixture(t)

	_, err := runCommand(t, exportCmd(fixture.Cfg, fixture.Repo))
	require.Error(t, err, "loading a repository that was never split should fail")
}
