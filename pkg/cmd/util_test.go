package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"github.com/vqltools/vqlkeeper/pkg/config"
	"github.com/vqltools/vqlkeeper/pkg/consts"
	"github.com/vqltools/vqlkeeper/pkg/parser"
	"github.com/vqltools/vqlkeeper/pkg/repository"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// testFixture holds a throwaway project directory with a sample export
// file plus the config and repository handles the commands expect.
type testFixture struct {
	Dir    string
	Cfg    *config.Config
	Repo   *repository.Repository
	Export string
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	dir := t.TempDir()
	exports := filepath.Join(dir, consts.DefaultExportsDir)
	require.NoError(t, os.MkdirAll(exports, consts.ModeDir))

	export := filepath.Join(exports, "export.vql")
	require.NoError(t, os.WriteFile(export, []byte(sampleExport()), consts.ModeFile))

	cfg := &config.Config{
		Repo:    filepath.Join(dir, consts.DefaultRepositoryDir),
		Exports: exports,
		Base:    "base",
		Comp:    "compare",
	}

	return &testFixture{
		Dir:    dir,
		Cfg:    cfg,
		Repo:   repository.New(cfg.Repo),
		Export: export,
	}
}

// Split parses the sample export and writes it into the fixture repository.
func (f *testFixture) Split(t *testing.T) {
	t.Helper()

	objects, err := parser.ParseFile(f.Export)
	require.NoError(t, err)

	cb, err := vql.NewCodebase(f.Cfg.Base, objects)
	require.NoError(t, err)
	require.NoError(t, f.Repo.Write(cb))
}

// WriteExport writes script as an additional export file and returns its path.
func (f *testFixture) WriteExport(t *testing.T, name, script string) string {
	t.Helper()

	path := filepath.Join(f.Cfg.Exports, name)
	require.NoError(t, os.WriteFile(path, []byte(script), consts.ModeFile))
	return path
}

// runCommand wraps command in a minimal test application with a captured
// writer and runs it with args.
func runCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Before: command.Before,
		Action: command.Action,
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}

func sampleExport() string {
	var b strings.Builder
	b.WriteString(consts.PropertiesPreamble)

	b.WriteString(vql.KindFolders.Banner())
	b.WriteString("CREATE OR REPLACE FOLDER '/finance/orders' DESCRIPTION '';\n\n")

	b.WriteString(vql.KindDatasources.Banner())
	b.WriteString("CREATE OR REPLACE DATASOURCE JDBC ds_orders\n")
	b.WriteString("    DRIVERCLASSNAME = 'org.postgresql.Driver'\n")
	b.WriteString("    DATABASEURI = 'jdbc:postgresql://db:5432/orders';\n\n")

	b.WriteString(vql.KindBaseViews.Banner())
	b.WriteString("CREATE OR REPLACE TABLE orders I18N us_pst (\n")
	b.WriteString("    id:int,\n")
	b.WriteString("    amount:decimal\n")
	b.WriteString(") FROM ds_orders;\n\n")

	b.WriteString(vql.KindViews.Banner())
	b.WriteString("CREATE OR REPLACE VIEW order_totals FOLDER = '/finance/orders'\n")
	b.WriteString("AS SELECT id, sum(amount) AS total FROM orders GROUP BY id;\n\n")

	return b.String()
}
