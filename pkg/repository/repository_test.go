package repository_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vqltools/vqlkeeper/pkg/consts"
	"github.com/vqltools/vqlkeeper/pkg/parser"
	. "github.com/vqltools/vqlkeeper/pkg/repository"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

func testCodebase(t *testing.T) *vql.Codebase {
	t.Helper()

	script := vql.KindDatasources.Banner() +
		"CREATE OR REPLACE DATASOURCE JDBC ds_orders\n    DATABASEURI = 'jdbc:postgresql://db/orders';\n\n" +
		vql.KindBaseViews.Banner() +
		"CREATE OR REPLACE TABLE orders I18N us_pst (\n    id:int\n) FROM ds_orders;\n\n" +
		vql.KindViews.Banner() +
		"CREATE OR REPLACE VIEW order_totals AS SELECT id FROM orders;\n"

	objects, err := parser.ParseString(script)
	require.NoError(t, err)

	cb, err := vql.NewCodebase("base", objects)
	require.NoError(t, err)
	return cb
}

func TestWriteLayout(t *testing.T) {
	dir := t.TempDir()
	repo := New(dir)
	require.NoError(t, repo.Write(testCodebase(t)))

	t.Run("object files", func(t *testing.T) {
		for _, path := range []string{
			"DATASOURCES/ds_orders.vql",
			"BASE_VIEWS/orders.vql",
			"VIEWS/order_totals.vql",
		} {
			_, err := os.Stat(filepath.Join(dir, path))
			require.NoError(t, err, "expected %s to exist", path)
		}
	})

	t.Run("part logs", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dir, "VIEWS", consts.PartLogName))
		require.NoError(t, err)
		require.Equal(t, "order_totals.vql\n", string(data))
	})

	t.Run("sum file", func(t *testing.T) {
		f, err := os.Open(filepath.Join(dir, consts.SumFileName))
		require.NoError(t, err)
		defer f.Close()

		sum, err := LoadSumFile(f)
		require.NoError(t, err)
		require.Equal(t, 3, sum.Files())
		require.Contains(t, sum.Entries(), "BASE_VIEWS/orders.vql")
	})

	t.Run("empty chapters get no directory", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(dir, vql.KindWidgets.DirName()))
		require.True(t, os.IsNotExist(err))
	})
}

func TestWriteLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	repo := New(dir)

	original := testCodebase(t)
	require.NoError(t, repo.Write(original))

	loaded, err := repo.Load("base")
	require.NoError(t, err)

	require.Equal(t, original.Identities(), loaded.Identities())
	for _, obj := range original.Objects() {
		got, ok := loaded.Lookup(obj.Identity())
		require.True(t, ok, "missing %s after roundtrip", obj.Identity())
		require.Equal(t, obj.Hash(), got.Hash(), "content drift for %s", obj.Identity())
		require.Equal(t, obj.Dependencies(), got.Dependencies())
	}
}

func TestWriteReplacesPreviousTree(t *testing.T) {
	dir := t.TempDir()
	repo := New(dir)
	require.NoError(t, repo.Write(testCodebase(t)))

	// Second write with a smaller model must remove the old objects.
	smaller, err := vql.NewCodebase("base", []*vql.CodeObject{
		vql.NewCodeObject(vql.NewIdentity(vql.KindViews, "only_one"), "CREATE OR REPLACE VIEW only_one AS SELECT 1;", nil),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Write(smaller))

	loaded, err := repo.Load("base")
	require.NoError(t, err)
	require.Equal(t, []vql.Identity{vql.NewIdentity(vql.KindViews, "only_one")}, loaded.Identities())

	_, err = os.Stat(filepath.Join(dir, "DATASOURCES"))
	require.True(t, os.IsNotExist(err))
}

func TestVerify(t *testing.T) {
	setup := func(t *testing.T) (string, *Repository) {
		t.Helper()
		dir := t.TempDir()
		repo := New(dir)
		require.NoError(t, repo.Write(testCodebase(t)))
		return dir, repo
	}

	t.Run("clean after write", func(t *testing.T) {
		_, repo := setup(t)
		result, err := repo.Verify()
		require.NoError(t, err)
		require.True(t, result.Clean())
	})

	t.Run("detects drift", func(t *testing.T) {
		dir, repo := setup(t)
		path := filepath.Join(dir, "VIEWS", "order_totals.vql")
		require.NoError(t, os.WriteFile(path, []byte("CREATE OR REPLACE VIEW order_totals AS SELECT 2;"), 0o644))

		result, err := repo.Verify()
		require.NoError(t, err)
		require.Equal(t, []string{"VIEWS/order_totals.vql"}, result.Drifted)
		require.False(t, result.Clean())
	})

	t.Run("detects missing files", func(t *testing.T) {
		dir, repo := setup(t)
		require.NoError(t, os.Remove(filepath.Join(dir, "BASE_VIEWS", "orders.vql")))

		result, err := repo.Verify()
		require.NoError(t, err)
		require.Equal(t, []string{"BASE_VIEWS/orders.vql"}, result.Missing)
	})

	t.Run("detects untracked files", func(t *testing.T) {
		dir, repo := setup(t)
		path := filepath.Join(dir, "VIEWS", "rogue.vql")
		require.NoError(t, os.WriteFile(path, []byte("CREATE OR REPLACE VIEW rogue AS SELECT 3;"), 0o644))

		result, err := repo.Verify()
		require.NoError(t, err)
		require.Equal(t, []string{"VIEWS/rogue.vql"}, result.Untracked)
	})

	t.Run("missing sum file is an error", func(t *testing.T) {
		repo := New(t.TempDir())
		_, err := repo.Verify()
		require.Error(t, err)
	})
}

func TestSumFileRoundtrip(t *testing.T) {
	sum := NewSumFile()
	sum.AddFile("BASE_VIEWS/orders.vql", []byte("one"))
	sum.AddFile("VIEWS/order_totals.vql", []byte("two"))

	var buf strings.Builder
	_, err := sum.WriteTo(&buf)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(buf.String(), "h1:"))

	loaded, err := LoadSumFile(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, sum.Entries(), loaded.Entries())
	require.Equal(t, []string{"BASE_VIEWS/orders.vql", "VIEWS/order_totals.vql"}, loaded.Names())
}

func TestSumFileTotalHashIsOrderSensitive(t *testing.T) {
	a := NewSumFile()
	a.AddFile("one.vql", []byte("one"))
	a.AddFile("two.vql", []byte("two"))

	b := NewSumFile()
	b.AddFile("two.vql", []byte("two"))
	b.AddFile("one.vql", []byte("one"))

	var bufA, bufB strings.Builder
	_, err := a.WriteTo(&bufA)
	require.NoError(t, err)
	_, err = b.WriteTo(&bufB)
	require.NoError(t, err)

	require.NotEqual(t, a.TotalHash, b.TotalHash)
}
