package vql_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	. "github.com/vqltools/vqlkeeper/pkg/vql"
)

func TestNewCodeObject(t *testing.T) {
	id := NewIdentity(KindViews, "customer_orders")

	t.Run("filters self references and duplicates", func(t *testing.T) {
		obj := NewCodeObject(id, "CREATE OR REPLACE VIEW customer_orders AS ...;", []Identity{
			NewIdentity(KindBaseViews, "orders"),
			id, // self reference must be dropped
			NewIdentity(KindBaseViews, "orders"),
			NewIdentity(KindBaseViews, "customers"),
		})

		require.Equal(t, []Identity{
			NewIdentity(KindBaseViews, "customers"),
			NewIdentity(KindBaseViews, "orders"),
		}, obj.Dependencies())
	})

	t.Run("dependencies are a defensive copy", func(t *testing.T) {
		obj := NewCodeObject(id, "code", []Identity{NewIdentity(KindBaseViews, "orders")})

		deps := obj.Dependencies()
		deps[0] = NewIdentity(KindBaseViews, "mutated")
		require.Equal(t, []Identity{NewIdentity(KindBaseViews, "orders")}, obj.Dependencies())
	})

	t.Run("empty code is valid", func(t *testing.T) {
		obj := NewCodeObject(id, "", nil)
		require.Empty(t, obj.Code())
		require.NotEmpty(t, obj.Hash())
	})
}

func TestHashCode(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		sameHash bool
	}{
		{
			name:     "identical text",
			a:        "CREATE OR REPLACE VIEW v AS SELECT 1;",
			b:        "CREATE OR REPLACE VIEW v AS SELECT 1;",
			sameHash: true,
		},
		{
			name:     "trailing whitespace is insignificant",
			a:        "CREATE OR REPLACE VIEW v AS SELECT 1;  \n",
			b:        "CREATE OR REPLACE VIEW v AS SELECT 1;",
			sameHash: true,
		},
		{
			name:     "trailing newlines are insignificant",
			a:        "CREATE OR REPLACE VIEW v AS SELECT 1;\n\n\n",
			b:        "CREATE OR REPLACE VIEW v AS SELECT 1;\n",
			sameHash: true,
		},
		{
			name:     "content change is significant",
			a:        "CREATE OR REPLACE VIEW v AS SELECT 1;",
			b:        "CREATE OR REPLACE VIEW v AS SELECT 2;",
			sameHash: false,
		},
		{
			name:     "interior whitespace is significant",
			a:        "SELECT  1",
			b:        "SELECT 1",
			sameHash: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.sameHash, HashCode(tt.a) == HashCode(tt.b))
		})
	}

	t.Run("hash format", func(t *testing.T) {
		require.Regexp(t, `^h1:[A-Za-z0-9+/]+=*$`, HashCode("anything"))
	})
}

func TestCodeObjectEqual(t *testing.T) {
	id := NewIdentity(KindViews, "v1")
	deps := []Identity{NewIdentity(KindBaseViews, "bv1")}

	a := NewCodeObject(id, "code", deps)

	tests := []struct {
		name     string
		other    *CodeObject
		expected bool
	}{
		{name: "nil other", other: nil, expected: false},
		{name: "same fields", other: NewCodeObject(id, "code", deps), expected: true},
		{name: "different code", other: NewCodeObject(id, "other code", deps), expected: false},
		{name: "different identity", other: NewCodeObject(NewIdentity(KindViews, "v2"), "code", deps), expected: false},
		{name: "different deps", other: NewCodeObject(id, "code", nil), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, a.Equal(tt.other))
		})
	}
}
