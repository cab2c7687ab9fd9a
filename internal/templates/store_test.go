package templates

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureStore(t *testing.T) *Store {
	t.Helper()

	fsys := fstest.MapFS{
		"templates/summary.md": {Data: []byte("# Summary\n\nbody\n")},
		"templates/header.csv": {Data: []byte(`"a","b"` + "\n")},
		"templates/broken.md":  {Data: []byte{0xff, 0xfe, 0xfd}},
	}

	store, err := NewStore(fsys,
		Descriptor{Name: "alpha", Source: Inline("hello")},
		Descriptor{Name: "summary", Source: File("templates/summary.md")},
		Descriptor{Name: "header", Source: File("templates/header.csv")},
		Descriptor{Name: "broken", Source: File("templates/broken.md")},
		Descriptor{Name: "missing", Source: File("templates/missing.md")},
	)
	require.NoError(t, err)
	return store
}

func TestResolveRegisteredTemplates(t *testing.T) {
	store := newFixtureStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		want string
	}{
		{"alpha", "hello"},
		{"summary", "# Summary\n\nbody\n"},
		{"header", `"a","b"` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.Resolve(ctx, tt.name))

			got, err := store.Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnknownListsValidNames(t *testing.T) {
	store, err := NewStore(nil, Descriptor{Name: "alpha", Source: Inline("hello")})
	require.NoError(t, err)

	got := store.Resolve(context.Background(), "beta")

	assert.Contains(t, got, `"beta" was not found`)
	assert.Contains(t, got, "- alpha")

	_, err = store.Lookup("beta")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnreadable(err))
}

func TestResolveIsCaseSensitive(t *testing.T) {
	store, err := NewStore(nil, Descriptor{Name: "alpha", Source: Inline("hello")})
	require.NoError(t, err)

	_, err = store.Lookup("Alpha")
	assert.True(t, IsNotFound(err))
}

func TestResolveEmptyName(t *testing.T) {
	store := newFixtureStore(t)

	got := store.Resolve(context.Background(), "")

	assert.Contains(t, got, "No template name was given")
	for _, name := range store.Names() {
		assert.Contains(t, got, "- "+name)
	}
}

func TestResolveUnreadableTemplates(t *testing.T) {
	store := newFixtureStore(t)

	for _, name := range []string{"broken", "missing"} {
		t.Run(name, func(t *testing.T) {
			got := store.Resolve(context.Background(), name)

			assert.Contains(t, got, "could not be read")
			assert.Contains(t, got, "- alpha")
			assert.NotContains(t, got, "templates/")

			_, err := store.Lookup(name)
			assert.True(t, IsUnreadable(err))
		})
	}
}

func TestResolveFileDeletedAfterRegistration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evaluation_log.md")
	require.NoError(t, os.WriteFile(path, []byte("# Evaluation Log\n"), 0o600))

	store, err := NewStore(os.DirFS(dir), Descriptor{Name: "evaluation_log", Source: File("evaluation_log.md")})
	require.NoError(t, err)
	require.Equal(t, "# Evaluation Log\n", store.Resolve(context.Background(), "evaluation_log"))

	require.NoError(t, os.Remove(path))

	got := store.Resolve(context.Background(), "evaluation_log")
	assert.Contains(t, got, `"evaluation_log" is registered but could not be read`)
	assert.NotContains(t, got, dir)
}

func TestResolveRereadsFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.md")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	store, err := NewStore(os.DirFS(dir), Descriptor{Name: "summary", Source: File("summary.md")})
	require.NoError(t, err)
	require.Equal(t, "v1", store.Resolve(context.Background(), "summary"))

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	assert.Equal(t, "v2", store.Resolve(context.Background(), "summary"))
}

func TestResolveIsIdempotent(t *testing.T) {
	store := newFixtureStore(t)
	ctx := context.Background()

	for _, name := range []string{"alpha", "summary", "nope", "missing"} {
		assert.Equal(t, store.Resolve(ctx, name), store.Resolve(ctx, name), name)
	}
}

func TestNewStoreRejectsMisconfiguration(t *testing.T) {
	fsys := fstest.MapFS{"a.md": {Data: []byte("a")}}

	tests := []struct {
		name        string
		fsys        fstest.MapFS
		descriptors []Descriptor
	}{
		{
			name:        "empty name",
			fsys:        fsys,
			descriptors: []Descriptor{{Name: " ", Source: Inline("x")}},
		},
		{
			name: "duplicate name",
			fsys: fsys,
			descriptors: []Descriptor{
				{Name: "a", Source: Inline("x")},
				{Name: "a", Source: File("a.md")},
			},
		},
		{
			name:        "empty inline",
			fsys:        fsys,
			descriptors: []Descriptor{{Name: "a", Source: Inline("")}},
		},
		{
			name:        "file without file system",
			descriptors: []Descriptor{{Name: "a", Source: File("a.md")}},
		},
		{
			name:        "escaping path",
			fsys:        fsys,
			descriptors: []Descriptor{{Name: "a", Source: File("../a.md")}},
		},
		{
			name:        "missing source",
			fsys:        fsys,
			descriptors: []Descriptor{{Name: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var store *Store
			var err error
			if tt.fsys == nil {
				store, err = NewStore(nil, tt.descriptors...)
			} else {
				store, err = NewStore(tt.fsys, tt.descriptors...)
			}

			require.Error(t, err)
			assert.Nil(t, store)

			var tErr *Error
			require.ErrorAs(t, err, &tErr)
			assert.Equal(t, ErrorTypeMisconfigured, tErr.Type)
		})
	}
}

func TestNamesKeepRegistrationOrder(t *testing.T) {
	store := newFixtureStore(t)

	assert.Equal(t, []string{"alpha", "summary", "header", "broken", "missing"}, store.Names())
	assert.Len(t, store.Descriptors(), 5)
}
