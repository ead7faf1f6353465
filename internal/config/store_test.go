package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rnerrors "git.home.luguber.info/inful/rn/internal/errors"
)

func TestStore_RoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		settings *Settings
	}{
		{"all fields", New("out", "app", "-v")},
		{"empty arguments", New("out/Debug", "bin/app", "")},
		{"absolute paths", New("/tmp/build out", "/usr/local/bin/app", "--flag=value with spaces")},
		{"yaml-looking values", New("true", "123", "key: value # not a comment")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewStore(t.TempDir())
			require.NoError(t, store.Save(tc.settings))

			loaded, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, tc.settings, loaded)
		})
	}
}

func TestStore_Exists(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.False(t, store.Exists())

	require.NoError(t, store.Save(New("out", "app", "")))
	assert.True(t, store.Exists())
	assert.FileExists(t, filepath.Join(store.Root(), FileName))
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, rnerrors.ErrNotInitialized)
}

func TestStore_LoadCorrupt(t *testing.T) {
	cases := map[string]string{
		"not yaml":        "default_dir: [unterminated\n",
		"empty file":      "",
		"unknown key":     "default_dir: out\ndefault_bin: app\nextra: 1\n",
		"missing dir":     "default_bin: app\n",
		"missing bin":     "default_dir: out\n",
		"wrong shape":     "- out\n- app\n",
		"mapping for dir": "default_dir: {a: b}\ndefault_bin: app\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o600))

			_, err := NewStore(root).Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, rnerrors.ErrConfigCorrupt)
		})
	}
}

func TestStore_LoadWithoutArguments(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("default_dir: out\ndefault_bin: app\n"), 0o600))

	settings, err := NewStore(root).Load()
	require.NoError(t, err)
	assert.Equal(t, New("out", "app", ""), settings)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(New("a-very-long-directory-name", "a-very-long-binary-name", "lots of arguments")))
	require.NoError(t, store.Save(New("out", "app", "")))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, New("out", "app", ""), loaded)

	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_SaveFailure(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	err := store.Save(New("out", "app", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, rnerrors.ErrConfigWriteFailed)
}

func TestStore_PrintMatchesSavedFile(t *testing.T) {
	store := NewStore(t.TempDir())
	settings := New("out", "app2", "-v")
	require.NoError(t, store.Save(settings))

	var first, second bytes.Buffer
	require.NoError(t, store.Print(&first, settings))
	require.NoError(t, store.Print(&second, settings))
	assert.Equal(t, first.String(), second.String())

	onDisk, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, string(onDisk), first.String())

	assert.Contains(t, first.String(), "default_dir: out")
	assert.Contains(t, first.String(), "default_bin: app2")
	assert.Contains(t, first.String(), "default_args:")
}

func TestNewStore_DefaultRoot(t *testing.T) {
	assert.Equal(t, FileName, NewStore("").Path())
}

func TestSettings_Apply(t *testing.T) {
	str := func(s string) *string { return &s }

	cases := []struct {
		name    string
		in      Overrides
		want    *Settings
		changed bool
	}{
		{"nothing supplied", Overrides{}, New("out", "app", "-v"), false},
		{"binary only", Overrides{Binary: str("app2")}, New("out", "app2", "-v"), true},
		{"directory only", Overrides{Directory: str("out2")}, New("out2", "app", "-v"), true},
		{"clear arguments", Overrides{Arguments: str("")}, New("out", "app", ""), true},
		{"same value", Overrides{Binary: str("app")}, New("out", "app", "-v"), false},
		{"all", Overrides{Directory: str("d"), Binary: str("b"), Arguments: str("a")}, New("d", "b", "a"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New("out", "app", "-v")
			assert.Equal(t, tc.changed, s.Apply(tc.in))
			assert.Equal(t, tc.want, s)
		})
	}
}
