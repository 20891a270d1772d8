package resolution

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, options ...RegistryOption) (Registry, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	return NewRegistry(append([]RegistryOption{WithConfigPath(path)}, options...)...), path
}

func TestDefaults(t *testing.T) {
	r, _ := newTestRegistry(t)
	assert.Equal(t, DefaultIndex, r.CurrentIndex())
	assert.Equal(t, "1080p FHD", r.CurrentName())
	assert.Equal(t, Preset{Width: 1920, Height: 1080, Label: "1080p FHD"}, r.Current())

	all := r.Presets()
	require.Len(t, all, 11)
	assert.Equal(t, "144p", all[0].Label)
	assert.Equal(t, "4320p 8K", all[10].Label)

	all[0].Label = "mutated"
	assert.Equal(t, "144p", r.Presets()[0].Label)
}

func TestNextAndPreviousWrap(t *testing.T) {
	for start := range NumPresets {
		r, _ := newTestRegistry(t, WithInitialIndex(start))
		for range NumPresets {
			r.Next()
		}
		assert.Equal(t, start, r.CurrentIndex())

		for range NumPresets {
			r.Previous()
		}
		assert.Equal(t, start, r.CurrentIndex())
	}

	r, _ := newTestRegistry(t, WithInitialIndex(NumPresets-1))
	r.Next()
	assert.Equal(t, 0, r.CurrentIndex())
	r.Previous()
	assert.Equal(t, NumPresets-1, r.CurrentIndex())
}

func TestSelect(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.Select(2)
	assert.Equal(t, "360p", r.CurrentName())

	r.Select(-1)
	r.Select(NumPresets)
	assert.Equal(t, 2, r.CurrentIndex())
}

func TestClosestTo(t *testing.T) {
	r, _ := newTestRegistry(t)
	testCases := []struct {
		name          string
		width, height int
		expected      string
	}{
		{name: "exact 720p", width: 1280, height: 720, expected: "720p HD"},
		{name: "exact 8K", width: 7680, height: 4320, expected: "4320p 8K"},
		{name: "tiny", width: 1, height: 1, expected: "144p"},
		{name: "huge", width: 20000, height: 20000, expected: "4320p 8K"},
		{name: "near 1080p", width: 1900, height: 1000, expected: "1080p FHD"},
		{name: "ultrawide 1440", width: 3440, height: 1440, expected: "1620p"},
	}
	all := r.Presets()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, all[r.ClosestTo(tc.width, tc.height)].Label)
		})
	}
}

func TestClosestToTieGoesToLowerIndex(t *testing.T) {
	r, _ := newTestRegistry(t)
	// Halfway between 144p and 240p: both are 133 px away.
	assert.Equal(t, 0, r.ClosestTo(341, 192))
}

func TestPersistRoundTrip(t *testing.T) {
	r, path := newTestRegistry(t)
	r.Select(6)
	r.Persist()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "6\n", string(data))

	fresh := NewRegistry(WithConfigPath(path))
	assert.Equal(t, 6, fresh.CurrentIndex())
	assert.Equal(t, "1440p QHD", fresh.CurrentName())
}

func TestRestoreIgnoresBadContent(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "out of range high", content: "11\n"},
		{name: "negative", content: "-1\n"},
		{name: "not a number", content: "1080p\n"},
		{name: "empty", content: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			r := NewRegistry(WithConfigPath(path), WithInitialIndex(3))
			assert.Equal(t, 3, r.CurrentIndex())
		})
	}
}

func TestRestoreKeepsPriorSelection(t *testing.T) {
	r, path := newTestRegistry(t)
	r.Select(8)
	require.NoError(t, os.WriteFile(path, []byte("99"), 0o644))
	r.Restore()
	assert.Equal(t, 8, r.CurrentIndex())

	require.NoError(t, os.WriteFile(path, []byte("  4  \n7\n"), 0o644))
	r.Restore()
	assert.Equal(t, 4, r.CurrentIndex())
}

func TestPersistUnwritablePathIsSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", ConfigFileName)
	r := NewRegistry(WithConfigPath(path))
	r.Select(1)

	assert.NotPanics(t, r.Persist)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 1, r.CurrentIndex())
}

func TestConfigPath(t *testing.T) {
	r, path := newTestRegistry(t)
	assert.Equal(t, path, r.ConfigPath())

	home := NewRegistry(WithInitialIndex(0)).ConfigPath()
	if home != "" {
		assert.Equal(t, ConfigFileName, filepath.Base(home))
	}
}

func TestPersistIndexWritesGivenIndex(t *testing.T) {
	r, path := newTestRegistry(t)
	r.Select(2)
	r.PersistIndex(7)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7\n", string(data))
	assert.Equal(t, 2, r.CurrentIndex())

	r.PersistIndex(NumPresets)
	r.PersistIndex(-1)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7\n", string(data))
}

func TestDefaultPathUsesHomeDir(t *testing.T) {
	home := t.TempDir()
	r := NewRegistry(WithHomeDir(func() (string, error) { return home, nil }))
	assert.Equal(t, filepath.Join(home, ConfigFileName), r.ConfigPath())

	r.Select(1)
	r.Persist()
	assert.Equal(t, 1, NewRegistry(WithHomeDir(func() (string, error) { return home, nil })).CurrentIndex())
}

func TestMissingHomeDisablesPersistence(t *testing.T) {
	testCases := []struct {
		name    string
		homeDir func() (string, error)
	}{
		{name: "lookup error", homeDir: func() (string, error) { return "", errors.New("no home") }},
		{name: "empty home", homeDir: func() (string, error) { return "", nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			r := NewRegistry(WithHomeDir(tc.homeDir), WithInitialIndex(4))
			assert.Equal(t, "", r.ConfigPath())
			assert.Equal(t, 4, r.CurrentIndex())

			r.Select(8)
			assert.NotPanics(t, r.Persist)
			assert.NotPanics(t, r.Restore)
			assert.Equal(t, 8, r.CurrentIndex())

			_, err := os.Stat(ConfigFileName)
			assert.True(t, os.IsNotExist(err), "nothing written relative to the working directory")
		})
	}
}
