package theme

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	s, err := NewStore(path, logger)
	require.NoError(t, err)
	return s
}

func TestLoadWithoutSavedValue(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "prefs.db"))

	value, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, value, "missing preference means system default")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s := newTestStore(t, path)

	require.NoError(t, s.Save(Dark))
	value, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Dark, value)

	// Saving again replaces, not duplicates.
	require.NoError(t, s.Save(Light))
	value, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, Light, value)
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s := newTestStore(t, path)
	require.NoError(t, s.Save(Dark))

	reopened := newTestStore(t, path)
	value, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, Dark, value)
}

func TestInvalidStoredValueIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s := newTestStore(t, path)

	require.NoError(t, s.Save("sepia"))
	value, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestToggle(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "prefs.db"))

	// No saved value toggles to dark first.
	value, err := s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, value)

	value, err = s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Light, value)

	value, err = s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, value)

	// The last toggle is what persists.
	saved, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Dark, saved)
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.db")
	s := newTestStore(t, path)
	require.NoError(t, s.Save(Light))
}
