package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	version, ok := parseVersion("V1__init.sql")
	require.True(t, ok)
	assert.Equal(t, 1, version)

	version, ok = parseVersion("V12__add_feedback.sql")
	require.True(t, ok)
	assert.Equal(t, 12, version)

	_, ok = parseVersion("init.sql")
	assert.False(t, ok)
	_, ok = parseVersion("V__missing_number.sql")
	assert.False(t, ok)
	_, ok = parseVersion("Vx__bad.sql")
	assert.False(t, ok)
}

func TestListMigrationsSortsNumerically(t *testing.T) {
	dir := t.TempDir()
	names := []string{"V10__ten.sql", "V2__two.sql", "V1__one.sql", "notes.txt"}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}

	migs, err := listMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migs, 3)
	assert.Equal(t, "V1__one.sql", migs[0].Name)
	assert.Equal(t, "V2__two.sql", migs[1].Name)
	assert.Equal(t, "V10__ten.sql", migs[2].Name)
}
