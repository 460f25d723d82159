package authority_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jib667/Watchdog/pkg/authority"
)

func TestEmbeddedTable(t *testing.T) {
	auth, err := authority.New()
	require.NoError(t, err)

	name, ok := auth.CommitteeName("HSAG")
	assert.True(t, ok)
	assert.Equal(t, "House Committee on Agriculture", name)

	// Lookup is case and whitespace insensitive
	name, ok = auth.CommitteeName(" hsag ")
	assert.True(t, ok)
	assert.Equal(t, "House Committee on Agriculture", name)

	_, ok = auth.CommitteeName("XXXX")
	assert.False(t, ok)
}

func TestListSorted(t *testing.T) {
	auth, err := authority.New()
	require.NoError(t, err)

	names := auth.List()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1].Code, names[i].Code)
	}
}

func TestWithNames(t *testing.T) {
	auth, err := authority.New(authority.WithNames(map[string]string{
		"HSAG": "Overridden Name",
		"ZZZZ": "Custom Committee",
	}))
	require.NoError(t, err)

	name, ok := auth.CommitteeName("HSAG")
	assert.True(t, ok)
	assert.Equal(t, "Overridden Name", name)

	name, ok = auth.CommitteeName("ZZZZ")
	assert.True(t, ok)
	assert.Equal(t, "Custom Committee", name)
}

func TestWithFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "names.yaml")
	content := "committees:\n  QQQQ: File Committee\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	auth, err := authority.New(authority.WithFile(path))
	require.NoError(t, err)

	name, ok := auth.CommitteeName("QQQQ")
	assert.True(t, ok)
	assert.Equal(t, "File Committee", name)

	// Embedded entries survive the merge
	_, ok = auth.CommitteeName("SSFI")
	assert.True(t, ok)
}

func TestWithFileMissing(t *testing.T) {
	_, err := authority.New(authority.WithFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}
