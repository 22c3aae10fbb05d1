package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSplitPart(t *testing.T) {
	part, err := GetSplitPart("1653783562951462912?src=hash", "?", 0)
	require.NoError(t, err)
	assert.Equal(t, "1653783562951462912", part)

	_, err = GetSplitPart("a/b", "/", 5)
	assert.Error(t, err)
}

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data"), ExpandUser("~/data"))
	assert.Equal(t, home, ExpandUser("~"))
	assert.Equal(t, "data", ExpandUser("data"))
	assert.Equal(t, "/tmp/data", ExpandUser("/tmp/data"))
}

func TestHasDigit(t *testing.T) {
	assert.True(t, HasDigit("abc1"))
	assert.True(t, HasDigit("100"))
	assert.False(t, HasDigit("abc"))
	assert.False(t, HasDigit(""))
}
