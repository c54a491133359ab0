package importers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcluder_Match(t *testing.T) {
	excluder, err := NewExcluder([]string{"/tmp/*", "/var/**", "", "/srv/?x"})
	require.NoError(t, err)
	assert.Equal(t, 3, excluder.Len())

	assert.True(t, excluder.Match("/tmp/a"))
	assert.False(t, excluder.Match("/tmp/a/b"), "single star stops at separators")
	assert.True(t, excluder.Match("/var/lib/docker"))
	assert.True(t, excluder.Match("/srv/ax"))
	assert.False(t, excluder.Match("/srv/abx"))
	assert.False(t, excluder.Match("/home"))
}

func TestExcluder_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	excluder, err := NewExcluder([]string{"~"})
	require.NoError(t, err)

	assert.True(t, excluder.Match(home))
	assert.False(t, excluder.Match(filepath.Join(home, "src")))
}

func TestExcluder_InvalidPattern(t *testing.T) {
	_, err := NewExcluder([]string{"/tmp/[a"})
	assert.Error(t, err)
}

func TestExcluder_Nil(t *testing.T) {
	var excluder *Excluder
	assert.False(t, excluder.Match("/anything"))
	assert.Equal(t, 0, excluder.Len())
}
