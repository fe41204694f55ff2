package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessageFromEmbeddedCatalog(t *testing.T) {
	got := GetMessage("wind.assessment.done", "12.97,77.59", "A", 87.2)
	assert.Equal(t, "Profitability assessment for 12.97,77.59: grade A score 87.2", got)
}

func TestGetMessageFormatsErrorsAndStructs(t *testing.T) {
	got := GetMessage("wind.fetch.failed", map[string]int{"lat": 1}, errors.New("timeout"))
	assert.Equal(t, `Fail to fetch current weather for {"lat":1}: timeout`, got)
}

func TestGetMessageUnknownKey(t *testing.T) {
	assert.Equal(t, "Message not found: nope.nothing", GetMessage("nope.nothing"))
}

func TestInitOverlaysCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("custom:\n  hello: \"hello {0}\"\n"), 0o600))

	require.NoError(t, Init(path))

	assert.Equal(t, "hello turbo", GetMessage("custom.hello", "turbo"))
	assert.Equal(t, "Territory X not found", GetMessage("territory.not_found", "X"))
}
