package sfoglia

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMessageBundleLocalizesLabels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "it.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[page_welcome]
other = "Benvenuto"

[page_install]
other = "Installazione"
`), 0644))

	bundle, err := NewMessageBundle(language.English, path)
	require.NoError(t, err)

	loc := NewLocalizer(bundle, "it")
	assert.Equal(t, "Benvenuto", localizedText(loc, "page_welcome", "Welcome"))
	assert.Equal(t, "Installazione", localizedText(loc, "page_install", "Install"))

	// Unknown ids fall back to the literal text.
	assert.Equal(t, "Finish", localizedText(loc, "page_finish", "Finish"))
}

func TestLocalizedTextWithoutLocalizer(t *testing.T) {
	assert.Equal(t, "Welcome", localizedText(nil, "page_welcome", "Welcome"))

	bundle, err := NewMessageBundle(language.English)
	require.NoError(t, err)
	loc := NewLocalizer(bundle, "en")

	// Empty id skips localization entirely.
	assert.Equal(t, "Welcome", localizedText(loc, "", "Welcome"))
}

func TestMessageBundleMissingFile(t *testing.T) {
	_, err := NewMessageBundle(language.English, filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, IsInfrastructureError(err))
}
