package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqcheck/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.yaml":   {Data: []byte("en:\n  validation:\n    null: must not be null\n")},
		"locales/de.yml":    {Data: []byte("de:\n  validation:\n    null: darf nicht null sein\n")},
		"locales/extra.yml": {Data: []byte("en:\n  greeting: hello\n")},
		"locales/skip.txt":  {Data: []byte("ignored")},
		"locales/empty.yml": {Data: []byte{}},
	}

	t.Run("merges all supported files", func(t *testing.T) {
		catalog, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, catalog, 2)
		assert.Contains(t, catalog["en"], "validation")
		assert.Contains(t, catalog["en"], "greeting")
		assert.Contains(t, catalog["de"], "validation")
	})

	t.Run("fails without catalog files", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoCatalogFiles)
	})

	t.Run("fails on missing dir", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("reports parse errors", func(t *testing.T) {
		broken := fstest.MapFS{"en.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), broken, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})

	t.Run("nil arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFSAdapter(nil, fsys, "locales"))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "locales"))
	})
}

func TestFileAndDirectoryAdapters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"en":{"validation":{"blank":"must not be blank"}}}`), 0o600))

	catalog, err := i18n.NewFileAdapter(i18n.NewJSONParser(), file).Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, catalog, "en")

	catalog, err = i18n.NewDirectoryAdapter(i18n.NewJSONParser(), dir).Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, catalog, "en")

	_, err = i18n.NewFileAdapter(i18n.NewJSONParser(), filepath.Join(dir, "missing.json")).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)

	assert.Nil(t, i18n.NewFileAdapter(nil, file))
	assert.Nil(t, i18n.NewFileAdapter(i18n.NewJSONParser(), ""))
	assert.Nil(t, i18n.NewDirectoryAdapter(i18n.NewJSONParser(), ""))
}

func TestParsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("json rejects non-object languages", func(t *testing.T) {
		_, err := i18n.NewJSONParser().Parse(ctx, []byte(`{"en":"nope"}`))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("json rejects malformed input", func(t *testing.T) {
		_, err := i18n.NewJSONParser().Parse(ctx, []byte(`{`))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("yaml rejects scalar languages", func(t *testing.T) {
		_, err := i18n.NewYAMLParser().Parse(ctx, []byte("en: nope\n"))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("yaml keeps unquoted null keys", func(t *testing.T) {
		catalog, err := i18n.NewYAMLParser().Parse(ctx, []byte("en:\n  validation:\n    null: v1 null\n    true: yes\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"null": "v1 null", "true": "yes"}, catalog["en"]["validation"])

		tr, err := i18n.NewTranslator(ctx, &i18n.MapAdapter{Data: catalog})
		require.NoError(t, err)
		assert.True(t, tr.HasTranslation("en", "validation.null"))
		assert.Equal(t, "v1 null", tr.T("en", "validation.null"))
	})

	t.Run("extension support", func(t *testing.T) {
		assert.True(t, i18n.NewYAMLParser().SupportsFileExtension(".YML"))
		assert.True(t, i18n.NewJSONParser().SupportsFileExtension("json"))
		assert.False(t, i18n.NewJSONParser().SupportsFileExtension("yaml"))
		assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("de.yaml"))
		assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("de.JSON"))
		assert.Nil(t, i18n.NewParserForFile("de"))
	})
}
