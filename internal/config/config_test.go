package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
	"git.home.luguber.info/inful/docnode/internal/htmlnode"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docnode.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
output:
  format: json
inline:
  wrap: div
  link_props:
    target: _blank
    rel: noopener
  image_props:
    loading: lazy
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, FormatJSON, cfg.Output.Format)
	require.Equal(t, "div", cfg.Inline.Wrap)
	require.Equal(t, ` target="_blank" rel="noopener"`, cfg.Inline.LinkProps.Props().ToHTML())
	require.Equal(t, AttrList{{Key: "loading", Value: "lazy"}}, cfg.Inline.ImageProps)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	require.Equal(t, FormatText, cfg.Output.Format)
	require.Equal(t, "p", cfg.Inline.Wrap)
	require.Equal(t, htmlnode.Props{}, cfg.Inline.LinkProps.Props())
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCNODE_TEST_TARGET", "_self")
	cfg, err := Load(writeConfig(t, "inline:\n  link_props:\n    target: ${DOCNODE_TEST_TARGET}\n"))
	require.NoError(t, err)

	v, ok := cfg.Inline.LinkProps.Props().Get("target")
	require.True(t, ok)
	require.Equal(t, "_self", v)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvWrap, "span")

	cfg, err := Load(writeConfig(t, "output:\n  format: text\n"))
	require.NoError(t, err)
	require.Equal(t, FormatJSON, cfg.Output.Format)
	require.Equal(t, "span", cfg.Inline.Wrap)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "output:\n  format: xml\n"))
		require.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})

	t.Run("props not a mapping", func(t *testing.T) {
		_, err := Load(writeConfig(t, "inline:\n  link_props: [a, b]\n"))
		require.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "output: [\n"))
		require.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEnvFiles_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCNODE_WRAP=section\nDOCNODE_FORMAT=json\n"), 0o600))
	t.Setenv(EnvFormat, "text")
	t.Setenv(EnvWrap, "")
	require.NoError(t, os.Unsetenv(EnvWrap))

	cfg, err := LoadOrDefault(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "section", cfg.Inline.Wrap)
	require.Equal(t, FormatText, cfg.Output.Format)
}
