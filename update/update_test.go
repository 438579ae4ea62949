package update

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/webconf/manifest"
	"github.com/ardnew/webconf/pkg"
)

const webConfig = `<?xml version="1.0" encoding="utf-8"?>
<configuration>
  <appSettings>
    <add key="Host" value="localhost"/>
    <add key="Mode" value="debug"/>
  </appSettings>
  <connectionStrings>
    <add name="Host" connectionString="Server=db01" providerName="System.Data.SqlClient"/>
  </connectionStrings>
</configuration>
`

var webKeys = manifest.KeyConfigMap{
	"dbHost":  {Key: "Host", Type: manifest.ConnectionString},
	"appHost": {Key: "Host", Type: manifest.AppSetting},
	"mode":    {Key: "Mode", Type: manifest.AppSetting},
	"odd":     {Key: "Mode", Type: "registry"},
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))

	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values manifest.Values
		want   string
	}{
		{
			name:   "connection_string_only",
			values: manifest.ParseAssignments("dbHost=Server=newhost"),
			want: strings.Replace(webConfig,
				`connectionString="Server=db01"`,
				`connectionString="Server=newhost"`, 1),
		},
		{
			name:   "app_setting_and_unknown_key",
			values: manifest.ParseAssignments("nope=1", "mode=release"),
			want:   strings.Replace(webConfig, `value="debug"`, `value="release"`, 1),
		},
		{
			name:   "unknown_type_passes_through",
			values: manifest.ParseAssignments("odd=x"),
			want:   webConfig,
		},
		{
			name:   "later_key_wins_on_same_attribute",
			values: manifest.ParseAssignments("mode=a", "odd=b", "appHost=h"),
			want: strings.NewReplacer(
				`value="debug"`, `value="a"`,
				`value="localhost"`, `value="h"`,
			).Replace(webConfig),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(context.Background(), webConfig, webKeys, tt.values)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	web := writeFile(t, dir, "Web.config", webConfig)
	other := writeFile(t, dir, "App.config", webConfig)

	var out bytes.Buffer

	files := []manifest.File{
		{Path: web, Config: webKeys},
		{Path: other, Config: manifest.KeyConfigMap{}},
	}

	err := Updater{Out: &out}.Run(context.Background(), files,
		manifest.ParseAssignments("dbHost=newhost"))
	require.NoError(t, err)

	got := readFile(t, web)
	assert.Contains(t, got, `connectionString="newhost"`)

	appSettings := func(s string) string {
		return s[strings.Index(s, "<appSettings>"):strings.Index(s, "</appSettings>")]
	}
	assert.Equal(t, appSettings(webConfig), appSettings(got))

	assert.Equal(t, webConfig, readFile(t, other))
	assert.Equal(t, "updated "+web+"\nupdated "+other+"\n", out.String())

	info, err := os.Stat(web)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	web := writeFile(t, dir, "Web.config", webConfig)

	var out bytes.Buffer

	err := Updater{Out: &out, DryRun: true}.Run(context.Background(),
		[]manifest.File{{Path: web, Config: webKeys}},
		manifest.ParseAssignments("mode=release"))
	require.NoError(t, err)

	assert.Equal(t, webConfig, readFile(t, web))
	assert.Equal(t, "would update "+web+"\n", out.String())
}

func TestRunMissingFileAborts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.config", webConfig)
	last := writeFile(t, dir, "last.config", webConfig)

	var out bytes.Buffer

	files := []manifest.File{
		{Path: first, Config: webKeys},
		{Path: filepath.Join(dir, "missing.config"), Config: webKeys},
		{Path: last, Config: webKeys},
	}

	err := Updater{Out: &out}.Run(context.Background(), files,
		manifest.ParseAssignments("mode=release"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrReadFile)
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Contains(t, readFile(t, first), `value="release"`, "no rollback")
	assert.Equal(t, webConfig, readFile(t, last))
	assert.Equal(t, "updated "+first+"\n", out.String())
}

func TestExpand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "site/a/Web.config", webConfig)
	b := writeFile(t, dir, "site/b/Web.config", webConfig)
	writeFile(t, dir, "site/b/App.config", webConfig)

	got, err := Expand(filepath.Join(dir, "site", "**", "Web.config"))
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got)

	literal := filepath.Join(dir, "does-not-exist.config")
	got, err = Expand(literal)
	require.NoError(t, err)
	assert.Equal(t, []string{literal}, got)

	_, err = Expand(filepath.Join(dir, "*.none"))
	assert.ErrorIs(t, err, pkg.ErrNoMatch)

	_, err = Expand(filepath.Join(dir, "[a"))
	assert.ErrorIs(t, err, pkg.ErrInvalidPattern)
}

func TestExpandLiteralWithMetacharacters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bracketed := writeFile(t, dir, "site[1]/Web.config", webConfig)
	braced := writeFile(t, dir, "{app}/Web.config", webConfig)

	for _, path := range []string{bracketed, braced} {
		got, err := Expand(path)
		require.NoError(t, err)
		assert.Equal(t, []string{path}, got)
	}

	var out bytes.Buffer

	err := Updater{Out: &out}.Run(context.Background(),
		[]manifest.File{{Path: bracketed, Config: webKeys}},
		manifest.ParseAssignments("mode=release"))
	require.NoError(t, err)

	assert.Contains(t, readFile(t, bracketed), `value="release"`)
	assert.Equal(t, "updated "+bracketed+"\n", out.String())
}

func TestRunGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a/Web.config", webConfig)
	b := writeFile(t, dir, "b/Web.config", webConfig)

	var out bytes.Buffer

	err := Updater{Out: &out}.Run(context.Background(),
		[]manifest.File{{Path: filepath.Join(dir, "*", "Web.config"), Config: webKeys}},
		manifest.ParseAssignments("mode=release"))
	require.NoError(t, err)

	for _, path := range []string{a, b} {
		assert.Contains(t, readFile(t, path), `value="release"`)
	}

	assert.Equal(t, "updated "+a+"\nupdated "+b+"\n", out.String())
}
