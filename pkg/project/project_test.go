package project

import (
	"context"
	"strings"
	"testing"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/pkgconfig"
	"github.com/arc-language/pkgflags/pkg/reconcile"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{"gtk+-2.0", "gtk%2B-2.0"},
		{"glib-2.0", "glib-2.0"},
		{"a b", "a%20b"},
		{"100%", "100%25"},
		{"x_y.z", "x_y.z"},
		{"", ""},
		{"ü", "%C3%BC"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.key, EncodeKey(tc.name), tc.name)
		name, err := DecodeKey(tc.key)
		require.NoError(t, err)
		assert.Equal(t, tc.name, name)
	}

	// distinct names never share a key
	assert.NotEqual(t, EncodeKey("a+b"), EncodeKey("a%2Bb"))

	for _, bad := range []string{"%", "%2", "%zz", "%2b", "a+b"} {
		_, err := DecodeKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(afero.NewMemMapFs(), "/work/pkgflags.toml")
	assert.ErrorContains(t, err, "run init first")
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	p := New(fs, "/work/pkgflags.toml")
	debug, err := p.AddConfiguration("Debug", "gcc", "ld")
	require.NoError(t, err)
	_, err = p.AddConfiguration("Custom", "", "")
	require.NoError(t, err)

	require.NoError(t, debug.SetOptions(core.IncludePath, []string{"/usr/include/gtk-2.0"}))
	require.NoError(t, debug.SetOptions(core.OtherFlag, []string{"-pthread", "-DFOO"}))
	require.NoError(t, debug.SetAttribute("gtk+-2.0", reconcile.Checked))
	require.NoError(t, debug.SaveBuildInfo())

	raw, err := afero.ReadFile(fs, "/work/pkgflags.toml")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "gtk%2B-2.0")
	assert.Contains(t, string(raw), `other_flags = "-pthread -DFOO"`)

	loaded, err := Load(fs, "/work/pkgflags.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"Custom", "Debug"}, loaded.Names())
	assert.Equal(t, "Debug", loaded.Active())

	cfg, err := loaded.Configuration("")
	require.NoError(t, err)
	assert.Equal(t, "Debug", cfg.Name())
	assert.True(t, cfg.HasTools())
	assert.Equal(t, "gcc", cfg.Compiler())
	assert.Equal(t, 1, cfg.BuildInfoSaves())

	includes, err := cfg.Options(core.IncludePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/include/gtk-2.0"}, includes)
	others, err := cfg.Options(core.OtherFlag)
	require.NoError(t, err)
	assert.Equal(t, []string{"-pthread", "-DFOO"}, others)

	v, ok := cfg.Attribute("gtk+-2.0")
	assert.True(t, ok)
	assert.Equal(t, reconcile.Checked, v)
	assert.Equal(t, []string{"gtk+-2.0"}, cfg.Names())

	custom, err := loaded.Configuration("Custom")
	require.NoError(t, err)
	assert.False(t, custom.HasTools())
}

func TestUnknownConfiguration(t *testing.T) {
	t.Parallel()

	p := New(afero.NewMemMapFs(), "pkgflags.toml")
	_, err := p.Configuration("Release")
	assert.ErrorIs(t, err, core.ErrUnknownConfiguration)
	assert.ErrorIs(t, p.SetActive("Release"), core.ErrUnknownConfiguration)

	_, err = p.AddConfiguration("", "gcc", "ld")
	assert.Error(t, err)
}

func TestSetActive(t *testing.T) {
	t.Parallel()

	p := New(afero.NewMemMapFs(), "pkgflags.toml")
	_, err := p.AddConfiguration("Debug", "gcc", "ld")
	require.NoError(t, err)
	_, err = p.AddConfiguration("Release", "gcc", "ld")
	require.NoError(t, err)
	assert.Equal(t, "Debug", p.Active())

	require.NoError(t, p.SetActive("Release"))
	cfg, err := p.Configuration("")
	require.NoError(t, err)
	assert.Equal(t, "Release", cfg.Name())
}

func TestSaveFailure(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	p := New(afero.NewReadOnlyFs(base), "/work/pkgflags.toml")
	cfg, err := p.AddConfiguration("Debug", "gcc", "ld")
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.SaveBuildInfo(), core.ErrStorageWrite)
	assert.ErrorIs(t, cfg.RequestReindex(), core.ErrStorageWrite)
	assert.ErrorIs(t, cfg.SetAttribute("", "true"), core.ErrStorageWrite)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.toml", []byte("[configurations\n"), 0o644))
	_, err := Load(fs, "bad.toml")
	assert.ErrorContains(t, err, "failed to parse")
}

type tableRunner map[string]string

func (r tableRunner) Query(_ context.Context, mode, pkg string) (string, error) {
	return r[mode+" "+pkg], nil
}

func (r tableRunner) List(context.Context) ([]core.Package, error) {
	return nil, nil
}

func TestReconcileIntoProject(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	p := New(fs, "pkgflags.toml")
	_, err := p.AddConfiguration("Debug", "gcc", "ld")
	require.NoError(t, err)
	require.NoError(t, p.Save())

	loaded, err := Load(fs, "pkgflags.toml")
	require.NoError(t, err)
	cfg, err := loaded.Configuration("Debug")
	require.NoError(t, err)

	runner := tableRunner{
		pkgconfig.ModeCflags + " gtk+-2.0":   "-pthread -I/usr/include/gtk-2.0 ",
		pkgconfig.ModeLibPaths + " gtk+-2.0": "",
		pkgconfig.ModeLibNames + " gtk+-2.0": "-lgtk-x11-2.0 ",
	}
	s := reconcile.NewSession(reconcile.New(runner, nil), cfg)
	res, err := s.Handle(context.Background(), reconcile.PackageToggled{Name: "gtk+-2.0", Checked: true})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.True(t, res.Reindex)

	reread, err := Load(fs, "pkgflags.toml")
	require.NoError(t, err)
	cfg, err = reread.Configuration("Debug")
	require.NoError(t, err)

	assert.True(t, cfg.ReindexPending())
	assert.Equal(t, []string{"gtk+-2.0"}, reconcile.LoadActive(cfg).Sorted())
	libs, err := cfg.Options(core.LibraryName)
	require.NoError(t, err)
	assert.Equal(t, []string{"gtk-x11-2.0"}, libs)

	raw, err := afero.ReadFile(fs, "pkgflags.toml")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"gtk%2B-2.0" = "true"`), string(raw))
}
