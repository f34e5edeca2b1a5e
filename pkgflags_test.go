package pkgflags

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arc-language/pkgflags/pkg/platform"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakePkgConfig = `#!/bin/sh
case "$1 $2" in
"--list-all ") printf 'png  libpng - PNG reference library\nzlib  zlib - zlib compression library\n' ;;
"--exists zlib") ;;
"--cflags zlib") printf '%s\n' '-I/opt/zlib/include -DZLIB_CONST' ;;
"--libs-only-L zlib") printf '%s\n' '-L/opt/zlib/lib' ;;
"--libs-only-l zlib") printf '%s\n' '-lz' ;;
*) echo "Package $2 was not found" >&2; exit 1 ;;
esac
`

func newTestManager(t *testing.T, mutate func(*Config)) (*Manager, afero.Fs) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake pkg-config is a shell script")
	}
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg-config"), []byte(fakePkgConfig), 0o755))

	cfg := DefaultConfig()
	cfg.PkgConfigDir = dir
	cfg.Project = "/work/pkgflags.toml"
	if mutate != nil {
		mutate(cfg)
	}

	fs := afero.NewMemMapFs()
	m, err := NewManager(cfg, &Options{
		Fs:       fs,
		Environ:  os.Environ(),
		Platform: &platform.Platform{OS: runtime.GOOS, Arch: runtime.GOARCH, Shell: platform.Shell{Path: "bash", Flag: "-c"}},
	})
	require.NoError(t, err)
	return m, fs
}

func TestManager(t *testing.T) {
	t.Parallel()

	m, fs := newTestManager(t, nil)
	ctx := context.Background()

	_, err := m.Active()
	require.Error(t, err, "no project yet")

	p, err := m.Init("gcc", "ld")
	require.NoError(t, err)
	assert.Equal(t, []string{"Debug", "Release"}, p.Names())

	res, err := m.Check(ctx, "zlib")
	require.NoError(t, err)
	assert.True(t, res.Reindex)
	assert.Empty(t, res.Warnings)

	slots, err := m.Slots()
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/zlib/include"}, slots[IncludePath])
	assert.Equal(t, []string{"/opt/zlib/lib"}, slots[LibraryPath])
	assert.Equal(t, []string{"z"}, slots[LibraryName])
	assert.Equal(t, []string{"-DZLIB_CONST"}, slots[OtherFlag])

	owners, _, err := m.Why(ctx, "z", LibraryName)
	require.NoError(t, err)
	assert.Equal(t, []string{"zlib"}, owners)

	resolved, _, err := m.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, slots, resolved)

	cfg, err := m.Configuration()
	require.NoError(t, err)
	assert.True(t, cfg.ReindexPending())
	require.NoError(t, m.MarkReindexed())
	assert.False(t, cfg.ReindexPending())

	raw, err := afero.ReadFile(fs, "/work/pkgflags.toml")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `zlib = "true"`)

	res, err = m.Reset(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Active)
	slots, err = m.Slots()
	require.NoError(t, err)
	for _, values := range slots {
		assert.Empty(t, values)
	}
}

func TestManagerInfo(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, nil)
	ctx := context.Background()

	flags, err := m.Info(ctx, "zlib")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, flags.Libraries)

	_, err = m.Info(ctx, "nosuchpkg")
	assert.ErrorIs(t, err, ErrPackageNotFound)

	pkgs, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Package{
		{Name: "png", Description: "libpng - PNG reference library"},
		{Name: "zlib", Description: "zlib - zlib compression library"},
	}, pkgs)
}

func TestManagerCheckPaths(t *testing.T) {
	t.Parallel()

	m, fs := newTestManager(t, func(cfg *Config) {
		cfg.CheckPaths = true
	})
	require.NoError(t, fs.MkdirAll("/opt/zlib/include", 0o755))

	_, err := m.Init("gcc", "ld", "Debug")
	require.NoError(t, err)

	res, err := m.Check(context.Background(), "zlib")
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 1)

	slots, err := m.Slots()
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/zlib/include"}, slots[IncludePath])
	assert.Empty(t, slots[LibraryPath])
}

func TestManagerPersistListing(t *testing.T) {
	t.Parallel()

	m, fs := newTestManager(t, func(cfg *Config) {
		cfg.PersistListing = true
	})
	_, err := m.Init("gcc", "ld", "Debug")
	require.NoError(t, err)

	_, err = m.Check(context.Background(), "zlib")
	require.NoError(t, err)

	cfg, err := m.Configuration()
	require.NoError(t, err)
	v, ok := cfg.Attribute("png")
	require.True(t, ok)
	assert.Equal(t, "false", v)
	v, _ = cfg.Attribute("zlib")
	assert.Equal(t, "true", v)

	raw, err := afero.ReadFile(fs, "/work/pkgflags.toml")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `png = "false"`)
}

func TestManagerUse(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, nil)
	_, err := m.Init("gcc", "ld")
	require.NoError(t, err)

	require.NoError(t, m.Use("Release"))
	cfg, err := m.Configuration()
	require.NoError(t, err)
	assert.Equal(t, "Release", cfg.Name())

	assert.ErrorIs(t, m.Use("Nope"), ErrUnknownConfiguration)
}
