package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellFor(t *testing.T) {
	t.Parallel()

	unix, err := ShellFor("linux")
	require.NoError(t, err)
	assert.Equal(t, []string{"bash", "-c", "pkg-config --cflags gtk"}, unix.Args("pkg-config --cflags gtk"))

	mac, err := ShellFor("darwin")
	require.NoError(t, err)
	assert.Equal(t, unix, mac)

	win, err := ShellFor("windows")
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd", "/c", "x"}, win.Args("x"))

	_, err = ShellFor("plan9")
	assert.Error(t, err)
}

func TestShellQuote(t *testing.T) {
	t.Parallel()

	unix := Shell{Path: "bash", Flag: "-c"}
	win := Shell{Path: "cmd", Flag: "/c", Windows: true}

	tests := []struct {
		arg  string
		unix string
		win  string
	}{
		{arg: "gtk+-2.0", unix: "gtk+-2.0", win: "gtk+-2.0"},
		{arg: "glib-2.0", unix: "glib-2.0", win: "glib-2.0"},
		{arg: "", unix: "''", win: `""`},
		{arg: "a b", unix: "'a b'", win: `"a b"`},
		{arg: "x;rm -rf /", unix: "'x;rm -rf /'", win: `"x;rm -rf /"`},
		{arg: "it's", unix: `'it'\''s'`, win: `"it's"`},
		{arg: `say "hi"`, unix: `'say "hi"'`, win: `"say ""hi"""`},
		{arg: `C:\msys64\bin\pkg-config.exe`, unix: `'C:\msys64\bin\pkg-config.exe'`, win: `C:\msys64\bin\pkg-config.exe`},
		{arg: `C:\Program Files\pkg-config.exe`, unix: `'C:\Program Files\pkg-config.exe'`, win: `"C:\Program Files\pkg-config.exe"`},
		{arg: "/opt/my tools/pkg-config", unix: "'/opt/my tools/pkg-config'", win: `"/opt/my tools/pkg-config"`},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.unix, unix.Quote(tc.arg), "unix %q", tc.arg)
		assert.Equal(t, tc.win, win.Quote(tc.arg), "windows %q", tc.arg)
	}
}

func TestResolvePkgConfig(t *testing.T) {
	t.Parallel()

	p := &Platform{Shell: Shell{Path: "bash", Flag: "-c"}}

	cmd, err := ResolvePkgConfig(p, "/opt/pc/bin/")
	require.NoError(t, err)
	assert.Equal(t, "/opt/pc/bin/pkg-config", cmd)

	cmd, err = ResolvePkgConfig(p, "")
	assert.Error(t, err)
	assert.Equal(t, "pkg-config", cmd)

	p.PkgConfig = "/usr/bin/pkg-config"
	cmd, err = ResolvePkgConfig(p, "")
	require.NoError(t, err)
	assert.Equal(t, "pkg-config", cmd)

	w := &Platform{Shell: Shell{Path: "cmd", Flag: "/c", Windows: true}}
	cmd, err = ResolvePkgConfig(w, `C:\pkg-config\bin`)
	require.NoError(t, err)
	assert.Equal(t, `C:\pkg-config\bin\pkg-config`, cmd)
}
