package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/foundryup-init/internal/app"
	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/version"
)

// fakeFoundryup records that it ran by touching a file in $HOME.
const fakeFoundryup = "#!/bin/sh\ntouch \"$HOME/foundryup-ran\"\n"

func serveInstaller(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fakeFoundryup))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root, err := NewRootCmd(context.Background(), Options{
		Env:     domain.EnvironmentFromMap(env),
		Streams: app.Streams{In: bytes.NewReader(nil), Out: &stdout, Err: &stderr},
	})
	require.NoError(t, err)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestInstallBashEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shells only")
	}
	srv := serveInstaller(t)
	home := t.TempDir()
	env := map[string]string{"HOME": home, "SHELL": "/bin/bash", "PATH": "/usr/bin:/bin"}

	out, _, err := execute(t, env, "--url", srv.URL)
	require.NoError(t, err)

	binDir := filepath.Join(home, ".foundry", "bin")
	info, err := os.Stat(filepath.Join(binDir, "foundryup"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100)

	rc, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Contains(t, string(rc), `export PATH="$PATH:`+binDir+`"`)

	assert.FileExists(t, filepath.Join(home, "foundryup-ran"), "installer is invoked immediately for bash")
	assert.Contains(t, out, "Detected your preferred shell is bash and added foundryup to PATH.")
	assert.Contains(t, out, "Run 'source "+filepath.Join(home, ".bashrc")+"'")
}

func TestInstallFish(t *testing.T) {
	srv := serveInstaller(t)
	home := t.TempDir()
	env := map[string]string{"HOME": home, "SHELL": "/usr/bin/fish", "PATH": "/usr/bin"}

	_, _, err := execute(t, env, "--url", srv.URL)
	require.NoError(t, err)

	cfg, err := os.ReadFile(filepath.Join(home, ".config", "fish", "config.fish"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "fish_add_path -a "+filepath.Join(home, ".foundry", "bin"))
	assert.NoFileExists(t, filepath.Join(home, "foundryup-ran"))
}

func TestInstallUnsupportedShell(t *testing.T) {
	srv := serveInstaller(t)
	home := t.TempDir()
	env := map[string]string{"HOME": home, "SHELL": "/bin/csh"}

	_, _, err := execute(t, env, "--url", srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".foundry", entries[0].Name())
}

func TestInstallNoModifyPath(t *testing.T) {
	srv := serveInstaller(t)
	home := t.TempDir()
	env := map[string]string{"HOME": home, "SHELL": "/bin/bash", "PATH": "/usr/bin:/bin"}

	out, _, err := execute(t, env, "--url", srv.URL, "--no-modify-path", "--no-run")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(home, ".bashrc"))
	assert.NoFileExists(t, filepath.Join(home, "foundryup-ran"))
	assert.Contains(t, out, "Add "+filepath.Join(home, ".foundry", "bin")+" to your PATH")
}

func TestInstallConfigFile(t *testing.T) {
	srv := serveInstaller(t)
	home := t.TempDir()
	cfgPath := filepath.Join(home, "bootstrap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("url: "+srv.URL+"\nrun_installer: false\n"), 0o644))
	env := map[string]string{"HOME": home, "SHELL": "/bin/bash", "FOUNDRYUP_INIT_CONFIG": cfgPath}

	_, _, err := execute(t, env)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, ".foundry", "bin", "foundryup"))
	assert.NoFileExists(t, filepath.Join(home, "foundryup-ran"))
}

func TestInstallMissingConfigFile(t *testing.T) {
	home := t.TempDir()
	env := map[string]string{"HOME": home, "SHELL": "/bin/bash"}

	_, _, err := execute(t, env, "--config", filepath.Join(home, "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestDoctorCommand(t *testing.T) {
	home := t.TempDir()
	env := map[string]string{"HOME": home, "SHELL": "/bin/zsh", "PATH": "/usr/bin"}

	out, _, err := execute(t, env, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] Install root - "+filepath.Join(home, ".foundry"))
	assert.Contains(t, out, "[WARN] Binary")
	assert.Contains(t, out, "[OK] Shell - zsh")
}

func TestDoctorWithoutHome(t *testing.T) {
	out, _, err := execute(t, map[string]string{}, "doctor")
	require.Error(t, err)
	assert.Contains(t, out, "[ERROR] Install root")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, map[string]string{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "foundryup-init version dev")
	assert.Contains(t, out, "Go version:")
	assert.Contains(t, out, "Commit: unknown (-X "+version.Path+".Commit)")
}
