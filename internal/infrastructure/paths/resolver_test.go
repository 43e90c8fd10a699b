package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/foundryup-init/internal/domain"
)

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantRoot string
	}{
		{
			name:     "home only",
			env:      map[string]string{"HOME": "/tmp/h"},
			wantRoot: "/tmp/h/.foundry",
		},
		{
			name:     "xdg config home wins over home",
			env:      map[string]string{"HOME": "/tmp/h", "XDG_CONFIG_HOME": "/tmp/xdg"},
			wantRoot: "/tmp/xdg/.foundry",
		},
		{
			name:     "xdg config home without home",
			env:      map[string]string{"XDG_CONFIG_HOME": "/tmp/xdg"},
			wantRoot: "/tmp/xdg/.foundry",
		},
		{
			name:     "foundry dir wins over everything",
			env:      map[string]string{"HOME": "/tmp/h", "XDG_CONFIG_HOME": "/tmp/xdg", "FOUNDRY_DIR": "/opt/foundry"},
			wantRoot: "/opt/foundry",
		},
		{
			name:     "foundry dir with home",
			env:      map[string]string{"HOME": "/tmp/h", "FOUNDRY_DIR": "/opt/foundry"},
			wantRoot: "/opt/foundry",
		},
		{
			name:     "empty xdg config home falls back to home",
			env:      map[string]string{"HOME": "/tmp/h", "XDG_CONFIG_HOME": ""},
			wantRoot: "/tmp/h/.foundry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(domain.EnvironmentFromMap(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, got.Root)
			assert.Equal(t, filepath.Join(tt.wantRoot, "bin"), got.BinDir)
			assert.Equal(t, filepath.Join(tt.wantRoot, "share", "man", "man1"), got.ManDir)
			assert.Equal(t, filepath.Join(tt.wantRoot, "bin", "foundryup"), got.BinaryPath)
		})
	}
}

func TestResolveWithoutHome(t *testing.T) {
	tests := []map[string]string{
		{},
		{"FOUNDRY_DIR": "/opt/foundry"},
		{"HOME": "", "XDG_CONFIG_HOME": ""},
	}
	for _, env := range tests {
		_, err := Resolve(domain.EnvironmentFromMap(env))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfig)
		assert.Contains(t, err.Error(), "HOME environment variable not set")
	}
}

func TestEnsureDirsIsIdempotent(t *testing.T) {
	home := t.TempDir()
	p, err := Resolve(domain.EnvironmentFromMap(map[string]string{"HOME": home}))
	require.NoError(t, err)

	require.NoError(t, EnsureDirs(p))
	require.NoError(t, EnsureDirs(p))

	for _, dir := range []string{p.BinDir, p.ManDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestEnsureDirsFailsUnderFile(t *testing.T) {
	home := t.TempDir()
	blocker := filepath.Join(home, ".foundry")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	p, err := Resolve(domain.EnvironmentFromMap(map[string]string{"HOME": home}))
	require.NoError(t, err)
	assert.Error(t, EnsureDirs(p))
}
